package mindmap

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

const epsilon = 1e-3

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// e builds a document entry. With no children the entry is a leaf.
func e(key string, children ...Entry) Entry {
	if len(children) == 0 {
		return Entry{Key: key}
	}
	return Entry{Key: key, Value: Mapping(children)}
}

// attrs builds an AttrsKey entry from key/value pairs.
func attrs(pairs ...string) Entry {
	m := Mapping{}
	for i := 0; i+1 < len(pairs); i += 2 {
		m = append(m, Entry{Key: pairs[i], Value: pairs[i+1]})
	}
	return Entry{Key: AttrsKey, Value: m}
}

// sampleDoc is
//
//	Project
//	├── Research (icon book)
//	│   ├── Papers
//	│   └── Interviews
//	├── Build
//	│   ├── Prototype
//	│   └── Tests
//	└── Docs (hyperlink)
func sampleDoc() Mapping {
	return Mapping{
		e("Project",
			e("Research",
				attrs("icon", "book"),
				e("Papers"),
				e("Interviews"),
			),
			e("Build",
				e("Prototype"),
				e("Tests"),
			),
			e("Docs", attrs("hyperlink", "https://example.com/docs")),
		),
	}
}

func sampleTree(t *testing.T) *Tree {
	t.Helper()
	tree, err := Normalize(sampleDoc())
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	return tree
}

func testOptions() ViewOptions {
	return ViewOptions{
		Duration: 1,
		Ease:     ease.Linear,
		Viewport: Rect{Width: 800, Height: 600},
	}
}

// newTestView builds a view over sampleDoc and lets every transition
// finish.
func newTestView(t *testing.T, loc Locator, opts ViewOptions) *View {
	t.Helper()
	v, err := NewView(sampleDoc(), loc, opts)
	if err != nil {
		t.Fatalf("NewView: %v", err)
	}
	settle(v)
	return v
}

// settle runs updates until queued input is consumed and every animation
// has finished.
func settle(v *View) {
	for v.InjectedPending() > 0 {
		v.Update(0)
	}
	v.Update(0.5)
	v.Update(0.5)
}

func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func ids(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
