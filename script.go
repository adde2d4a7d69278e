package mindmap

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Node   string  `json:"node,omitempty"`
	Target string  `json:"target,omitempty"`
	Path   string  `json:"path,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Delta  float64 `json:"delta,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays a JSON input script against a View, one step per
// update once pending injected input has drained. Supported actions:
//
//	screenshot  label
//	click       x, y            (screen coordinates)
//	clickNode   node            (wherever the node is drawn now)
//	drag        fromX, fromY, toX, toY, frames
//	dragNode    node, target, frames
//	wheel       x, y, delta
//	root        path            (dot-joined; "" for the default root)
//	wait        frames
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	err       error
}

// LoadScript parses a JSON script.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// SetScript attaches a runner; it is stepped at the start of each Update.
func (v *View) SetScript(r *ScriptRunner) {
	v.script = r
}

// Done reports whether every step has run.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Err returns the first step that could not be carried out, if any. A
// failed step is skipped; the script keeps going.
func (r *ScriptRunner) Err() error {
	return r.err
}

func (r *ScriptRunner) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

// step advances the runner by one update.
func (r *ScriptRunner) step(v *View) {
	if r.done {
		return
	}
	if len(v.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		v.Screenshot(st.Label)
	case "click":
		v.InjectClick(st.X, st.Y)
	case "clickNode":
		x, y, ok := v.ScreenPositionOf(st.Node)
		if !ok {
			r.fail(fmt.Errorf("step %d: node %q is not drawn", r.cursor, st.Node))
			break
		}
		v.InjectClick(x, y)
	case "drag":
		v.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "dragNode":
		fx, fy, ok := v.ScreenPositionOf(st.Node)
		tx, ty, ok2 := v.ScreenPositionOf(st.Target)
		if !ok || !ok2 {
			r.fail(fmt.Errorf("step %d: drag %q onto %q: node is not drawn", r.cursor, st.Node, st.Target))
			break
		}
		v.InjectDrag(fx, fy, tx, ty, max(st.Frames, 4))
	case "wheel":
		v.InjectWheel(st.X, st.Y, st.Delta)
	case "root":
		if err := v.SetRoot(st.Path); err != nil {
			r.fail(fmt.Errorf("step %d: %w", r.cursor, err))
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1
		}
	default:
		r.fail(fmt.Errorf("step %d: unknown action %q", r.cursor, st.Action))
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(v.injectQueue) == 0 {
		r.done = true
	}
}
