package mindmap

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenItemReachesTarget(t *testing.T) {
	it := &RenderItem{X: 10, Y: 20}
	g := TweenItem(it, Vec2{X: 100, Y: 200}, 4.5, 1, 1.0, ease.Linear)

	// Exact halves avoid float32 accumulation drift.
	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(it.X-100) > 0.5 || math.Abs(it.Y-200) > 0.5 {
		t.Errorf("position = (%f,%f), want ~(100,200)", it.X, it.Y)
	}
	if math.Abs(it.Radius-4.5) > 0.01 || math.Abs(it.TextAlpha-1) > 0.01 {
		t.Errorf("radius = %f alpha = %f", it.Radius, it.TextAlpha)
	}
}

func TestTweenItemInterpolates(t *testing.T) {
	it := &RenderItem{}
	g := TweenItem(it, Vec2{X: 100}, 0, 1, 1.0, ease.Linear)
	g.Update(0.5)
	if math.Abs(it.X-50) > 0.5 || math.Abs(it.TextAlpha-0.5) > 0.01 {
		t.Errorf("midpoint x = %f alpha = %f, want ~50 and ~0.5", it.X, it.TextAlpha)
	}
}

func TestTweenEdgeReachesTarget(t *testing.T) {
	edge := &RenderEdge{}
	g := TweenEdge(edge, Vec2{X: 1, Y: 2}, Vec2{X: 30, Y: 40}, 0.5, ease.Linear)
	g.Update(0.25)
	g.Update(0.25)
	if !g.Done {
		t.Fatal("expected Done")
	}
	if math.Abs(edge.From.X-1) > 0.01 || math.Abs(edge.From.Y-2) > 0.01 ||
		math.Abs(edge.To.X-30) > 0.01 || math.Abs(edge.To.Y-40) > 0.01 {
		t.Errorf("edge = %v -> %v", edge.From, edge.To)
	}
}

func TestTweenGroupDoneFlagTransition(t *testing.T) {
	it := &RenderItem{}
	g := TweenItem(it, Vec2{X: 50, Y: 50}, 1, 1, 0.5, ease.Linear)

	if g.Done {
		t.Fatal("should not be Done at start")
	}

	// Partway through, not done.
	g.Update(0.25)
	if g.Done {
		t.Fatal("should not be Done partway through")
	}

	g.Update(0.25)
	if !g.Done {
		t.Fatal("should be Done after full duration")
	}

	// Update after done is a no-op.
	x := it.X
	g.Update(0.1)
	if !g.Done || it.X != x {
		t.Fatal("should remain Done and leave fields alone")
	}
}

func TestTweenEasingFunctionsProduceDifferentCurves(t *testing.T) {
	// Spot-check: linear vs OutCubic at the midpoint should differ.
	l := &RenderItem{}
	c := &RenderItem{}

	gL := TweenItem(l, Vec2{X: 100}, 0, 0, 1.0, ease.Linear)
	gC := TweenItem(c, Vec2{X: 100}, 0, 0, 1.0, ease.OutCubic)

	gL.Update(0.5)
	gC.Update(0.5)

	// OutCubic should be ahead of linear at midpoint.
	if math.Abs(l.X-c.X) < 1.0 {
		t.Errorf("easing curves should produce different values at midpoint: linear=%f cubic=%f", l.X, c.X)
	}
}

func TestTweenGroupUpdateZeroAlloc(t *testing.T) {
	it := &RenderItem{}
	g := TweenItem(it, Vec2{X: 100, Y: 100}, 1, 1, 100, ease.Linear)
	allocs := testing.AllocsPerRun(100, func() {
		g.Update(0.01)
	})
	if allocs != 0 {
		t.Errorf("Update allocated %v times per run", allocs)
	}
}
