package mindmap

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultDuration is the length of every render transition, in seconds.
const DefaultDuration float32 = 0.75

// TweenGroup animates up to 4 float64 fields simultaneously. Call Update(dt)
// each frame; values are written straight into the fields.
//
// There is no global animation manager: the Renderer owns one group per
// render item and one per edge, and replaces a group when a newer render
// cycle retargets it.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values to the
// target fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

func (g *TweenGroup) add(field *float64, to float64, duration float32, fn ease.TweenFunc) {
	g.tweens[g.count] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[g.count] = field
	g.count++
}

// TweenItem animates a render item's position, circle radius and label
// opacity toward the given values.
func TweenItem(item *RenderItem, to Vec2, radius, alpha float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	g.add(&item.X, to.X, duration, fn)
	g.add(&item.Y, to.Y, duration, fn)
	g.add(&item.Radius, radius, duration, fn)
	g.add(&item.TextAlpha, alpha, duration, fn)
	return g
}

// TweenEdge animates both endpoints of an edge.
func TweenEdge(edge *RenderEdge, from, to Vec2, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	g.add(&edge.From.X, from.X, duration, fn)
	g.add(&edge.From.Y, from.Y, duration, fn)
	g.add(&edge.To.X, to.X, duration, fn)
	g.add(&edge.To.Y, to.Y, duration, fn)
	return g
}

