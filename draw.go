package mindmap

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	clearColor     = Color{0.98, 0.98, 0.98, 1}
	nodeStroke     = Color{0.27, 0.51, 0.71, 1} // steelblue
	ghostEdgeColor = Color{1, 0, 0, 0.6}
	crumbBarColor  = Color{0.93, 0.94, 0.96, 0.95}
	crumbTextColor = Color{0.2, 0.3, 0.45, 1}
)

const (
	edgeWidth       = 1.5
	strokeWidth     = 1.5
	labelOffset     = 10.0 // gap between a node's circle and its label
	bezierSegments  = 16
	crumbBarPadding = 8.0
	crumbSeparator  = " / "
)

// Draw renders the current frame: edges, the ghost connector while
// dragging, node circles and labels, then the breadcrumb bar.
func (v *View) Draw(screen *ebiten.Image, face *LabelFace) {
	screen.Fill(clearColor.RGBA())
	z := v.camera.Zoom

	for _, e := range v.renderer.Edges() {
		v.drawDiagonal(screen, e.From, e.To, ColorLink, edgeWidth*z)
	}
	if from, to, ok := v.drag.GhostEdge(); ok {
		v.drawDiagonal(screen, from, to, ghostEdgeColor, edgeWidth*z)
	}

	dragging := v.drag.State() == DragActive
	hover := v.drag.HoverTarget()
	for _, it := range v.renderer.Items() {
		sx, sy := v.camera.WorldToScreen(it.X, it.Y)
		if dragging && !it.Dragging && !it.Exiting {
			c := ColorGhost
			if it.ID == hover {
				c = c.WithAlpha(0.5)
			}
			vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(ghostRadius*z), c.RGBA(), true)
		}
		v.drawItem(screen, face, it, sx, sy, z)
	}

	v.drawCrumbs(screen, face)
	v.flushScreenshots(screen)
}

func (v *View) drawItem(dst *ebiten.Image, face *LabelFace, it *RenderItem, sx, sy, z float64) {
	if face != nil && it.TextAlpha > 0 {
		s := it.DisplayText()
		w, h := face.Measure(s)
		w, h = w*z, h*z
		lx := sx + labelOffset*z
		if it.HasChildren {
			lx = sx - labelOffset*z - w
		}
		ly := sy - h/2
		if it.HasBackground {
			bg := it.Background.WithAlpha(it.Background.A * it.TextAlpha)
			vector.DrawFilledRect(dst, float32(lx-2), float32(ly-1), float32(w+4), float32(h+2), bg.RGBA(), true)
		}
		c := ColorText
		switch {
		case it.HasColor:
			c = it.Color
		case it.Hyperlink != "":
			c = ColorHyperlink
		}
		face.draw(dst, s, lx, ly, z, c.WithAlpha(c.A*it.TextAlpha))
	}

	if it.Radius <= 0 {
		return
	}
	fill := ColorWhite
	if it.Collapsed {
		fill = ColorSteelBlue
	}
	r := float32(it.Radius * z)
	vector.DrawFilledCircle(dst, float32(sx), float32(sy), r, fill.RGBA(), true)
	vector.StrokeCircle(dst, float32(sx), float32(sy), r, float32(strokeWidth*z), nodeStroke.RGBA(), true)
}

// drawDiagonal strokes the horizontal S-curve between two world points,
// flattened into line segments.
func (v *View) drawDiagonal(dst *ebiten.Image, from, to Vec2, c Color, width float64) {
	p0x, p0y := v.camera.WorldToScreen(from.X, from.Y)
	p3x, p3y := v.camera.WorldToScreen(to.X, to.Y)
	mx := (p0x + p3x) / 2
	p1x, p1y := mx, p0y
	p2x, p2y := mx, p3y

	prevX, prevY := p0x, p0y
	for i := 1; i <= bezierSegments; i++ {
		t := float64(i) / float64(bezierSegments)
		u := 1 - t
		x := u*u*u*p0x + 3*u*u*t*p1x + 3*u*t*t*p2x + t*t*t*p3x
		y := u*u*u*p0y + 3*u*u*t*p1y + 3*u*t*t*p2y + t*t*t*p3y
		vector.StrokeLine(dst, float32(prevX), float32(prevY), float32(x), float32(y), float32(width), c.RGBA(), true)
		prevX, prevY = x, y
	}
}

// drawCrumbs draws the breadcrumb bar along the top of the viewport and
// records each crumb's screen rectangle for hit testing.
func (v *View) drawCrumbs(dst *ebiten.Image, face *LabelFace) {
	v.crumbRects = v.crumbRects[:0]
	if face == nil || len(v.crumbs) == 0 {
		return
	}
	vp := v.camera.Viewport
	barH := face.LineHeight() + crumbBarPadding
	vector.DrawFilledRect(dst, float32(vp.X), float32(vp.Y), float32(vp.Width), float32(barH), crumbBarColor.RGBA(), false)

	x := vp.X + crumbBarPadding
	y := vp.Y + crumbBarPadding/2
	sepW, _ := face.Measure(crumbSeparator)
	for i, c := range v.crumbs {
		if i > 0 {
			face.draw(dst, crumbSeparator, x, y, 1, ColorText)
			x += sepW
		}
		w, h := face.Measure(c.Label)
		face.draw(dst, c.Label, x, y, 1, crumbTextColor)
		v.crumbRects = append(v.crumbRects, Rect{X: x, Y: y, Width: w, Height: h})
		x += w
	}
}

// crumbAt returns the index of the breadcrumb drawn at (sx, sy), or -1.
func (v *View) crumbAt(sx, sy float64) int {
	for i, r := range v.crumbRects {
		if r.Contains(sx, sy) {
			return i
		}
	}
	return -1
}
