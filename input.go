package mindmap

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	defaultDragDeadZone = 4.0  // pixels
	hitRadius           = 10.0 // world units around a node centre that take clicks
	ghostRadius         = 30.0 // world units around a node centre that accept drops
	wheelZoomStep       = 1.1  // zoom factor per wheel notch
)

// pointerState tracks the mouse between frames. Coordinates are in screen
// space.
type pointerState struct {
	down     bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	hitNode  string // node under the pointer at press time
	hover    string // node the pointer is currently over
	dragging bool   // moved past the dead zone since the press
	panning  bool   // dragging the background
	crumb    int    // 1 + index of the breadcrumb pressed, 0 for none
	button   MouseButton
}

// hitTest returns the id of the topmost settled node whose circle contains
// the world point, or "".
func (v *View) hitTest(wx, wy float64) string {
	items := v.renderer.Items()
	for i := len(items) - 1; i >= 0; i-- {
		it := items[i]
		if it.Exiting || it.Dragging {
			continue
		}
		if withinRadius(it, wx, wy, hitRadius) {
			return it.ID
		}
	}
	return ""
}

// ghostHitTest returns the drop target under the world point while a node
// is being dragged. Drop areas are wider than click areas.
func (v *View) ghostHitTest(wx, wy float64) string {
	items := v.renderer.Items()
	for i := len(items) - 1; i >= 0; i-- {
		it := items[i]
		if it.Exiting || it.Dragging {
			continue
		}
		if withinRadius(it, wx, wy, ghostRadius) {
			return it.ID
		}
	}
	return ""
}

func withinRadius(it *RenderItem, wx, wy, r float64) bool {
	dx := wx - it.X
	dy := wy - it.Y
	return dx*dx+dy*dy <= r*r
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

// pollInput reads the mouse, wheel and keyboard from ebiten. Injected
// events take priority: while any are queued the real devices are ignored.
func (v *View) pollInput() {
	if len(v.injectQueue) > 0 {
		return
	}
	mods := readModifiers()

	mx, my := ebiten.CursorPosition()
	sx, sy := float64(mx), float64(my)

	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		pressed = true
		switch {
		case left:
			button = MouseButtonLeft
		case right:
			button = MouseButtonRight
		default:
			button = MouseButtonMiddle
		}
	}
	v.processPointer(sx, sy, pressed, button, mods)

	if _, wy := ebiten.Wheel(); wy != 0 {
		v.processWheel(sx, sy, wy)
	}
	v.processKeys()
}

// processKeys handles the keyboard shortcuts.
func (v *View) processKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		if err := v.CopyLocator(); err != nil {
			v.log.Error("copy locator", "err", err)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		v.cancelDrag()
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		v.CenterOn(v.rootID)
	}
}

// cancelDrag abandons a node drag and restores the picture. While the
// button stays down the rest of the gesture pans the background.
func (v *View) cancelDrag() {
	if v.drag.State() == DragIdle {
		return
	}
	id := v.drag.Node()
	v.drag.Cancel()
	if ps := &v.pointer; ps.down {
		ps.hitNode = ""
		ps.dragging = true
		ps.panning = true
	}
	v.Relayout(id)
}

// processWheel zooms around the pointer. Positive dy zooms in.
func (v *View) processWheel(sx, sy, dy float64) {
	v.camera.ZoomAt(sx, sy, math.Pow(wheelZoomStep, dy))
}

// processPointer runs the pointer state machine for one sample. Clicks
// toggle, drags that start on a node reparent it, and drags that start on
// the background pan the camera.
func (v *View) processPointer(sx, sy float64, pressed bool, button MouseButton, mods KeyModifiers) {
	ps := &v.pointer
	wx, wy := v.camera.ScreenToWorld(sx, sy)

	var target string
	if v.drag.State() == DragActive {
		target = v.ghostHitTest(wx, wy)
	} else {
		target = v.hitTest(wx, wy)
	}
	if target != ps.hover {
		if ps.hover != "" {
			v.drag.Unhover(ps.hover)
		}
		if target != "" {
			v.drag.Hover(target)
		}
		ps.hover = target
	}

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.startX, ps.startY = sx, sy
		ps.lastX, ps.lastY = sx, sy
		ps.hitNode = target
		ps.dragging = false
		ps.panning = false
		ps.crumb = v.crumbAt(sx, sy) + 1
		if ps.crumb > 0 {
			ps.hitNode = ""
		}

	case !pressed && ps.down:
		crumb := ps.crumb
		switch {
		case ps.dragging && !ps.panning:
			v.endDrag()
		case !ps.dragging && crumb > 0 && v.crumbAt(sx, sy)+1 == crumb:
			if err := v.ActivateCrumb(crumb - 1); err != nil {
				v.log.Error("activate breadcrumb", "err", err)
			}
		case !ps.dragging && ps.hitNode != "" && ps.hitNode == target && ps.button == MouseButtonLeft:
			v.Click(target, mods)
		}
		ps.down = false
		ps.hitNode = ""
		ps.dragging = false
		ps.panning = false
		ps.crumb = 0

	case pressed && ps.down:
		if sx == ps.lastX && sy == ps.lastY {
			break
		}
		if !ps.dragging {
			dx := sx - ps.startX
			dy := sy - ps.startY
			if math.Sqrt(dx*dx+dy*dy) > v.opts.DeadZone {
				ps.dragging = true
				ps.panning = ps.hitNode == "" || !v.drag.Begin(ps.hitNode)
			}
		}
		if ps.dragging {
			if ps.panning {
				v.camera.PanBy(sx-ps.lastX, sy-ps.lastY)
			} else {
				z := v.camera.Zoom
				v.drag.Move(sx, sy, Vec2{X: (sx - ps.lastX) / z, Y: (sy - ps.lastY) / z})
				if v.drag.HoverTarget() == "" && ps.hover != "" {
					v.drag.Hover(ps.hover)
				}
			}
		}
		ps.lastX, ps.lastY = sx, sy

	default:
		ps.lastX, ps.lastY = sx, sy
	}
}

// endDrag finishes a node drag and re-renders around the dragged node.
func (v *View) endDrag() {
	res := v.drag.End()
	switch res.Outcome {
	case DropIgnored:
		return
	case DropOnTarget:
		v.log.Info("node moved", "node", res.Node, "parent", res.Target,
			"path", JoinPath(v.tree.Node(res.Node).path))
	case DropOnNothing:
		if res.Err != nil {
			v.log.Warn("drop refused", "node", res.Node, "target", res.Target, "err", res.Err)
		}
	}
	v.Relayout(res.Node)
	v.CenterOn(res.Node)
}
