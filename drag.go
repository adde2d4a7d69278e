package mindmap

import (
	"errors"
	"time"
)

// DragState is the phase of a drag gesture.
type DragState uint8

const (
	DragIdle    DragState = iota // no gesture
	DragPending                  // pointer went down on a node, nothing detached yet
	DragActive                   // subtree detached from the render set, following the pointer
)

// DropOutcome classifies the end of a drag gesture.
type DropOutcome uint8

const (
	DropIgnored   DropOutcome = iota // no active drag (root, or released before moving)
	DropOnNothing                    // no valid target; the tree is unchanged
	DropOnTarget                     // the node was reparented
)

// DropResult describes how a drag gesture ended.
type DropResult struct {
	Outcome DropOutcome
	Node    string
	Target  string
	// Err is set when a hover target existed but the move was refused.
	Err error
}

// PanDirection is the viewport edge the pointer is near while dragging.
type PanDirection uint8

const (
	PanNone PanDirection = iota
	PanLeft
	PanRight
	PanUp
	PanDown
)

const (
	DefaultPanSpeed    = 200.0 // screen pixels per pan step
	DefaultPanBoundary = 20.0  // pixels from a viewport edge that start panning
	DefaultPanInterval = 50 * time.Millisecond
)

// DragOptions tunes edge panning.
type DragOptions struct {
	PanSpeed    float64
	PanBoundary float64
	PanInterval time.Duration
}

// DefaultDragOptions returns the standard edge-panning settings.
func DefaultDragOptions() DragOptions {
	return DragOptions{
		PanSpeed:    DefaultPanSpeed,
		PanBoundary: DefaultPanBoundary,
		PanInterval: DefaultPanInterval,
	}
}

// DragController turns a pointer drag into a reparent. It holds the state
// of exactly one gesture at a time; End always returns it to DragIdle.
type DragController struct {
	opts     DragOptions
	tree     *Tree
	renderer *Renderer
	camera   *Camera
	sched    *Scheduler

	// Root is the current render root; dragging it is a no-op.
	Root string

	state   DragState
	node    string
	hover   string
	pan     PanDirection
	panTask TaskID
}

// NewDragController wires a controller to the view's collaborators.
func NewDragController(opts DragOptions, t *Tree, r *Renderer, cam *Camera, sched *Scheduler) *DragController {
	if opts.PanSpeed <= 0 {
		opts.PanSpeed = DefaultPanSpeed
	}
	if opts.PanBoundary <= 0 {
		opts.PanBoundary = DefaultPanBoundary
	}
	if opts.PanInterval <= 0 {
		opts.PanInterval = DefaultPanInterval
	}
	return &DragController{opts: opts, tree: t, renderer: r, camera: cam, sched: sched}
}

// State returns the current phase.
func (d *DragController) State() DragState { return d.state }

// Node returns the id being dragged, or "" when idle.
func (d *DragController) Node() string { return d.node }

// HoverTarget returns the node currently under the pointer, or "".
func (d *DragController) HoverTarget() string { return d.hover }

// Panning returns the edge currently being panned toward.
func (d *DragController) Panning() PanDirection { return d.pan }

// Begin starts a gesture on id. It reports false, and stays idle, for the
// render root or an unknown node.
func (d *DragController) Begin(id string) bool {
	if id == d.Root || d.tree.Node(id) == nil || d.state != DragIdle {
		return false
	}
	d.state = DragPending
	d.node = id
	d.hover = ""
	return true
}

// Move follows the pointer. sx, sy is the pointer in screen space and delta
// the world-space movement since the previous call. The first Move detaches
// the dragged subtree from the render set.
func (d *DragController) Move(sx, sy float64, delta Vec2) {
	if d.state == DragIdle {
		return
	}
	if d.state == DragPending {
		d.renderer.DetachForDrag(d.tree, d.node)
		d.state = DragActive
	}
	d.updatePan(d.edgeDirection(sx, sy))
	d.renderer.DragBy(d.tree, d.node, delta)
}

// Hover records id as the drop target under the pointer.
func (d *DragController) Hover(id string) {
	if d.state != DragActive || id == d.node {
		return
	}
	d.hover = id
}

// Unhover clears the drop target if it is id.
func (d *DragController) Unhover(id string) {
	if d.hover == id {
		d.hover = ""
	}
}

// GhostEdge returns the temporary connector between the hover target and
// the dragged node, if both exist.
func (d *DragController) GhostEdge() (from, to Vec2, ok bool) {
	if d.state != DragActive || d.hover == "" {
		return Vec2{}, Vec2{}, false
	}
	target := d.tree.Node(d.hover)
	dragged := d.tree.Node(d.node)
	if target == nil || dragged == nil {
		return Vec2{}, Vec2{}, false
	}
	return target.prevPos, dragged.prevPos, true
}

// End finishes the gesture. A valid hover target receives the dragged node
// as its last child; otherwise the tree is left alone. The caller relayouts
// in both cases.
func (d *DragController) End() DropResult {
	d.stopPan()
	res := DropResult{Node: d.node, Target: d.hover}
	defer d.reset()

	if d.state != DragActive {
		res.Outcome = DropIgnored
		return res
	}
	d.renderer.EndDrag(d.node)
	if d.hover == "" {
		res.Outcome = DropOnNothing
		return res
	}
	if err := d.tree.Move(d.node, d.hover); err != nil {
		res.Outcome = DropOnNothing
		if !errors.Is(err, ErrSameParent) {
			res.Err = err
		}
		return res
	}
	res.Outcome = DropOnTarget
	return res
}

// Cancel abandons the gesture without touching the tree.
func (d *DragController) Cancel() {
	d.stopPan()
	if d.node != "" {
		d.renderer.EndDrag(d.node)
	}
	d.reset()
}

func (d *DragController) reset() {
	d.state = DragIdle
	d.node = ""
	d.hover = ""
}

// edgeDirection reports which viewport edge band (sx, sy) lies in.
func (d *DragController) edgeDirection(sx, sy float64) PanDirection {
	if d.camera == nil {
		return PanNone
	}
	vp := d.camera.Viewport
	b := d.opts.PanBoundary
	switch {
	case sx < vp.X+b:
		return PanLeft
	case sx > vp.X+vp.Width-b:
		return PanRight
	case sy < vp.Y+b:
		return PanUp
	case sy > vp.Y+vp.Height-b:
		return PanDown
	}
	return PanNone
}

func (d *DragController) updatePan(dir PanDirection) {
	if dir == d.pan {
		return
	}
	d.stopPan()
	if dir == PanNone {
		return
	}
	d.pan = dir
	d.schedulePan()
}

// schedulePan arms the self-rescheduling pan step.
func (d *DragController) schedulePan() {
	d.panTask = d.sched.After(d.opts.PanInterval, func() {
		if d.pan == PanNone || d.state != DragActive {
			return
		}
		d.panStep()
		d.schedulePan()
	})
}

// panStep moves the camera one step toward the active edge and carries the
// dragged node along so it stays under the pointer.
func (d *DragController) panStep() {
	var dx, dy float64
	switch d.pan {
	case PanLeft:
		dx = d.opts.PanSpeed
	case PanRight:
		dx = -d.opts.PanSpeed
	case PanUp:
		dy = d.opts.PanSpeed
	case PanDown:
		dy = -d.opts.PanSpeed
	}
	d.camera.PanBy(dx, dy)
	z := d.camera.Zoom
	d.renderer.DragBy(d.tree, d.node, Vec2{X: -dx / z, Y: -dy / z})
}

func (d *DragController) stopPan() {
	if d.panTask != 0 {
		d.sched.Cancel(d.panTask)
		d.panTask = 0
	}
	d.pan = PanNone
}
