package mindmap

import (
	"sort"

	"github.com/tanema/gween/ease"
)

const (
	nodeRadius = 4.5 // circle radius of a settled node
)

// RenderItem is the on-screen representation of one visible node. Its
// fields are animated by the Renderer; drawing code only reads them.
type RenderItem struct {
	ID        string
	X, Y      float64
	Radius    float64
	TextAlpha float64

	// Decoration, refreshed every cycle.
	Label         string
	Glyph         string
	Color         Color
	HasColor      bool
	Background    Color
	HasBackground bool
	Hyperlink     string
	Collapsed     bool
	HasChildren   bool

	Exiting  bool
	Dragging bool

	gen     uint64
	exitGen uint64
	tween   *TweenGroup
}

// Position returns the item's current animated position.
func (it *RenderItem) Position() Vec2 {
	return Vec2{it.X, it.Y}
}

// RenderEdge connects a parent item to a child item. Edges are keyed by
// the child's id.
type RenderEdge struct {
	ID       string
	ParentID string
	From, To Vec2
	Exiting  bool

	gen     uint64
	exitGen uint64
	tween   *TweenGroup
}

// Diff lists the ids that entered, stayed and exited in one Sync.
type Diff struct {
	Enter  []string
	Update []string
	Exit   []string
}

// Renderer reconciles the visible tree against what is on screen. It is
// the only writer of Node screen positions.
type Renderer struct {
	Duration float32
	Ease     ease.TweenFunc
	Icons    IconResolver

	items map[string]*RenderItem
	edges map[string]*RenderEdge
	root  string
}

// NewRenderer creates an empty renderer.
func NewRenderer(duration float32, fn ease.TweenFunc, icons IconResolver) *Renderer {
	if duration <= 0 {
		duration = DefaultDuration
	}
	if fn == nil {
		fn = ease.InOutCubic
	}
	if icons == nil {
		icons = NewGlyphTable(nil)
	}
	return &Renderer{
		Duration: duration,
		Ease:     fn,
		Icons:    icons,
		items:    make(map[string]*RenderItem),
		edges:    make(map[string]*RenderEdge),
	}
}

// Sync runs one render cycle. source is the node whose interaction
// triggered it: entering nodes start at its previous position and exiting
// nodes shrink into its new one.
func (r *Renderer) Sync(t *Tree, l Layout, source string) Diff {
	var diff Diff
	if len(l.Order) > 0 {
		r.root = l.Order[0]
	}

	for _, id := range l.Order {
		t.nodes[id].pos = l.Positions[id]
	}

	var srcPrev, srcNew Vec2
	if src := t.Node(source); src != nil {
		srcPrev = src.prevPos
		srcNew = src.prevPos
		if _, visible := l.Positions[source]; visible {
			srcNew = src.pos
		}
	}

	for _, id := range l.Order {
		n := t.nodes[id]
		it, ok := r.items[id]
		if ok {
			diff.Update = append(diff.Update, id)
		} else {
			it = &RenderItem{ID: id, X: srcPrev.X, Y: srcPrev.Y}
			r.items[id] = it
			diff.Enter = append(diff.Enter, id)
		}
		it.Exiting = false
		it.gen++
		it.tween = TweenItem(it, n.pos, nodeRadius, 1, r.Duration, r.Ease)
		Decorate(it, t, n, r.Icons)

		if id == r.root {
			continue
		}
		parent := t.nodes[n.parent].pos
		e, ok := r.edges[id]
		if !ok {
			e = &RenderEdge{ID: id, From: srcPrev, To: srcPrev}
			r.edges[id] = e
		}
		e.ParentID = n.parent
		e.Exiting = false
		e.gen++
		e.tween = TweenEdge(e, parent, n.pos, r.Duration, r.Ease)
	}

	for id, it := range r.items {
		if _, visible := l.Positions[id]; visible {
			continue
		}
		diff.Exit = append(diff.Exit, id)
		it.Exiting = true
		it.gen++
		it.exitGen = it.gen
		it.tween = TweenItem(it, srcNew, 0, 0, r.Duration, r.Ease)
	}
	for id, e := range r.edges {
		if _, visible := l.Positions[id]; visible && id != r.root {
			continue
		}
		e.Exiting = true
		e.gen++
		e.exitGen = e.gen
		e.tween = TweenEdge(e, srcNew, srcNew, r.Duration, r.Ease)
	}

	for _, id := range l.Order {
		n := t.nodes[id]
		n.prevPos = n.pos
	}

	sort.Strings(diff.Enter)
	sort.Strings(diff.Update)
	sort.Strings(diff.Exit)
	return diff
}

// Advance steps every animation by dt seconds and drops exiting items
// whose exit transition has finished.
func (r *Renderer) Advance(dt float32) {
	for id, it := range r.items {
		if it.tween == nil {
			continue
		}
		it.tween.Update(dt)
		if it.tween.Done && it.Exiting && it.exitGen == it.gen {
			delete(r.items, id)
		}
	}
	for id, e := range r.edges {
		if e.tween == nil {
			continue
		}
		e.tween.Update(dt)
		if e.tween.Done && e.Exiting && e.exitGen == e.gen {
			delete(r.edges, id)
		}
	}
}

// Animating reports whether any transition is still running.
func (r *Renderer) Animating() bool {
	for _, it := range r.items {
		if it.tween != nil && !it.tween.Done {
			return true
		}
	}
	for _, e := range r.edges {
		if e.tween != nil && !e.tween.Done {
			return true
		}
	}
	return false
}

// Item returns the render item for id, or nil.
func (r *Renderer) Item(id string) *RenderItem {
	return r.items[id]
}

// Edge returns the edge ending at id, or nil.
func (r *Renderer) Edge(id string) *RenderEdge {
	return r.edges[id]
}

// Items returns all items in draw order: by id, with a dragged item last so
// it paints on top.
func (r *Renderer) Items() []*RenderItem {
	out := make([]*RenderItem, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Dragging != out[j].Dragging {
			return out[j].Dragging
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Edges returns all edges sorted by id.
func (r *Renderer) Edges() []*RenderEdge {
	out := make([]*RenderEdge, 0, len(r.edges))
	for _, e := range r.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// DetachForDrag removes the inbound edge of id and the items and edges of
// its visible descendants, leaving id's own item in place and marked as
// dragging. The tree is untouched.
func (r *Renderer) DetachForDrag(t *Tree, id string) {
	delete(r.edges, id)
	if it := r.items[id]; it != nil {
		it.Dragging = true
	}
	t.WalkVisible(id, func(n *Node, _ int) bool {
		if n.ID != id {
			delete(r.items, n.ID)
			delete(r.edges, n.ID)
		}
		return true
	})
}

// DragBy moves the dragged node's item and its anchor position by delta.
func (r *Renderer) DragBy(t *Tree, id string, delta Vec2) {
	n := t.Node(id)
	if n == nil {
		return
	}
	n.prevPos = n.prevPos.Add(delta)
	if it := r.items[id]; it != nil {
		it.tween = nil
		it.X, it.Y = n.prevPos.X, n.prevPos.Y
	}
}

// Anchor sets the position id's next render cycle treats as previous, so
// that nodes entering from it start there.
func (r *Renderer) Anchor(t *Tree, id string, at Vec2) {
	if n := t.Node(id); n != nil {
		n.prevPos = at
	}
}

// Root returns the id of the render root of the last cycle.
func (r *Renderer) Root() string { return r.root }

// EndDrag clears the dragging mark on id's item.
func (r *Renderer) EndDrag(id string) {
	if it := r.items[id]; it != nil {
		it.Dragging = false
	}
}

// Decorate refreshes an item's decoration from its node.
func Decorate(it *RenderItem, t *Tree, n *Node, icons IconResolver) {
	it.Label = n.Name
	it.Glyph = ""
	if n.Attrs.Icon != "" && icons != nil {
		it.Glyph = icons.Glyph(n.Attrs.Icon)
	}
	it.Color, it.HasColor = parseAttrColor(n.Attrs.Color)
	it.Background, it.HasBackground = parseAttrColor(n.Attrs.Background)
	it.Hyperlink = n.Attrs.Hyperlink
	it.Collapsed = n.collapsed
	it.HasChildren = t.HasChildren(n.ID)
}

// DisplayText is the label with its icon glyph prefixed.
func (it *RenderItem) DisplayText() string {
	if it.Glyph == "" {
		return it.Label
	}
	return it.Glyph + " " + it.Label
}

func parseAttrColor(s string) (Color, bool) {
	if s == "" {
		return Color{}, false
	}
	c, err := ParseHexColor(s)
	if err != nil {
		return Color{}, false
	}
	return c, true
}
