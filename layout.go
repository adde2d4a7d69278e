package mindmap

import (
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	DefaultRowHeight = 25.0 // pixels per visible row
	DefaultCharWidth = 10.0 // pixels per label character between depths
)

// Extents describes the shape of the visible tree below a render root.
type Extents struct {
	// MaxVisibleSiblings is the largest number of visible nodes at any one
	// depth, counting the root's depth as 1.
	MaxVisibleSiblings int
	// MaxLabelLength is the longest visible label, in runes.
	MaxLabelLength int
	// Depth is the deepest visible depth below the root.
	Depth int
	// Visible is the number of visible nodes.
	Visible int
}

// Measure computes Extents for the visible tree below root. Collapsed
// subtrees do not count.
func Measure(t *Tree, root string) Extents {
	var e Extents
	levelWidth := []int{1}
	t.WalkVisible(root, func(n *Node, depth int) bool {
		e.Visible++
		if l := utf8.RuneCountInString(n.Name); l > e.MaxLabelLength {
			e.MaxLabelLength = l
		}
		if depth > e.Depth {
			e.Depth = depth
		}
		if len(n.children) > 0 {
			if len(levelWidth) <= depth+1 {
				levelWidth = append(levelWidth, 0)
			}
			levelWidth[depth+1] += len(n.children)
		}
		return true
	})
	for _, w := range levelWidth {
		if w > e.MaxVisibleSiblings {
			e.MaxVisibleSiblings = w
		}
	}
	return e
}

// LayoutOptions controls ComputeLayout.
type LayoutOptions struct {
	RowHeight float64
	CharWidth float64
	// SortChildren orders siblings by lower-cased name for display. The
	// tree itself keeps source order.
	SortChildren bool
}

// DefaultLayoutOptions returns the standard spacing.
func DefaultLayoutOptions() LayoutOptions {
	return LayoutOptions{RowHeight: DefaultRowHeight, CharWidth: DefaultCharWidth}
}

// Layout is the result of ComputeLayout.
type Layout struct {
	Extents   Extents
	Width     float64
	Height    float64
	Positions map[string]Vec2
	// Order lists visible ids in display order, parents before children.
	Order []string
}

// ComputeLayout places every visible node below root. X grows with depth
// at MaxLabelLength*CharWidth per level; Y spreads leaves over
// MaxVisibleSiblings*RowHeight, siblings one slot apart and cousins two,
// with each parent centred on its children.
func ComputeLayout(t *Tree, root string, opts LayoutOptions) Layout {
	if opts.RowHeight <= 0 {
		opts.RowHeight = DefaultRowHeight
	}
	if opts.CharWidth <= 0 {
		opts.CharWidth = DefaultCharWidth
	}
	ext := Measure(t, root)
	l := Layout{
		Extents:   ext,
		Height:    float64(ext.MaxVisibleSiblings) * opts.RowHeight,
		Positions: make(map[string]Vec2, ext.Visible),
	}
	levelX := float64(ext.MaxLabelLength) * opts.CharWidth
	l.Width = float64(ext.Depth) * levelX

	p := placer{
		t:     t,
		opts:  opts,
		slots: make(map[string]float64, ext.Visible),
		depth: make(map[string]int, ext.Visible),
	}
	if t.Node(root) == nil {
		return l
	}
	p.place(root, 0)

	span := p.cursor
	for id, slot := range p.slots {
		y := (slot + 0.5) / (span + 1) * l.Height
		l.Positions[id] = Vec2{X: float64(p.depth[id]) * levelX, Y: y}
	}
	l.Order = p.order
	return l
}

// placer assigns a vertical slot to every visible node.
type placer struct {
	t        *Tree
	opts     LayoutOptions
	slots    map[string]float64
	depth    map[string]int
	order    []string
	cursor   float64
	lastLeaf *Node
}

func (p *placer) place(id string, depth int) float64 {
	n := p.t.nodes[id]
	p.depth[id] = depth
	p.order = append(p.order, id)

	if len(n.children) == 0 {
		if p.lastLeaf != nil {
			if p.lastLeaf.parent == n.parent {
				p.cursor++
			} else {
				p.cursor += 2
			}
		}
		p.lastLeaf = n
		p.slots[id] = p.cursor
		return p.cursor
	}

	children := n.children
	if p.opts.SortChildren {
		children = sortedByName(p.t, children)
	}
	first := p.place(children[0], depth+1)
	last := first
	for _, c := range children[1:] {
		last = p.place(c, depth+1)
	}
	slot := (first + last) / 2
	p.slots[id] = slot
	return slot
}

func sortedByName(t *Tree, ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(t.nodes[out[i]].Name) < strings.ToLower(t.nodes[out[j]].Name)
	})
	return out
}
