// Package outline renders the visible part of a mindmap tree as styled
// terminal text.
package outline

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/phanxgames/mindmap"
)

var (
	Muted = lipgloss.Color("#6B7280")
	Link  = lipgloss.Color("#2563EB")

	Root      = lipgloss.NewStyle().Bold(true)
	Label     = lipgloss.NewStyle()
	Hyperlink = lipgloss.NewStyle().Foreground(Link).Underline(true)
	ID        = lipgloss.NewStyle().Foreground(Muted).Italic(true)
	Branch    = lipgloss.NewStyle().Foreground(Muted)

	Expanded  = "▼ "
	Collapsed = "▶ "
	Leaf      = "• "
)

// Options controls what Render prints.
type Options struct {
	// ShowIDs appends each node's id.
	ShowIDs bool
	// Icons resolves icon names; nil omits icons.
	Icons mindmap.IconResolver
}

// Render draws the visible subtree below root, one node per line, with
// tree guides. Node colors from attributes are applied to labels.
func Render(t *mindmap.Tree, root string, opts Options) string {
	n := t.Node(root)
	if n == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(line(t, n, opts, true))
	b.WriteByte('\n')
	children := t.Children(root)
	for i, c := range children {
		render(&b, t, c, "", i == len(children)-1, opts)
	}
	return b.String()
}

func render(b *strings.Builder, t *mindmap.Tree, n *mindmap.Node, prefix string, last bool, opts Options) {
	guide, next := "├── ", "│   "
	if last {
		guide, next = "└── ", "    "
	}
	b.WriteString(Branch.Render(prefix + guide))
	b.WriteString(line(t, n, opts, false))
	b.WriteByte('\n')
	children := t.Children(n.ID)
	for i, c := range children {
		render(b, t, c, prefix+next, i == len(children)-1, opts)
	}
}

func line(t *mindmap.Tree, n *mindmap.Node, opts Options, isRoot bool) string {
	marker := Leaf
	switch {
	case t.IsCollapsed(n.ID):
		marker = Collapsed
	case t.HasChildren(n.ID):
		marker = Expanded
	}

	label := n.Name
	if n.Attrs.Icon != "" && opts.Icons != nil {
		label = opts.Icons.Glyph(n.Attrs.Icon) + " " + label
	}

	style := Label
	switch {
	case isRoot:
		style = Root
	case n.Attrs.Hyperlink != "":
		style = Hyperlink
	}
	if c := n.Attrs.Color; c != "" {
		style = style.Foreground(lipgloss.Color("#" + strings.TrimPrefix(c, "#")))
	}
	if bg := n.Attrs.Background; bg != "" {
		style = style.Background(lipgloss.Color("#" + strings.TrimPrefix(bg, "#")))
	}

	s := Branch.Render(marker) + style.Render(label)
	if opts.ShowIDs {
		s += " " + ID.Render("("+n.ID+")")
	}
	return s
}
