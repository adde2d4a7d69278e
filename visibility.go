package mindmap

// Collapse hides the children of id and, recursively, of every descendant.
// The children move into the hidden cache; a node without visible children
// is left untouched. Re-expanding id restores its own children only, each
// of them still collapsed.
func (t *Tree) Collapse(id string) {
	n := t.nodes[id]
	if n == nil || len(n.children) == 0 {
		return
	}
	n.hidden = n.children
	n.children = []string{}
	n.collapsed = true
	for _, c := range n.hidden {
		t.Collapse(c)
	}
}

// Expand restores the children of id from its hidden cache. Grandchildren
// keep whatever state they had.
func (t *Tree) Expand(id string) {
	n := t.nodes[id]
	if n == nil || !n.collapsed {
		return
	}
	n.children = n.hidden
	n.hidden = nil
	n.collapsed = false
}

// Toggle flips id between collapsed and expanded and returns the node.
func (t *Tree) Toggle(id string) *Node {
	n := t.nodes[id]
	if n == nil {
		return nil
	}
	if n.collapsed {
		t.Expand(id)
	} else {
		t.Collapse(id)
	}
	return n
}

// CollapseAll collapses every top-level node.
func (t *Tree) CollapseAll() {
	for _, c := range t.Document().children {
		t.Collapse(c)
	}
}

// ExpandAll expands id and every collapsed node below it.
func (t *Tree) ExpandAll(id string) {
	t.Expand(id)
	n := t.nodes[id]
	if n == nil {
		return
	}
	for _, c := range n.children {
		t.ExpandAll(c)
	}
}
