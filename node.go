package mindmap

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownNode = errors.New("mindmap: unknown node")
	ErrMoveRoot    = errors.New("mindmap: cannot move the document node")
	ErrMoveCycle   = errors.New("mindmap: move would create a cycle")
	ErrSameParent  = errors.New("mindmap: node already belongs to target")
)

// Attrs is the optional decoration bag read from a node's private
// attributes entry. Colors are hex strings without a leading '#'.
type Attrs struct {
	Icon       string
	Color      string
	Background string
	Hyperlink  string
	ID         string
}

// Node is one entry of the mindmap. Structure lives on the owning Tree as
// id lists: a Node never owns another Node.
type Node struct {
	// Identity
	ID    string
	Name  string
	Attrs Attrs

	// Hierarchy (ids into the owning Tree)
	parent    string
	path      []string
	children  []string
	hidden    []string
	collapsed bool

	// Render-only, written by Renderer.
	pos     Vec2
	prevPos Vec2
}

// Path returns the ancestor ids plus this node's id, starting below the
// document node. The returned slice is a copy.
func (n *Node) Path() []string {
	out := make([]string, len(n.path))
	copy(out, n.path)
	return out
}

// ParentID returns the id of the parent node. The document node returns "".
func (n *Node) ParentID() string {
	return n.parent
}

// ScreenPosition returns the position computed by the latest render cycle.
func (n *Node) ScreenPosition() Vec2 {
	return n.pos
}

// PreviousScreenPosition returns the position the node was last placed at,
// used as the anchor for entering and exiting nodes.
func (n *Node) PreviousScreenPosition() Vec2 {
	return n.prevPos
}

// DocumentID is the id of the virtual node holding the document's top-level
// entries. It has no parent and an empty path.
const DocumentID = ""

// Tree is an arena of nodes keyed by id. Parent links are plain id lookups;
// child ownership is the ordered id list on each node.
type Tree struct {
	nodes map[string]*Node
	ids   *IDRegistry
}

// NewTree creates a tree holding only the document node.
func NewTree() *Tree {
	ids := NewIDRegistry()
	ids.Reserve(DocumentID)
	t := &Tree{nodes: make(map[string]*Node), ids: ids}
	t.nodes[DocumentID] = &Node{ID: DocumentID, path: []string{}}
	return t
}

// Document returns the virtual document node.
func (t *Tree) Document() *Node {
	return t.nodes[DocumentID]
}

// Root returns the first top-level node, or nil for an empty tree.
func (t *Tree) Root() *Node {
	doc := t.Document()
	if len(doc.children) == 0 {
		return nil
	}
	return t.nodes[doc.children[0]]
}

// Node returns the node with the given id, or nil.
func (t *Tree) Node(id string) *Node {
	return t.nodes[id]
}

// Len returns the number of real nodes (the document node is not counted).
func (t *Tree) Len() int {
	return len(t.nodes) - 1
}

// Parent returns the parent of id, or nil for the document node or an
// unknown id.
func (t *Tree) Parent(id string) *Node {
	n := t.nodes[id]
	if n == nil || id == DocumentID {
		return nil
	}
	return t.nodes[n.parent]
}

// Children returns the visible children of id in order.
func (t *Tree) Children(id string) []*Node {
	n := t.nodes[id]
	if n == nil {
		return nil
	}
	return t.resolve(n.children)
}

// HiddenChildren returns the cached children of a collapsed node.
func (t *Tree) HiddenChildren(id string) []*Node {
	n := t.nodes[id]
	if n == nil {
		return nil
	}
	return t.resolve(n.hidden)
}

// HasChildren reports whether id has children, visible or hidden.
func (t *Tree) HasChildren(id string) bool {
	n := t.nodes[id]
	return n != nil && (len(n.children) > 0 || len(n.hidden) > 0)
}

// IsCollapsed reports whether id holds a hidden children cache.
func (t *Tree) IsCollapsed(id string) bool {
	n := t.nodes[id]
	return n != nil && n.collapsed
}

func (t *Tree) resolve(ids []string) []*Node {
	out := make([]*Node, len(ids))
	for i, id := range ids {
		out[i] = t.nodes[id]
	}
	return out
}

// Depth returns the number of edges between the document node and id.
func (t *Tree) Depth(id string) int {
	n := t.nodes[id]
	if n == nil {
		return -1
	}
	return len(n.path)
}

// IsAncestor reports whether candidate is id itself or one of its ancestors.
func (t *Tree) IsAncestor(candidate, id string) bool {
	for p := t.nodes[id]; p != nil; p = t.Parent(p.ID) {
		if p.ID == candidate {
			return true
		}
	}
	return false
}

// Walk visits every node below from, depth-first in child order, including
// nodes cached inside collapsed subtrees. Returning false skips the subtree.
func (t *Tree) Walk(from string, fn func(n *Node, depth int) bool) {
	t.walk(from, 0, true, fn)
}

// WalkVisible is Walk restricted to visible children.
func (t *Tree) WalkVisible(from string, fn func(n *Node, depth int) bool) {
	t.walk(from, 0, false, fn)
}

func (t *Tree) walk(id string, depth int, hidden bool, fn func(*Node, int) bool) {
	n := t.nodes[id]
	if n == nil || !fn(n, depth) {
		return
	}
	for _, c := range n.children {
		t.walk(c, depth+1, hidden, fn)
	}
	if hidden {
		for _, c := range n.hidden {
			t.walk(c, depth+1, hidden, fn)
		}
	}
}

// add creates a node under parent and registers it in the arena.
func (t *Tree) add(parent string, id, name string, attrs Attrs) *Node {
	p := t.nodes[parent]
	n := &Node{
		ID:     id,
		Name:   name,
		Attrs:  attrs,
		parent: parent,
		path:   append(append(make([]string, 0, len(p.path)+1), p.path...), id),
	}
	t.nodes[id] = n
	if p.collapsed {
		p.hidden = append(p.hidden, id)
	} else {
		p.children = append(p.children, id)
	}
	return n
}

// Move detaches id from its parent and appends it to newParent's children.
// A collapsed target is expanded first so the move is visible. Paths of the
// whole moved subtree are recomputed; ids never change.
func (t *Tree) Move(id, newParent string) error {
	n := t.nodes[id]
	target := t.nodes[newParent]
	if n == nil {
		return fmt.Errorf("move %q: %w", id, ErrUnknownNode)
	}
	if target == nil {
		return fmt.Errorf("move %q to %q: %w", id, newParent, ErrUnknownNode)
	}
	if id == DocumentID {
		return ErrMoveRoot
	}
	if n.parent == newParent {
		return fmt.Errorf("move %q to %q: %w", id, newParent, ErrSameParent)
	}
	if t.IsAncestor(id, newParent) {
		return fmt.Errorf("move %q to %q: %w", id, newParent, ErrMoveCycle)
	}

	old := t.nodes[n.parent]
	old.children = removeID(old.children, id)
	old.hidden = removeID(old.hidden, id)
	if old.collapsed && len(old.hidden) == 0 {
		old.hidden = nil
		old.collapsed = false
	}

	if target.collapsed {
		t.Expand(newParent)
	}
	target.children = append(target.children, id)
	n.parent = newParent
	t.rebuildPaths(id)
	return nil
}

// rebuildPaths recomputes path = parent.path + [id] for id and its subtree.
func (t *Tree) rebuildPaths(id string) {
	n := t.nodes[id]
	p := t.nodes[n.parent]
	n.path = append(append(make([]string, 0, len(p.path)+1), p.path...), id)
	for _, c := range n.children {
		t.rebuildPaths(c)
	}
	for _, c := range n.hidden {
		t.rebuildPaths(c)
	}
}

// removeID removes id from ids, keeping order. Uses copy+clear so the
// backing array does not retain the id.
func removeID(ids []string, id string) []string {
	for i, c := range ids {
		if c == id {
			copy(ids[i:], ids[i+1:])
			ids[len(ids)-1] = ""
			return ids[:len(ids)-1]
		}
	}
	return ids
}
