package mindmap

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var ErrLocatorMiss = errors.New("mindmap: locator does not match")

// LocatorMissError reports the first path segment that had no matching
// child.
type LocatorMissError struct {
	Path    string   // the full locator path
	Segment string   // the segment that failed
	At      []string // the path of the last node that did match
}

func (e *LocatorMissError) Error() string {
	at := JoinPath(e.At)
	if at == "" {
		at = "<document>"
	}
	return fmt.Sprintf("mindmap: locator %q: no child %q under %s", e.Path, e.Segment, at)
}

func (e *LocatorMissError) Unwrap() error { return ErrLocatorMiss }

// childByID returns the child of n whose id is id, visible or hidden.
func (t *Tree) childByID(n *Node, id string) *Node {
	for _, ids := range [2][]string{n.children, n.hidden} {
		for _, c := range ids {
			if c == id {
				return t.nodes[c]
			}
		}
	}
	return nil
}

// MatchRoot walks path from the document node, one child per segment, and
// returns the node reached. On a miss it returns a *LocatorMissError; the
// tree is never modified. A blank path returns t.Root().
func MatchRoot(t *Tree, path string) (*Node, error) {
	segments := SplitPath(path)
	if len(segments) == 0 {
		return t.Root(), nil
	}
	cur := t.Document()
	for _, seg := range segments {
		next := t.childByID(cur, strings.TrimSpace(seg))
		if next == nil {
			return nil, &LocatorMissError{Path: path, Segment: seg, At: cur.Path()}
		}
		cur = next
	}
	return cur, nil
}

// ResolveInitialFocus walks path like MatchRoot and collapses every sibling
// that is not on the path at each level whose segment matched. It returns
// the node the path ends at. When a segment misses, the level it names is
// left alone, collapsing already done at earlier levels stays done, and the
// tree's root is returned with a *LocatorMissError.
func ResolveInitialFocus(t *Tree, path string) (*Node, error) {
	segments := SplitPath(path)
	if len(segments) == 0 {
		return t.Root(), nil
	}
	cur := t.Document()
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if !slices.Contains(cur.children, seg) {
			return t.Root(), &LocatorMissError{Path: path, Segment: seg, At: cur.Path()}
		}
		for _, c := range cur.children {
			if c != seg {
				t.Collapse(c)
			}
		}
		cur = t.nodes[seg]
	}
	return cur, nil
}

// pathWithin reports whether the locator path runs through or below the
// node at prefix.
func pathWithin(path string, prefix []string) bool {
	segments := SplitPath(path)
	if len(segments) < len(prefix) {
		return false
	}
	for i, id := range prefix {
		if strings.TrimSpace(segments[i]) != id {
			return false
		}
	}
	return true
}

// Crumb is one step of the breadcrumb trail to a node.
type Crumb struct {
	Label   string
	ID      string
	Locator Locator
}

// Breadcrumbs returns one crumb per path segment of id. Each crumb's
// locator focuses the path prefix ending at that segment, based on base.
func Breadcrumbs(t *Tree, id string, base Locator) []Crumb {
	n := t.Node(id)
	if n == nil {
		return nil
	}
	crumbs := make([]Crumb, 0, len(n.path))
	for i, seg := range n.path {
		label := seg
		if sn := t.Node(seg); sn != nil {
			label = sn.Name
		}
		crumbs = append(crumbs, Crumb{
			Label:   label,
			ID:      seg,
			Locator: base.WithRoot(n.path[:i+1]),
		})
	}
	return crumbs
}
