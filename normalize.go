package mindmap

import (
	"errors"
	"fmt"
	"strings"
)

// PrivatePrefix marks keys that are never turned into nodes.
const PrivatePrefix = "__"

// AttrsKey is the private entry carrying a node's Attrs.
const AttrsKey = "__attrs"

var ErrEmptyDocument = errors.New("mindmap: document has no nodes")

// Entry is one key/value pair of a Mapping. Value is nil for a leaf, a
// Mapping for a node with children or attributes, or a scalar.
type Entry struct {
	Key   string
	Value any
}

// Mapping is an ordered key/value structure as produced by a document
// parser. Order is significant.
type Mapping []Entry

// Get returns the value for key and whether it was present.
func (m Mapping) Get(key string) (any, bool) {
	for _, e := range m {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Normalize converts a parsed document into a Tree. Top-level entries
// become children of the document node in source order; keys starting
// with PrivatePrefix are dropped.
func Normalize(doc Mapping) (*Tree, error) {
	t := NewTree()
	t.normalize(DocumentID, doc)
	if t.Root() == nil {
		return nil, ErrEmptyDocument
	}
	return t, nil
}

func (t *Tree) normalize(parent string, m Mapping) {
	for _, e := range m {
		if strings.HasPrefix(e.Key, PrivatePrefix) {
			continue
		}
		children, _ := e.Value.(Mapping)
		attrs := parseAttrs(children)

		var id string
		if explicit := explicitID(attrs.ID); explicit != "" {
			id = t.ids.Reserve(explicit)
		} else {
			id = t.ids.Assign(e.Key)
		}
		n := t.add(parent, id, e.Key, attrs)
		t.normalize(n.ID, children)
	}
}

// explicitID makes an attribute id usable as a locator segment: segments
// are split on '.' and trimmed.
func explicitID(id string) string {
	return strings.ReplaceAll(strings.TrimSpace(id), ".", "-")
}

func parseAttrs(m Mapping) Attrs {
	raw, ok := m.Get(AttrsKey)
	if !ok {
		return Attrs{}
	}
	am, ok := raw.(Mapping)
	if !ok {
		return Attrs{}
	}
	var a Attrs
	for _, e := range am {
		v := scalarString(e.Value)
		switch e.Key {
		case "icon":
			a.Icon = v
		case "color":
			a.Color = v
		case "background":
			a.Background = v
		case "hyperlink":
			a.Hyperlink = v
		case "id":
			a.ID = v
		}
	}
	return a
}

func scalarString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprint(s)
	}
}
