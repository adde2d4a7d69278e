package mindmap

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultSource is the document location used when a locator names none.
const DefaultSource = "data.yaml"

// Locator is the shareable state of a view: which document to load, which
// node renders as root, and which subtree starts expanded.
type Locator struct {
	Source  string // src_data
	Root    string // root, dot-joined ids
	Initial string // initial, dot-joined ids
}

// ParseLocator reads a query string such as "?src_data=x.yaml&root=a.b".
// The leading '?' is optional.
func ParseLocator(query string) (Locator, error) {
	values, err := url.ParseQuery(strings.TrimPrefix(query, "?"))
	if err != nil {
		return Locator{}, fmt.Errorf("parse locator: %w", err)
	}
	loc := Locator{
		Source:  strings.TrimSpace(values.Get("src_data")),
		Root:    strings.TrimSpace(values.Get("root")),
		Initial: strings.TrimSpace(values.Get("initial")),
	}
	if loc.Source == "" {
		loc.Source = DefaultSource
	}
	return loc, nil
}

// Encode returns the locator as a query string with a leading '?'. Empty
// fields are omitted.
func (l Locator) Encode() string {
	values := url.Values{}
	if l.Source != "" && l.Source != DefaultSource {
		values.Set("src_data", l.Source)
	}
	if l.Root != "" {
		values.Set("root", l.Root)
	}
	if l.Initial != "" {
		values.Set("initial", l.Initial)
	}
	if len(values) == 0 {
		return "?"
	}
	return "?" + values.Encode()
}

// WithRoot returns a copy of l focused on path, with the initial focus
// cleared.
func (l Locator) WithRoot(path []string) Locator {
	l.Root = JoinPath(path)
	l.Initial = ""
	return l
}

// SplitPath splits a dot-joined locator path into ids. Blank input yields
// no segments.
func SplitPath(path string) []string {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}

// JoinPath joins ids into a locator path.
func JoinPath(ids []string) string {
	return strings.Join(ids, ".")
}
