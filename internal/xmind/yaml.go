package xmind

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/phanxgames/mindmap"
)

// Document builds the YAML node tree for sheets: one top-level entry per
// sheet root.
func Document(sheets []*Topic) *yaml.Node {
	return &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{topicsNode(sheets)}}
}

// Encode writes sheets as a mindmap YAML document.
func Encode(w io.Writer, sheets []*Topic) error {
	if _, err := io.WriteString(w, "---\n"); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Document(sheets)); err != nil {
		return fmt.Errorf("xmind: encode: %w", err)
	}
	return enc.Close()
}

// topicsNode returns the mapping for a list of sibling topics, or a null
// node when there are none. Repeated titles get a numeric suffix since
// mapping keys must be unique.
func topicsNode(topics []*Topic) *yaml.Node {
	if len(topics) == 0 {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null"}
	}
	m := &yaml.Node{Kind: yaml.MappingNode}
	seen := make(map[string]int, len(topics))
	for _, t := range topics {
		title := t.Title
		if title == "" {
			title = untitled
		}
		title = strings.ReplaceAll(title, "\n", " ")
		seen[title]++
		if n := seen[title]; n > 1 {
			title = fmt.Sprintf("%s (%d)", title, n)
		}
		key := &yaml.Node{Kind: yaml.ScalarNode, Value: title}
		m.Content = append(m.Content, key, topicNode(t))
	}
	return m
}

func topicNode(t *Topic) *yaml.Node {
	if t.Href == "" {
		return topicsNode(t.Children)
	}
	attrs := &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{
		{Kind: yaml.ScalarNode, Value: "hyperlink"},
		{Kind: yaml.ScalarNode, Value: t.Href},
	}}
	n := &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{
		{Kind: yaml.ScalarNode, Value: mindmap.AttrsKey},
		attrs,
	}}
	if kids := topicsNode(t.Children); kids.Kind == yaml.MappingNode {
		n.Content = append(n.Content, kids.Content...)
	}
	return n
}
