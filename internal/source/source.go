// Package source loads mindmap documents from YAML files and URLs.
package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/phanxgames/mindmap"
)

// ErrMalformedDocument is returned for input that is not a YAML mapping of
// labels. Nothing can be rendered from such a document.
var ErrMalformedDocument = errors.New("malformed document")

// maxDocumentSize bounds documents fetched over HTTP.
const maxDocumentSize = 16 << 20

// DefaultTimeout applies to HTTP fetches when the context has no deadline.
const DefaultTimeout = 15 * time.Second

// Decode parses a YAML document into an ordered mapping. Mapping order is
// the order of the source text.
func Decode(data []byte) (mindmap.Mapping, error) {
	var doc yaml.Node
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input", ErrMalformedDocument)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, fmt.Errorf("%w: empty document", ErrMalformedDocument)
		}
		root = root.Content[0]
	}
	root = resolveAlias(root)
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: top level must be a mapping", ErrMalformedDocument, root.Line)
	}
	return mapping(root)
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

// mapping converts a mapping node. Values are nil (leaf), a Mapping, or a
// scalar string.
func mapping(n *yaml.Node) (mindmap.Mapping, error) {
	m := make(mindmap.Mapping, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k := resolveAlias(n.Content[i])
		if k.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: line %d: keys must be scalars", ErrMalformedDocument, k.Line)
		}
		v, err := value(n.Content[i+1])
		if err != nil {
			return nil, err
		}
		m = append(m, mindmap.Entry{Key: k.Value, Value: v})
	}
	return m, nil
}

func value(n *yaml.Node) (any, error) {
	n = resolveAlias(n)
	switch n.Kind {
	case yaml.MappingNode:
		return mapping(n)
	case yaml.SequenceNode:
		return sequence(n)
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil, nil
		}
		return n.Value, nil
	}
	return nil, fmt.Errorf("%w: line %d: unsupported node", ErrMalformedDocument, n.Line)
}

// sequence turns a list into children: scalars become leaves and mappings
// contribute their entries.
func sequence(n *yaml.Node) (mindmap.Mapping, error) {
	var m mindmap.Mapping
	for _, c := range n.Content {
		c = resolveAlias(c)
		switch c.Kind {
		case yaml.ScalarNode:
			if c.Tag == "!!null" {
				continue
			}
			m = append(m, mindmap.Entry{Key: c.Value})
		case yaml.MappingNode:
			sub, err := mapping(c)
			if err != nil {
				return nil, err
			}
			m = append(m, sub...)
		default:
			return nil, fmt.Errorf("%w: line %d: nested lists are not supported", ErrMalformedDocument, c.Line)
		}
	}
	return m, nil
}

// IsURL reports whether loc names an http or https resource.
func IsURL(loc string) bool {
	return strings.HasPrefix(loc, "http://") || strings.HasPrefix(loc, "https://")
}

// Load reads and decodes the document at loc, a file path or an http(s)
// URL.
func Load(ctx context.Context, loc string) (mindmap.Mapping, error) {
	var data []byte
	var err error
	if IsURL(loc) {
		data, err = Fetch(ctx, http.DefaultClient, loc)
	} else {
		data, err = os.ReadFile(loc)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", loc, err)
	}
	doc, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", loc, err)
	}
	return doc, nil
}

// Fetch downloads url with client.
func Fetch(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultTimeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: %s", url, resp.Status)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
}
