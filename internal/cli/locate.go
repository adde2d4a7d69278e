package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phanxgames/mindmap"
	"github.com/phanxgames/mindmap/internal/source"
)

func locateCmd() *cobra.Command {
	var (
		src           string
		root, initial bool
	)
	cmd := &cobra.Command{
		Use:   "locate LABEL...",
		Short: "Print the id path of a node named by its labels",
		Long: `Locate walks the document from the top level, matching one label per
level, and prints the dot-joined ids used by --root and --initial.
Labels match case-insensitively.`,
		Example: `  mindmap locate --src notes.yaml Work "Q3 Plans"
  mindmap locate --src notes.yaml --root Work`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := source.Load(cmd.Context(), src)
			if err != nil {
				return err
			}
			t, err := mindmap.Normalize(doc)
			if err != nil {
				return err
			}
			n, err := findByLabels(t, args)
			if err != nil {
				return err
			}
			path := mindmap.JoinPath(n.Path())
			switch {
			case root:
				fmt.Fprintln(cmd.OutOrStdout(), mindmap.Locator{Source: src, Root: path}.Encode())
			case initial:
				fmt.Fprintln(cmd.OutOrStdout(), mindmap.Locator{Source: src, Initial: path}.Encode())
			default:
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&src, "src", "s", mindmap.DefaultSource, "document path or URL")
	cmd.Flags().BoolVar(&root, "root", false, "print as a root locator")
	cmd.Flags().BoolVar(&initial, "initial", false, "print as an initial locator")
	cmd.MarkFlagsMutuallyExclusive("root", "initial")
	return cmd
}

// findByLabels descends from the document node, taking the first child at
// each level whose label matches.
func findByLabels(t *mindmap.Tree, labels []string) (*mindmap.Node, error) {
	cur := t.Document()
	for i, label := range labels {
		var next *mindmap.Node
		for _, c := range children(t, cur.ID) {
			if strings.EqualFold(c.Name, label) {
				next = c
				break
			}
		}
		if next == nil {
			return nil, fmt.Errorf("no node %q under %q", label, strings.Join(labels[:i], " > "))
		}
		cur = next
	}
	return cur, nil
}

func children(t *mindmap.Tree, id string) []*mindmap.Node {
	if t.IsCollapsed(id) {
		return t.HiddenChildren(id)
	}
	return t.Children(id)
}
