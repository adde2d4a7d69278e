package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phanxgames/mindmap"
	"github.com/phanxgames/mindmap/internal/outline"
	"github.com/phanxgames/mindmap/internal/source"
)

func treeCmd() *cobra.Command {
	var (
		lf      locatorFlags
		showIDs bool
		all     bool
	)
	cmd := &cobra.Command{
		Use:   "tree [FILE]",
		Short: "Print the visible tree the viewer would open with",
		Example: `  mindmap tree notes.yaml --ids
  mindmap tree notes.yaml --root work --initial work.q3`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				lf.src = args[0]
			}
			loc, err := lf.resolve()
			if err != nil {
				return err
			}
			doc, err := source.Load(cmd.Context(), loc.Source)
			if err != nil {
				return err
			}
			opts := cfg.ViewOptions()
			opts.Logger = logger
			v, err := mindmap.NewView(doc, loc, opts)
			if err != nil {
				return err
			}
			if all {
				v.Tree().ExpandAll(v.RootID())
			}
			fmt.Fprint(cmd.OutOrStdout(), outline.Render(v.Tree(), v.RootID(), outline.Options{
				ShowIDs: showIDs,
				Icons:   mindmap.NewGlyphTable(mindmap.FontAwesomeLookup),
			}))
			return nil
		},
	}
	lf.register(cmd)
	cmd.Flags().BoolVar(&showIDs, "ids", false, "print node ids")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "expand every collapsed node")
	return cmd
}
