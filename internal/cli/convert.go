package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/mindmap/internal/ui"
	"github.com/phanxgames/mindmap/internal/xmind"
)

func convertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert other mindmap formats to YAML",
	}
	cmd.AddCommand(convertXMindCmd())
	return cmd
}

func convertXMindCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:     "xmind FILE",
		Short:   "Convert an XMind workbook",
		Example: `  mindmap convert xmind plan.xmind -o plan.yaml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sheets, err := xmind.ReadFile(args[0])
			if err != nil {
				return err
			}
			var w io.Writer = cmd.OutOrStdout()
			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			if err := xmind.Encode(w, sheets); err != nil {
				return err
			}
			if out != "" && out != "-" {
				ui.Okf("wrote %d sheet(s) to %s", len(sheets), out)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default stdout)")
	return cmd
}
