package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/phanxgames/mindmap"
	"github.com/phanxgames/mindmap/internal/source"
	"github.com/phanxgames/mindmap/internal/ui"
)

func viewCmd() *cobra.Command {
	var (
		lf         locatorFlags
		scriptPath string
		shotDir    string
		watch      bool
		noLinks    bool
	)
	cmd := &cobra.Command{
		Use:   "view [FILE]",
		Short: "Open a document in the interactive viewer",
		Example: `  mindmap view notes.yaml
  mindmap view --locator "?src_data=https://example.com/map.yaml&root=projects"
  mindmap view notes.yaml --watch --initial work.q3`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				lf.src = args[0]
			}
			loc, err := lf.resolve()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			doc, err := source.Load(ctx, loc.Source)
			if err != nil {
				return err
			}

			opts := cfg.ViewOptions()
			opts.Logger = logger
			opts.OnCopyLocator = func(l mindmap.Locator) error {
				if err := clipboard.WriteAll(l.Encode()); err != nil {
					return err
				}
				ui.Okf("copied %s", l.Encode())
				return nil
			}
			if !noLinks {
				opts.OpenURL = browser.OpenURL
			}

			v, err := mindmap.NewView(doc, loc, opts)
			if err != nil {
				return err
			}
			if shotDir != "" {
				v.ScreenshotDir = shotDir
			}

			if scriptPath != "" {
				data, err := os.ReadFile(scriptPath)
				if err != nil {
					return err
				}
				runner, err := mindmap.LoadScript(data)
				if err != nil {
					return err
				}
				v.SetScript(runner)
			}

			var updates <-chan source.Update
			if watch || cfg.Watch.Enabled {
				if source.IsURL(loc.Source) {
					ui.Warnf("--watch ignored for remote document %s", loc.Source)
				} else if updates, err = source.Watch(ctx, loc.Source, logger); err != nil {
					return err
				}
			}

			var iconFont []byte
			if cfg.Icons.Font != "" {
				if iconFont, err = os.ReadFile(cfg.Icons.Font); err != nil {
					return fmt.Errorf("icon font: %w", err)
				}
			}

			return mindmap.Run(v, mindmap.RunConfig{
				Title:     cfg.Window.Title,
				Width:     cfg.Window.Width,
				Height:    cfg.Window.Height,
				ShowFPS:   cfg.Window.ShowFPS,
				IconFont:  iconFont,
				LabelSize: cfg.Layout.LabelSize,
				OnFrame: func(v *mindmap.View) error {
					return drainUpdates(v, updates)
				},
			})
		},
	}
	lf.register(cmd)
	cmd.Flags().StringVar(&scriptPath, "script", "", "JSON script of input steps to replay")
	cmd.Flags().StringVar(&shotDir, "screenshots", "", "directory for script screenshots")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload the document when the file changes")
	cmd.Flags().BoolVar(&noLinks, "no-links", false, "toggle hyperlink nodes instead of opening them")
	return cmd
}

// drainUpdates applies pending watch results without blocking. A reload
// that fails keeps the current tree.
func drainUpdates(v *mindmap.View, updates <-chan source.Update) error {
	for {
		select {
		case u, ok := <-updates:
			if !ok {
				return nil
			}
			if u.Err != nil {
				logger.Warn("reload failed", "err", u.Err)
				continue
			}
			if err := v.Reload(u.Doc); err != nil {
				if errors.Is(err, mindmap.ErrEmptyDocument) {
					logger.Warn("reload produced an empty tree", "src", v.Locator().Source)
					continue
				}
				return err
			}
			logger.Info("reloaded", "src", v.Locator().Source, "nodes", v.Tree().Len())
		default:
			return nil
		}
	}
}
