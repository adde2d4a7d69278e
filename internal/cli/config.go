package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/phanxgames/mindmap/internal/config"
	"github.com/phanxgames/mindmap/internal/ui"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or initialise the viewer configuration",
	}
	cmd.AddCommand(configShowCmd(), configInitCmd())
	return cmd
}

func configPath() string {
	if cfgPath != "" {
		return cfgPath
	}
	return config.Path()
}

func configShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prev := ui.Out
			ui.Out = cmd.OutOrStdout()
			defer func() { ui.Out = prev }()

			ui.Hint("%s", configPath())
			ui.KeyValue("window", fmt.Sprintf("%dx%d %q", cfg.Window.Width, cfg.Window.Height, cfg.Window.Title))
			ui.KeyValue("rows", strconv.FormatFloat(cfg.Layout.RowHeight, 'f', -1, 64))
			ui.KeyValue("duration", strconv.FormatFloat(cfg.Layout.Duration, 'f', -1, 64)+"s")
			ui.KeyValue("sort", strconv.FormatBool(cfg.Layout.SortChildren))
			ui.KeyValue("pan", fmt.Sprintf("%gpx/s every %dms within %gpx", cfg.Drag.PanSpeed, cfg.Drag.PanIntervalMS, cfg.Drag.PanBoundary))
			font := cfg.Icons.Font
			if font == "" {
				font = "(none)"
			}
			ui.KeyValue("icons", font)
			ui.KeyValue("watch", strconv.FormatBool(cfg.Watch.Enabled))
			ui.KeyValue("debug", strconv.FormatBool(cfg.Debug.Enabled))
			return nil
		},
	}
}

func configInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath()
			if _, err := os.Stat(path); err == nil && !force {
				ui.Warnf("%s already exists (use --force to overwrite)", path)
				return nil
			}
			if err := config.SaveFile(path, config.Default()); err != nil {
				return err
			}
			ui.Okf("wrote %s", path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}
