// Package cli implements the mindmap command line.
package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/mindmap"
	"github.com/phanxgames/mindmap/internal/config"
	"github.com/phanxgames/mindmap/internal/ui"
)

var version = "0.3.0"

var (
	cfgPath string
	verbose bool

	cfg    *config.Config
	logger *slog.Logger
)

// locatorFlags are shared by the commands that open a document.
type locatorFlags struct {
	locator string
	src     string
	root    string
	initial string
}

func (f *locatorFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.locator, "locator", "", `query string such as "?src_data=map.yaml&root=a.b"`)
	cmd.Flags().StringVarP(&f.src, "src", "s", "", "document path or URL (default "+mindmap.DefaultSource+")")
	cmd.Flags().StringVarP(&f.root, "root", "r", "", "dot-joined path of the node to render as root")
	cmd.Flags().StringVarP(&f.initial, "initial", "i", "", "dot-joined path to expand; its off-path siblings start collapsed")
}

// resolve merges the locator query with the individual flags, which win.
func (f *locatorFlags) resolve() (mindmap.Locator, error) {
	loc, err := mindmap.ParseLocator(f.locator)
	if err != nil {
		return loc, err
	}
	if f.src != "" {
		loc.Source = f.src
	}
	if f.root != "" {
		loc.Root = f.root
	}
	if f.initial != "" {
		loc.Initial = f.initial
	}
	return loc, nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "mindmap",
		Short: "Interactive collapsible trees from YAML",
		Long: ui.Brand.Sprint("mindmap") + " views a YAML document as an interactive tree\n" +
			ui.Subtle.Sprint("Click to expand and collapse, drag to reparent, share a view with a locator"),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfgPath != "" {
				cfg, err = config.LoadFile(cfgPath)
				if os.IsNotExist(err) {
					err = nil
				}
			} else {
				cfg, err = config.Load()
			}
			if err != nil {
				return err
			}
			logger = newLogger(cmd.ErrOrStderr(), verbose || cfg.Debug.Enabled)
			return nil
		},
	}
	root.SetVersionTemplate("mindmap {{ .Version }}\n")
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default "+config.Path()+")")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output")

	root.AddCommand(
		viewCmd(),
		treeCmd(),
		locateCmd(),
		convertCmd(),
		configCmd(),
	)
	return root
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Execute runs the command line.
func Execute() error {
	if err := newRootCmd().Execute(); err != nil {
		ui.Errorf("%v", err)
		return err
	}
	return nil
}

// run executes the command line with args and output captured, for tests.
func run(args []string, stdout, stderr io.Writer) error {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.Execute()
}

