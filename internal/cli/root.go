// Package cli wires the cobra command tree for dpane.
package cli

import (
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/kk-code-lab/dpane/internal/app"
	"github.com/kk-code-lab/dpane/internal/config"
	"github.com/kk-code-lab/dpane/internal/logging"
	"github.com/kk-code-lab/dpane/internal/ui/render"
)

var (
	flagConfig  string
	flagVerbose bool
)

// NewRootCmd builds the command tree. The bare command starts the
// interactive browser.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dpane [left-dir] [right-dir]",
		Short: "Dual-pane terminal file browser",
		Long: `dpane is a dual-pane terminal file browser with navigation history,
recursive search, and side-by-side file comparison.`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runBrowser,
	}

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default ~/.config/dpane/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newDiffCmd())

	return rootCmd
}

// Execute runs the root command and returns its error for main to report.
func Execute() error {
	return NewRootCmd().Execute()
}

func runBrowser(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		cfg.LeftPath = args[0]
	}
	if len(args) > 1 {
		cfg.RightPath = args[1]
	}

	log, closeLog, err := logging.NewFile(cfg.LogFile, flagVerbose)
	if err != nil {
		return err
	}
	defer closeLog()

	a, err := app.New(cfg, log)
	if err != nil {
		return err
	}

	session, err := app.NewSession(cfg, a, func(screen tcell.Screen) app.Renderer {
		return render.NewRenderer(screen, cfg.Theme)
	}, log)
	if err != nil {
		return err
	}
	return session.Run()
}
