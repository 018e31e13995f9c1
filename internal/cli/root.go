package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"asciitree-cli/internal/config"
	"asciitree-cli/internal/debug"
	"asciitree-cli/internal/format"
	"asciitree-cli/internal/model"
	"asciitree-cli/internal/session"
	"asciitree-cli/internal/tui"
)

type App struct {
	ConfigPath string

	v        *viper.Viper
	cfg      config.Config
	log      *logrus.Logger
	closeLog func() error
}

func NewRootCmd() *cobra.Command {
	app := &App{v: config.New()}

	cmd := &cobra.Command{
		Use:          "asciitree",
		Short:        "Build, edit and convert ASCII directory trees",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive editor
  asciitree

  # Start with a demo tree
  asciitree --sample

  # Turn a pasted tree into JSON nodes and back
  pbpaste | asciitree parse - > tree.json
  asciitree render tree.json
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(app)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		flags := cmd.Root().PersistentFlags()
		for key, name := range map[string]string{
			"format":        "format",
			"pretty":        "pretty",
			"debug":         "debug",
			"debug_log":     "debug-log",
			"history_limit": "history-limit",
		} {
			if err := app.v.BindPFlag(key, flags.Lookup(name)); err != nil {
				return err
			}
		}
		if f := cmd.Root().Flags().Lookup("sample"); f != nil {
			if err := app.v.BindPFlag("tui.sample", f); err != nil {
				return err
			}
		}
		if f := cmd.Root().Flags().Lookup("glyphs"); f != nil {
			if err := app.v.BindPFlag("tui.glyphs", f); err != nil {
				return err
			}
		}

		cfg, err := config.Load(app.v, app.ConfigPath)
		if err != nil {
			return writeErr(cmd, err)
		}
		app.cfg = cfg

		// The TUI owns the terminal; its logs only go to a file.
		quiet := cmd == cmd.Root()
		log, closeFn, err := debug.New(debug.Options{Enabled: cfg.Debug, Path: cfg.DebugLog, Quiet: quiet})
		if err != nil {
			return writeErr(cmd, fmt.Errorf("open debug log: %w", err))
		}
		if !quiet && cfg.DebugLog == "" {
			log.SetOutput(cmd.ErrOrStderr())
		}
		app.log = log
		app.closeLog = closeFn
		app.log.WithFields(logrus.Fields{"cmd": cmd.CommandPath(), "format": cfg.Format}).Debug("start")
		return nil
	}

	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if app.closeLog != nil {
			return app.closeLog()
		}
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", envOr("ASCIITREE_CONFIG", ""), "Config file (default: ~/.config/asciitree/config.yaml)")
	cmd.PersistentFlags().String("format", "text", "Output format (text|json|edn|yaml)")
	cmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentFlags().String("debug-log", "", "Write debug logs to this file")
	cmd.PersistentFlags().Int("history-limit", 0, "Maximum undo steps kept (0 = unlimited)")

	cmd.Flags().Bool("sample", false, "Start the editor with a demo tree")
	cmd.Flags().String("glyphs", "unicode", "Glyph set for editor markers (unicode|ascii)")

	cmd.AddCommand(newRenderCmd(app))
	cmd.AddCommand(newParseCmd(app))
	cmd.AddCommand(newFmtCmd(app))
	cmd.AddCommand(newSampleCmd(app))
	cmd.AddCommand(newCheckCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func runTUI(app *App) error {
	opts := []session.Option{
		session.WithHistoryLimit(app.cfg.HistoryLimit),
		session.WithLogger(app.log),
	}
	if app.cfg.TUI.Sample {
		opts = append(opts, session.WithSample())
	}
	return tui.Run(session.New(opts...), tui.Options{
		Glyphs: app.cfg.TUI.Glyphs,
		Logger: app.log,
	})
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

// structuredFormat maps the text default to JSON for commands whose output
// is a node collection.
func structuredFormat(app *App) string {
	if app.cfg.Format == "" || app.cfg.Format == "text" {
		return "json"
	}
	return app.cfg.Format
}

func writeNodes(cmd *cobra.Command, app *App, nodes []model.Node, f string) error {
	return format.Write(cmd.OutOrStdout(), nodes, f, app.cfg.Pretty)
}

func writeText(cmd *cobra.Command, s string) error {
	_, err := io.WriteString(cmd.OutOrStdout(), s)
	return err
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
