package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"jalali-picker/internal/format"
	"jalali-picker/internal/logging"
	"jalali-picker/internal/picker"
	"jalali-picker/internal/store"
	"jalali-picker/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	ConfigDir  string
	Format     string
	PrettyJSON bool
	LogLevel   string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:           "jalalipick",
		Short:         "Persian (Jalali) date picker: TUI + scriptable CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Pick a date interactively
  jalalipick

  # Calendar queries
  jalalipick leap 1403
  jalalipick days esfand 1403

  # Drive the picker from scripts
  jalalipick options --year ۱۴۰۳ --month اسفند
  jalalipick apply --year 1403 --month 12 --day 30 --field year --value 1402
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, app)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if !format.ValidFormat(app.Format) {
			return writeErr(cmd, fmt.Errorf("unknown format: %s (expected json|edn|text)", app.Format))
		}
		level, err := logging.ParseLevel(app.LogLevel)
		if err != nil {
			return writeErr(cmd, err)
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		ctx = logging.Context(ctx, logging.New(cmd.ErrOrStderr(), level))
		cmd.SetContext(logging.With(ctx, "cmd", cmd.CommandPath()))
		return nil
	}

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return writeErr(cmd, err)
	})

	cmd.PersistentFlags().StringVar(&app.ConfigDir, "config-dir", envOr("JALALIPICK_CONFIG_DIR", ""), "Directory holding config.json and the selection history (default ~/.jalalipick)")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("JALALIPICK_FORMAT", "json"), "Output format (json|edn|text)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON and EDN output")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", envOr("JALALIPICK_LOG_LEVEL", "warn"), "Log level on stderr (debug|info|warn|error)")

	cmd.AddCommand(newLeapCmd(app))
	cmd.AddCommand(newDaysCmd(app))
	cmd.AddCommand(newOptionsCmd(app))
	cmd.AddCommand(newApplyCmd(app))
	cmd.AddCommand(newHistoryCmd(app))
	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func runTUI(cmd *cobra.Command, app *App) error {
	st, ctrl, err := loadController(app)
	if err != nil {
		return writeErr(cmd, err)
	}
	ctx := cmd.Context()
	initial, _, err := st.Last(ctx)
	if err != nil {
		// A broken history file should not keep the picker from starting.
		logging.Logger(ctx).Warn("read last selection", "err", err)
		initial = picker.Date{}
	}
	if _, err := tui.Run(ctx, ctrl, tui.Options{Store: &st, Initial: initial}); err != nil {
		return writeErr(cmd, err)
	}
	return nil
}

func openStore(app *App) (store.Store, error) {
	return store.Open(app.ConfigDir)
}

// loadController opens the store and builds a controller from its config.
func loadController(app *App) (store.Store, *picker.Controller, error) {
	st, err := openStore(app)
	if err != nil {
		return store.Store{}, nil, err
	}
	cfg, err := st.LoadConfig()
	if err != nil {
		return st, nil, err
	}
	ctrl, err := picker.New(cfg)
	if err != nil {
		return st, nil, err
	}
	return st, ctrl, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return reportedError{err: err}
}
