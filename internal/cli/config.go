package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"jalali-picker/internal/logging"
	"jalali-picker/internal/picker"

	"github.com/spf13/cobra"
	ptime "github.com/yaa110/go-persian-calendar"
)

// yearSpan is how many years config init offers on each side of the
// current Jalali year.
const yearSpan = 5

type configResult struct {
	Path   string        `json:"path"`
	Exists bool          `json:"exists"`
	Config picker.Config `json:"config"`
}

func (r configResult) Text() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "path: %s", r.Path)
	if !r.Exists {
		sb.WriteString(" (not written; showing defaults)")
	}
	sb.WriteByte('\n')
	order := make([]string, 0, len(r.Config.Order))
	for _, f := range r.Config.Order {
		order = append(order, f.String())
	}
	fmt.Fprintf(&sb, "order: %s\n", strings.Join(order, ","))
	fmt.Fprintf(&sb, "labels: %s / %s / %s\n", r.Config.Labels.Year, r.Config.Labels.Month, r.Config.Labels.Day)
	if r.Config.MainLabel != "" {
		fmt.Fprintf(&sb, "label: %s\n", r.Config.MainLabel)
	}
	fmt.Fprintf(&sb, "placeholder: %s\n", r.Config.Placeholder)
	if n := len(r.Config.Years); n > 0 {
		fmt.Fprintf(&sb, "years: %d..%d (%d)\n", r.Config.Years[0], r.Config.Years[n-1], n)
	}
	fmt.Fprintf(&sb, "script: %s\n", r.Config.Script)
	return sb.String()
}

// seededConfig is the default config with the year list centered on the
// current Jalali year.
func seededConfig(now time.Time) picker.Config {
	cfg := picker.DefaultConfig()
	y := ptime.New(now).Year()
	cfg.Years = picker.YearRange(y-yearSpan, y+yearSpan)
	return cfg
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the picker config",
	}
	cmd.AddCommand(newConfigShowCmd(app))
	cmd.AddCommand(newConfigInitCmd(app, time.Now))
	return cmd
}

func newConfigShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, ctrl, err := loadController(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, configResult{
				Path:   st.ConfigPath(),
				Exists: st.ConfigExists(),
				Config: ctrl.Config(),
			})
		},
	}
}

func newConfigInitCmd(app *App, now func() time.Time) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with defaults around the current year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if st.ConfigExists() && !force {
				return writeErr(cmd, errors.New("config already exists: "+st.ConfigPath()+" (use --force to overwrite)"))
			}
			cfg := seededConfig(now())
			if err := st.SaveConfig(cfg); err != nil {
				return writeErr(cmd, err)
			}
			logging.Logger(cmd.Context()).Debug("wrote config", "path", st.ConfigPath(), "years", len(cfg.Years))
			return writeOut(cmd, app, configResult{Path: st.ConfigPath(), Exists: true, Config: cfg})
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config (the old one is kept as config.json.bak)")
	return cmd
}
