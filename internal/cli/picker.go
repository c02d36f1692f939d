package cli

import (
	"fmt"
	"strings"

	"jalali-picker/internal/format"
	"jalali-picker/internal/logging"
	"jalali-picker/internal/picker"
	"jalali-picker/internal/store"

	"github.com/spf13/cobra"
)

// dateFlags hold a starting selection as raw field values, the way a
// presentation layer would report them.
type dateFlags struct {
	year  string
	month string
	day   string
}

func (f *dateFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.year, "year", "", "Selected year (any digit script)")
	cmd.Flags().StringVar(&f.month, "month", "", "Selected month (name or 1..12)")
	cmd.Flags().StringVar(&f.day, "day", "", "Selected day (any digit script)")
}

// date applies year, month and day in that order, so the result is what a
// user picking top-down would end up with.
func (f dateFlags) date(ctrl *picker.Controller) (picker.Date, error) {
	var d picker.Date
	steps := []struct {
		field picker.Field
		raw   string
	}{
		{picker.FieldYear, f.year},
		{picker.FieldMonth, f.month},
		{picker.FieldDay, f.day},
	}
	for _, s := range steps {
		if strings.TrimSpace(s.raw) == "" {
			continue
		}
		next, err := ctrl.ApplyChange(d, s.field, s.raw)
		if err != nil {
			return picker.Date{}, err
		}
		d = next
	}
	return d, nil
}

type viewResult struct {
	picker.View
}

func (r viewResult) Text() string { return format.ViewText(r.View) }

type applyResult struct {
	Date  picker.Date  `json:"date"`
	View  picker.View  `json:"view"`
	Saved *store.Entry `json:"saved,omitempty"`
}

func (r applyResult) Text() string {
	s := format.ViewText(r.View)
	if r.Saved != nil {
		s = strings.TrimRight(s, "\n") + fmt.Sprintf("\nsaved: #%d", r.Saved.ID)
	}
	return s
}

func newOptionsCmd(app *App) *cobra.Command {
	var flags dateFlags

	cmd := &cobra.Command{
		Use:   "options",
		Short: "Print the choices each field offers for a selection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, ctrl, err := loadController(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			d, err := flags.date(ctrl)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, viewResult{View: ctrl.Derive(d)})
		},
	}
	flags.register(cmd)
	return cmd
}

func newApplyCmd(app *App) *cobra.Command {
	var (
		flags dateFlags
		field string
		value string
		save  bool
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply one field change to a selection and print the result",
		Long: strings.TrimSpace(`
Apply runs one change through the picker's cascade rules: clearing a field
clears the fields that depend on it, and a day that no longer fits the month
is reset to the first day. An empty --value (or the placeholder text) clears
the field.
`),
		Example: strings.TrimSpace(`
  jalalipick apply --year 1403 --month 12 --day 30 --field year --value 1402
  jalalipick apply --year 1403 --field year --value ""
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := picker.ParseField(field)
			if err != nil {
				return writeErr(cmd, err)
			}
			st, ctrl, err := loadController(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			cur, err := flags.date(ctrl)
			if err != nil {
				return writeErr(cmd, err)
			}
			next, err := ctrl.ApplyChange(cur, f, value)
			if err != nil {
				return writeErr(cmd, err)
			}
			v := ctrl.Derive(next)
			logging.Logger(cmd.Context()).Debug("applied change", "field", f.String(), "value", value, "from", cur.String(), "to", v.Date.String())

			res := applyResult{Date: v.Date, View: v}
			if save {
				e, err := st.Record(cmd.Context(), v.Date)
				if err != nil {
					return writeErr(cmd, err)
				}
				res.Saved = &e
			}
			return writeOut(cmd, app, res)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&field, "field", "", "Field to change (year|month|day)")
	cmd.Flags().StringVar(&value, "value", "", "New raw value; empty clears the field")
	cmd.Flags().BoolVar(&save, "save", false, "Record the resulting date in the selection history")
	_ = cmd.MarkFlagRequired("field")
	return cmd
}
