package cli

import (
	"fmt"

	"jalali-picker/internal/calendar"
	"jalali-picker/internal/logging"
	"jalali-picker/internal/numeral"

	"github.com/spf13/cobra"
)

type leapResult struct {
	Year int  `json:"year"`
	Leap bool `json:"leap"`
	Days int  `json:"days"`
}

func (r leapResult) Text() string {
	kind := "common"
	if r.Leap {
		kind = "leap"
	}
	return fmt.Sprintf("%d: %s year (%d days)", r.Year, kind, r.Days)
}

type daysResult struct {
	Month      string `json:"month"`
	MonthIndex int    `json:"monthIndex"`
	Year       int    `json:"year"`
	Days       int    `json:"days"`
}

func (r daysResult) Text() string {
	return fmt.Sprintf("%s %d: %d days", r.Month, r.Year, r.Days)
}

func parseYearArg(s string) (int, error) {
	n, err := numeral.Parse(s)
	if err != nil {
		return 0, errInvalidArg("year", s, "expected digits")
	}
	return n.Value, nil
}

// parseMonthArg accepts a month name or its number 1..12. Numbers outside
// that range report the calendar's invalid-month error.
func parseMonthArg(s string, year int) (calendar.Month, error) {
	if m, ok := calendar.ParseMonth(s); ok {
		return m, nil
	}
	if n, err := numeral.Parse(s); err == nil {
		_, err := calendar.DaysInMonth(calendar.Month(n.Value-1), year)
		return 0, err
	}
	return 0, errInvalidArg("month", s, "expected a month name or 1..12")
}

func newLeapCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "leap <year>",
		Short: "Report whether a Jalali year is leap",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseYearArg(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, leapResult{
				Year: year,
				Leap: calendar.IsLeapYear(year),
				Days: calendar.DaysInYear(year),
			})
		},
	}
}

func newDaysCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "days <month> <year>",
		Short: "Print the number of days in a Jalali month",
		Long:  "Month may be a Persian or Latin month name (فروردین, farvardin) or a number 1..12.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseYearArg(args[1])
			if err != nil {
				return writeErr(cmd, err)
			}
			m, err := parseMonthArg(args[0], year)
			if err != nil {
				return writeErr(cmd, err)
			}
			days, err := calendar.DaysInMonth(m, year)
			if err != nil {
				return writeErr(cmd, err)
			}
			logging.Logger(cmd.Context()).Debug("days in month", "month", m.Latin(), "year", year, "days", days)
			return writeOut(cmd, app, daysResult{
				Month:      m.String(),
				MonthIndex: int(m),
				Year:       year,
				Days:       days,
			})
		},
	}
}
