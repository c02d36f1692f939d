package cli

import (
	"fmt"
	"strings"
	"time"

	"jalali-picker/internal/store"

	"github.com/spf13/cobra"
)

type historyResult struct {
	Entries []store.Entry `json:"entries"`
}

func (r historyResult) Text() string {
	if len(r.Entries) == 0 {
		return "no selections yet"
	}
	var sb strings.Builder
	for _, e := range r.Entries {
		fmt.Fprintf(&sb, "#%d  %s  %s\n", e.ID, e.Date, e.CreatedAt.Local().Format(time.DateTime))
	}
	return sb.String()
}

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List committed selections, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return writeErr(cmd, errInvalidArg("limit", fmt.Sprint(limit), "must be >= 0"))
			}
			st, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			entries, err := st.History(cmd.Context(), limit)
			if err != nil {
				return writeErr(cmd, err)
			}
			if entries == nil {
				entries = []store.Entry{}
			}
			return writeOut(cmd, app, historyResult{Entries: entries})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of entries (0 = all)")
	return cmd
}
