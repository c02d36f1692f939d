package cli

import (
	"fmt"
	"strings"

	"jalali-picker/internal/docs"
	"jalali-picker/internal/tui"

	"github.com/spf13/cobra"
)

type topicsResult struct {
	Topics []string `json:"topics"`
}

func (r topicsResult) Text() string { return strings.Join(r.Topics, "\n") }

type topicResult struct {
	Topic    string `json:"topic"`
	Markdown string `json:"markdown"`
}

func (r topicResult) Text() string { return r.Markdown }

func newDocsCmd(app *App) *cobra.Command {
	var (
		raw    bool
		render bool
		width  int
	)

	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show the built-in documentation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return writeOut(cmd, app, topicsResult{Topics: docs.Topics()})
			}

			topic := args[0]
			body, ok := docs.Get(topic)
			if !ok {
				return writeErr(cmd, fmt.Errorf("%w (run `jalalipick docs` to list topics)", errNotFound("docs topic", topic)))
			}

			switch {
			case render:
				_, err := fmt.Fprintln(cmd.OutOrStdout(), tui.RenderMarkdown(body, width))
				return err
			case raw:
				_, err := fmt.Fprint(cmd.OutOrStdout(), body)
				return err
			}
			return writeOut(cmd, app, topicResult{Topic: strings.ToLower(topic), Markdown: body})
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown (no envelope)")
	cmd.Flags().BoolVar(&render, "render", false, "Render markdown for the terminal")
	cmd.Flags().IntVar(&width, "width", 80, "Wrap width for --render")

	return cmd
}
