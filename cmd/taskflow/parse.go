package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"taskflow-pro/pkg/datemath"
	"taskflow-pro/pkg/taskparse"
)

func parseCmd() *cobra.Command {
	var (
		date     string
		timezone string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "parse [text]",
		Short: "Extract a task draft from a sentence",
		Long: `Runs the natural language extractor used by the assistant and the
quick-add box, without touching any storage.

Examples:
  taskflow parse "urgent: send the client report tomorrow at 3pm"
  taskflow parse "gym next monday" --date 2026-10-19 --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser, err := datemath.NewParser(timezone)
			if err != nil {
				return fmt.Errorf("invalid timezone: %w", err)
			}

			ref := parser.Now()
			if date != "" {
				ref, err = datemath.ParseDate(date, parser.Location())
				if err != nil {
					return fmt.Errorf("--date must be YYYY-MM-DD: %w", err)
				}
			}

			draft := taskparse.Extract(strings.Join(args, " "), ref)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(draft)
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "title:\t%s\n", draft.Title)
			fmt.Fprintf(w, "priority:\t%s\n", draft.Priority)
			fmt.Fprintf(w, "category:\t%s\n", draft.Category)
			fmt.Fprintf(w, "due date:\t%s\n", orDash(draft.DueDate))
			fmt.Fprintf(w, "due time:\t%s\n", orDash(draft.DueTime))
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "reference date (YYYY-MM-DD), defaults to today")
	cmd.Flags().StringVar(&timezone, "tz", "UTC", "IANA timezone for relative dates")
	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "output as JSON")

	return cmd
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
