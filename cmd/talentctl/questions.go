package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/talentai/talentai/internal/assessment"
)

func newQuestionsCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "questions",
		Short: "Print the question bank",
		RunE: func(cmd *cobra.Command, _ []string) error {
			qs := assessment.DefaultBank().All()
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), map[string]any{"questions": qs})
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tDIMENSION\tQUESTION")
			for _, q := range qs {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", q.ID, q.Dimension, q.Text)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}
