package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

const app = "talentctl"

// Actual version can be specified in build command.
var version = "unknown"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           app,
		Short:         "talentctl scores questionnaire answers and builds reports offline",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newQuestionsCmd(),
		newScoreCmd(),
		newReportCmd(),
		newMigrateCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print the version",
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version: %s\n", app, version)
			},
		},
	)
	return root
}

func readJSONFile(path string, v any) error {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
