package main

import (
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/talentai/talentai/internal/assessment"
	"github.com/talentai/talentai/internal/report"
)

func newReportCmd() *cobra.Command {
	var (
		path string
		seed uint64
		free bool
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Build the premium (or free) report for a stored profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var p assessment.Profile
			if err := readJSONFile(path, &p); err != nil {
				return err
			}
			content, err := report.DefaultContent()
			if err != nil {
				return err
			}
			rng := report.SystemRand
			if cmd.Flags().Changed("seed") {
				rng = rand.New(rand.NewPCG(seed, seed))
			}
			asm := report.NewAssembler(content, rng)
			if free {
				out, err := asm.Free("", p)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), out)
			}
			out, err := asm.Premium("", time.Now().UTC(), p)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&path, "profile", "-", "profile JSON file as printed by score (- for stdin)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed career match scores for reproducible output")
	cmd.Flags().BoolVar(&free, "free", false, "print the free teaser report")
	return cmd
}
