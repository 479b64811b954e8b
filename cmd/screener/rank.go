package main

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-screener/internal/types"
)

func newRankCmd(c *cli) *cobra.Command {
	var (
		job jobSource
		top int
	)

	cmd := &cobra.Command{
		Use:   "rank RESUME...",
		Short: "Rank several resumes against one job description",
		Long:  "Rank resumes best first. Each candidate id is the resume file name without its extension.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			jd, err := job.load(ctx, cmd, c)
			if err != nil {
				return err
			}

			candidates := make([]types.CandidateInput, 0, len(args))
			for _, path := range args {
				text, err := readText(cmd, path)
				if err != nil {
					return err
				}
				candidates = append(candidates, types.CandidateInput{ID: candidateID(path), ResumeText: text})
			}

			engine, closeFn, err := c.engine(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			ranked, err := engine.RankCandidates(ctx, jd, candidates)
			if err != nil {
				return err
			}
			if top > 0 && len(ranked) > top {
				ranked = ranked[:top]
			}

			if p := c.printer(cmd); p != nil {
				p.PrintRanking(ranked)
				return nil
			}
			return writeJSON(cmd, ranked)
		},
	}

	job.register(cmd)
	cmd.Flags().IntVar(&top, "top", 0, "Only print the best N candidates (0 prints all)")
	return cmd
}

// candidateID derives a candidate id from a resume path
func candidateID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
