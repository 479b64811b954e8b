package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/candidate-screener/internal/db"
	"github.com/jonathan/candidate-screener/internal/logger"
	"github.com/jonathan/candidate-screener/internal/ranking"
	"github.com/jonathan/candidate-screener/internal/screening"
	"github.com/jonathan/candidate-screener/internal/types"
)

// matchOutput is the JSON printed by the match command
type matchOutput struct {
	ScreeningID string                `json:"screening_id,omitempty"`
	JobHash     string                `json:"job_hash"`
	Result      *types.MatchResult    `json:"result"`
	Summary     *ranking.MatchSummary `json:"summary,omitempty"`
}

func newMatchCmd(c *cli) *cobra.Command {
	var (
		job        jobSource
		resumeFile string
		name       string
		title      string
		save       bool
		summarize  bool
	)

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Score a resume against a job description",
		Long: "Score a resume against a job description. The job comes from a text file or a job posting URL; " +
			"greenhouse, lever, workday, ashby and smartrecruiters pages use platform-specific selectors.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			jd, err := job.load(ctx, cmd, c)
			if err != nil {
				return err
			}
			resume, err := readText(cmd, resumeFile)
			if err != nil {
				return err
			}
			engine, closeFn, err := c.engine(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			result, err := engine.CalculateMatchScore(jd, resume)
			if err != nil {
				return err
			}
			out := matchOutput{JobHash: screening.JobHash(jd), Result: result}

			if summarize {
				if out.Summary, err = engine.Summarize(ctx, jd, name, result); err != nil {
					return err
				}
			}

			if save {
				store, err := c.connect(ctx)
				if err != nil {
					return err
				}
				defer store.Close()
				id, err := store.SaveScreening(ctx, db.ScreeningInput{
					JobHash:       out.JobHash,
					JobTitle:      title,
					CandidateName: name,
					Result:        result,
				})
				if err != nil {
					return err
				}
				out.ScreeningID = id.String()
				c.log.Info("screening saved",
					append(logger.ScreeningFields("match", name, out.JobHash), zap.String("screening_id", out.ScreeningID))...)
			}

			if p := c.printer(cmd); p != nil {
				p.PrintMatchResult(result)
				p.PrintSummary(out.Summary)
				return nil
			}
			return writeJSON(cmd, out)
		},
	}

	job.register(cmd)
	cmd.Flags().StringVarP(&resumeFile, "resume", "r", "", "Path to the resume text file (- for stdin)")
	cmd.Flags().StringVar(&name, "name", "", "Candidate name")
	cmd.Flags().StringVar(&title, "title", "", "Job title, stored with the screening")
	cmd.Flags().BoolVar(&save, "save", false, "Persist the result to the database")
	cmd.Flags().BoolVar(&summarize, "summary", false, "Ask the configured LLM for a screening note")
	_ = cmd.MarkFlagRequired("resume")
	return cmd
}
