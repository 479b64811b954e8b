package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/candidate-screener/internal/interview"
	"github.com/jonathan/candidate-screener/internal/logger"
	"github.com/jonathan/candidate-screener/internal/reporting"
	"github.com/jonathan/candidate-screener/internal/types"
)

func newInterviewCmd(c *cli) *cobra.Command {
	var (
		job          jobSource
		name         string
		title        string
		maxQuestions int
		format       string
		save         bool
	)

	cmd := &cobra.Command{
		Use:   "interview",
		Short: "Run a text interview for a job on the terminal",
		Long: "Plan questions for a job, read one answer per line from stdin and score each answer as it arrives. " +
			"The combined report is printed when the last question is answered or input ends.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			f, err := reporting.ParseFormat(format)
			if err != nil {
				return err
			}
			jd, err := job.load(ctx, cmd, c)
			if err != nil {
				return err
			}
			req := types.StartInterviewRequest{
				CandidateName:  name,
				JobTitle:       title,
				JobDescription: jd,
				MaxQuestions:   maxQuestions,
			}
			if err := req.Validate(); err != nil {
				return err
			}

			engine, closeFn, err := c.engine(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			interviews := interview.NewEngine(engine.Vocabulary(), engine.Evaluator(), nil)
			session, err := interviews.Start(req)
			if err != nil {
				return err
			}
			c.log.Debug("interview started",
				append(logger.ScreeningFields("interview", name, ""),
					zap.String("session_id", session.ID),
					zap.Int("questions", len(session.Turns)))...)

			out := cmd.OutOrStdout()
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				q, ok, err := interviews.CurrentQuestion(session.ID)
				if err != nil {
					return err
				}
				if !ok {
					break
				}
				current, _ := interviews.Get(session.ID)
				fmt.Fprintf(out, "Q%d/%d [%s]: %s\n", current.NextTurn+1, len(current.Turns), q.Type, q.Text)

				answer, more := nextAnswer(scanner)
				if !more {
					break
				}
				ev, _, err := interviews.SubmitAnswer(session.ID, answer)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Score: %d/100\n\n", ev.OverallScorePercent)
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read answers: %w", err)
			}

			results, err := interviews.Results(session.ID)
			if err != nil {
				return err
			}
			if save && results.Len() > 0 {
				store, err := c.connect(ctx)
				if err != nil {
					return err
				}
				defer store.Close()
				id, err := store.SaveEvaluationReport(ctx, results, session.ID)
				if err != nil {
					return err
				}
				c.log.Info("interview report saved",
					append(logger.ScreeningFields("interview", name, ""),
						zap.String("session_id", session.ID),
						zap.String("report_id", id.String()))...)
			}

			rendered, err := results.Render(f)
			if err != nil {
				return err
			}
			return writeReport(cmd, rendered)
		},
	}

	job.register(cmd)
	cmd.Flags().StringVar(&name, "name", "", "Candidate name")
	cmd.Flags().StringVar(&title, "title", "", "Job title used in the opening question")
	cmd.Flags().IntVar(&maxQuestions, "max-questions", interview.DefaultMaxQuestions, "Number of questions to ask")
	cmd.Flags().StringVarP(&format, "format", "F", string(reporting.FormatText), "Report format: text, markdown or dict")
	cmd.Flags().BoolVar(&save, "save", false, "Persist the report to the database")
	return cmd
}

// nextAnswer returns the next non-blank line. more is false at end of input.
func nextAnswer(scanner *bufio.Scanner) (answer string, more bool) {
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			return line, true
		}
	}
	return "", false
}
