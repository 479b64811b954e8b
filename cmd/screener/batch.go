package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/candidate-screener/internal/logger"
	"github.com/jonathan/candidate-screener/internal/reporting"
	"github.com/jonathan/candidate-screener/internal/types"
)

func newBatchCmd(c *cli) *cobra.Command {
	var (
		input     string
		format    string
		save      bool
		summarize bool
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Evaluate a candidate's answers together and render a combined report",
		Long: `Evaluate a batch of answers read from a JSON file:

  {"candidate_name": "Jane Doe", "items": [{"question": "...", "answer": "...", "question_type": "technical"}]}`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			var req types.BatchRequest
			if err := readJSON(cmd, input, &req); err != nil {
				return err
			}
			if err := req.Validate(); err != nil {
				return err
			}
			f, err := reporting.ParseFormat(format)
			if err != nil {
				return err
			}

			engine, closeFn, err := c.engine(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			report, err := engine.EvaluateBatch(ctx, req.CandidateName, req.Items)
			if err != nil {
				return err
			}

			if save {
				store, err := c.connect(ctx)
				if err != nil {
					return err
				}
				defer store.Close()
				id, err := store.SaveEvaluationReport(ctx, report, "")
				if err != nil {
					return err
				}
				c.log.Info("evaluation report saved",
					append(logger.ScreeningFields("batch", req.CandidateName, ""), zap.String("report_id", id.String()))...)
			}

			out, err := report.Render(f)
			if err != nil {
				return err
			}
			if err := writeReport(cmd, out); err != nil {
				return err
			}

			if summarize {
				note, err := engine.SummarizeInterview(ctx, report)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "\nSummary: %s\n", note)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "-", "Path to the batch JSON file (- for stdin)")
	cmd.Flags().StringVarP(&format, "format", "F", string(reporting.FormatText), "Report format: text, markdown or dict")
	cmd.Flags().BoolVar(&save, "save", false, "Persist the report to the database")
	cmd.Flags().BoolVar(&summarize, "summary", false, "Ask the configured LLM for a short note on the answers")
	return cmd
}
