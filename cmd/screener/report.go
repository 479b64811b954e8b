package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-screener/internal/reporting"
)

// writeReport prints a rendered report: dict output as JSON, text and markdown as is
func writeReport(cmd *cobra.Command, out *reporting.Output) error {
	if out.Format == reporting.FormatDict {
		return writeJSON(cmd, out.Dict)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), out.Text)
	return err
}

func newReportCmd(c *cli) *cobra.Command {
	var (
		flags  answerFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Evaluate one interview answer and render a report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := flags.request(cmd)
			if err != nil {
				return err
			}
			engine, closeFn, err := c.engine(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			out, err := engine.GenerateReport(req.Question, req.Answer, req.QuestionType, format)
			if err != nil {
				return err
			}
			return writeReport(cmd, out)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "F", string(reporting.FormatText), "Report format: text, markdown or dict")
	return cmd
}
