package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-screener/internal/types"
)

// answerFlags are the flags that describe one interview answer
type answerFlags struct {
	question     string
	answer       string
	answerFile   string
	questionType string
}

func (a *answerFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&a.question, "question", "q", "", "The interview question")
	cmd.Flags().StringVarP(&a.answer, "answer", "a", "", "The candidate's answer")
	cmd.Flags().StringVar(&a.answerFile, "answer-file", "", "Path to a file holding the answer (- for stdin)")
	cmd.Flags().StringVarP(&a.questionType, "type", "t", "", "Question type: technical, behavioral, situational or general (default: general)")
	_ = cmd.MarkFlagRequired("question")
	cmd.MarkFlagsMutuallyExclusive("answer", "answer-file")
	cmd.MarkFlagsOneRequired("answer", "answer-file")
}

// request builds an EvaluateRequest from the flags
func (a *answerFlags) request(cmd *cobra.Command) (types.EvaluateRequest, error) {
	answer := a.answer
	if a.answerFile != "" {
		text, err := readText(cmd, a.answerFile)
		if err != nil {
			return types.EvaluateRequest{}, err
		}
		answer = text
	}
	req := types.EvaluateRequest{Question: a.question, Answer: answer, QuestionType: a.questionType}
	return req, req.Validate()
}

func newEvaluateCmd(c *cli) *cobra.Command {
	var flags answerFlags

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score one interview answer for relevance, depth and clarity",
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

			ev, err := engine.EvaluateAnswer(req.Question, req.Answer, req.QuestionType)
			if err != nil {
				return err
			}
			if p := c.printer(cmd); p != nil {
				p.PrintAnswerEvaluation(ev)
				return nil
			}
			return writeJSON(cmd, ev)
		},
	}

	flags.register(cmd)
	return cmd
}
