package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-screener/internal/screening"
)

func newExtractCmd(c *cli) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract structured data from a resume or job description",
	}
	cmd.PersistentFlags().StringVarP(&file, "file", "f", "-", "Path to a text file (- for stdin)")

	kinds := []struct {
		use   string
		short string
		run   func(e *screening.Engine, text string, cmd *cobra.Command) any
	}{
		{"skills", "Extract technical and soft skills", func(e *screening.Engine, text string, _ *cobra.Command) any {
			return e.ExtractSkills(text)
		}},
		{"education", "Extract degrees, fields, institutions and years", func(e *screening.Engine, text string, _ *cobra.Command) any {
			return e.ExtractEducation(text)
		}},
		{"experience", "Extract job titles, employers, durations and achievements", func(e *screening.Engine, text string, _ *cobra.Command) any {
			return e.ExtractExperience(text)
		}},
		{"requirements", "Parse what a job description asks of a candidate", func(e *screening.Engine, text string, cmd *cobra.Command) any {
			reqs := e.ParseRequirements(text)
			if p := c.printer(cmd); p != nil {
				p.PrintRequirements(&reqs)
				return nil
			}
			return reqs
		}},
	}

	for _, k := range kinds {
		cmd.AddCommand(&cobra.Command{
			Use:   k.use,
			Short: k.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				text, err := readText(cmd, file)
				if err != nil {
					return err
				}
				engine, closeFn, err := c.engine(cmd.Context())
				if err != nil {
					return err
				}
				defer closeFn()

				if out := k.run(engine, text, cmd); out != nil {
					return writeJSON(cmd, out)
				}
				return nil
			},
		})
	}
	return cmd
}
