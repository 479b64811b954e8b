package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-screener/internal/fetch"
	"github.com/jonathan/candidate-screener/internal/ingestion"
)

// jobSource is the set of flags that name a job description
type jobSource struct {
	file    string
	url     string
	browser bool
}

func (s *jobSource) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.file, "job", "", "Path to a job description text file (- for stdin)")
	cmd.Flags().StringVar(&s.url, "job-url", "", "URL of a job posting to fetch")
	cmd.Flags().BoolVar(&s.browser, "browser", false, "Render --job-url in headless Chrome when the page needs JavaScript")
	cmd.MarkFlagsMutuallyExclusive("job", "job-url")
	cmd.MarkFlagsOneRequired("job", "job-url")
}

// load returns the cleaned job description
func (s *jobSource) load(ctx context.Context, cmd *cobra.Command, c *cli) (string, error) {
	if s.url == "" {
		return readText(cmd, s.file)
	}
	opts := fetch.DefaultOptions()
	opts.Logger = c.log
	if s.browser {
		opts.Browser = fetch.NewBrowser(c.log)
	}
	text, _, err := ingestion.FromURL(ctx, s.url, opts)
	if err != nil {
		return "", err
	}
	return text, nil
}

// readText reads and cleans a text file; "-" reads stdin
func readText(cmd *cobra.Command, path string) (string, error) {
	if path != "-" {
		text, _, err := ingestion.LoadText(path)
		return text, err
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	text := ingestion.CleanText(string(data))
	if text == "" {
		return "", fmt.Errorf("%w: stdin", ingestion.ErrEmptyContent)
	}
	return text, nil
}

// readJSON decodes a JSON file into v; "-" reads stdin
func readJSON(cmd *cobra.Command, path string, v any) error {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("file not found: %w", err)
			}
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}

// writeJSON writes v to the command's output as indented JSON
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
