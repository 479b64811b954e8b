package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jonathan/candidate-screener/internal/config"
	"github.com/jonathan/candidate-screener/internal/db"
	"github.com/jonathan/candidate-screener/internal/llm"
	"github.com/jonathan/candidate-screener/internal/logger"
	"github.com/jonathan/candidate-screener/internal/observability"
	"github.com/jonathan/candidate-screener/internal/screening"
	"github.com/jonathan/candidate-screener/internal/vocab"
)

const app = "screener"

// Result formats
const (
	outputJSON = "json"
	outputBox  = "box"
)

// cli holds state shared by every subcommand
type cli struct {
	v       *viper.Viper
	cfgFile string
	output  string
	cfg     *config.Config
	log     *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{v: config.New()}

	root := &cobra.Command{
		Use:   app,
		Short: "Candidate screening engine",
		Long: "screener extracts skills, education and experience from resumes, scores them " +
			"against job descriptions and evaluates interview answers, from the command line or over a REST API.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return c.init()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if c.log != nil {
				_ = c.log.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.cfgFile, "config", "", "a config file (default is screener.yaml in current directory, if present)")
	flags.BoolP("debug", "d", false, "verbose/debug output")
	flags.BoolP("json", "j", false, "json format for logging")
	flags.StringVarP(&c.output, "output", "o", outputJSON, "result format: json or box")
	_ = c.v.BindPFlag("log.debug", flags.Lookup("debug"))
	_ = c.v.BindPFlag("log.json", flags.Lookup("json"))

	root.AddCommand(
		newExtractCmd(c),
		newMatchCmd(c),
		newRankCmd(c),
		newEvaluateCmd(c),
		newReportCmd(c),
		newBatchCmd(c),
		newInterviewCmd(c),
		newServeCmd(c),
		newMigrateCmd(c),
		newTokenCmd(c),
	)
	return root
}

// init reads the config file and builds the logger
func (c *cli) init() error {
	if c.output != outputJSON && c.output != outputBox {
		return fmt.Errorf("invalid --output %q: must be json or box", c.output)
	}
	if c.cfgFile != "" {
		c.v.SetConfigFile(c.cfgFile)
	} else {
		c.v.AddConfigPath(".")
		c.v.SetConfigName(app)
	}
	if err := c.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if c.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	cfg, err := config.FromViper(c.v)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return fmt.Errorf("creating a logger: %w", err)
	}
	c.cfg, c.log = cfg, log
	c.log.Debug("configuration loaded", zap.String("config_file", c.v.ConfigFileUsed()))
	return nil
}

// engine builds the screening engine from the configuration. The returned func
// releases the LLM client.
func (c *cli) engine(ctx context.Context) (*screening.Engine, func(), error) {
	var v *vocab.Vocabulary
	if path := c.cfg.Vocabulary.File; path != "" {
		loaded, err := vocab.Load(path)
		if err != nil {
			return nil, nil, err
		}
		v = loaded
		c.log.Info("custom vocabulary loaded", zap.String("file", path))
	}

	llmCfg, err := c.cfg.LLMClientConfig()
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {}
	client, err := llm.NewClient(ctx, llmCfg, c.cfg.LLM.APIKey)
	switch {
	case errors.Is(err, llm.ErrDisabled):
		client = nil
	case err != nil:
		return nil, nil, fmt.Errorf("creating llm client: %w", err)
	default:
		closeFn = func() { _ = client.Close() }
	}

	return screening.New(screening.Options{
		Vocabulary: v,
		Workers:    c.cfg.Screening.Workers,
		LLM:        client,
		Logger:     c.log,
	}), closeFn, nil
}

// errNoDatabase is returned by commands that persist results when no database is configured
var errNoDatabase = errors.New("database.url is not configured (set SCREENER_DATABASE_URL)")

// connect opens the configured database
func (c *cli) connect(ctx context.Context) (*db.DB, error) {
	if c.cfg.Database.URL == "" {
		return nil, errNoDatabase
	}
	return db.Connect(ctx, c.cfg.Database.URL, c.log)
}

// printer returns a boxed printer when --output box is selected, nil otherwise
func (c *cli) printer(cmd *cobra.Command) *observability.Printer {
	if c.output != outputBox {
		return nil
	}
	return observability.NewPrinter(cmd.OutOrStdout())
}
