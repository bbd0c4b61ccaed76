// Package commands implements the chaprep command line.
package commands

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	cfg "github.com/maastricht-university/chaprep/config"
	"github.com/maastricht-university/chaprep/orchestrator"
)

var (
	configFile string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "chaprep",
	Short: "Prepare CHAT transcript corpora for modeling",
	Long: `chaprep splits a grouped CHAT corpus into stratified train/dev/test
sets and extracts cleaned per-speaker utterances from .cha transcripts.

Configuration is read from --config, config/$CONFIG_ENV/config.yaml or
config.yaml, and CHAPREP_* environment variables.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (YAML)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override pipeline.log_level")

	rootCmd.AddCommand(splitCmd, censusCmd, extractCmd, batchCmd, configCmd)
}

// Execute runs the root command. Cancelling ctx stops pending work.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func loadConfig() (*cfg.Root, error) {
	conf, err := cfg.Load(configFile)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		conf.Pipeline.LogLvl = logLevel
	}
	return conf, nil
}

// loadPipeline builds the pipeline with logs on the command's stderr.
func loadPipeline(cmd *cobra.Command) (*orchestrator.Pipeline, error) {
	conf, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger, err := orchestrator.NewLogger(conf.Pipeline, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	if conf.Source == "" {
		logger.Debug("no config file found, using defaults")
	} else {
		logger.WithField("config", conf.Source).Debug("config loaded")
	}
	logger.WithFields(logrus.Fields{"version": conf.Pipeline.Version, "command": cmd.Name()}).Debug("starting")
	return orchestrator.NewPipeline(conf, logger), nil
}
