// Package cmd wires the agentflow CLI together with cobra.
package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentflowhq/agentflow/internal/config"
	"github.com/agentflowhq/agentflow/internal/log"
	"github.com/agentflowhq/agentflow/internal/ux"
)

var rootCmd = &cobra.Command{
	Use:   "agentflow",
	Short: "Turn user stories into agent workflow files",
	Long: `agentflow reads a free-text user story, decides which specialized
agent should handle it, selects the agent's tooling, and renders a
markdown workflow file under .agent/workflows.

Stories are matched against a fixed catalog of ten agents covering the
delivery lifecycle from research to operations.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	flagOutputFormat string
	flagNoColor      bool
	flagDebug        bool
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagOutputFormat, "format", "", "output format: text, json or yaml")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
}

// loadConfig reads .agentflow.yaml and applies flag overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, ux.FormatError(err, "loading configuration")
	}

	if flagOutputFormat != "" {
		cfg.Output.Format = flagOutputFormat
	}
	if flagNoColor {
		cfg.Output.NoColor = true
	}
	if flagDebug {
		cfg.Log.Level = "debug"
	}

	return cfg, nil
}

// newLogger builds the CLI logger from config
func newLogger(cfg *config.Config) *log.Logger {
	return log.New(log.Config{
		Level:       log.ParseLevel(cfg.Log.Level),
		Format:      log.ParseFormat(cfg.Log.Format),
		Output:      log.OutputStderr(),
		ServiceName: "agentflow",
	})
}

// projectRoot resolves where workflow output is anchored
func projectRoot(cfg *config.Config) string {
	if cfg.ProjectRoot != "" {
		return cfg.ProjectRoot
	}

	root, err := ux.DiscoverProjectRoot()
	if err != nil {
		cwd, _ := os.Getwd()
		return cwd
	}
	return root
}
