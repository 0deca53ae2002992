// Package config loads agentflow settings from .agentflow.yaml and the
// environment. Settings cover tuning knobs only; the workflows
// directory layout and the agent catalog are fixed.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds the configuration for the application.
type Config struct {
	// ProjectRoot anchors workflow output. Empty means the current
	// working directory.
	ProjectRoot string `mapstructure:"project_root"`

	Parser struct {
		// ConfidenceThreshold is the score below which alternative
		// agents are suggested alongside the match.
		ConfidenceThreshold float64 `mapstructure:"confidence_threshold"`
	} `mapstructure:"parser"`

	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`

	Output struct {
		// Format selects the CLI output formatter: text, json or yaml.
		Format string `mapstructure:"format"`
		// NoColor disables styled terminal output.
		NoColor bool `mapstructure:"no_color"`
	} `mapstructure:"output"`
}

// Load reads configuration from .agentflow.yaml and AGENTFLOW_*
// environment variables. A missing config file is not an error; the
// defaults apply.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".agentflow")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")
	v.SetEnvPrefix("AGENTFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	config.ProjectRoot = strings.TrimSpace(config.ProjectRoot)

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("project_root", "")
	v.SetDefault("parser.confidence_threshold", 0.7)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("output.format", "text")
	v.SetDefault("output.no_color", false)
}
