package configurator

import (
	"fmt"
	"strings"

	"github.com/magneticio/vamp-run-ranker/analyzer/reporter"
	"github.com/magneticio/vampkubistcli/logging"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. RANKER_INPUT
const EnvPrefix = "ranker"

const (
	DefaultInput   = "../all_runs.output"
	DefaultFormat  = string(reporter.FormatPlain)
	DefaultLogging = "quiet"
)

type Config struct {
	Input   string `yaml:"input,omitempty" json:"input,omitempty"`
	Format  string `yaml:"format,omitempty" json:"format,omitempty"`
	Logging string `yaml:"logging,omitempty" json:"logging,omitempty"`
}

// BindEnv binds configuration keys to environment variables and sets defaults
func BindEnv() {
	viper.SetEnvPrefix(EnvPrefix)
	viper.BindEnv("input")
	viper.BindEnv("format")
	viper.BindEnv("logging")
	viper.SetDefault("input", DefaultInput)
	viper.SetDefault("format", DefaultFormat)
	viper.SetDefault("logging", DefaultLogging)
}

// InitViperConfig reads an optional config file, a missing file is only logged
func InitViperConfig(path string, configName string) {
	viper.SetConfigName(configName) // name of config file (without extension)
	viper.AddConfigPath(path)       // path to look for the config file in
	viper.AddConfigPath(".")        // optionally look for config in the working directory
	err := viper.ReadInConfig()     // Find and read the config file
	if err != nil {                 // Handle errors reading the config file
		logging.Info("No config file loaded: %s \n", err)
	}
}

func New() *Config {
	return &Config{
		Input:   cast.ToString(viper.Get("input")),
		Format:  cast.ToString(viper.Get("format")),
		Logging: cast.ToString(viper.Get("logging")),
	}
}

// IsVerbose accepts "verbose" or any boolean spelling
func (c *Config) IsVerbose() bool {
	if strings.EqualFold(c.Logging, "verbose") {
		return true
	}
	verbose, err := cast.ToBoolE(c.Logging)
	if err != nil {
		return false
	}
	return verbose
}

// ParseFormat validates the configured output format
func ParseFormat(format string) (reporter.Format, error) {
	switch f := reporter.Format(strings.ToLower(strings.TrimSpace(format))); f {
	case "", reporter.FormatPlain:
		return reporter.FormatPlain, nil
	case reporter.FormatTable:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q, expected %q or %q", format, reporter.FormatPlain, reporter.FormatTable)
	}
}
