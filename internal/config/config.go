// Package config implements configuration loading for the nearacct tool.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default config values.
const (
	DefaultConfigFile   = "nearacct.yml"
	DefaultOutputFormat = OutputFormatText
	DefaultLoggerLevel  = LogLevelWarn
	DefaultLoggerFormat = LogFormatText
)

// LogLevel defines the type for logger levels.
type LogLevel string

// Defines the supported logger levels.
const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LogFormat defines the type for logger output formats.
type LogFormat string

// Defines the supported logger output formats.
const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

// OutputFormat defines the type for command output formats.
type OutputFormat string

// Defines the supported command output formats.
const (
	OutputFormatJSON OutputFormat = "json"
	OutputFormatText OutputFormat = "text"
)

// LoggerConfig holds all configuration related to logging.
type LoggerConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// OutputConfig holds the default presentation of command results.
type OutputConfig struct {
	Format OutputFormat `yaml:"format"`
}

// Config holds the tool configuration.
type Config struct {
	Logger LoggerConfig `yaml:"logger"`
	Output OutputConfig `yaml:"output"`
}

// LoadConfig loads the configuration from a YAML file, filling any
// omitted section with defaults. A missing file is only an error when the
// caller asked for a specific path.
func LoadConfig(filePath string) (*Config, error) {
	cfg := &Config{
		Logger: LoggerConfig{
			Level:  DefaultLoggerLevel,
			Format: DefaultLoggerFormat,
		},
		Output: OutputConfig{
			Format: DefaultOutputFormat,
		},
	}

	loadPath := filePath
	if loadPath == "" {
		loadPath = DefaultConfigFile
	}

	fileBytes, err := os.ReadFile(loadPath)
	if err != nil {
		if os.IsNotExist(err) && filePath == "" {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file '%s': %w", loadPath, err)
	}

	type partialConfig struct {
		Logger *LoggerConfig `yaml:"logger"`
		Output *OutputConfig `yaml:"output"`
	}
	var pCfg partialConfig

	if err := yaml.Unmarshal(fileBytes, &pCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", loadPath, err)
	}

	if pCfg.Logger != nil {
		if pCfg.Logger.Level != "" {
			cfg.Logger.Level = pCfg.Logger.Level
		}
		if pCfg.Logger.Format != "" {
			cfg.Logger.Format = pCfg.Logger.Format
		}
	}
	if pCfg.Output != nil && pCfg.Output.Format != "" {
		cfg.Output.Format = pCfg.Output.Format
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file '%s': %w", loadPath, err)
	}
	return cfg, nil
}

// Validate checks if the configuration values are valid.
func (c *Config) Validate() error {
	switch c.Logger.Level {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
	default:
		return fmt.Errorf(
			"invalid logger level (config key: logger.level): '%s', must be one of: debug, info, warn, error",
			c.Logger.Level,
		)
	}

	switch c.Logger.Format {
	case LogFormatJSON, LogFormatText:
	default:
		return fmt.Errorf(
			"invalid logger format (config key: logger.format): '%s', must be one of: json, text",
			c.Logger.Format,
		)
	}

	switch c.Output.Format {
	case OutputFormatJSON, OutputFormatText:
	default:
		return errors.New("invalid output format (config key: output.format): must be one of: json, text")
	}

	return nil
}
