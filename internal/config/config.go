// Package config handles configuration loading and management for Boardroom.
// It supports XDG config paths, project-level overrides, and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for Boardroom.
type Config struct {
	Anthropic    AnthropicConfig    `mapstructure:"anthropic"`
	Team         TeamConfig         `mapstructure:"team"`
	Orchestrator OrchestratorConfig `mapstructure:"orchestrator"`
	Tasks        TasksConfig        `mapstructure:"tasks"`
	TUI          TUIConfig          `mapstructure:"tui"`
	Debug        DebugConfig        `mapstructure:"debug"`
}

// AnthropicConfig holds model backend settings.
type AnthropicConfig struct {
	APIKey        string `mapstructure:"api_key"`
	Model         string `mapstructure:"model"`
	MaxTokens     int    `mapstructure:"max_tokens"`
	UseAWSBedrock bool   `mapstructure:"use_aws_bedrock"`
	AWSRegion     string `mapstructure:"aws_region"`
	AWSProfile    string `mapstructure:"aws_profile"`
}

// TeamConfig holds team roster settings.
type TeamConfig struct {
	// File is an optional YAML roster overriding the built-in team.
	File string `mapstructure:"file"`
	// DefaultPersona receives unrouted requests.
	DefaultPersona string `mapstructure:"default_persona"`
	// Watch reloads the roster file on change.
	Watch bool `mapstructure:"watch"`
}

// OrchestratorConfig holds routing and consensus settings.
type OrchestratorConfig struct {
	// CallTimeout bounds each individual persona call.
	CallTimeout time.Duration `mapstructure:"call_timeout"`
	// HistoryLimit bounds the retained activity log.
	HistoryLimit int `mapstructure:"history_limit"`
}

// TasksConfig holds task registry settings.
type TasksConfig struct {
	// QueueSize bounds the background intake queue.
	QueueSize int `mapstructure:"queue_size"`
}

// TUIConfig holds interactive mode display settings.
type TUIConfig struct {
	RefreshRate time.Duration `mapstructure:"refresh_rate"`
}

// DebugConfig holds debug logging settings.
type DebugConfig struct {
	// LogFile receives debug output when set.
	LogFile string `mapstructure:"log_file"`
}

// Load loads configuration from XDG paths, project overrides, and environment variables.
// Precedence (highest to lowest):
// 1. Environment variables (ANTHROPIC_API_KEY)
// 2. Project config (.boardroom.yaml in current directory or parent)
// 3. User config (~/.config/boardroom/config.yaml)
// 4. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	userConfigDir := getUserConfigDir()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(userConfigDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	// Load project config if present
	projectConfig := findProjectConfig()
	if projectConfig != "" {
		projectViper := viper.New()
		projectViper.SetConfigFile(projectConfig)
		if err := projectViper.ReadInConfig(); err == nil {
			// Merge project config (takes precedence)
			if err := v.MergeConfigMap(projectViper.AllSettings()); err != nil {
				return nil, fmt.Errorf("merging project config: %w", err)
			}
		}
	}

	v.AutomaticEnv()
	v.BindEnv("anthropic.api_key", "ANTHROPIC_API_KEY")
	v.BindEnv("anthropic.model", "BOARDROOM_MODEL")
	v.BindEnv("anthropic.use_aws_bedrock", "BOARDROOM_USE_BEDROCK")

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	// Expand ${VAR} references
	cfg.Anthropic.APIKey = expandEnv(cfg.Anthropic.APIKey)

	return cfg, nil
}

// LoadFromPath loads configuration from a specific path (for testing).
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.Anthropic.APIKey = expandEnv(cfg.Anthropic.APIKey)

	return cfg, nil
}

// Save writes the current configuration to the user config file.
func Save(cfg *Config) error {
	userConfigDir := getUserConfigDir()
	if err := os.MkdirAll(userConfigDir, 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	configPath := filepath.Join(userConfigDir, "config.yaml")

	v := viper.New()
	v.SetConfigFile(configPath)

	v.Set("anthropic.api_key", cfg.Anthropic.APIKey)
	v.Set("anthropic.model", cfg.Anthropic.Model)
	v.Set("anthropic.max_tokens", cfg.Anthropic.MaxTokens)
	v.Set("anthropic.use_aws_bedrock", cfg.Anthropic.UseAWSBedrock)
	v.Set("anthropic.aws_region", cfg.Anthropic.AWSRegion)
	v.Set("anthropic.aws_profile", cfg.Anthropic.AWSProfile)
	v.Set("team.file", cfg.Team.File)
	v.Set("team.default_persona", cfg.Team.DefaultPersona)
	v.Set("team.watch", cfg.Team.Watch)
	v.Set("orchestrator.call_timeout", cfg.Orchestrator.CallTimeout.String())
	v.Set("orchestrator.history_limit", cfg.Orchestrator.HistoryLimit)
	v.Set("tasks.queue_size", cfg.Tasks.QueueSize)
	v.Set("tui.refresh_rate", cfg.TUI.RefreshRate.String())
	v.Set("debug.log_file", cfg.Debug.LogFile)

	return v.WriteConfig()
}

// GetUserConfigPath returns the path to the user config file.
func GetUserConfigPath() string {
	return filepath.Join(getUserConfigDir(), "config.yaml")
}

// GetProjectConfigPath returns the path to the project config file if it exists.
func GetProjectConfigPath() string {
	return findProjectConfig()
}

// setDefaults configures default values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("anthropic.api_key", "")
	v.SetDefault("anthropic.model", "claude-sonnet-4-5")
	v.SetDefault("anthropic.max_tokens", 1024)
	v.SetDefault("anthropic.use_aws_bedrock", false)

	v.SetDefault("team.file", "")
	v.SetDefault("team.default_persona", "ceo")
	v.SetDefault("team.watch", false)

	v.SetDefault("orchestrator.call_timeout", "30s")
	v.SetDefault("orchestrator.history_limit", 100)

	v.SetDefault("tasks.queue_size", 64)

	v.SetDefault("tui.refresh_rate", "100ms")

	v.SetDefault("debug.log_file", "")
}

// getUserConfigDir returns the XDG config directory for Boardroom.
func getUserConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "boardroom")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "boardroom")
	}
	return filepath.Join(home, ".config", "boardroom")
}

// findProjectConfig searches for .boardroom.yaml in the current directory and parents.
func findProjectConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(cwd, ".boardroom.yaml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(cwd)
		if parent == cwd {
			break
		}
		cwd = parent
	}

	return ""
}

// expandEnv expands ${VAR} references in a string.
func expandEnv(s string) string {
	return os.ExpandEnv(s)
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Anthropic: AnthropicConfig{
			Model:     "claude-sonnet-4-5",
			MaxTokens: 1024,
		},
		Team: TeamConfig{
			DefaultPersona: "ceo",
		},
		Orchestrator: OrchestratorConfig{
			CallTimeout:  30 * time.Second,
			HistoryLimit: 100,
		},
		Tasks: TasksConfig{
			QueueSize: 64,
		},
		TUI: TUIConfig{
			RefreshRate: 100 * time.Millisecond,
		},
	}
}
