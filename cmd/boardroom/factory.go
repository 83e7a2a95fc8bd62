package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/anthropics/anthropic-sdk-go"

	"boardroom/internal/backend"
	"boardroom/internal/config"
	"boardroom/internal/orchestrator"
	"boardroom/internal/persona"
)

// buildOrchestrator assembles the orchestrator from configuration: the
// model backend, the persona roster and the debug logger. With no API
// key and no Bedrock, personas run in placeholder mode and a notice goes
// to stderr.
func buildOrchestrator(cfg *config.Config) (*orchestrator.Orchestrator, error) {
	logger, err := buildLogger(cfg)
	if err != nil {
		return nil, err
	}

	gen, err := buildGenerator(cfg)
	if err != nil {
		return nil, err
	}

	defs, defaultID, err := loadRoster(cfg)
	if err != nil {
		return nil, err
	}

	orch, err := orchestrator.New(orchestrator.Config{
		Personas:       defs,
		Backend:        gen,
		DefaultPersona: defaultID,
		CallTimeout:    cfg.Orchestrator.CallTimeout,
		HistoryLimit:   cfg.Orchestrator.HistoryLimit,
		Logger:         logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create orchestrator: %w", err)
	}
	return orch, nil
}

// buildLogger creates the debug logger, or a no-op one when no log file
// is configured.
func buildLogger(cfg *config.Config) (*orchestrator.DebugLogger, error) {
	if cfg.Debug.LogFile == "" {
		return orchestrator.NopLogger(), nil
	}
	logger, err := orchestrator.NewDebugLogger(cfg.Debug.LogFile)
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}
	return logger, nil
}

// buildGenerator creates the model backend. A missing API key is not
// fatal; the orchestrator falls back to placeholder responses.
func buildGenerator(cfg *config.Config) (backend.Generator, error) {
	if !cfg.Anthropic.UseAWSBedrock {
		if _, err := config.GetAPIKey(cfg); err != nil {
			if errors.Is(err, config.ErrNoAPIKey) {
				fmt.Fprintln(os.Stderr, "Note: no API key configured; personas will answer with placeholders.")
				fmt.Fprintln(os.Stderr, "Set ANTHROPIC_API_KEY or run 'boardroom config anthropic.api_key <key>'.")
				return nil, nil
			}
			return nil, err
		}
	}

	apiKey, _ := config.GetAPIKey(cfg)
	client, err := backend.NewClient(backend.ClientConfig{
		Model:         anthropic.Model(cfg.Anthropic.Model),
		APIKey:        apiKey,
		MaxTokens:     int64(cfg.Anthropic.MaxTokens),
		UseAWSBedrock: cfg.Anthropic.UseAWSBedrock,
		AWSRegion:     cfg.Anthropic.AWSRegion,
		AWSProfile:    cfg.Anthropic.AWSProfile,
	})
	if err != nil {
		return nil, fmt.Errorf("create backend client: %w", err)
	}
	return client, nil
}

// loadRoster loads the configured team file, falling back to the
// built-in team.
func loadRoster(cfg *config.Config) ([]persona.Definition, string, error) {
	if cfg.Team.File == "" {
		return persona.DefaultTeam(), cfg.Team.DefaultPersona, nil
	}
	defs, err := persona.LoadTeam(cfg.Team.File)
	if err != nil {
		return nil, "", fmt.Errorf("load team %s: %w", cfg.Team.File, err)
	}
	return defs, cfg.Team.DefaultPersona, nil
}

// loadConfig loads configuration, exiting on failure the way every
// command expects.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
