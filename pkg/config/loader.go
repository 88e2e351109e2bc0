package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// BriefdYAMLConfig represents the complete briefd.yaml file structure
type BriefdYAMLConfig struct {
	Server   *ServerConfig   `yaml:"server"`
	Document *DocumentConfig `yaml:"document"`
	Database *DatabaseConfig `yaml:"database"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
//
// Steps performed:
//  1. Load briefd.yaml from configDir (absent file means built-in defaults)
//  2. Expand environment variables
//  3. Merge user values over built-in defaults
//  4. Validate
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"http_port", cfg.Server.HTTPPort,
		"document_format", cfg.Document.Format,
		"database_enabled", cfg.Database.Enabled)

	return cfg, nil
}

func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{configDir: configDir}

	cfg := Default()
	cfg.configDir = configDir

	user, err := loader.loadBriefdYAML()
	if errors.Is(err, ErrConfigNotFound) {
		slog.Info("No configuration file found, using built-in defaults",
			"file", filepath.Join(configDir, ConfigFileName))
		return cfg, nil
	}
	if err != nil {
		return nil, NewLoadError(ConfigFileName, err)
	}

	// Non-zero user values override the defaults.
	if user.Server != nil {
		if err := mergo.Merge(cfg.Server, user.Server, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge server config: %w", err)
		}
	}
	if user.Document != nil {
		if err := mergo.Merge(cfg.Document, user.Document, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge document config: %w", err)
		}
	}
	if user.Database != nil {
		cfg.Database.Enabled = user.Database.Enabled
	}

	return cfg, nil
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadBriefdYAML() (*BriefdYAMLConfig, error) {
	var config BriefdYAMLConfig
	if err := l.loadYAML(ConfigFileName, &config); err != nil {
		return nil, err
	}
	return &config, nil
}
