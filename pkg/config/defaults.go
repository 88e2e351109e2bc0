package config

import "time"

// ConfigFileName is the file looked up in the configuration directory.
const ConfigFileName = "briefd.yaml"

// DefaultServerConfig returns the built-in HTTP defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		HTTPPort:     "8080",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		MaxBodyBytes: 2 << 20,
	}
}

// DefaultDocumentConfig returns the built-in document defaults.
func DefaultDocumentConfig() *DocumentConfig {
	return &DocumentConfig{
		Format:      "docx",
		Creator:     "Sistema de Gestión de Eventos",
		TitlePrefix: "Brief - ",
	}
}

// Default returns a configuration made only of built-in values.
func Default() *Config {
	return &Config{
		Server:   DefaultServerConfig(),
		Document: DefaultDocumentConfig(),
		Database: &DatabaseConfig{},
	}
}
