package config

import "time"

// Config is the umbrella configuration object returned by Initialize and
// shared by the HTTP server and the CLI.
type Config struct {
	configDir string

	Server   *ServerConfig
	Document *DocumentConfig
	Database *DatabaseConfig
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	HTTPPort     string        `yaml:"http_port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	// MaxBodyBytes caps request payloads accepted by the brief endpoints.
	MaxBodyBytes int64 `yaml:"max_body_bytes"`
}

// DocumentConfig selects the output container and its metadata.
type DocumentConfig struct {
	Format      string `yaml:"format"` // docx | text
	Creator     string `yaml:"creator"`
	TitlePrefix string `yaml:"title_prefix"`
}

// DatabaseConfig toggles the persistence-backed endpoints. Connection
// settings come from DB_* environment variables, see database.LoadConfigFromEnv.
type DatabaseConfig struct {
	Enabled bool `yaml:"enabled"`
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}
