package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644)
	require.NoError(t, err)
	return dir
}

func TestInitialize(t *testing.T) {
	t.Setenv("BRIEFD_TEST_PORT", "9090")
	dir := writeConfig(t, `
server:
  http_port: "{{.BRIEFD_TEST_PORT}}"
  read_timeout: 5s
document:
  format: text
  creator: Secretaría de Cultura
database:
  enabled: true
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.ConfigDir())
	assert.Equal(t, "9090", cfg.Server.HTTPPort)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, DefaultServerConfig().WriteTimeout, cfg.Server.WriteTimeout, "unset values keep defaults")
	assert.Equal(t, DefaultServerConfig().MaxBodyBytes, cfg.Server.MaxBodyBytes)
	assert.Equal(t, "text", cfg.Document.Format)
	assert.Equal(t, "Secretaría de Cultura", cfg.Document.Creator)
	assert.Equal(t, "Brief - ", cfg.Document.TitlePrefix)
	assert.True(t, cfg.Database.Enabled)
}

func TestInitializeMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DefaultServerConfig(), cfg.Server)
	assert.Equal(t, DefaultDocumentConfig(), cfg.Document)
	assert.False(t, cfg.Database.Enabled)
}

func TestInitializeInvalidYAML(t *testing.T) {
	dir := writeConfig(t, "server: [unclosed")

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
	assert.True(t, errors.Is(err, ErrInvalidYAML))

	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, ConfigFileName, le.File)
}

func TestInitializeValidationFailure(t *testing.T) {
	dir := writeConfig(t, `
document:
  format: pdf
`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")
	assert.True(t, errors.Is(err, ErrInvalidValue))
}

func TestInitializeEmptyFile(t *testing.T) {
	cfg, err := Initialize(context.Background(), writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.HTTPPort)
}
