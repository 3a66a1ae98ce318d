package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// Durations in JSON must be valid for time.Duration's TextUnmarshal (string, e.g. "30s").
	jsonBody := `{
		"app": {
			"token_sign_key": "jwt_secret",
			"token_issuer": "test_issuer",
			"token_duration": "1h",
			"default_session_name": "Inbox",
			"preview_length": 80,
			"log_level": "info"
		},
		"storage": {
			"db": { "path": "/var/lib/clipkeeper/history.db" },
			"state": { "path": "/var/lib/clipkeeper/state.json" }
		},
		"monitor": {
			"poll_interval": "500ms",
			"max_text_size": "2MB"
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "Inbox", cfg.App.DefaultSessionName)
	assert.Equal(t, 80, cfg.App.PreviewLength)
	assert.Equal(t, "info", cfg.App.LogLevel)

	assert.Equal(t, "/var/lib/clipkeeper/history.db", cfg.Storage.DB.Path)
	assert.Equal(t, "/var/lib/clipkeeper/state.json", cfg.Storage.State.Path)

	assert.Equal(t, 500*time.Millisecond, cfg.Monitor.PollInterval)
	assert.Equal(t, ByteSize(2<<20), cfg.Monitor.MaxTextSize)
}

func TestParseJSON_NumericSizeAndDuration(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "numeric.json")

	// Both wrappers also accept plain JSON numbers: nanoseconds for
	// durations, bytes for sizes.
	jsonBody := `{
		"monitor": {
			"poll_interval": 1000000000,
			"max_text_size": 1048576
		}
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, time.Second, cfg.Monitor.PollInterval)
	assert.Equal(t, ByteSize(1<<20), cfg.Monitor.MaxTextSize)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad_duration.json")

	// token_duration should be a duration string; make it invalid.
	jsonBody := `{
		"app": { "token_duration": "not-a-duration" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidByteSize(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad_size.json")

	jsonBody := `{
		"monitor": { "max_text_size": "ten megabytes" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_EmptyObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// With non-pointer nested structs, all fields are zero values.
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseJSON_PartialObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "partial.json")

	jsonBody := `{
		"storage": { "db": { "path": "/tmp/history.db" } }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "/tmp/history.db", cfg.Storage.DB.Path)
	assert.Empty(t, cfg.Storage.State.Path)

	// Others remain zero
	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Monitor{}, cfg.Monitor)
}
