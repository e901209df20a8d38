package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvURL, "")
	t.Setenv(EnvToken, "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, NewConfig(), cfg)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, DefaultListen, cfg.Listen)
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	t.Setenv(EnvURL, "")
	t.Setenv(EnvToken, "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Equal(t, NewConfig(), cfg)
}

func TestLoadJSONFile(t *testing.T) {
	t.Setenv(EnvURL, "")
	t.Setenv(EnvToken, "")

	path := writeFile(t, "hecevent.json", `{"url":"https://hec.example.com:443/services/collector/event","token":"T","timeout":3,"disable_tls":true,"resolvers":["10.0.0.1:53"]}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://hec.example.com:443/services/collector/event", cfg.URL)
	assert.Equal(t, "T", cfg.Token)
	assert.Equal(t, 3, cfg.Timeout)
	assert.True(t, cfg.DisableTLS)
	assert.False(t, cfg.DisableKeepAlives)
	assert.Equal(t, DefaultListen, cfg.Listen)
	assert.Equal(t, []string{"10.0.0.1:53"}, cfg.Resolvers)
}

func TestLoadYAMLFileAndEnv(t *testing.T) {
	t.Setenv(EnvURL, "")
	t.Setenv(EnvToken, "from-env")

	path := writeFile(t, "hecevent.yaml", "url: https://hec.example.com/services/collector\ntoken: from-file\nlisten: 127.0.0.1:9000\nchannel: auto\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://hec.example.com/services/collector", cfg.URL)
	assert.Equal(t, "from-env", cfg.Token)
	assert.Equal(t, "127.0.0.1:9000", cfg.Listen)
	assert.Equal(t, "auto", cfg.Channel)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
}

func TestLoadInvalidFile(t *testing.T) {
	path := writeFile(t, "hecevent.json", `{"url":`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidateForSend(t *testing.T) {
	cfg := NewConfig()
	err := cfg.ValidateForSend()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)

	cfg.URL = "not a url"
	cfg.Token = "T"
	cfg.Timeout = -1
	assert.Len(t, multierr.Errors(cfg.ValidateForSend()), 2)

	cfg.URL = "https://hec.example.com/services/collector/event"
	cfg.Timeout = 0
	assert.NoError(t, cfg.ValidateForSend())
}
