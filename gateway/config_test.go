package gateway

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gateway.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[gateway]
listen = "0.0.0.0:8080"
node = "tcp://node:26657"
cors-origins = ["https://app.example"]
rate-limit = 5
rate-burst = 10
read-timeout = "3s"
trace-sample-rate = 0.5
`), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0:8080", cfg.ListenAddr)
	require.Equal(t, "tcp://node:26657", cfg.NodeRPC)
	require.Equal(t, []string{"https://app.example"}, cfg.CORSOrigins)
	require.Equal(t, 5.0, cfg.RateLimit)
	require.Equal(t, 10, cfg.RateBurst)
	require.Equal(t, 3*time.Second, cfg.ReadTimeout)
	require.Equal(t, DefaultConfig().WriteTimeout, cfg.WriteTimeout)
	require.Equal(t, 0.5, cfg.TraceSampleRate)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[gateway]\nrate-burst = \"many\"\n"), 0o600))
	_, err = LoadConfig(path)
	require.ErrorContains(t, err, "rate-burst")
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no listen", func(c *Config) { c.ListenAddr = "" }},
		{"no node", func(c *Config) { c.NodeRPC = "" }},
		{"negative rate", func(c *Config) { c.RateLimit = -1 }},
		{"zero burst", func(c *Config) { c.RateBurst = 0 }},
		{"sample rate", func(c *Config) { c.TraceSampleRate = 1.5 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}
