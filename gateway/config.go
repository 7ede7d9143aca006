// Package gateway serves the agentpay REST routes, health checks and
// Prometheus metrics in front of a node.
package gateway

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Config holds gateway configuration.
type Config struct {
	ListenAddr  string
	MetricsAddr string

	// NodeRPC is the CometBFT RPC address used for queries and health checks.
	NodeRPC string

	CORSOrigins []string

	// RateLimit is requests per second per client IP; zero disables limiting.
	RateLimit float64
	RateBurst int

	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// OTLPEndpoint enables tracing when set (host:port of an OTLP/HTTP collector).
	OTLPEndpoint    string
	TraceSampleRate float64
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		ListenAddr:      "127.0.0.1:1318",
		MetricsAddr:     "127.0.0.1:36660",
		NodeRPC:         "tcp://127.0.0.1:26657",
		CORSOrigins:     []string{"*"},
		RateLimit:       20,
		RateBurst:       40,
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    10 * time.Second,
		TraceSampleRate: 0.1,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.ListenAddr == "" {
		return errors.New("listen address is required")
	}
	if c.NodeRPC == "" {
		return errors.New("node rpc address is required")
	}
	if c.RateLimit < 0 || c.RateBurst < 0 {
		return errors.New("rate limit and burst must not be negative")
	}
	if c.RateLimit > 0 && c.RateBurst == 0 {
		return errors.New("rate burst must be positive when rate limiting is on")
	}
	if c.TraceSampleRate < 0 || c.TraceSampleRate > 1 {
		return fmt.Errorf("trace sample rate %v must be between 0 and 1", c.TraceSampleRate)
	}
	return nil
}

// LoadConfig reads the [gateway] table of a TOML file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigType("toml")
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := ApplyOverrides(&cfg, v, "gateway."); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// ApplyOverrides copies every key set in v (under prefix) onto cfg.
func ApplyOverrides(cfg *Config, v *viper.Viper, prefix string) error {
	var err error
	set := func(key string, apply func(any) error) {
		if err != nil || !v.IsSet(prefix+key) {
			return
		}
		if e := apply(v.Get(prefix + key)); e != nil {
			err = fmt.Errorf("%s: %w", key, e)
		}
	}

	set("listen", func(x any) (e error) { cfg.ListenAddr, e = cast.ToStringE(x); return })
	set("metrics-listen", func(x any) (e error) { cfg.MetricsAddr, e = cast.ToStringE(x); return })
	set("node", func(x any) (e error) { cfg.NodeRPC, e = cast.ToStringE(x); return })
	set("cors-origins", func(x any) (e error) { cfg.CORSOrigins, e = cast.ToStringSliceE(x); return })
	set("rate-limit", func(x any) (e error) { cfg.RateLimit, e = cast.ToFloat64E(x); return })
	set("rate-burst", func(x any) (e error) { cfg.RateBurst, e = cast.ToIntE(x); return })
	set("read-timeout", func(x any) (e error) { cfg.ReadTimeout, e = cast.ToDurationE(x); return })
	set("write-timeout", func(x any) (e error) { cfg.WriteTimeout, e = cast.ToDurationE(x); return })
	set("otlp-endpoint", func(x any) (e error) { cfg.OTLPEndpoint, e = cast.ToStringE(x); return })
	set("trace-sample-rate", func(x any) (e error) { cfg.TraceSampleRate, e = cast.ToFloat64E(x); return })
	return err
}
