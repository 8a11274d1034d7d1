package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Config controls the server behavior. It is intentionally simple: one
// listen address, one base directory for the file resource handler, and
// a few protocol/concurrency limits.
type Config struct {
	// Listen address, e.g. "127.0.0.1:4221" or ":4221".
	Listen string `json:"listen"`

	// BaseDir is the directory the /files/ handler is confined to. It is
	// resolved to an absolute path and existence-checked at startup.
	BaseDir string `json:"base_dir"`

	// MaxBodyBytes caps the declared Content-Length of a request body.
	MaxBodyBytes int `json:"max_body_bytes"`

	// MaxConns bounds the number of concurrently handled connections.
	// 0 means unbounded.
	MaxConns int `json:"max_conns"`

	// Per-connection deadlines in seconds. 0 disables the deadline.
	ReadTimeoutSec  int `json:"read_timeout_sec"`
	WriteTimeoutSec int `json:"write_timeout_sec"`

	// LogRequests controls whether the server keeps a per-request log.
	LogRequests bool `json:"log_requests"`
}

func Default() Config {
	return Config{
		Listen:          "127.0.0.1:4221",
		BaseDir:         "./data",
		MaxBodyBytes:    1024,
		MaxConns:        256,
		ReadTimeoutSec:  10,
		WriteTimeoutSec: 10,
		LogRequests:     true,
	}
}

// Load reads a JSON config file over the defaults. An empty path yields
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Listen == "" {
		c.Listen = "127.0.0.1:4221"
	}
	if c.BaseDir == "" {
		c.BaseDir = "./data"
	}
	if c.MaxBodyBytes == 0 {
		c.MaxBodyBytes = 1024
	}
	if c.MaxBodyBytes < 0 {
		return fmt.Errorf("max_body_bytes must be >= 0")
	}
	if c.MaxConns < 0 {
		return fmt.Errorf("max_conns must be >= 0")
	}
	if c.ReadTimeoutSec < 0 || c.WriteTimeoutSec < 0 {
		return fmt.Errorf("timeouts must be >= 0")
	}
	return nil
}

func (c Config) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSec) * time.Second
}

func (c Config) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSec) * time.Second
}
