package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings for the users CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the users service gRPC endpoint.
//   - RequestTimeout: deadline applied to every call to the server.
//   - SessionFile: path of the SQLite file keeping the session between runs.
type Config struct {
	ServerEndpointAddr string        `env:"ADDR"`
	RequestTimeout     time.Duration `env:"TIMEOUT"`
	SessionFile        string        `env:"SESSION_FILE"`
}

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "USERSVC_CLI_"

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 5 * time.Second
	c.SessionFile = ".usersvc/session.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:], os.Environ())
}

func load(args []string, environ []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, environ); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}

	return cfg, nil
}

func parseEnv(cfg *Config, environ []string) error {
	vars := make(map[string]string, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix, Environment: vars}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
