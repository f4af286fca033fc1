package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/usersvc/internal/flagx"
	"github.com/dmitrijs2005/usersvc/internal/timex"
)

// JsonConfig is the on-disk shape of the JSON config file. Durations use
// timex.Duration so both "4h" and integer nanoseconds are accepted.
type JsonConfig struct {
	EndpointAddrGRPC            string         `json:"endpoint_addr_grpc"`
	DatabaseDSN                 string         `json:"database_dsn"`
	SecretKey                   string         `json:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	BcryptCost                  int            `json:"bcrypt_cost"`
	LogFormat                   string         `json:"log_format"`
	LogLevel                    string         `json:"log_level"`
	DefaultPageLimit            int            `json:"default_page_limit"`
	BootstrapAdminUsername      string         `json:"bootstrap_admin_username"`
	BootstrapAdminEmail         string         `json:"bootstrap_admin_email"`
	BootstrapAdminPassword      string         `json:"bootstrap_admin_password"`
}

// parseJson overlays values from the file named by -c/-config onto config.
// Only keys present with non-zero values replace the current settings.
func parseJson(config *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("decode config file: %w", err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	if c.AccessTokenValidityDuration.Duration > 0 {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.BcryptCost > 0 {
		config.BcryptCost = c.BcryptCost
	}
	setString(&config.LogFormat, c.LogFormat)
	setString(&config.LogLevel, c.LogLevel)
	if c.DefaultPageLimit > 0 {
		config.DefaultPageLimit = c.DefaultPageLimit
	}
	setString(&config.BootstrapAdminUsername, c.BootstrapAdminUsername)
	setString(&config.BootstrapAdminEmail, c.BootstrapAdminEmail)
	setString(&config.BootstrapAdminPassword, c.BootstrapAdminPassword)

	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
