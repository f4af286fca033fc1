package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/usersvc/internal/flagx"
	"github.com/dmitrijs2005/usersvc/internal/timex"
)

// JsonConfig is the on-disk shape of the CLI config file.
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
	SessionFile        string         `json:"session_file"`
}

// parseJson overlays values from the file named by -c/-config onto cfg.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("decode config file: %w", err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.SessionFile != "" {
		cfg.SessionFile = jc.SessionFile
	}
	return nil
}
