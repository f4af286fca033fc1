package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		expected  *Config
		expectErr bool
	}{
		{
			name:     "all flags",
			args:     []string{"-a", "127.0.0.1:9090", "-t", "10", "-s", "/tmp/s.db"},
			expected: &Config{ServerEndpointAddr: "127.0.0.1:9090", RequestTimeout: 10 * time.Second, SessionFile: "/tmp/s.db"},
		},
		{
			name:     "unknown flags are ignored",
			args:     []string{"-c", "conf.json", "-a", "host:1"},
			expected: &Config{ServerEndpointAddr: "host:1", RequestTimeout: 5 * time.Second, SessionFile: ".usersvc/session.db"},
		},
		{
			name:      "incorrect timeout",
			args:      []string{"-t", "abc"},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.LoadDefaults()

			err := parseFlags(cfg, tt.args)
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}
