package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd",
			"-a", "127.0.0.1:9090", "-h", "127.0.0.1:8081", "-D", "mysql", "-d", "db",
			"-o", "redis", "-r", "redis://cache:6379/1", "-t", "3", "-b", "12", "-m", "smtp", "-l", "debug",
		}, expected: &Config{
			EndpointAddrGRPC: "127.0.0.1:9090",
			EndpointAddrHTTP: "127.0.0.1:8081",
			DatabaseDriver:   "mysql",
			DatabaseDSN:      "db",
			OTPStore:         "redis",
			RedisURL:         "redis://cache:6379/1",
			OTPValidity:      3 * time.Minute,
			BcryptCost:       12,
			MailTransport:    "smtp",
			LogLevel:         "debug",
		}},
		{name: "foreign flags ignored", args: []string{"cmd", "-x", "1", "-c", "cfg.json", "-t", "7"},
			expected: &Config{OTPValidity: 7 * time.Minute}},
		{name: "bad int panics", args: []string{"cmd", "-b", "lots"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origArgs := os.Args
			t.Cleanup(func() { os.Args = origArgs })
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
