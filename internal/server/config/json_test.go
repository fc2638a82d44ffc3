package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"endpoint_addr_grpc": "www.example:9000",
		"endpoint_addr_http": "www.example:8000",
		"database_driver":    "postgres",
		"database_dsn":       "postgres://db",
		"otp_store":          "redis",
		"redis_url":          "redis://cache:6379/2",
		"otp_validity":       "15m",
		"bcrypt_cost":        11,
		"hash_timeout":       "2s",
		"mail_transport":     "smtp",
		"mail_timeout":       int64(30 * time.Second),
		"smtp_host":          "mail.kongu.edu",
		"smtp_port":          465,
		"smtp_username":      "otp-bot",
		"smtp_password":      "app-password",
		"smtp_from":          "otp@kongu.edu",
		"teacher_domain":     "@staff.example.org",
		"student_domain":     "@students.example.org",
		"log_level":          "warn",
	})

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, &Config{
			EndpointAddrGRPC: "www.example:9000",
			EndpointAddrHTTP: "www.example:8000",
			DatabaseDriver:   "postgres",
			DatabaseDSN:      "postgres://db",
			OTPStore:         "redis",
			RedisURL:         "redis://cache:6379/2",
			OTPValidity:      15 * time.Minute,
			BcryptCost:       11,
			HashTimeout:      2 * time.Second,
			MailTransport:    "smtp",
			MailTimeout:      30 * time.Second,
			SMTPHost:         "mail.kongu.edu",
			SMTPPort:         465,
			SMTPUsername:     "otp-bot",
			SMTPPassword:     "app-password",
			SMTPFrom:         "otp@kongu.edu",
			TeacherDomain:    "@staff.example.org",
			StudentDomain:    "@students.example.org",
			LogLevel:         "warn",
		}, cfg)
	})

	t.Run("short flag", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", pathFlag}

		cfg := &Config{}
		parseJson(cfg)
		assert.Equal(t, "postgres", cfg.DatabaseDriver)
	})

	t.Run("no CONFIG and no flags → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{}
		cfg.LoadDefaults()
		want := *cfg
		parseJson(cfg)

		assert.Equal(t, want, *cfg)
	})

	t.Run("partial file keeps other values", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{"log_level": "debug"})
		os.Args = []string{"testbin", "-config", partial}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, 10*time.Minute, cfg.OTPValidity)
		assert.Equal(t, "memory", cfg.DatabaseDriver)
	})

	t.Run("missing file → panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", filepath.Join(dir, "absent.json")}
		require.Panics(t, func() { parseJson(&Config{}) })
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}
