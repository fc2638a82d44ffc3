package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/campusgate/internal/flagx"
	"github.com/dmitrijs2005/campusgate/internal/timex"
)

// JsonConfig is the on-disk shape of the server configuration. Durations
// accept "10m"-style strings or integer nanoseconds. Fields left out of the
// file keep their current value.
type JsonConfig struct {
	EndpointAddrGRPC string         `json:"endpoint_addr_grpc"`
	EndpointAddrHTTP string         `json:"endpoint_addr_http"`
	DatabaseDriver   string         `json:"database_driver"`
	DatabaseDSN      string         `json:"database_dsn"`
	OTPStore         string         `json:"otp_store"`
	RedisURL         string         `json:"redis_url"`
	OTPValidity      timex.Duration `json:"otp_validity"`
	BcryptCost       int            `json:"bcrypt_cost"`
	HashTimeout      timex.Duration `json:"hash_timeout"`
	MailTransport    string         `json:"mail_transport"`
	MailTimeout      timex.Duration `json:"mail_timeout"`
	SMTPHost         string         `json:"smtp_host"`
	SMTPPort         int            `json:"smtp_port"`
	SMTPUsername     string         `json:"smtp_username"`
	SMTPPassword     string         `json:"smtp_password"`
	SMTPFrom         string         `json:"smtp_from"`
	TeacherDomain    string         `json:"teacher_domain"`
	StudentDomain    string         `json:"student_domain"`
	LogLevel         string         `json:"log_level"`
}

// parseJson overlays values from the JSON file named by -c or -config.
// Without either flag nothing is loaded. An unreadable or malformed file
// panics, like a bad flag does.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigPath(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.DatabaseDriver, c.DatabaseDriver)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.OTPStore, c.OTPStore)
	setString(&config.RedisURL, c.RedisURL)
	setDuration(&config.OTPValidity, c.OTPValidity)
	setInt(&config.BcryptCost, c.BcryptCost)
	setDuration(&config.HashTimeout, c.HashTimeout)
	setString(&config.MailTransport, c.MailTransport)
	setDuration(&config.MailTimeout, c.MailTimeout)
	setString(&config.SMTPHost, c.SMTPHost)
	setInt(&config.SMTPPort, c.SMTPPort)
	setString(&config.SMTPUsername, c.SMTPUsername)
	setString(&config.SMTPPassword, c.SMTPPassword)
	setString(&config.SMTPFrom, c.SMTPFrom)
	setString(&config.TeacherDomain, c.TeacherDomain)
	setString(&config.StudentDomain, c.StudentDomain)
	setString(&config.LogLevel, c.LogLevel)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v timex.Duration) {
	if v.Duration != 0 {
		*dst = v.Duration
	}
}
