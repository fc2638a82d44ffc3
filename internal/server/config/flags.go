package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/campusgate/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-h string   HTTP bind address (e.g., ":8080")
//	-D string   database driver: postgres, sqlite, mysql or memory
//	-d string   database DSN
//	-o string   OTP store: memory or redis
//	-r string   Redis URL
//	-t int      OTP validity, minutes
//	-b int      bcrypt cost
//	-m string   mail transport: smtp or log
//	-l string   log level
//
// Other arguments are filtered out with flagx.FilterArgs first.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-h", "-D", "-d", "-o", "-r", "-t", "-b", "-m", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "gRPC address and port")
	fs.StringVar(&config.EndpointAddrHTTP, "h", config.EndpointAddrHTTP, "HTTP address and port")
	fs.StringVar(&config.DatabaseDriver, "D", config.DatabaseDriver, "database driver (postgres|sqlite|mysql|memory)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.OTPStore, "o", config.OTPStore, "OTP store (memory|redis)")
	fs.StringVar(&config.RedisURL, "r", config.RedisURL, "Redis URL")

	otpValidity := fs.Int("t", int(config.OTPValidity.Minutes()), "otp validity (in minutes)")

	fs.IntVar(&config.BcryptCost, "b", config.BcryptCost, "bcrypt cost")
	fs.StringVar(&config.MailTransport, "m", config.MailTransport, "mail transport (smtp|log)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.OTPValidity = time.Duration(*otpValidity) * time.Minute
}
