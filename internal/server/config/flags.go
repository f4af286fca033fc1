package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/usersvc/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      token validity, minutes
//	-f string   log format (json, text, tint)
//	-v string   log level
//
// Flags not listed here are filtered out first, so the -c config flag and
// flags of other components do not collide.
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-s", "-t", "-f", "-v"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	tokenValidity := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "token validity (in minutes)")
	fs.StringVar(&config.LogFormat, "f", config.LogFormat, "log format")
	fs.StringVar(&config.LogLevel, "v", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// only an explicit -t replaces the duration; the minute default would truncate it
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.AccessTokenValidityDuration = time.Duration(*tokenValidity) * time.Minute
		}
	})
	return nil
}
