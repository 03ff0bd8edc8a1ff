package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/gophwallet/internal/flagx"
)

var knownFlags = []string{"-w", "-a", "-b", "-d", "-m", "-s", "-t", "-r", "-T", "-n", "-v"}

// parseFlags populates Config fields from command-line flags.
//
//	-w string     HTTP bind address
//	-a string     gRPC bind address
//	-b string     storage backend: postgres, mongo or memory
//	-d string     PostgreSQL DSN
//	-m string     MongoDB URI
//	-s string     JWT HMAC secret key
//	-t int        access token validity, minutes
//	-r int        refresh token validity, minutes
//	-T duration   transfer timeout, e.g. "3s"
//	-n string     NATS URL; empty disables notifications
//	-v string     log level
func parseFlags(config *Config, args []string) error {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrHTTP, "w", config.EndpointAddrHTTP, "HTTP address and port")
	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "gRPC address and port")
	fs.StringVar(&config.Storage, "b", config.Storage, "storage backend")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.MongoURI, "m", config.MongoURI, "MongoDB URI")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTTL := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access token validity (in minutes)")
	refreshTTL := fs.Int("r", int(config.RefreshTokenValidityDuration.Minutes()), "refresh token validity (in minutes)")

	fs.DurationVar(&config.TransferTimeout, "T", config.TransferTimeout, "transfer timeout")
	fs.StringVar(&config.NatsURL, "n", config.NatsURL, "NATS URL")
	fs.StringVar(&config.LogLevel, "v", config.LogLevel, "log level")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		return err
	}

	// Only touch the token lifetimes when the flag was given, so sub-minute
	// values from other sources survive.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			config.AccessTokenValidityDuration = time.Duration(*accessTTL) * time.Minute
		case "r":
			config.RefreshTokenValidityDuration = time.Duration(*refreshTTL) * time.Minute
		}
	})
	return nil
}
