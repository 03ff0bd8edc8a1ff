package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/gophwallet/internal/flagx"
)

// parseFlags overlays the flags this package owns:
//
//	-a string   address and port of the wallet gRPC endpoint
//	-i int      online check interval (in seconds)
//	-f string   local SQLite database file
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	interval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.DatabaseFile, "f", cfg.DatabaseFile, "local database file")

	if err := fs.Parse(flagx.FilterArgs(args, []string{"-a", "-i", "-f"})); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "i" {
			cfg.OnlineCheckInterval = time.Duration(*interval) * time.Second
		}
	})
	return nil
}
