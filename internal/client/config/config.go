// Package config handles configuration for the terminal client.
package config

import (
	"flag"
	"os"

	"github.com/univerp/authd/internal/flagx"
)

// Config holds runtime settings for the client.
type Config struct {
	ServerAddr string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.ServerAddr = "127.0.0.1:50051"
}

// LoadConfig builds a Config from defaults overridden by command-line flags.
//
// Supported flags:
//
//	-a string   server address (host:port)
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()

	args := flagx.FilterArgs(os.Args[1:], []string{"-a"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerAddr, "a", cfg.ServerAddr, "server address")
	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	return cfg
}
