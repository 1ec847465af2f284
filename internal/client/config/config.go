package config

import (
	"fmt"
	"os"

	"github.com/dmitrijs2005/habitkeeper/internal/client/kvstore"
)

const (
	PasswordPlain    = "plain"
	PasswordArgon2id = "argon2id"
)

// Config holds runtime settings for the habitkeeper CLI.
type Config struct {
	StoreDriver  string
	StoreDSN     string
	PasswordMode string
	LogLevel     string
	NoColor      bool
}

// LoadDefaults populates c with defaults: a local sqlite file, plaintext
// passwords (compatible with the browser layout) and warn-level logging.
func (c *Config) LoadDefaults() {
	c.StoreDriver = kvstore.DriverSQLite
	c.StoreDSN = "habitkeeper.db"
	c.PasswordMode = PasswordPlain
	c.LogLevel = "warn"
	c.NoColor = false
}

// Validate reports settings no component can work with.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case kvstore.DriverSQLite, kvstore.DriverPostgres, kvstore.DriverMemory:
	default:
		return fmt.Errorf("unsupported store driver %q", c.StoreDriver)
	}
	if c.StoreDriver != kvstore.DriverMemory && c.StoreDSN == "" {
		return fmt.Errorf("store driver %q needs a DSN", c.StoreDriver)
	}
	switch c.PasswordMode {
	case PasswordPlain, PasswordArgon2id:
	default:
		return fmt.Errorf("unsupported password mode %q", c.PasswordMode)
	}
	return nil
}

// LoadConfig constructs a Config from defaults, the optional config file
// and command-line flags, in that order.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
