package config

import (
	"flag"

	"github.com/dmitrijs2005/habitkeeper/internal/flagx"
)

// parseFlags populates cfg from command-line flags. Unknown arguments are
// filtered out first so -c/-config do not trip the flag set.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-s", "-d", "-p", "-l"}, "-no-color")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StoreDriver, "s", cfg.StoreDriver, "store driver (sqlite|postgres|memory)")
	fs.StringVar(&cfg.StoreDSN, "d", cfg.StoreDSN, "store DSN")
	fs.StringVar(&cfg.PasswordMode, "p", cfg.PasswordMode, "password mode (plain|argon2id)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug|info|warn|error)")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable colored output")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
