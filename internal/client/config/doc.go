// Package config loads runtime configuration for the habitkeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected via -c or -config. Files ending in
//     .yaml or .yml are decoded as YAML, anything else as JSON.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-s string   store driver: sqlite, postgres or memory
//	-d string   store DSN (sqlite file path or postgres URL)
//	-p string   password mode: plain or argon2id
//	-l string   log level: debug, info, warn, error
//	-no-color   disable colored output
//
// File schema (JSON shown, YAML uses the same keys):
//
//	{
//	  "store_driver": "sqlite",
//	  "store_dsn": "habitkeeper.db",
//	  "password_mode": "plain",
//	  "log_level": "warn",
//	  "no_color": false
//	}
package config
