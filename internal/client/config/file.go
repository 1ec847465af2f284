package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/habitkeeper/internal/flagx"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of the config file. Empty fields leave
// the current value alone.
type FileConfig struct {
	StoreDriver  string `json:"store_driver" yaml:"store_driver"`
	StoreDSN     string `json:"store_dsn" yaml:"store_dsn"`
	PasswordMode string `json:"password_mode" yaml:"password_mode"`
	LogLevel     string `json:"log_level" yaml:"log_level"`
	NoColor      *bool  `json:"no_color" yaml:"no_color"`
}

// parseFile overlays cfg with the file named by -c/-config, if any.
// It panics on read or decode errors.
func parseFile(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func (fc FileConfig) apply(cfg *Config) {
	if fc.StoreDriver != "" {
		cfg.StoreDriver = fc.StoreDriver
	}
	if fc.StoreDSN != "" {
		cfg.StoreDSN = fc.StoreDSN
	}
	if fc.PasswordMode != "" {
		cfg.PasswordMode = fc.PasswordMode
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if fc.NoColor != nil {
		cfg.NoColor = *fc.NoColor
	}
}
