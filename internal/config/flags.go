package config

import (
	"github.com/spf13/pflag"
)

const (
	flagConfig   = "config"
	flagDB       = "db"
	flagBaseURL  = "base-url"
	flagLang     = "lang"
	flagLogLevel = "log-level"
)

// BindFlags registers the configuration flags on fs. Defaults shown in help
// come from LoadDefaults; only flags set by the user override the file.
func BindFlags(fs *pflag.FlagSet) {
	var d Config
	d.LoadDefaults()

	fs.StringP(flagConfig, "c", "", "config file (.yaml, .yml or .json)")
	fs.String(flagDB, d.DatabasePath, "SQLite database file")
	fs.String(flagBaseURL, d.BaseURL, "base URL of share links")
	fs.String(flagLang, string(d.Language), "display language (ja, en, pt)")
	fs.String(flagLogLevel, d.LogLevel, "log level (debug, info, warn, error)")
}

// applyFlags overlays cfg with the flags of fs that were set explicitly.
func applyFlags(cfg *Config, fs *pflag.FlagSet) error {
	var err error
	fs.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case flagDB:
			cfg.DatabasePath = f.Value.String()
		case flagBaseURL:
			cfg.BaseURL = f.Value.String()
		case flagLang:
			err = cfg.setLanguage(f.Value.String())
		case flagLogLevel:
			cfg.LogLevel = f.Value.String()
		}
	})
	return err
}
