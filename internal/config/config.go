package config

import (
	"fmt"

	"github.com/dmitrijs2005/ospassport/internal/i18n"
	"github.com/dmitrijs2005/ospassport/internal/models"
	"github.com/spf13/pflag"
)

// Config holds runtime settings for the passport CLI.
type Config struct {
	DatabasePath string
	// BaseURL is the page share links point to; the token is added as a
	// query parameter.
	BaseURL  string
	Language i18n.Lang
	StampCap int

	LogLevel   string
	LogBackend string

	// DictationSource is a file or FIFO delivering transcript lines. Empty
	// disables dictation.
	DictationSource string
	// QROutput is the directory PNG QR codes are written to. Empty disables
	// PNG output.
	QROutput string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "passport.db"
	c.BaseURL = "http://localhost:5173/"
	c.Language = i18n.Japanese
	c.StampCap = models.DefaultStampCap
	c.LogLevel = "warn"
	c.LogBackend = "slog"
	c.DictationSource = ""
	c.QROutput = ""
}

// Load builds a Config from defaults, the config file named by the --config
// flag of fs, and the flags of fs that were set. fs must have been populated
// by BindFlags and parsed.
func Load(fs *pflag.FlagSet) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	path, err := fs.GetString(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to read config flag: %w", err)
	}
	if path != "" {
		if err := parseFile(cfg, path); err != nil {
			return nil, err
		}
	}

	if err := applyFlags(cfg, fs); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports settings that cannot work.
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("invalid config: database path is empty")
	}
	if c.StampCap <= 0 {
		return fmt.Errorf("invalid config: stamp_cap must be positive, got %d", c.StampCap)
	}
	switch c.LogBackend {
	case "slog", "zap":
	default:
		return fmt.Errorf("invalid config: unknown log backend %q", c.LogBackend)
	}
	return nil
}

// setLanguage normalises a language tag or locale.
func (c *Config) setLanguage(s string) error {
	l, err := i18n.ParseLanguage(s)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	c.Language = l
	return nil
}
