package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileConfig is a DTO used exclusively for config file unmarshalling.
// Pointers tell keys left out of the file apart from zero values.
type FileConfig struct {
	DatabasePath    *string `yaml:"database_path" json:"database_path"`
	BaseURL         *string `yaml:"base_url" json:"base_url"`
	Language        *string `yaml:"language" json:"language"`
	StampCap        *int    `yaml:"stamp_cap" json:"stamp_cap"`
	LogLevel        *string `yaml:"log_level" json:"log_level"`
	LogBackend      *string `yaml:"log_backend" json:"log_backend"`
	DictationSource *string `yaml:"dictation_source" json:"dictation_source"`
	QROutput        *string `yaml:"qr_output" json:"qr_output"`
}

// parseFile overlays cfg with the keys present in the file at path.
func parseFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fc FileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &fc); err != nil {
			return fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported config file format: %q", ext)
	}

	setString(&cfg.DatabasePath, fc.DatabasePath)
	setString(&cfg.BaseURL, fc.BaseURL)
	setString(&cfg.LogLevel, fc.LogLevel)
	setString(&cfg.LogBackend, fc.LogBackend)
	setString(&cfg.DictationSource, fc.DictationSource)
	setString(&cfg.QROutput, fc.QROutput)
	if fc.StampCap != nil {
		cfg.StampCap = *fc.StampCap
	}
	if fc.Language != nil {
		if err := cfg.setLanguage(*fc.Language); err != nil {
			return err
		}
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
