// Package config loads runtime configuration for the passport CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or --config. The format follows
//     the extension: .yaml/.yml or .json.
//  3. Command-line flags (see BindFlags), which override earlier values when
//     they are set explicitly.
//
// Supported flags
//
//	-c, --config string      config file
//	    --db string          SQLite database file
//	    --base-url string    base URL of share links
//	    --lang string        display language (ja, en, pt or a locale such as pt_BR.UTF-8)
//	    --log-level string   debug, info, warn or error
//
// # File schema
//
//	database_path: passport.db
//	base_url: https://passport.example/
//	language: en
//	stamp_cap: 10
//	log_level: info
//	log_backend: slog      # or zap
//	dictation_source: /tmp/stt.fifo
//	qr_output: qr
//
// Keys missing from the file keep their default.
package config
