package main

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// serverConfig holds the resolved server configuration.
type serverConfig struct {
	Port           int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	MaxRequestSize int
	Concurrency    int
	WarmUp         bool
	SlackRatio     float64
	LogFile        string
}

// duration wraps time.Duration so TOML values like "30s" decode naturally.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// fileConfig mirrors serverConfig for TOML decoding. Pointer fields
// distinguish "not set" from zero values so the file only overrides what it
// actually specifies.
type fileConfig struct {
	Port           *int      `toml:"port"`
	ReadTimeout    *duration `toml:"read_timeout"`
	WriteTimeout   *duration `toml:"write_timeout"`
	MaxRequestSize *int      `toml:"max_request_size"`
	Concurrency    *int      `toml:"concurrency"`
	WarmUp         *bool     `toml:"warm_up"`
	SlackRatio     *float64  `toml:"slack_ratio"`
	LogFile        *string   `toml:"log_file"`
}

// loadConfig reads a TOML file and overlays its values onto cfg.
func loadConfig(path string, cfg *serverConfig) error {
	var fc fileConfig
	meta, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key %q in %s", undecoded[0].String(), path)
	}

	if fc.Port != nil {
		cfg.Port = *fc.Port
	}
	if fc.ReadTimeout != nil {
		cfg.ReadTimeout = fc.ReadTimeout.Duration
	}
	if fc.WriteTimeout != nil {
		cfg.WriteTimeout = fc.WriteTimeout.Duration
	}
	if fc.MaxRequestSize != nil {
		cfg.MaxRequestSize = *fc.MaxRequestSize
	}
	if fc.Concurrency != nil {
		cfg.Concurrency = *fc.Concurrency
	}
	if fc.WarmUp != nil {
		cfg.WarmUp = *fc.WarmUp
	}
	if fc.SlackRatio != nil {
		cfg.SlackRatio = *fc.SlackRatio
	}
	if fc.LogFile != nil {
		cfg.LogFile = *fc.LogFile
	}

	return nil
}
