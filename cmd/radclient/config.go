package main

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/vitalvas/radclient/pkg/client"
)

type config struct {
	Server        string
	Secret        string
	ReplyTimeout  time.Duration
	Retries       int
	NASIP         net.IP
	NASIdentifier string
	Dictionary    string
	LogLevel      string
}

type fileConfig struct {
	Server        string `toml:"server"`
	Secret        string `toml:"secret"`
	ReplyTimeout  any    `toml:"reply_timeout"`
	Retries       int    `toml:"retries"`
	NASIP         string `toml:"nas_ip"`
	NASIdentifier string `toml:"nas_identifier"`
	Dictionary    string `toml:"dictionary"`
	LogLevel      string `toml:"log_level"`
}

func defaultConfig() config {
	return config{
		ReplyTimeout: client.DefaultReplyTimeout,
		Retries:      client.DefaultRetries,
		LogLevel:     "warn",
	}
}

// loadConfigFile overlays the keys present in the TOML file at path onto cfg
func loadConfigFile(path string, cfg *config) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("server") {
		cfg.Server = strings.TrimSpace(raw.Server)
	}

	if meta.IsDefined("secret") {
		cfg.Secret = raw.Secret
	}

	if meta.IsDefined("reply_timeout") {
		d, err := timeoutValue(raw.ReplyTimeout)
		if err != nil {
			return fmt.Errorf("parse reply_timeout: %w", err)
		}
		cfg.ReplyTimeout = d
	}

	if meta.IsDefined("retries") {
		cfg.Retries = raw.Retries
	}

	if meta.IsDefined("nas_ip") {
		ip := net.ParseIP(strings.TrimSpace(raw.NASIP))
		if ip == nil {
			return fmt.Errorf("parse nas_ip: invalid address %q", raw.NASIP)
		}
		cfg.NASIP = ip
	}

	if meta.IsDefined("nas_identifier") {
		cfg.NASIdentifier = strings.TrimSpace(raw.NASIdentifier)
	}

	if meta.IsDefined("dictionary") {
		cfg.Dictionary = strings.TrimSpace(raw.Dictionary)
	}

	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}

	return nil
}

// timeoutValue converts a TOML reply_timeout: integers and floats are seconds,
// strings go through parseTimeout
func timeoutValue(v any) (time.Duration, error) {
	var d time.Duration
	switch val := v.(type) {
	case int64:
		d = time.Duration(val) * time.Second
	case float64:
		d = time.Duration(val * float64(time.Second))
	case string:
		return parseTimeout(val)
	default:
		return 0, fmt.Errorf("invalid duration type %T", v)
	}

	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive, got %s", d)
	}
	return d, nil
}

// parseTimeout accepts a Go duration ("1500ms") or a plain number of seconds ("60")
func parseTimeout(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)

	d, err := time.ParseDuration(s)
	if err != nil {
		d, err = time.ParseDuration(s + "s")
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
	}

	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive, got %s", d)
	}
	return d, nil
}

func (c config) validate() error {
	if c.Server == "" {
		return fmt.Errorf("server is required")
	}
	if c.Secret == "" {
		return fmt.Errorf("secret is required")
	}
	if c.Retries < 0 {
		return fmt.Errorf("retries cannot be negative")
	}
	return nil
}
