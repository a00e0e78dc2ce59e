package main

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/serp"
	serphttp "github.com/fwojciec/serp/http"
	"github.com/fwojciec/serp/search"
	"gopkg.in/yaml.v3"
)

// Config holds user defaults read from the config file. They become the
// default values of the matching command-line flags.
type Config struct {
	TLD       string        `yaml:"tld"`
	Lang      string        `yaml:"lang"`
	Count     int           `yaml:"count"`
	News      bool          `yaml:"news"`
	Color     *bool         `yaml:"color"`
	UserAgent string        `yaml:"user_agent"`
	Timeout   time.Duration `yaml:"timeout"`
	Rate      float64       `yaml:"rate"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	color := true
	return &Config{
		TLD:       serp.DefaultTLD,
		Count:     serp.DefaultNum,
		Color:     &color,
		UserAgent: serphttp.DefaultUserAgent,
		Timeout:   serphttp.DefaultTimeout,
		Rate:      search.DefaultRate,
	}
}

// LoadConfig reads the YAML config file at path over the defaults.
// A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, serp.Errorf(serp.EINVALID, "invalid config file %s: %v", path, err)
	}
	if cfg.Count < 1 || cfg.Count > serp.MaxNum {
		return nil, serp.Errorf(serp.EINVALID, "invalid config file %s: count must be between 1 and %d", path, serp.MaxNum)
	}
	if cfg.Timeout <= 0 {
		return nil, serp.Errorf(serp.EINVALID, "invalid config file %s: timeout must be positive", path)
	}
	return cfg, nil
}

// Vars exposes the config as kong interpolation variables.
func (c *Config) Vars() kong.Vars {
	nocolor := c.Color != nil && !*c.Color
	return kong.Vars{
		"tld":        c.TLD,
		"lang":       c.Lang,
		"count":      strconv.Itoa(c.Count),
		"news":       strconv.FormatBool(c.News),
		"nocolor":    strconv.FormatBool(nocolor),
		"user_agent": c.UserAgent,
		"timeout":    c.Timeout.String(),
		"rate":       strconv.FormatFloat(c.Rate, 'f', -1, 64),
	}
}

func defaultConfigPath() string {
	if path := os.Getenv("SERP_CONFIG"); path != "" {
		return path
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "serp", "config.yaml")
}

func defaultDBPath() string {
	if path := os.Getenv("SERP_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "serp.db"
	}
	dir := filepath.Join(home, ".serp")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "history.db")
}
