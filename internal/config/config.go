// Package config loads duet.yaml.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aretw0/duet/pkg/puzzle"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "duet.yaml"

// Config is the decoded configuration file.
type Config struct {
	Inputs    string               `json:"inputs" mapstructure:"inputs"`
	Pattern   string               `json:"pattern" mapstructure:"pattern"`
	LogLevel  string               `json:"log_level" mapstructure:"log_level"`
	LogFormat string               `json:"log_format" mapstructure:"log_format"`
	Metrics   bool                 `json:"metrics" mapstructure:"metrics"`
	Days      map[string]DayConfig `json:"days" mapstructure:"days"`
}

// DayConfig holds per-day overrides.
type DayConfig struct {
	Input    string `json:"input" mapstructure:"input"`
	Disabled bool   `json:"disabled" mapstructure:"disabled"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Inputs:    "resources",
		Pattern:   "{{day}}.txt",
		LogLevel:  "info",
		LogFormat: "text",
		Days:      map[string]DayConfig{},
	}
}

// Load reads a configuration file (YAML or JSON). A missing file yields
// the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	raw := map[string]any{}
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}
	return Decode(raw)
}

// Decode applies raw values on top of the defaults. Scalars are weakly
// typed, so "true", 1 and true all enable a flag.
func Decode(raw map[string]any) (Config, error) {
	cfg := Default()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Config{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values mapstructure cannot.
func (c Config) Validate() error {
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid config: log_format %q (want text or json)", c.LogFormat)
	}
	if c.Pattern == "" {
		return fmt.Errorf("invalid config: empty pattern")
	}
	for key := range c.Days {
		if _, err := puzzle.ParseDay(key); err != nil {
			return fmt.Errorf("invalid config: days: %w", err)
		}
	}
	return nil
}

// ForDay returns the overrides for d. Keys may be written "day07", "day7"
// or "7".
func (c Config) ForDay(d puzzle.Day) DayConfig {
	for _, key := range []string{d.String(), "day" + strconv.Itoa(int(d)), strconv.Itoa(int(d))} {
		if dc, ok := c.Days[key]; ok {
			return dc
		}
	}
	return DayConfig{}
}

// InputPath resolves the input file for d: the day's override if set
// (relative to Inputs unless absolute), otherwise Pattern under Inputs.
// Pattern understands {{day}} ("day07") and {{n}} ("7").
func (c Config) InputPath(d puzzle.Day) string {
	name := c.ForDay(d).Input
	if name == "" {
		name = strings.NewReplacer("{{day}}", d.String(), "{{n}}", strconv.Itoa(int(d))).Replace(c.Pattern)
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Inputs, name)
}
