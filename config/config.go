// SPDX-License-Identifier: MIT

// Package config loads the eofrotate command configuration: built-in defaults,
// overlaid by an optional YAML file, overlaid by EOFROT_* environment
// variables, then checked with struct validation tags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of every environment override. Keys are derived
// from field names (EOFROT_ARCHIVE_PATH, EOFROT_CALENDAR_NO_LEAP,
// EOFROT_LOG_LEVEL); there is no unprefixed fallback.
const EnvPrefix = "EOFROT"

// Config is the complete command configuration.
type Config struct {
	Archive   ArchiveConfig   `yaml:"archive"`
	Calendar  CalendarConfig  `yaml:"calendar"`
	Decompose DecomposeConfig `yaml:"decompose"`
	Sign      SignConfig      `yaml:"sign"`
	Report    ReportConfig    `yaml:"report"`
	Log       LogConfig       `yaml:"log"`
}

// ArchiveConfig locates the run database.
type ArchiveConfig struct {
	Path string `yaml:"path" validate:"required"`
}

// CalendarConfig selects the cycle length: 365 days when NoLeap, else 366.
type CalendarConfig struct {
	NoLeap bool `yaml:"no_leap" split_words:"true"`
}

// DecomposeConfig selects how raw EOF pairs are computed from observation
// windows. Workers = 0 uses GOMAXPROCS.
type DecomposeConfig struct {
	Backend string `yaml:"backend" validate:"oneof=gonum jacobi"`
	Workers int    `yaml:"workers" validate:"gte=0"`
}

// SignConfig controls sign alignment. ReferenceRun, if set, is the archive
// run whose day 1 pins the sign convention.
type SignConfig struct {
	ReferenceRun string `yaml:"reference_run" split_words:"true" validate:"omitempty,uuid"`
}

// ReportConfig names optional report outputs; empty disables each one.
// MeanFrom/MeanTo select the day-of-year range [MeanFrom, MeanTo) whose
// mean EOF maps are added to the workbook; MeanFrom = 0 disables them.
type ReportConfig struct {
	XLSX     string `yaml:"xlsx" validate:"omitempty,endswith=.xlsx"`
	Plot     string `yaml:"plot"`
	MeanFrom int    `yaml:"mean_from" split_words:"true" validate:"gte=0,lte=366"`
	MeanTo   int    `yaml:"mean_to" split_words:"true" validate:"required_with=MeanFrom,omitempty,gtfield=MeanFrom,lte=367"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Archive:   ArchiveConfig{Path: "eofrot.db"},
		Calendar:  CalendarConfig{NoLeap: false},
		Decompose: DecomposeConfig{Backend: "gonum"},
		Log:       LogConfig{Level: "info", Format: "text"},
	}
}

// Load builds the configuration. path may be empty (no file).
// Unknown YAML keys are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the validation tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}

	return nil
}
