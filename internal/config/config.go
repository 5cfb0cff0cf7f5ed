// Package config provides configuration management for the visitor list cleaner.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"vlclean/internal/normalizer"
)

// Configuration validation errors.
var (
	ErrMissingSheetName     = errors.New("input.sheet_name is required")
	ErrNoAffirmativeTokens  = errors.New("normalize.affirmative_tokens must not be empty")
	ErrInvalidSwapPolicy    = errors.New("normalize.swap_policy must be 'table' or 'row'")
	ErrInvalidMobilePolicy  = errors.New("normalize.mobile_policy must be 'correct' or 'strip_only'")
	ErrMissingOutputPrefix  = errors.New("output.filename_prefix is required")
	ErrInvalidLogLevel      = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrEmptySynonymValue    = errors.New("normalize.nationality_synonyms values must not be empty")
	ErrEmptyWhitelistEntry  = errors.New("validation.nationality_whitelist entries must not be empty")
)

// Config represents the complete cleaner configuration.
type Config struct {
	Cleaner CleanerConfig `yaml:"cleaner"`
}

// CleanerConfig contains cleaner-specific settings.
type CleanerConfig struct {
	Input      InputConfig      `yaml:"input"`
	Normalize  NormalizeConfig  `yaml:"normalize"`
	Validation ValidationConfig `yaml:"validation"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// InputConfig describes where the visitor table lives in the workbook.
type InputConfig struct {
	SheetName string `yaml:"sheet_name"`
}

// NormalizeConfig tunes the field normalizers and displacement correction.
type NormalizeConfig struct {
	NationalitySynonyms map[string]string `yaml:"nationality_synonyms"`
	AffirmativeTokens   []string          `yaml:"affirmative_tokens"`
	SwapPolicy          string            `yaml:"swap_policy"`
	StrictSwapMarker    bool              `yaml:"strict_swap_marker"`
	MobilePolicy        string            `yaml:"mobile_policy"`
}

// ValidationConfig gates the optional validation extensions. The baseline
// identification consistency rules are always on.
type ValidationConfig struct {
	NationalityWhitelist []string `yaml:"nationality_whitelist"`
	FlagDuplicateNames   bool     `yaml:"flag_duplicate_names"`
}

// OutputConfig controls where and under what name the cleaned workbook is
// written.
type OutputConfig struct {
	Dir            string `yaml:"dir"`
	FilenamePrefix string `yaml:"filename_prefix"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns the configuration used when no file is supplied.
// The synonym map is copied so config merging cannot touch the package
// defaults.
func DefaultConfig() *Config {
	synonyms := make(map[string]string, len(normalizer.DefaultNationalitySynonyms))
	for k, v := range normalizer.DefaultNationalitySynonyms {
		synonyms[k] = v
	}

	return &Config{
		Cleaner: CleanerConfig{
			Input: InputConfig{
				SheetName: "Visitor List",
			},
			Normalize: NormalizeConfig{
				NationalitySynonyms: synonyms,
				AffirmativeTokens:   append([]string(nil), normalizer.DefaultAffirmativeTokens...),
				SwapPolicy:          string(normalizer.SwapPolicyTable),
				StrictSwapMarker:    true,
				MobilePolicy:        string(normalizer.MobilePolicyCorrect),
			},
			Output: OutputConfig{
				Dir:            ".",
				FilenamePrefix: "Cleaned_VisitorList",
			},
			Logging: LoggingConfig{
				Level:  "info",
				Format: "text",
			},
		},
	}
}

// LoadConfig loads configuration from a YAML file. Missing fields keep their
// defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Cleaner.Input.SheetName == "" {
		return ErrMissingSheetName
	}

	if len(c.Cleaner.Normalize.AffirmativeTokens) == 0 {
		return ErrNoAffirmativeTokens
	}

	switch normalizer.SwapPolicy(c.Cleaner.Normalize.SwapPolicy) {
	case normalizer.SwapPolicyTable, normalizer.SwapPolicyRow:
	default:
		return ErrInvalidSwapPolicy
	}

	switch normalizer.MobilePolicy(c.Cleaner.Normalize.MobilePolicy) {
	case normalizer.MobilePolicyCorrect, normalizer.MobilePolicyStripOnly:
	default:
		return ErrInvalidMobilePolicy
	}

	for k, v := range c.Cleaner.Normalize.NationalitySynonyms {
		if v == "" {
			return fmt.Errorf("%w: synonym %q", ErrEmptySynonymValue, k)
		}
	}

	for i, n := range c.Cleaner.Validation.NationalityWhitelist {
		if n == "" {
			return fmt.Errorf("%w: entry[%d]", ErrEmptyWhitelistEntry, i)
		}
	}

	if c.Cleaner.Output.FilenamePrefix == "" {
		return ErrMissingOutputPrefix
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Cleaner.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// Options translates the configuration into cleaning engine options.
func (c *Config) Options() normalizer.Options {
	return normalizer.Options{
		NationalitySynonyms:  c.Cleaner.Normalize.NationalitySynonyms,
		AffirmativeTokens:    c.Cleaner.Normalize.AffirmativeTokens,
		SwapPolicy:           normalizer.SwapPolicy(c.Cleaner.Normalize.SwapPolicy),
		StrictMarker:         c.Cleaner.Normalize.StrictSwapMarker,
		MobilePolicy:         normalizer.MobilePolicy(c.Cleaner.Normalize.MobilePolicy),
		NationalityWhitelist: c.Cleaner.Validation.NationalityWhitelist,
		FlagDuplicateNames:   c.Cleaner.Validation.FlagDuplicateNames,
	}
}
