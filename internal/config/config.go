package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btclog"

	"github.com/Amr-9/SeedHunter/pkg/generator"
)

// Errors
var (
	ErrNoPattern       = errors.New("must specify --prefix and/or --suffix")
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// Config holds the command line configuration
type Config struct {
	Prefix           string
	Suffix           string
	Path             string
	Stop             bool
	Words            int
	PassphrasePrompt bool
	Passphrase       string // Filled in by the prompt, never from a flag
	MaxAttempts      uint64
	Recalibrate      bool
	TwoStep          bool
	Output           string
	Plain            bool
	LogLevel         string
}

// NewConfig creates a new configuration with default values
func NewConfig() *Config {
	return &Config{
		Path:     generator.DefaultDerivationPath,
		Words:    generator.DefaultWordCount,
		LogLevel: "info",
	}
}

// HasPattern reports whether at least one pattern was given
func (c *Config) HasPattern() bool {
	return normalizePrefix(c.Prefix) != "" || normalizeSuffix(c.Suffix) != ""
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if !c.HasPattern() {
		return ErrNoPattern
	}
	if _, ok := btclog.LevelFromString(c.LogLevel); !ok {
		return fmt.Errorf("%w: %q (want trace, debug, info, warn, error, critical or off)",
			ErrInvalidLogLevel, c.LogLevel)
	}
	return c.SearchConfig().Validate()
}

// SearchConfig converts the command line configuration into the search
// configuration. Patterns are trimmed and a leading 0x on the prefix is
// dropped.
func (c *Config) SearchConfig() *generator.Config {
	return &generator.Config{
		Prefix:            normalizePrefix(c.Prefix),
		Suffix:            normalizeSuffix(c.Suffix),
		DerivationPath:    strings.TrimSpace(c.Path),
		StopOnFirstMatch:  c.Stop,
		WordCount:         c.Words,
		Passphrase:        c.Passphrase,
		MaxAttempts:       c.MaxAttempts,
		Recalibrate:       c.Recalibrate,
		TwoStepDerivation: c.TwoStep,
	}
}

// Description returns a human-readable description of the target
func (c *Config) Description() string {
	prefix, suffix := normalizePrefix(c.Prefix), normalizeSuffix(c.Suffix)
	switch {
	case prefix != "" && suffix != "":
		return "prefix: 0x" + prefix + ", suffix: " + suffix
	case prefix != "":
		return "prefix: 0x" + prefix
	case suffix != "":
		return "suffix: " + suffix
	}
	return "unknown"
}

func normalizePrefix(p string) string {
	p = strings.TrimSpace(p)
	if len(p) >= 2 && (p[:2] == "0x" || p[:2] == "0X") {
		p = p[2:]
	}
	return p
}

func normalizeSuffix(s string) string {
	return strings.TrimSpace(s)
}
