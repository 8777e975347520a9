// Package generator defines the shared types for seed-phrase vanity search:
// the search configuration, the per-iteration candidate and the match result
// handed to reporters. Key derivation lives in the network sub-packages and the
// search loop itself in package search.
package generator

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
)

// DefaultDerivationPath is the BIP-44 path used by MetaMask, Ledger Live and
// most browser wallets for the first Ethereum account.
const DefaultDerivationPath = "m/44'/60'/0'/0/0"

// DefaultWordCount matches the 128 bits of entropy used by common wallets.
const DefaultWordCount = 12

// MaxPatternLength is the number of hex characters in an address body.
const MaxPatternLength = 40

// Errors
var (
	// ErrConfig is the parent of every error detected before the search
	// starts. Configuration errors are fatal and never retried.
	ErrConfig = errors.New("configuration error")

	ErrInvalidPattern   = fmt.Errorf("%w: invalid pattern", ErrConfig)
	ErrInvalidPath      = fmt.Errorf("%w: invalid derivation path", ErrConfig)
	ErrInvalidWordCount = fmt.Errorf("%w: invalid mnemonic word count", ErrConfig)

	// ErrDerivation is returned when the key provider cannot produce an
	// account for a mnemonic and path.
	ErrDerivation = errors.New("derivation failed")

	// ErrAddressFormat is returned when an address does not have the
	// 0x-prefixed, 40 hex character layout the matcher relies on.
	ErrAddressFormat = errors.New("unexpected address format")
)

// Config holds the configuration for a single search run. It is built once
// before the search starts and never mutated afterwards.
type Config struct {
	Prefix           string // Desired hex prefix after the 0x marker (case-insensitive)
	Suffix           string // Desired hex suffix (case-insensitive)
	DerivationPath   string // BIP-32 path of the account whose address is matched
	StopOnFirstMatch bool   // Stop after the first match instead of searching on

	WordCount         int    // Mnemonic length in words (12, 15, 18, 21 or 24)
	Passphrase        string // Optional BIP-39 passphrase
	MaxAttempts       uint64 // Stop after this many candidates; 0 means unbounded
	Recalibrate       bool   // Re-measure throughput every batch instead of decaying linearly
	TwoStepDerivation bool   // Always create at the default path, then re-derive
}

// Validate checks the configuration and returns an error wrapping ErrConfig
// for the first problem found.
func (c *Config) Validate() error {
	if err := ValidatePattern("prefix", c.Prefix); err != nil {
		return err
	}
	if err := ValidatePattern("suffix", c.Suffix); err != nil {
		return err
	}
	if _, err := ParseDerivationPath(c.DerivationPath); err != nil {
		return err
	}
	if _, err := EntropyBits(c.WordCount); err != nil {
		return err
	}
	return nil
}

// IsDefaultPath reports whether the configured path is the standard wallet path.
func (c *Config) IsDefaultPath() bool {
	return IsDefaultPath(c.DerivationPath)
}

// ParseDerivationPath parses an absolute BIP-32 path such as m/44'/60'/0'/0/7.
// Relative paths are rejected so that the derived account is never silently
// rebased onto a wallet-specific root.
func ParseDerivationPath(path string) (accounts.DerivationPath, error) {
	path = strings.TrimSpace(path)
	if !strings.HasPrefix(path, "m/") {
		return nil, fmt.Errorf("%w: %q must start with m/", ErrInvalidPath, path)
	}
	parsed, err := accounts.ParseDerivationPath(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPath, path, err)
	}
	return parsed, nil
}

// IsDefaultPath reports whether path parses to DefaultDerivationPath.
func IsDefaultPath(path string) bool {
	parsed, err := ParseDerivationPath(path)
	if err != nil {
		return false
	}
	return parsed.String() == accounts.DefaultBaseDerivationPath.String()
}

// EntropyBits maps a mnemonic word count to the BIP-39 entropy size.
// Zero selects DefaultWordCount.
func EntropyBits(words int) (int, error) {
	switch words {
	case 0:
		return 128, nil
	case 12, 15, 18, 21, 24:
		return words / 3 * 32, nil
	default:
		return 0, fmt.Errorf("%w: %d (want 12, 15, 18, 21 or 24)", ErrInvalidWordCount, words)
	}
}

// Candidate is one generated account: a fresh mnemonic and the address derived
// from it. Candidates live for a single iteration unless they match.
type Candidate struct {
	Mnemonic string // Space-separated BIP-39 words
	Address  string // 0x-prefixed EIP-55 address
	Path     string // Derivation path the address was derived at
}

// Result contains a candidate that matched the configured pattern.
type Result struct {
	Candidate
	Iterations uint64        // 1-based index of the matching candidate
	Elapsed    time.Duration // Time since the search started
}
