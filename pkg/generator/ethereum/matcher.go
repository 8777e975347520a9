package ethereum

import (
	"fmt"
	"strings"

	"github.com/Amr-9/SeedHunter/pkg/generator"
)

// Matcher checks addresses against a hex prefix and/or suffix.
// Patterns are lowercased once so the hot loop only folds the address side.
type Matcher struct {
	prefix []byte // Lowercase hex, compared from just after the 0x marker
	suffix []byte // Lowercase hex, aligned with the end of the address
	equal  func(addr, pattern byte) bool
}

// NewMatcher creates a new Matcher. Both patterns are expected to have passed
// generator.ValidatePattern; an optional 0x on the prefix is ignored.
func NewMatcher(prefix, suffix string) *Matcher {
	prefix = strings.TrimPrefix(strings.ToLower(prefix), addressMarker)
	return &Matcher{
		prefix: []byte(prefix),
		suffix: []byte(strings.ToLower(suffix)),
		equal:  equalFold,
	}
}

// Matches reports whether address satisfies both patterns. It returns an
// ErrAddressFormat error if address is not 0x followed by 40 hex characters.
func (m *Matcher) Matches(address string) (bool, error) {
	if err := CheckAddress(address); err != nil {
		return false, err
	}
	if len(m.prefix) > addressHexLen || len(m.suffix) > addressHexLen {
		return false, nil
	}

	for i, c := range m.prefix {
		if !m.equal(address[addressMarkerLen+i], c) {
			return false, nil
		}
	}

	// Walk the suffix backwards from the last address character
	last := len(address) - 1
	for i := 0; i < len(m.suffix); i++ {
		if !m.equal(address[last-i], m.suffix[len(m.suffix)-1-i]) {
			return false, nil
		}
	}

	return true, nil
}

// CheckAddress validates the 0x + 40 hex layout the matcher indexes into.
func CheckAddress(address string) error {
	if len(address) != addressLen {
		return fmt.Errorf("%w: %q has length %d, want %d",
			generator.ErrAddressFormat, address, len(address), addressLen)
	}
	if address[:addressMarkerLen] != addressMarker {
		return fmt.Errorf("%w: %q does not start with %s",
			generator.ErrAddressFormat, address, addressMarker)
	}
	if !generator.IsValidHex(address[addressMarkerLen:]) {
		return fmt.Errorf("%w: %q is not hex", generator.ErrAddressFormat, address)
	}
	return nil
}

// equalFold compares an address byte with an already-lowercased pattern byte.
func equalFold(addr, pattern byte) bool {
	if addr >= 'A' && addr <= 'F' {
		addr += 'a' - 'A'
	}
	return addr == pattern
}
