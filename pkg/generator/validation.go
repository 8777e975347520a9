package generator

import (
	"fmt"
)

// IsValidHex checks if a string contains only hexadecimal characters.
// Both upper and lower case are accepted.
func IsValidHex(s string) bool {
	return len(InvalidHexChars(s)) == 0
}

// InvalidHexChars returns any non-hex characters in the input.
// Useful for providing helpful error messages to users.
func InvalidHexChars(s string) []rune {
	var invalid []rune
	for _, c := range s {
		if !isHexRune(c) {
			invalid = append(invalid, c)
		}
	}
	return invalid
}

// ValidatePattern checks a prefix or suffix pattern. An empty pattern is valid
// and places no constraint on that side of the address.
func ValidatePattern(name, pattern string) error {
	if invalid := InvalidHexChars(pattern); len(invalid) > 0 {
		return fmt.Errorf("%w: %s %q contains non-hex character(s) %q (allowed: 0-9, a-f)",
			ErrInvalidPattern, name, pattern, string(invalid))
	}
	if len(pattern) > MaxPatternLength {
		return fmt.Errorf("%w: %s is %d characters, an address only has %d",
			ErrInvalidPattern, name, len(pattern), MaxPatternLength)
	}
	return nil
}

func isHexRune(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
