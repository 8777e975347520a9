//go:build !windows

package ui

// hideFile is a no-op outside Windows; dot-files are the convention there.
func hideFile(string) {}
