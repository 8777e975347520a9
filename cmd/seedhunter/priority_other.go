//go:build !windows

package main

// raisePriority is a no-op outside Windows. Run the binary under nice(1) for
// the same effect.
func raisePriority() {}
