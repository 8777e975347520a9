//go:build windows

package ui

import "syscall"

// hideFile sets the hidden attribute on a file (Windows only)
func hideFile(filename string) {
	filenamePtr, err := syscall.UTF16PtrFromString(filename)
	if err == nil {
		_ = syscall.SetFileAttributes(filenamePtr, syscall.FILE_ATTRIBUTE_HIDDEN)
	}
}
