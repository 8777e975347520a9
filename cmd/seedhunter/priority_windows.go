//go:build windows

package main

import (
	"syscall"
	"unsafe"
)

// Windows priority constants
const (
	HIGH_PRIORITY_CLASS         = 0x00000080
	ABOVE_NORMAL_PRIORITY_CLASS = 0x00008000
)

var (
	kernel32                  = syscall.NewLazyDLL("kernel32.dll")
	procGetCurrentProcess     = kernel32.NewProc("GetCurrentProcess")
	procSetPriorityClass      = kernel32.NewProc("SetPriorityClass")
	procSetProcessInformation = kernel32.NewProc("SetProcessInformation")
)

// setPriorityClass sets the priority class of the current process
func setPriorityClass(class uintptr) error {
	handle, _, _ := procGetCurrentProcess.Call()

	ret, _, err := procSetPriorityClass.Call(handle, class)
	if ret == 0 {
		return err
	}
	return nil
}

// disableProcessorPowerThrottling opts out of Efficiency Mode.
// Available on Windows 10 1709+ and Windows 11
func disableProcessorPowerThrottling() error {
	handle, _, _ := procGetCurrentProcess.Call()

	// ProcessPowerThrottling = 4
	const ProcessPowerThrottling = 4

	type PROCESS_POWER_THROTTLING_STATE struct {
		Version     uint32
		ControlMask uint32
		StateMask   uint32
	}

	const PROCESS_POWER_THROTTLING_EXECUTION_SPEED = 0x1

	state := PROCESS_POWER_THROTTLING_STATE{
		Version:     1,
		ControlMask: PROCESS_POWER_THROTTLING_EXECUTION_SPEED,
		StateMask:   0, // 0 = disable throttling
	}

	ret, _, err := procSetProcessInformation.Call(
		handle,
		ProcessPowerThrottling,
		uintptr(unsafe.Pointer(&state)),
		unsafe.Sizeof(state),
	)
	if ret == 0 {
		return err
	}
	return nil
}

// raisePriority gives the search loop more CPU time. Failures are logged and
// otherwise ignored.
func raisePriority() {
	// Not REALTIME, which can freeze the system
	if err := setPriorityClass(HIGH_PRIORITY_CLASS); err != nil {
		if err := setPriorityClass(ABOVE_NORMAL_PRIORITY_CLASS); err != nil {
			seedLog.Debugf("Unable to raise process priority: %v", err)
		}
	}

	if err := disableProcessorPowerThrottling(); err != nil {
		seedLog.Debugf("Unable to disable power throttling: %v", err)
	}
}
