//go:build windows

package exitevent

import (
	"golang.org/x/sys/windows"
)

// windowsEvent backs Event with a real Win32 named, manual-reset event
// via golang.org/x/sys/windows, matching the CreateEvent/SetEvent pair
// the original DLL host expects on PluginExitEvent.
type windowsEvent struct {
	handle windows.Handle
}

// New creates (or opens, if another process already created it) the
// named, manually-reset, initially-unset PluginExitEvent.
func New() (Event, error) {
	namePtr, err := windows.UTF16PtrFromString(Name)
	if err != nil {
		return nil, err
	}
	h, err := windows.CreateEvent(nil, 1 /* manual reset */, 0 /* initially unset */, namePtr)
	// CreateEvent reports ERROR_ALREADY_EXISTS alongside a valid handle
	// when the host created the event first; that handle is the one to
	// signal.
	if err != nil && err != windows.ERROR_ALREADY_EXISTS {
		return nil, err
	}
	return &windowsEvent{handle: h}, nil
}

func (e *windowsEvent) Signal() error {
	return windows.SetEvent(e.handle)
}

func (e *windowsEvent) Close() error {
	return windows.CloseHandle(e.handle)
}
