//go:build !windows

package exitevent

import "sync"

// portableEvent stands in for a named Win32 event on platforms with no
// such kernel object. It satisfies the same manually-reset, signal-once-
// observed-many-times contract via a close-once channel.
type portableEvent struct {
	once   sync.Once
	signal chan struct{}
}

// New returns the portable stand-in for PluginExitEvent. There is nothing
// to name or open here since the event only needs to be observable by
// the process that created it.
func New() (Event, error) {
	return &portableEvent{signal: make(chan struct{})}, nil
}

func (e *portableEvent) Signal() error {
	e.once.Do(func() { close(e.signal) })
	return nil
}

func (e *portableEvent) Close() error {
	return nil
}

// Wait returns a channel that is closed once Signal has been called. It
// is not part of the Event interface, and the CLI harness does not call
// it.
func (e *portableEvent) Wait() <-chan struct{} {
	return e.signal
}
