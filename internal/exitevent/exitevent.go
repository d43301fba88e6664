// Package exitevent models PluginExitEvent: a named, manually-reset,
// initially-unset OS event the host loader waits on to know the agent's
// worker has fully torn down (spec.md §6).
package exitevent

// Event is a named, manually-reset, initially-unset signal. Signal may be
// called more than once; subsequent calls are no-ops, matching a
// manual-reset Windows event that is never explicitly reset.
type Event interface {
	// Signal sets the event.
	Signal() error
	// Close releases any OS resources backing the event.
	Close() error
}

// Name is the event name the host loader looks for.
const Name = "PluginExitEvent"
