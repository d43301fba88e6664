package sinks

import "time"

// pressCadence is the press/release/inter-press timing spec.md §4.7 and
// §5 require: hold 100ms, release, wait 100ms, repeat once.
const pressCadence = 100 * time.Millisecond

// KeystrokeSink synthesizes two full press-release cycles of a configured
// virtual key on every successful card read.
type KeystrokeSink interface {
	Emit() error
	Close() error
}
