//go:build !linux

package sinks

import "github.com/S-Sebb/TaikoSmartCardReader/internal/agentlog"

// noopKeystrokeSink logs instead of injecting input on platforms with no
// /dev/uinput. Keystroke injection is explicitly out of the core's hot
// path (spec.md §1), so a missing virtual input device degrades the sink
// rather than the whole agent.
type noopKeystrokeSink struct{}

// NewKeystrokeSink returns the logging no-op sink. key is accepted for
// interface parity with the Linux build but unused.
func NewKeystrokeSink(key int) (KeystrokeSink, error) {
	return &noopKeystrokeSink{}, nil
}

func (s *noopKeystrokeSink) Emit() error {
	agentlog.Warn("keystroke sink unavailable on this platform, skipping key press")
	return nil
}

func (s *noopKeystrokeSink) Close() error {
	return nil
}

// DefaultKey has no meaning off Linux; kept so callers can pass it
// unconditionally.
const DefaultKey = 0
