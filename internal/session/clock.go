package session

import "time"

// Clock abstracts the session's only time dependency — sleeping between
// retries — so tests can drive the full retry/backoff behavior without
// real delays, the same way nedpals-davi-nfc-agent's nfc.Clock keeps its
// device manager testable.
type Clock interface {
	Sleep(d time.Duration)
}

// realClock sleeps for real.
type realClock struct{}

func (realClock) Sleep(d time.Duration) { time.Sleep(d) }
