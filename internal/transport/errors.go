package transport

import (
	"errors"

	"github.com/ebfe/scard"
)

// IsCardGone reports whether err indicates the card was reset or removed
// mid-exchange — the TransientTransport cases spec.md §7 says the session
// should reconnect and retry rather than abort.
func IsCardGone(err error) bool {
	return errors.Is(err, scard.ErrRemovedCard) || errors.Is(err, scard.ErrResetCard)
}

// IsServiceGone reports whether err indicates the PC/SC service itself is
// unavailable — spec.md §4.5's trigger for the re-initialization
// sub-sequence.
func IsServiceGone(err error) bool {
	return errors.Is(err, scard.ErrServiceStopped) ||
		errors.Is(err, scard.ErrNoService) ||
		errors.Is(err, scard.ErrNoReadersAvailable)
}
