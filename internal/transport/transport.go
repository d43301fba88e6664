// Package transport adapts the host PC/SC smart-card service
// (github.com/ebfe/scard) to the two narrow interfaces the session state
// machine needs, so the state machine can be driven against a fake
// reader in tests. The seam mirrors the mock ScardContext/ScardCard
// pattern used by the pack's ZaparooProject/zaparoo-core acr122pcsc
// reader tests.
package transport

import (
	"time"

	"github.com/ebfe/scard"
)

// ScardCard is the subset of *scard.Card the session state machine uses.
type ScardCard interface {
	Status() (*scard.CardStatus, error)
	Transmit(cmd []byte) ([]byte, error)
	Control(ioctl uint32, cmd []byte) ([]byte, error)
	Disconnect(d scard.Disposition) error
}

// ScardContext is the subset of *scard.Context the session state machine
// uses.
type ScardContext interface {
	ListReaders() ([]string, error)
	GetStatusChange(states []scard.ReaderState, timeout time.Duration) error
	Connect(reader string, mode scard.ShareMode, proto scard.Protocol) (ScardCard, error)
	Release() error
}

// realContext wraps a live *scard.Context to satisfy ScardContext.
type realContext struct {
	ctx *scard.Context
}

// EstablishContext allocates a user-scoped PC/SC context.
func EstablishContext() (ScardContext, error) {
	ctx, err := scard.EstablishContext()
	if err != nil {
		return nil, err
	}
	return &realContext{ctx: ctx}, nil
}

func (c *realContext) ListReaders() ([]string, error) {
	return c.ctx.ListReaders()
}

func (c *realContext) GetStatusChange(states []scard.ReaderState, timeout time.Duration) error {
	return c.ctx.GetStatusChange(states, timeout)
}

func (c *realContext) Connect(reader string, mode scard.ShareMode, proto scard.Protocol) (ScardCard, error) {
	card, err := c.ctx.Connect(reader, mode, proto)
	if err != nil {
		return nil, err
	}
	return card, nil
}

func (c *realContext) Release() error {
	return c.ctx.Release()
}

// *scard.Card already implements ScardCard: Status, Transmit, Control
// and Disconnect all match signature-for-signature.
var _ ScardCard = (*scard.Card)(nil)
