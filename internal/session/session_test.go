package session

import (
	"encoding/hex"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ebfe/scard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/S-Sebb/TaikoSmartCardReader/internal/apdu"
	"github.com/S-Sebb/TaikoSmartCardReader/internal/cardtype"
	"github.com/S-Sebb/TaikoSmartCardReader/internal/config"
	"github.com/S-Sebb/TaikoSmartCardReader/internal/transport"
)

// fakeCard is a scriptable stand-in for *scard.Card, mirroring the mock
// reader pattern the pack's ZaparooProject/zaparoo-core acr122pcsc tests
// use to drive a state machine without real hardware.
type fakeCard struct {
	statusFunc     func() (*scard.CardStatus, error)
	transmitFunc   func(cmd []byte) ([]byte, error)
	controlFunc    func(ioctl uint32, cmd []byte) ([]byte, error)
	disconnectFunc func(d scard.Disposition) error
	transmitCalls  [][]byte
}

func (c *fakeCard) Status() (*scard.CardStatus, error) { return c.statusFunc() }

func (c *fakeCard) Transmit(cmd []byte) ([]byte, error) {
	c.transmitCalls = append(c.transmitCalls, cmd)
	return c.transmitFunc(cmd)
}

func (c *fakeCard) Control(ioctl uint32, cmd []byte) ([]byte, error) {
	return c.controlFunc(ioctl, cmd)
}

func (c *fakeCard) Disconnect(d scard.Disposition) error {
	if c.disconnectFunc == nil {
		return nil
	}
	return c.disconnectFunc(d)
}

// fakeContext is a scriptable stand-in for *scard.Context.
type fakeContext struct {
	listReadersFunc     func() ([]string, error)
	getStatusChangeFunc func(states []scard.ReaderState, timeout time.Duration) error
	connectFunc         func(reader string, mode scard.ShareMode, proto scard.Protocol) (transport.ScardCard, error)
	released            bool
}

func (c *fakeContext) ListReaders() ([]string, error) { return c.listReadersFunc() }

func (c *fakeContext) GetStatusChange(states []scard.ReaderState, timeout time.Duration) error {
	return c.getStatusChangeFunc(states, timeout)
}

func (c *fakeContext) Connect(reader string, mode scard.ShareMode, proto scard.Protocol) (transport.ScardCard, error) {
	return c.connectFunc(reader, mode, proto)
}

func (c *fakeContext) Release() error {
	c.released = true
	return nil
}

// fakeClock records every requested sleep instead of actually sleeping,
// so retry-policy tests run instantly.
type fakeClock struct {
	sleeps []time.Duration
}

func (c *fakeClock) Sleep(d time.Duration) { c.sleeps = append(c.sleeps, d) }

func okDisconnect(scard.Disposition) error { return nil }

// accessCode builds a 20-digit decimal code: prefix padded with "1".
func accessCode(prefix string) string {
	return prefix + strings.Repeat("1", 20-len(prefix))
}

func blockPayload(t *testing.T, code string) []byte {
	t.Helper()
	b, err := hex.DecodeString(code)
	require.NoError(t, err)
	require.Len(t, b, 10)
	return b
}

func newInitCard() *fakeCard {
	return &fakeCard{
		controlFunc: func(ioctl uint32, cmd []byte) ([]byte, error) {
			return []byte{0x90, 0x00}, nil
		},
		disconnectFunc: okDisconnect,
	}
}

func newContext(readerName string, initCard *fakeCard, statusChange func([]scard.ReaderState, time.Duration) error, connectExclusive func(string, scard.ShareMode, scard.Protocol) (transport.ScardCard, error)) *fakeContext {
	return &fakeContext{
		listReadersFunc: func() ([]string, error) { return []string{readerName}, nil },
		getStatusChangeFunc: func(states []scard.ReaderState, timeout time.Duration) error {
			return statusChange(states, timeout)
		},
		connectFunc: func(reader string, mode scard.ShareMode, proto scard.Protocol) (transport.ScardCard, error) {
			if mode == scard.ShareDirect {
				return initCard, nil
			}
			return connectExclusive(reader, mode, proto)
		},
	}
}

func TestInitialize_Success(t *testing.T) {
	initCard := newInitCard()
	ctx := newContext("Reader 1", initCard, nil, nil)

	s := New(config.Default().Retry, func() (transport.ScardContext, error) { return ctx, nil })
	require.NoError(t, s.Initialize())
	assert.True(t, s.initialized)
	assert.Equal(t, "Reader 1", s.readerName)
}

func TestInitialize_NoReaders(t *testing.T) {
	ctx := &fakeContext{
		listReadersFunc: func() ([]string, error) { return nil, nil },
	}
	s := New(config.Default().Retry, func() (transport.ScardContext, error) { return ctx, nil })
	err := s.Initialize()
	require.Error(t, err)
	assert.True(t, ctx.released)
}

func TestUpdate_NoChangeReturnsEmpty(t *testing.T) {
	initCard := newInitCard()
	statusCalls := 0
	ctx := newContext("Reader 1", initCard, func(states []scard.ReaderState, _ time.Duration) error {
		statusCalls++
		states[0].EventState = states[0].CurrentState // no StateChanged bit
		return nil
	}, nil)

	clk := &fakeClock{}
	s := New(config.Default().Retry, func() (transport.ScardContext, error) { return ctx, nil })
	s.clock = clk
	require.NoError(t, s.Initialize())

	info := s.Update()
	assert.Equal(t, cardtype.Empty, info.CardType)
	assert.Equal(t, 1, statusCalls)
}

func TestUpdate_TimeoutReturnsEmpty(t *testing.T) {
	initCard := newInitCard()
	ctx := newContext("Reader 1", initCard, func([]scard.ReaderState, time.Duration) error {
		return scard.ErrTimeout
	}, nil)

	s := New(config.Default().Retry, func() (transport.ScardContext, error) { return ctx, nil })
	s.clock = &fakeClock{}
	require.NoError(t, s.Initialize())

	info := s.Update()
	assert.Equal(t, cardtype.Empty, info.CardType)
}

func TestUpdate_PresentTransitionPollsMifareBanapass(t *testing.T) {
	initCard := newInitCard()
	code := accessCode("307")
	payload := blockPayload(t, code)

	atr := make([]byte, 14)
	atr[atrProtocolOffset] = byte(ISO14443Part3)

	pollCard := &fakeCard{
		statusFunc: func() (*scard.CardStatus, error) {
			return &scard.CardStatus{ActiveProtocol: scard.ProtocolT1, Atr: atr}, nil
		},
		disconnectFunc: okDisconnect,
		transmitFunc: func(cmd []byte) ([]byte, error) {
			switch {
			case bytesEqual(cmd, apdu.UID):
				return []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x90, 0x00}, nil
			case bytesEqual(cmd, apdu.LoadKey(apdu.DefaultMifareKey)):
				return []byte{0x90, 0x00}, nil
			case bytesEqual(cmd, apdu.AuthBlock2):
				return []byte{0x90, 0x00}, nil
			case bytesEqual(cmd, apdu.ReadBlock2):
				resp := make([]byte, 0, 18)
				resp = append(resp, 0, 0, 0, 0, 0, 0) // 6 leading junk bytes
				resp = append(resp, payload...)
				resp = append(resp, 0x90, 0x00)
				return resp, nil
			default:
				return nil, errors.New("unexpected transmit")
			}
		},
	}

	ctx := newContext("Reader 1", initCard, func(states []scard.ReaderState, _ time.Duration) error {
		states[0].EventState = scard.StateChanged | scard.StatePresent
		return nil
	}, func(reader string, mode scard.ShareMode, proto scard.Protocol) (transport.ScardCard, error) {
		return pollCard, nil
	})

	s := New(config.Default().Retry, func() (transport.ScardContext, error) { return ctx, nil })
	s.clock = &fakeClock{}
	require.NoError(t, s.Initialize())

	info := s.Update()
	assert.Equal(t, cardtype.BandaiNamcoBanapass, info.CardType)
	assert.Equal(t, code, info.AccessCode)
	assert.Equal(t, "DEADBEEF", info.UID)
	assert.Equal(t, phaseIdle, s.phase)
}

func TestUpdate_ServiceGoneTriggersReinitialize(t *testing.T) {
	initCard := newInitCard()
	attempts := 0
	ctx := newContext("Reader 1", initCard, func([]scard.ReaderState, time.Duration) error {
		attempts++
		return scard.ErrNoService
	}, nil)

	s := New(config.Default().Retry, func() (transport.ScardContext, error) { return ctx, nil })
	s.clock = &fakeClock{}
	require.NoError(t, s.Initialize())

	info := s.Update()
	assert.Equal(t, cardtype.Empty, info.CardType)
	assert.True(t, s.initialized)
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
