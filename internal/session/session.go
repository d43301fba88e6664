// Package session implements the card-session state machine: it drives
// the reader from idle through detection, connection, protocol
// identification, APDU exchange and disconnect, with retry/recovery
// against a fault-prone PC/SC transport.
package session

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/ebfe/scard"

	"github.com/S-Sebb/TaikoSmartCardReader/internal/agentlog"
	"github.com/S-Sebb/TaikoSmartCardReader/internal/apdu"
	"github.com/S-Sebb/TaikoSmartCardReader/internal/cardfamily"
	"github.com/S-Sebb/TaikoSmartCardReader/internal/cardtype"
	"github.com/S-Sebb/TaikoSmartCardReader/internal/config"
	"github.com/S-Sebb/TaikoSmartCardReader/internal/felica"
	"github.com/S-Sebb/TaikoSmartCardReader/internal/transport"
)

// errCardGoneDuringConnect marks a connect retry loop that ended because
// the card was confirmed removed, not because the retry budget ran out.
var errCardGoneDuringConnect = errors.New("card removed during connect retry")

// ContextFactory creates a fresh transport context. Session calls it once
// at construction and again on every forced re-init, mirroring the mock-
// injection seam ZaparooProject/zaparoo-core's acr122pcsc reader uses for
// its own integration tests.
type ContextFactory func() (transport.ScardContext, error)

// ReaderSession owns the reader handle for the agent's lifetime. It is
// mutated only by its own methods; callers must serialize calls to
// Initialize and Update themselves. The Supervisor does this by running
// both on a single worker goroutine.
type ReaderSession struct {
	cfg            config.Retry
	contextFactory ContextFactory
	clock          Clock

	ctx        transport.ScardContext
	readerName string
	card       transport.ScardCard

	connected      bool
	activeProtocol scard.Protocol
	cardProtocol   CardProtocol

	readerState scard.ReaderState
	phase       phase
	initialized bool
}

// New constructs a session that has not yet been initialized. Call
// Initialize before the first Update.
func New(cfg config.Retry, contextFactory ContextFactory) *ReaderSession {
	return &ReaderSession{
		cfg:            cfg,
		contextFactory: contextFactory,
		clock:          realClock{},
		phase:          phaseIdle,
	}
}

// Initialize runs the init sub-sequence from spec.md §4.5: establish a
// context, list readers, connect direct, push the PICC operating
// parameters, and arm the reader-state record. It is idempotent in the
// sense that calling it again after a prior success simply re-runs the
// sequence against a fresh context.
func (s *ReaderSession) Initialize() error {
	ctx, err := s.contextFactory()
	if err != nil {
		return fmt.Errorf("establish context: %w", err)
	}

	readers, err := ctx.ListReaders()
	if err != nil {
		_ = ctx.Release()
		return fmt.Errorf("list readers: %w", err)
	}
	if len(readers) == 0 {
		_ = ctx.Release()
		return errors.New("no readers available")
	}

	card, err := ctx.Connect(readers[0], scard.ShareDirect, scard.Protocol(0))
	if err != nil {
		_ = ctx.Release()
		return fmt.Errorf("direct connect: %w", err)
	}

	if _, err := card.Control(apdu.PiccOperatingParamIoctl, apdu.PiccOperatingParam); err != nil {
		_ = card.Disconnect(scard.ResetCard)
		_ = ctx.Release()
		return fmt.Errorf("picc operating params: %w", err)
	}

	if err := card.Disconnect(scard.ResetCard); err != nil {
		agentlog.Warn("initialize: disconnect after PICC setup: %v", err)
	}

	s.ctx = ctx
	s.readerName = readers[0]
	s.readerState = scard.ReaderState{Reader: readers[0], CurrentState: scard.StateUnaware}
	s.phase = phaseIdle
	s.initialized = true
	return nil
}

// reinitialize retries Initialize up to cfg.ReinitAttempts times, spaced
// cfg.ReinitDelay apart, tearing down any half-open state between tries.
func (s *ReaderSession) reinitialize() error {
	var lastErr error
	for attempt := 0; attempt < s.cfg.ReinitAttempts; attempt++ {
		_ = s.teardown()
		if lastErr = s.Initialize(); lastErr == nil {
			return nil
		}
		s.clock.Sleep(s.cfg.ReinitDelay)
	}
	return fmt.Errorf("reinitialize: exhausted %d attempts: %w", s.cfg.ReinitAttempts, lastErr)
}

// teardown releases the context and any live card handle without
// retrying. It is safe to call on a session that was never initialized.
func (s *ReaderSession) teardown() error {
	var firstErr error
	if s.card != nil {
		if err := s.card.Disconnect(scard.ResetCard); err != nil {
			firstErr = err
		}
		s.card = nil
	}
	s.connected = false
	if s.ctx != nil {
		if err := s.ctx.Release(); err != nil && firstErr == nil {
			firstErr = err
		}
		s.ctx = nil
	}
	s.initialized = false
	return firstErr
}

// Close tears the session all the way down. Safe to call even if
// Initialize was never called.
func (s *ReaderSession) Close() error {
	return s.teardown()
}

// Update runs one status-change cycle: wait for a reader-state change
// (bounded by cfg.StatusChangeTimeout), react to UNAVAILABLE/EMPTY/
// PRESENT per spec.md §4.5, and return the CardInfo any poll produced. A
// cycle that found nothing reports cardtype.Empty.
func (s *ReaderSession) Update() cardtype.Info {
	if !s.initialized {
		if err := s.reinitialize(); err != nil {
			agentlog.Error("update: reinitialize failed: %v", err)
			return cardtype.Info{CardType: cardtype.Error}
		}
	}

	states := []scard.ReaderState{s.readerState}
	err := s.ctx.GetStatusChange(states, s.cfg.StatusChangeTimeout)
	if err != nil {
		if errors.Is(err, scard.ErrTimeout) {
			return cardtype.Info{CardType: cardtype.Empty}
		}
		if transport.IsServiceGone(err) {
			if rerr := s.reinitialize(); rerr != nil {
				agentlog.Error("update: reinitialize after service loss failed: %v", rerr)
				return cardtype.Info{CardType: cardtype.Error}
			}
			return cardtype.Info{CardType: cardtype.Empty}
		}
		agentlog.Error("update: await state change: %v", err)
		return cardtype.Info{CardType: cardtype.Error}
	}

	event := states[0]
	info := cardtype.Info{CardType: cardtype.Empty}

	if event.EventState&scard.StateChanged != 0 {
		newState := event.EventState &^ scard.StateChanged
		wasPresent := s.readerState.CurrentState&scard.StatePresent != 0

		switch {
		case newState&scard.StateUnavailable != 0:
			agentlog.Warn("reader state: unavailable")
			s.clock.Sleep(s.cfg.TransmitCooldown)
		case newState&scard.StateEmpty != 0:
			agentlog.Warn("reader state: empty")
		case newState&scard.StatePresent != 0 && !wasPresent:
			agentlog.Info("reader state: present")
			info = s.poll()
		}
	}

	s.readerState.CurrentState = event.EventState
	s.clock.Sleep(s.cfg.TransmitCooldown)
	return info
}

// poll runs the per-card sequence from spec.md §4.5: connect exclusive,
// read the ATR to classify the card protocol, exchange the
// protocol-specific APDU sequence, and always disconnect with reset-card
// before returning.
func (s *ReaderSession) poll() cardtype.Info {
	s.phase = phaseConnecting
	card, err := s.connectExclusive()
	if err != nil {
		if errors.Is(err, errCardGoneDuringConnect) {
			return cardtype.Info{CardType: cardtype.Empty}
		}
		agentlog.Error("poll: connect failed: %v", err)
		return cardtype.Info{CardType: cardtype.Error}
	}
	s.card = card
	s.connected = true
	defer s.disposeCard()

	s.phase = phaseReadingATR
	status, err := card.Status()
	if err != nil {
		agentlog.Error("poll: status failed: %v", err)
		return cardtype.Info{CardType: cardtype.Error}
	}
	s.activeProtocol = status.ActiveProtocol
	if len(status.Atr) <= atrProtocolOffset {
		agentlog.Error("poll: ATR too short to classify (%d bytes)", len(status.Atr))
		return cardtype.Info{CardType: cardtype.Unknown}
	}
	s.cardProtocol = CardProtocol(status.Atr[atrProtocolOffset])

	s.phase = phaseExchanging
	var info cardtype.Info
	switch s.cardProtocol {
	case ISO14443Part3:
		info = s.exchangeMifare()
	case Felica212K, Felica424K:
		info = s.exchangeFelica()
	default:
		agentlog.Warn("poll: unrecognized card protocol 0x%02X", byte(s.cardProtocol))
		info = cardtype.Info{CardType: cardtype.Unknown}
	}

	s.phase = phaseValidating
	return info
}

// connectExclusive retries an exclusive T0|T1 connect up to
// cfg.ConnectAttempts times, spaced cfg.ConnectDelay apart. If a retry
// fails because the card was reset or removed, it checks card presence
// once and aborts the poll early if the card is genuinely gone.
func (s *ReaderSession) connectExclusive() (transport.ScardCard, error) {
	var lastErr error
	for attempt := 0; attempt < s.cfg.ConnectAttempts; attempt++ {
		card, err := s.ctx.Connect(s.readerName, scard.ShareExclusive, scard.ProtocolT0|scard.ProtocolT1)
		if err == nil {
			return card, nil
		}
		lastErr = err
		if transport.IsCardGone(err) && !s.isCardPresent() {
			return nil, errCardGoneDuringConnect
		}
		s.clock.Sleep(s.cfg.ConnectDelay)
	}
	return nil, fmt.Errorf("connect exclusive: exhausted %d attempts: %w", s.cfg.ConnectAttempts, lastErr)
}

func (s *ReaderSession) isCardPresent() bool {
	states := []scard.ReaderState{{Reader: s.readerName, CurrentState: scard.StateUnaware}}
	if err := s.ctx.GetStatusChange(states, 0); err != nil {
		return false
	}
	return states[0].EventState&scard.StatePresent != 0
}

// disposeCard implements the Disposing state: disconnect with
// reset-card and return to Idle, regardless of how the exchange went.
func (s *ReaderSession) disposeCard() {
	s.phase = phaseDisposing
	if s.card != nil {
		if err := s.card.Disconnect(scard.ResetCard); err != nil {
			agentlog.Warn("dispose: disconnect: %v", err)
		}
	}
	s.card = nil
	s.connected = false
	s.phase = phaseIdle
}

// exchangeMifare runs the ISO 14443-3 MIFARE Classic block-2 read
// sequence from spec.md §4.5 step 3.
func (s *ReaderSession) exchangeMifare() cardtype.Info {
	uidResp, ok := s.transmitRetry(apdu.UID)
	if !ok {
		return cardtype.Info{CardType: cardtype.Error}
	}
	uid := trimStatus(uidResp)
	if len(uid) > 8 {
		uid = uid[:8]
	}
	info := cardtype.Info{CardType: cardtype.Unknown, UID: strings.ToUpper(hex.EncodeToString(uid))}

	if _, ok := s.transmitRetry(apdu.LoadKey(apdu.DefaultMifareKey)); !ok {
		return info
	}
	if _, ok := s.transmitRetry(apdu.AuthBlock2); !ok {
		return info
	}
	blockResp, ok := s.transmitRetry(apdu.ReadBlock2)
	if !ok {
		return info
	}
	payload := trimStatus(blockResp)
	if len(payload) < 16 {
		agentlog.Error("exchangeMifare: short block-2 response (%d bytes)", len(payload))
		return info
	}
	// The 10-byte access-code field is BCD: each byte is two decimal
	// digits, so hex-encoding it yields the 20-digit code directly, the
	// same encoding the FeliCa path recovers via felica.Decrypt.
	candidate := strings.ToUpper(hex.EncodeToString(payload[6:16]))

	family, ok := cardfamily.ValidateMifare(candidate)
	if !ok {
		return info
	}
	info.CardType = family
	info.AccessCode = candidate
	return info
}

// exchangeFelica runs the FeliCa S_PAD-0 read-and-decrypt sequence from
// spec.md §4.5 step 4.
func (s *ReaderSession) exchangeFelica() cardtype.Info {
	uidResp, ok := s.transmitRetry(apdu.UID)
	if !ok {
		return cardtype.Info{CardType: cardtype.Error}
	}
	rawUID := trimStatus(uidResp)
	if len(rawUID) > 8 {
		rawUID = rawUID[:8]
	}
	info := cardtype.Info{CardType: cardtype.Unknown, UID: strings.ToUpper(hex.EncodeToString(rawUID))}
	if len(rawUID) != 8 {
		agentlog.Error("exchangeFelica: expected 8-byte UID, got %d", len(rawUID))
		return info
	}
	var uidArr [8]byte
	copy(uidArr[:], rawUID)

	readResp, ok := s.transmitRetry(apdu.FelicaReadBlock0(uidArr))
	if !ok {
		return info
	}
	if len(readResp) < 21 {
		agentlog.Error("exchangeFelica: short response (%d bytes)", len(readResp))
		return info
	}
	if readResp[len(readResp)-21] != 0x00 || readResp[len(readResp)-20] != 0x00 {
		agentlog.Error("exchangeFelica: non-zero S_PAD status bytes")
		return info
	}
	var cipher [16]byte
	copy(cipher[:], readResp[len(readResp)-18:len(readResp)-2])

	plain := felica.Decrypt(cipher)
	candidate := strings.ToUpper(hex.EncodeToString(plain[:]))

	family, ok := cardfamily.ValidateAIC(candidate)
	if !ok {
		return info
	}
	info.CardType = family
	info.AccessCode = candidate
	return info
}

// transmitRetry implements the transmit retry policy from spec.md §4.5:
// up to cfg.TransmitAttempts attempts; on a reset/removed-card error it
// reconnects and retries; any other error ends the poll early.
func (s *ReaderSession) transmitRetry(cmd []byte) ([]byte, bool) {
	if !s.connected || s.card == nil {
		agentlog.Error("transmitRetry: no card connected")
		return nil, false
	}

	for attempt := 0; attempt < s.cfg.TransmitAttempts; attempt++ {
		resp, err := s.card.Transmit(cmd)
		if err == nil {
			return resp, true
		}
		if transport.IsCardGone(err) {
			agentlog.Warn("transmit: card gone (%v), reconnecting", err)
			card, cerr := s.connectExclusive()
			if cerr != nil {
				agentlog.Error("transmit: reconnect failed: %v", cerr)
				return nil, false
			}
			s.card = card
			s.clock.Sleep(s.cfg.TransmitCooldown)
			continue
		}
		agentlog.Error("transmit failed: %v", err)
		return nil, false
	}
	agentlog.Error("transmit: exhausted %d attempts", s.cfg.TransmitAttempts)
	return nil, false
}

// trimStatus drops the trailing 2-byte status word from an APDU
// response. It returns nil if resp is too short to carry one.
func trimStatus(resp []byte) []byte {
	if len(resp) < 2 {
		return nil
	}
	return resp[:len(resp)-2]
}
