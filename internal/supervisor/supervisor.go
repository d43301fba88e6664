// Package supervisor owns the agent's single worker goroutine: it polls
// a session.ReaderSession in a loop, routes a recognized read to the
// configured output sinks, and logs every non-empty cycle at the color
// tier spec.md §6 names for it. An empty cycle is not logged.
package supervisor

import (
	"sync"
	"sync/atomic"

	"github.com/S-Sebb/TaikoSmartCardReader/internal/agentlog"
	"github.com/S-Sebb/TaikoSmartCardReader/internal/cardtype"
	"github.com/S-Sebb/TaikoSmartCardReader/internal/sinks"
)

// Session is the subset of *session.ReaderSession the Supervisor drives.
// Defined here, not in the session package, so supervisor tests can
// stub it without touching PC/SC types at all.
type Session interface {
	Initialize() error
	Update() cardtype.Info
	Close() error
}

// Supervisor runs Session.Update in a loop on its own goroutine until
// stopped, dispatching every recognized read to the file sink and the
// keystroke sink.
type Supervisor struct {
	session  Session
	fileSink *sinks.FileSink
	keySink  sinks.KeystrokeSink
	stop     atomic.Bool
	wg       sync.WaitGroup
}

// New constructs a Supervisor around an already-configured session and
// its two output sinks.
func New(session Session, fileSink *sinks.FileSink, keySink sinks.KeystrokeSink) *Supervisor {
	return &Supervisor{
		session:  session,
		fileSink: fileSink,
		keySink:  keySink,
	}
}

// Start initializes the session and launches the worker goroutine. It
// returns an error immediately if the session fails to initialize;
// callers should not call Stop in that case.
func (sv *Supervisor) Start() error {
	if err := sv.session.Initialize(); err != nil {
		return err
	}
	sv.wg.Add(1)
	go sv.run()
	return nil
}

// Stop signals the worker to exit, waits for it to finish its current
// cycle, and tears down the session. Safe to call once; a second call is
// a no-op.
func (sv *Supervisor) Stop() {
	if !sv.stop.CompareAndSwap(false, true) {
		return
	}
	sv.wg.Wait()
	if err := sv.session.Close(); err != nil {
		agentlog.Warn("supervisor: session close: %v", err)
	}
	if sv.keySink != nil {
		if err := sv.keySink.Close(); err != nil {
			agentlog.Warn("supervisor: keystroke sink close: %v", err)
		}
	}
}

func (sv *Supervisor) run() {
	defer sv.wg.Done()
	for !sv.stop.Load() {
		info := sv.session.Update()
		sv.handle(info)
	}
}

// handle logs and dispatches one cycle's CardInfo. Unrecognized and
// sentinel card types (Empty, Unknown, Error) are logged but never
// reach the sinks — only a fully validated family does.
func (sv *Supervisor) handle(info cardtype.Info) {
	switch info.CardType {
	case cardtype.Empty:
		// nothing happened this cycle; no log needed
		return
	case cardtype.Unknown:
		agentlog.Warn("unrecognized card (uid=%s)", info.UID)
		return
	case cardtype.Error:
		agentlog.Error("poll cycle failed (uid=%s)", info.UID)
		return
	}

	if !info.CardType.Known() || info.AccessCode == "" {
		agentlog.Warn("validated card type %q carried no access code, dropping", info.CardType)
		return
	}

	agentlog.Info("%s detected: %s (uid=%s)", info.CardType, info.AccessCode, info.UID)

	if err := sv.fileSink.Write(info.AccessCode); err != nil {
		agentlog.Error("file sink write failed: %v", err)
	}
	if sv.keySink != nil {
		if err := sv.keySink.Emit(); err != nil {
			agentlog.Error("keystroke sink emit failed: %v", err)
		}
	}
}
