// Package pluginapi is the agent's export surface: Init and Exit, the
// same two entry points the original DLL host called
// (original_source/src/dllmain.cpp's __declspec(dllexport) Init/Exit).
// cmd/taikocardreader stands in for that native host loader.
package pluginapi

import (
	"sync"

	"github.com/S-Sebb/TaikoSmartCardReader/internal/agentlog"
	"github.com/S-Sebb/TaikoSmartCardReader/internal/config"
	"github.com/S-Sebb/TaikoSmartCardReader/internal/exitevent"
	"github.com/S-Sebb/TaikoSmartCardReader/internal/session"
	"github.com/S-Sebb/TaikoSmartCardReader/internal/sinks"
	"github.com/S-Sebb/TaikoSmartCardReader/internal/supervisor"
	"github.com/S-Sebb/TaikoSmartCardReader/internal/transport"
)

const (
	configPath = "config.toml"
	dataPath   = "cards.dat"
)

var (
	mu      sync.Mutex
	sv      *supervisor.Supervisor
	running bool
)

// Init wires up configuration, logging, transport, session, sinks and
// the worker goroutine, then returns immediately. It is a no-op if
// called again while already running.
func Init() {
	mu.Lock()
	defer mu.Unlock()
	if running {
		agentlog.Warn("init: already running, ignoring")
		return
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		agentlog.Error("init: failed to load %s: %v, using defaults", configPath, err)
		cfg = config.Default()
	}

	keySink, err := sinks.NewKeystrokeSink(sinks.DefaultKey)
	if err != nil {
		agentlog.Error("init: keystroke sink unavailable: %v", err)
		keySink = nil
	}

	sess := session.New(cfg.Retry, transport.EstablishContext)
	sv = supervisor.New(sess, sinks.NewFileSink(dataPath), keySink)

	if err := sv.Start(); err != nil {
		agentlog.Error("init: session failed to start: %v", err)
		sv = nil
		return
	}

	running = true
	agentlog.Info("agent started")
}

// Exit stops the worker, tears the session down, and signals
// PluginExitEvent so a host loader waiting on it knows teardown is
// complete. It is a no-op if the agent was never started or Exit was
// already called.
func Exit() {
	mu.Lock()
	defer mu.Unlock()
	if !running {
		return
	}

	sv.Stop()
	sv = nil
	running = false

	ev, err := exitevent.New()
	if err != nil {
		agentlog.Error("exit: could not open %s: %v", exitevent.Name, err)
		return
	}
	if err := ev.Signal(); err != nil {
		agentlog.Error("exit: could not signal %s: %v", exitevent.Name, err)
	}
	if err := ev.Close(); err != nil {
		agentlog.Warn("exit: could not close %s: %v", exitevent.Name, err)
	}
	agentlog.Info("agent stopped")
}
