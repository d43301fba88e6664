// Package config holds the agent's tunable retry budgets.
//
// The final core needs no configuration to run (spec.md §6): every value
// here has a default pulled straight out of the state machine's retry
// policy. config.toml only exists so an operator can retune those budgets
// against a particular reader without a rebuild.
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Retry holds the three magic retry/cooldown constants the session state
// machine uses, pulled out of the state machine per the Design Notes so
// they are never recomputed inline.
type Retry struct {
	// ConnectAttempts is the number of times Connecting retries an
	// exclusive connect before giving up on the current poll.
	ConnectAttempts int
	// ConnectDelay is the sleep between connect attempts.
	ConnectDelay time.Duration

	// TransmitAttempts is the number of times a single APDU transmit
	// is retried before the poll aborts.
	TransmitAttempts int
	// TransmitCooldown is the sleep between transmit attempts, and the
	// cooldown applied after each status-change cycle.
	TransmitCooldown time.Duration

	// ReinitAttempts is the number of times the init sub-sequence is
	// retried after the transport reports the service is gone.
	ReinitAttempts int
	// ReinitDelay is the sleep between re-init attempts.
	ReinitDelay time.Duration

	// StatusChangeTimeout bounds a single awaitStateChange call.
	StatusChangeTimeout time.Duration
}

// Config is the full set of agent tunables.
type Config struct {
	Retry Retry
}

// Default returns the retry budgets named in spec.md: 100 connect retries
// spaced 10ms apart, 3 transmit retries with a 500ms cooldown, and 100
// re-init retries spaced 10ms apart.
func Default() Config {
	return Config{
		Retry: Retry{
			ConnectAttempts:     100,
			ConnectDelay:        10 * time.Millisecond,
			TransmitAttempts:    3,
			TransmitCooldown:    500 * time.Millisecond,
			ReinitAttempts:      100,
			ReinitDelay:         10 * time.Millisecond,
			StatusChangeTimeout: 500 * time.Millisecond,
		},
	}
}

// tomlConfig mirrors the on-disk [retry] section; zero fields fall back
// to the matching Default() value in Load.
type tomlConfig struct {
	Retry struct {
		ConnectAttempts     int `toml:"connect_attempts"`
		ConnectDelayMs      int `toml:"connect_delay_ms"`
		TransmitAttempts    int `toml:"transmit_attempts"`
		TransmitCooldownMs  int `toml:"transmit_cooldown_ms"`
		ReinitAttempts      int `toml:"reinit_attempts"`
		ReinitDelayMs       int `toml:"reinit_delay_ms"`
		StatusChangeTimeout int `toml:"status_change_timeout_ms"`
	} `toml:"retry"`
}

// Load reads path as TOML and overlays it onto Default(). A missing file
// is not an error: it just means the defaults apply, matching the "none
// required" language in spec.md §6.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	var disk tomlConfig
	if _, err := toml.DecodeFile(path, &disk); err != nil {
		return Config{}, err
	}

	if disk.Retry.ConnectAttempts > 0 {
		cfg.Retry.ConnectAttempts = disk.Retry.ConnectAttempts
	}
	if disk.Retry.ConnectDelayMs > 0 {
		cfg.Retry.ConnectDelay = time.Duration(disk.Retry.ConnectDelayMs) * time.Millisecond
	}
	if disk.Retry.TransmitAttempts > 0 {
		cfg.Retry.TransmitAttempts = disk.Retry.TransmitAttempts
	}
	if disk.Retry.TransmitCooldownMs > 0 {
		cfg.Retry.TransmitCooldown = time.Duration(disk.Retry.TransmitCooldownMs) * time.Millisecond
	}
	if disk.Retry.ReinitAttempts > 0 {
		cfg.Retry.ReinitAttempts = disk.Retry.ReinitAttempts
	}
	if disk.Retry.ReinitDelayMs > 0 {
		cfg.Retry.ReinitDelay = time.Duration(disk.Retry.ReinitDelayMs) * time.Millisecond
	}
	if disk.Retry.StatusChangeTimeout > 0 {
		cfg.Retry.StatusChangeTimeout = time.Duration(disk.Retry.StatusChangeTimeout) * time.Millisecond
	}

	return cfg, nil
}
