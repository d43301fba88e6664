package pluginapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Init/Exit talk to real PC/SC and /dev/uinput, so this package's tests
// stick to the lifecycle guards that don't need hardware: calling Exit
// before Init must never panic, and repeated calls must stay safe.
func TestExit_BeforeInit_NoPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		Exit()
	})
}

func TestExit_Idempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		Exit()
		Exit()
	})
}
