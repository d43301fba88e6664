//go:build linux

package sinks

import (
	"time"

	"github.com/bendahl/uinput"
)

// uinputKeystrokeSink emits the F3 key twice by driving a virtual
// keyboard through /dev/uinput, grounded on the same library
// ZaparooProject/zaparoo-core uses to synthesize input from reader
// activity.
type uinputKeystrokeSink struct {
	keyboard uinput.Keyboard
	key      int
}

// NewKeystrokeSink opens a virtual keyboard device and returns a sink
// that presses key (default uinput.KeyF3) twice per Emit call.
func NewKeystrokeSink(key int) (KeystrokeSink, error) {
	kb, err := uinput.CreateKeyboard("/dev/uinput", []byte("taiko-smart-card-reader"))
	if err != nil {
		return nil, err
	}
	return &uinputKeystrokeSink{keyboard: kb, key: key}, nil
}

func (s *uinputKeystrokeSink) Emit() error {
	for i := 0; i < 2; i++ {
		if err := s.keyboard.KeyDown(s.key); err != nil {
			return err
		}
		time.Sleep(pressCadence)
		if err := s.keyboard.KeyUp(s.key); err != nil {
			return err
		}
		time.Sleep(pressCadence)
	}
	return nil
}

func (s *uinputKeystrokeSink) Close() error {
	return s.keyboard.Close()
}

// DefaultKey is the virtual-key code the agent emits, F3 per spec.md §6.
const DefaultKey = uinput.KeyF3
