package supervisor

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/S-Sebb/TaikoSmartCardReader/internal/cardtype"
	"github.com/S-Sebb/TaikoSmartCardReader/internal/sinks"
)

type fakeSession struct {
	initErr error
	updates []cardtype.Info
	idx     atomic.Int64
	closed  atomic.Bool
}

func (s *fakeSession) Initialize() error { return s.initErr }

func (s *fakeSession) Update() cardtype.Info {
	i := s.idx.Add(1) - 1
	if int(i) >= len(s.updates) {
		return cardtype.Info{CardType: cardtype.Empty}
	}
	return s.updates[i]
}

func (s *fakeSession) Close() error {
	s.closed.Store(true)
	return nil
}

type fakeKeySink struct {
	emits  atomic.Int64
	closed atomic.Bool
}

func (k *fakeKeySink) Emit() error {
	k.emits.Add(1)
	return nil
}

func (k *fakeKeySink) Close() error {
	k.closed.Store(true)
	return nil
}

func TestSupervisor_WritesRecognizedCardToFileSinkAndEmitsKeystroke(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cards.dat")

	sess := &fakeSession{
		updates: []cardtype.Info{
			{CardType: cardtype.Empty},
			{CardType: cardtype.BandaiNamcoBanapass, UID: "DEADBEEF", AccessCode: "30712345678901234561"[:20]},
		},
	}
	keySink := &fakeKeySink{}
	sv := New(sess, sinks.NewFileSink(path), keySink)

	require.NoError(t, sv.Start())
	waitForEmit(t, keySink)
	sv.Stop()

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "30712345678901234561"[:20], string(got))
	assert.True(t, sess.closed.Load())
	assert.True(t, keySink.closed.Load())
}

func TestSupervisor_UnknownAndErrorDoNotReachSinks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cards.dat")

	sess := &fakeSession{
		updates: []cardtype.Info{
			{CardType: cardtype.Unknown, UID: "AA"},
			{CardType: cardtype.Error},
		},
	}
	keySink := &fakeKeySink{}
	sv := New(sess, sinks.NewFileSink(path), keySink)

	require.NoError(t, sv.Start())
	time.Sleep(20 * time.Millisecond)
	sv.Stop()

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	assert.Equal(t, int64(0), keySink.emits.Load())
}

func TestSupervisor_StopIsIdempotent(t *testing.T) {
	sess := &fakeSession{}
	sv := New(sess, sinks.NewFileSink(filepath.Join(t.TempDir(), "cards.dat")), nil)
	require.NoError(t, sv.Start())
	sv.Stop()
	sv.Stop()
	assert.True(t, sess.closed.Load())
}

func waitForEmit(t *testing.T, k *fakeKeySink) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if k.emits.Load() > 0 {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("timed out waiting for keystroke emit")
}
