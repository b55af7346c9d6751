package meditation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/zenspace/zenspace/internal/storage"
)

func TestBreathPhaseCyclesBox(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		want    string
	}{
		{0, "breathe in"},
		{3 * time.Second, "breathe in"},
		{4 * time.Second, "hold"},
		{8 * time.Second, "breathe out"},
		{12 * time.Second, "hold"},
		{16 * time.Second, "breathe in"},
		{37 * time.Second, "breathe out"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, breathPhase(tt.elapsed), "elapsed %s", tt.elapsed)
	}
}

func TestRunningSessionShowsBreathPhase(t *testing.T) {
	s := New(storage.NewMemory(), zaptest.NewLogger(t), false)

	cmd := s.toggleSession()
	require.NotNil(t, cmd)
	require.True(t, s.running)

	// Fresh session: no time elapsed yet, so the cycle starts on the inhale.
	view := s.View(100, 40)
	assert.Contains(t, view, "breathe in...")

	// Twenty seconds in, the cycle is back on the second phase.
	s.remaining = s.active.Duration - 20*time.Second
	view = s.View(100, 40)
	assert.Contains(t, view, "hold...")
}

func TestToggleSessionPausesAndResumes(t *testing.T) {
	s := New(storage.NewMemory(), zaptest.NewLogger(t), false)

	require.NotNil(t, s.toggleSession())
	require.True(t, s.running)
	before := s.remaining

	require.Nil(t, s.toggleSession())
	assert.False(t, s.running)
	assert.Contains(t, s.View(100, 40), "paused")

	require.NotNil(t, s.toggleSession())
	assert.True(t, s.running)
	assert.Equal(t, before, s.remaining, "resume keeps the countdown")
}
