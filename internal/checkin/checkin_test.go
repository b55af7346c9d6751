package checkin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenspace/zenspace/internal/storage"
)

func TestSaveThenLoad(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()

	in := Checkin{Mood: MoodCalm, Motivation: 7, Stress: 3, Sleep: 8, Energy: 6, Date: "2026-09-01"}
	require.NoError(t, Save(ctx, store, in))

	got, err := Load(ctx, store)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, in, *got)
}

func TestLoadEmptyStore(t *testing.T) {
	got, err := Load(context.Background(), storage.NewMemory())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLoadCorruptRecordReadsAsAbsent(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	require.NoError(t, store.Set(ctx, storage.KeyCheckinData, "{broken"))

	got, err := Load(ctx, store)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCompletedTodayMatchesDateOnly(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	now := time.Date(2026, 9, 1, 23, 50, 0, 0, time.UTC)

	done, err := CompletedToday(ctx, store, now)
	require.NoError(t, err)
	assert.False(t, done)

	require.NoError(t, Save(ctx, store, Checkin{Mood: MoodHappy, Date: DateKey(now)}))

	done, err = CompletedToday(ctx, store, now)
	require.NoError(t, err)
	assert.True(t, done)

	// Ten minutes later is tomorrow; the gate must reopen.
	done, err = CompletedToday(ctx, store, now.Add(10*time.Minute))
	require.NoError(t, err)
	assert.False(t, done)
}

func TestMoodLabel(t *testing.T) {
	assert.Equal(t, "Happy", MoodLabel(MoodHappy))
	assert.Equal(t, "Sad", MoodLabel(MoodSad))
	assert.Equal(t, "Unknown", MoodLabel(42))
}
