package journal

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenspace/zenspace/internal/storage"
)

func TestSavePrependsNewest(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	now := time.Now()

	_, err := Save(ctx, store, New("first", "Happy", "", now))
	require.NoError(t, err)
	entries, err := Save(ctx, store, New("second", "Peaceful", "", now))
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, "second", entries[0].Content)
	assert.Equal(t, "first", entries[1].Content)
}

func TestSaveCapsAtFiveEntries(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	now := time.Now()

	var entries []Entry
	var err error
	for i := 0; i < 8; i++ {
		entries, err = Save(ctx, store, New(fmt.Sprintf("entry %d", i), "", "", now))
		require.NoError(t, err)
	}

	require.Len(t, entries, MaxEntries)
	assert.Equal(t, "entry 7", entries[0].Content)
	assert.Equal(t, "entry 3", entries[MaxEntries-1].Content)

	reloaded, err := Load(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, entries, reloaded)
}

func TestNewDefaultsMoodToNeutral(t *testing.T) {
	e := New("content", "", "", time.Now())
	assert.Equal(t, "Neutral", e.Mood)
	assert.NotEmpty(t, e.ID)
}

func TestLoadCorruptRecordReadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	require.NoError(t, store.Set(ctx, storage.KeyJournalEntries, "[broken"))

	entries, err := Load(ctx, store)
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestRandomPromptNonEmpty(t *testing.T) {
	assert.NotEmpty(t, RandomPrompt())
}

func TestPreviewCountsRunes(t *testing.T) {
	assert.Equal(t, "short", Preview("short", 60))

	long := strings.Repeat("a", 61)
	assert.Equal(t, strings.Repeat("a", 60)+"…", Preview(long, 60))

	// Multi-byte content must never be cut mid-rune.
	emoji := strings.Repeat("😊", 10)
	got := Preview(emoji, 4)
	assert.Equal(t, strings.Repeat("😊", 4)+"…", got)
	assert.True(t, utf8.ValidString(got))
}
