// Package journal stores short free-form journal entries locally. Entries
// never leave the device; only the five most recent are kept.
package journal

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/zenspace/zenspace/internal/storage"
)

// MaxEntries is how many recent entries are retained.
const MaxEntries = 5

// Entry is one saved journal entry. Prompt is the inspiration prompt that
// was active when the entry was written, if any.
type Entry struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Mood    string `json:"mood"`
	Date    string `json:"date"`
	Prompt  string `json:"prompt,omitempty"`
}

// MoodTags are the selectable mood labels, with their display emoji.
var MoodTags = []struct {
	Emoji string
	Label string
}{
	{"😊", "Happy"},
	{"😌", "Peaceful"},
	{"🙏", "Grateful"},
	{"😟", "Anxious"},
	{"😔", "Sad"},
	{"😤", "Frustrated"},
	{"🤔", "Reflective"},
	{"💪", "Motivated"},
}

var prompts = []string{
	"What are three things you're grateful for today?",
	"Describe a moment when you felt truly proud of yourself.",
	"What's one challenge you overcame recently?",
	"Write about someone who made your day better.",
	"What's something new you learned about yourself this week?",
	"Describe your ideal day from start to finish.",
	"What advice would you give to your younger self?",
	"What's one thing you're looking forward to?",
	"Write about a place that makes you feel peaceful.",
	"What's a skill you'd like to develop and why?",
	"Describe a time when you helped someone else.",
	"What's something that always makes you smile?",
	"Write about your biggest accomplishment this month.",
	"What does self-care mean to you?",
	"Describe a perfect moment from your recent memory.",
}

// RandomPrompt returns one of the inspiration prompts.
func RandomPrompt() string {
	return prompts[rand.Intn(len(prompts))]
}

// Preview shortens content to at most n runes for list display, appending an
// ellipsis when truncated. Counting runes keeps multi-byte characters intact.
func Preview(content string, n int) string {
	runes := []rune(content)
	if len(runes) <= n {
		return content
	}
	return string(runes[:n]) + "…"
}

// New builds an entry with a fresh ID and the current timestamp. An empty
// mood defaults to Neutral.
func New(content, mood, prompt string, now time.Time) Entry {
	if mood == "" {
		mood = "Neutral"
	}
	return Entry{
		ID:      uuid.NewString(),
		Content: content,
		Mood:    mood,
		Date:    now.Format(time.RFC3339),
		Prompt:  prompt,
	}
}

// Load returns stored entries, newest first. A corrupted record reads as
// empty rather than failing the caller.
func Load(ctx context.Context, store storage.Store) ([]Entry, error) {
	raw, ok, err := store.Get(ctx, storage.KeyJournalEntries)
	if err != nil || !ok {
		return nil, err
	}
	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, nil
	}
	return entries, nil
}

// Save prepends the entry and persists at most MaxEntries, dropping the
// oldest beyond that.
func Save(ctx context.Context, store storage.Store, e Entry) ([]Entry, error) {
	existing, err := Load(ctx, store)
	if err != nil {
		return nil, err
	}

	keep := existing
	if len(keep) > MaxEntries-1 {
		keep = keep[:MaxEntries-1]
	}
	entries := append([]Entry{e}, keep...)

	raw, err := json.Marshal(entries)
	if err != nil {
		return nil, err
	}
	if err := store.Set(ctx, storage.KeyJournalEntries, string(raw)); err != nil {
		return nil, err
	}
	return entries, nil
}
