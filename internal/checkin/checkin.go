// Package checkin records the once-a-day mood survey.
package checkin

import (
	"context"
	"encoding/json"
	"time"

	"github.com/zenspace/zenspace/internal/storage"
)

// Mood values, lowest to highest.
const (
	MoodSad = 1 + iota
	MoodAnxious
	MoodNeutral
	MoodCalm
	MoodHappy
)

// MoodLabel maps a mood value to its display label.
func MoodLabel(mood int) string {
	switch mood {
	case MoodSad:
		return "Sad"
	case MoodAnxious:
		return "Anxious"
	case MoodNeutral:
		return "Neutral"
	case MoodCalm:
		return "Calm"
	case MoodHappy:
		return "Happy"
	default:
		return "Unknown"
	}
}

// Checkin is one day's survey. Motivation, stress and energy are on a 1-10
// scale; sleep is hours. Date is date-only, YYYY-MM-DD.
type Checkin struct {
	Mood       int    `json:"mood"`
	Motivation int    `json:"motivation"`
	Stress     int    `json:"stress"`
	Sleep      int    `json:"sleep"`
	Energy     int    `json:"energy"`
	Date       string `json:"date"`
}

// DateKey renders a date-only string the way check-ins record it.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Save persists the check-in and marks its date as the last completed one.
func Save(ctx context.Context, store storage.Store, c Checkin) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return err
	}
	if err := store.Set(ctx, storage.KeyCheckinData, string(raw)); err != nil {
		return err
	}
	return store.Set(ctx, storage.KeyLastCheckin, c.Date)
}

// Load returns the most recent check-in, or nil when none is stored or the
// stored record is unreadable.
func Load(ctx context.Context, store storage.Store) (*Checkin, error) {
	raw, ok, err := store.Get(ctx, storage.KeyCheckinData)
	if err != nil || !ok {
		return nil, err
	}
	var c Checkin
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return nil, nil
	}
	return &c, nil
}

// CompletedToday reports whether a check-in was already recorded for the
// day containing now.
func CompletedToday(ctx context.Context, store storage.Store, now time.Time) (bool, error) {
	last, ok, err := store.Get(ctx, storage.KeyLastCheckin)
	if err != nil || !ok {
		return false, err
	}
	return last == DateKey(now), nil
}
