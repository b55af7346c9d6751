package meditation

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zenspace/zenspace/internal/journal"
	"github.com/zenspace/zenspace/internal/storage"
	"github.com/zenspace/zenspace/internal/ui/components"
	"github.com/zenspace/zenspace/internal/ui/layout"
	"github.com/zenspace/zenspace/internal/ui/theme"
	"go.uber.org/zap"
)

type entriesMsg struct {
	Entries []journal.Entry
}

type savedEntryMsg struct {
	Entries []journal.Entry
	Err     error
}

// journalView is the journaling tab: a free-text entry with a mood tag and
// an optional inspiration prompt, plus the recent entries below.
type journalView struct {
	store storage.Store
	log   *zap.Logger

	input   components.TextInput
	mood    int // index into journal.MoodTags, -1 none
	prompt  string
	entries []journal.Entry
	saved   bool
}

func newJournalView(store storage.Store, log *zap.Logger) *journalView {
	return &journalView{
		store: store,
		log:   log,
		input: components.NewTextInput("", "Write about your thoughts, feelings, or experiences today...", 2000),
		mood:  -1,
	}
}

func (v *journalView) init() tea.Cmd {
	store := v.store
	return tea.Batch(
		v.input.Focus(),
		func() tea.Msg {
			entries, _ := journal.Load(context.Background(), store)
			return entriesMsg{Entries: entries}
		},
	)
}

func (v *journalView) keyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Save entry"},
		{Key: "Ctrl+P", Description: "Prompt"},
		{Key: "Ctrl+M", Description: "Mood tag"},
		{Key: "Ctrl+J", Description: "Meditation tab"},
		{Key: "Esc", Description: "Back"},
	}
}

func (v *journalView) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case entriesMsg:
		v.entries = msg.Entries
		return nil

	case savedEntryMsg:
		if msg.Err != nil {
			v.log.Warn("journal save failed", zap.Error(msg.Err))
			return nil
		}
		v.entries = msg.Entries
		v.saved = true
		return nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+p":
			v.prompt = journal.RandomPrompt()
			return nil
		case "ctrl+m":
			v.mood = (v.mood + 1) % len(journal.MoodTags)
			return nil
		case "enter":
			return v.save()
		}
	}

	v.saved = false
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return cmd
}

func (v *journalView) save() tea.Cmd {
	content := strings.TrimSpace(v.input.Value())
	if content == "" {
		return nil
	}

	mood := ""
	if v.mood >= 0 {
		mood = journal.MoodTags[v.mood].Label
	}
	entry := journal.New(content, mood, v.prompt, time.Now())

	v.input.Reset()
	v.mood = -1
	v.prompt = ""

	store := v.store
	return func() tea.Msg {
		entries, err := journal.Save(context.Background(), store, entry)
		return savedEntryMsg{Entries: entries, Err: err}
	}
}

func (v *journalView) view(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Journal"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Only you can read this"))
	b.WriteString("\n\n")

	if v.prompt != "" {
		b.WriteString(theme.Hint.Render("💡 " + v.prompt))
		b.WriteString("\n\n")
	}

	b.WriteString(v.input.View())
	b.WriteString("\n\n")

	moodLine := "Mood: "
	if v.mood >= 0 {
		t := journal.MoodTags[v.mood]
		moodLine += t.Emoji + " " + t.Label
	} else {
		moodLine += "none (Ctrl+M to tag)"
	}
	b.WriteString(theme.Hint.Render(moodLine))
	b.WriteString("\n")

	if v.saved {
		b.WriteString(theme.Positive.Render("Entry saved ✓"))
		b.WriteString("\n")
	}

	if len(v.entries) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).
			Render("Recent entries"))
		b.WriteString("\n")
		for _, e := range v.entries {
			line := fmt.Sprintf("· %s  %s", journal.Preview(e.Content, 60), theme.Hint.Render(e.Mood))
			b.WriteString(theme.Body.Render(line))
			b.WriteString("\n")
		}
	}

	card := theme.Card.Width(min(width-4, 72)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
