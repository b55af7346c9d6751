// Package meditation holds the guided session timer and the journaling
// tool, presented as two tabs of one screen.
package meditation

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zenspace/zenspace/internal/screen"
	"github.com/zenspace/zenspace/internal/storage"
	"github.com/zenspace/zenspace/internal/ui/components"
	"github.com/zenspace/zenspace/internal/ui/layout"
	"github.com/zenspace/zenspace/internal/ui/theme"
	"go.uber.org/zap"
)

type tab int

const (
	tabMeditate tab = iota
	tabJournal
)

type meditationSession struct {
	Title       string
	Duration    time.Duration
	Description string
	Category    string
}

var sessions = []meditationSession{
	{"Morning Focus", 10 * time.Minute, "Start your day with clarity and intention", "Focus"},
	{"Stress Relief", 15 * time.Minute, "Release tension and find inner peace", "Calm"},
	{"Better Sleep", 20 * time.Minute, "Prepare your mind for restful sleep", "Sleep"},
	{"Energy Boost", 8 * time.Minute, "Revitalize your mind and body", "Motivation"},
}

type timerTickMsg time.Time

// MeditationScreen runs a countdown for a chosen session alongside the
// journaling tab.
type MeditationScreen struct {
	tab tab

	// meditation state
	menu      components.Menu
	active    *meditationSession
	remaining time.Duration
	running   bool

	journal *journalView
}

var _ screen.Screen = (*MeditationScreen)(nil)

// New creates the meditation screen. Passing openJournal starts on the
// journaling tab.
func New(store storage.Store, log *zap.Logger, openJournal bool) *MeditationScreen {
	s := &MeditationScreen{journal: newJournalView(store, log)}
	if openJournal {
		s.tab = tabJournal
	}

	items := make([]components.MenuItem, len(sessions))
	for i := range sessions {
		sess := &sessions[i]
		items[i] = components.MenuItem{
			Label:       fmt.Sprintf("%s (%d min)", sess.Title, int(sess.Duration.Minutes())),
			Description: sess.Description,
		}
	}
	s.menu = components.NewMenu(items)
	return s
}

func (s *MeditationScreen) Title() string {
	if s.tab == tabJournal {
		return "Journal"
	}
	return "Meditation"
}

func (s *MeditationScreen) Init() tea.Cmd {
	return s.journal.init()
}

func (s *MeditationScreen) KeyHints() []layout.KeyHint {
	if s.tab == tabJournal {
		return s.journal.keyHints()
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Session"},
		{Key: "Enter", Description: "Start/Pause"},
		{Key: "Ctrl+J", Description: "Journal tab"},
		{Key: "Esc", Description: "Back"},
	}
}

// CapturesInput reports whether the journal editor owns the keyboard.
func (s *MeditationScreen) CapturesInput() bool {
	return s.tab == tabJournal
}

func (s *MeditationScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		if !s.running {
			return s, nil
		}
		s.remaining -= time.Second
		if s.remaining <= 0 {
			s.remaining = 0
			s.running = false
			return s, nil
		}
		return s, tickCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+j":
			if s.tab == tabMeditate {
				s.tab = tabJournal
			} else {
				s.tab = tabMeditate
			}
			return s, nil
		}
	}

	if s.tab == tabJournal {
		return s, s.journal.update(msg)
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return s, s.toggleSession()
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *MeditationScreen) toggleSession() tea.Cmd {
	chosen := &sessions[s.menu.Selected]
	if s.active == chosen && s.running {
		s.running = false
		return nil
	}
	if s.active != chosen {
		s.active = chosen
		s.remaining = chosen.Duration
	}
	s.running = true
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

// Box breathing: four equal phases of four seconds each, repeating for the
// whole session.
var breathPhases = []string{"breathe in", "hold", "breathe out", "hold"}

const breathPhaseLen = 4 * time.Second

func breathPhase(elapsed time.Duration) string {
	return breathPhases[int(elapsed/breathPhaseLen)%len(breathPhases)]
}

func (s *MeditationScreen) View(width, height int) string {
	if s.tab == tabJournal {
		return s.journal.view(width, height)
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Guided Meditation"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Pick a session and breathe"))
	b.WriteString("\n\n")

	b.WriteString(s.menu.View())
	b.WriteString("\n")

	if s.active != nil {
		mins := int(s.remaining.Minutes())
		secs := int(s.remaining.Seconds()) % 60
		clock := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
			Render(fmt.Sprintf("%02d:%02d", mins, secs))

		status := "paused"
		if s.running {
			status = breathPhase(s.active.Duration-s.remaining) + "..."
		}
		if s.remaining == 0 {
			status = "session complete ✓"
		}

		done := 1 - s.remaining.Seconds()/s.active.Duration.Seconds()
		bar := components.NewProgressBar("", done, false, min(width-16, 48))

		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s  %s  %s", s.active.Title, clock, theme.Hint.Render(status)))
		b.WriteString("\n")
		b.WriteString(bar.View())
		b.WriteString("\n")
	}

	card := theme.Card.Width(min(width-4, 72)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
