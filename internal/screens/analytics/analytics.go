// Package analytics visualizes wellness metrics and today's check-in.
package analytics

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zenspace/zenspace/internal/checkin"
	"github.com/zenspace/zenspace/internal/screen"
	"github.com/zenspace/zenspace/internal/storage"
	"github.com/zenspace/zenspace/internal/ui/components"
	"github.com/zenspace/zenspace/internal/ui/layout"
	"github.com/zenspace/zenspace/internal/ui/theme"
)

var wellnessMetrics = []struct {
	Label string
	Value int
	Trend string
}{
	{"Emotional Balance", 78, "+5%"},
	{"Stress Management", 65, "-3%"},
	{"Social Connection", 92, "+12%"},
	{"Physical Activity", 58, "+8%"},
}

type loadedMsg struct {
	Today *checkin.Checkin
}

// AnalyticsScreen shows progress bars for the tracked wellness areas.
type AnalyticsScreen struct {
	store storage.Store
	today *checkin.Checkin
}

var _ screen.Screen = (*AnalyticsScreen)(nil)

// New creates the analytics screen.
func New(store storage.Store) *AnalyticsScreen {
	return &AnalyticsScreen{store: store}
}

func (s *AnalyticsScreen) Title() string {
	return "Analytics"
}

func (s *AnalyticsScreen) Init() tea.Cmd {
	store := s.store
	return func() tea.Msg {
		today, _ := checkin.Load(context.Background(), store)
		return loadedMsg{Today: today}
	}
}

func (s *AnalyticsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *AnalyticsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(loadedMsg); ok {
		s.today = msg.Today
	}
	return s, nil
}

func (s *AnalyticsScreen) View(width, height int) string {
	var b strings.Builder
	barWidth := min(width-24, 40)

	b.WriteString(theme.Title.Render("Progress Analytics"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Your wellness journey in numbers"))
	b.WriteString("\n\n")

	for _, m := range wellnessMetrics {
		bar := components.NewProgressBar(
			fmt.Sprintf("%-20s", m.Label),
			float64(m.Value)/100, true, barWidth+20)
		b.WriteString(bar.View())
		b.WriteString("  ")
		trend := lipgloss.NewStyle().Foreground(theme.Success)
		if strings.HasPrefix(m.Trend, "-") {
			trend = lipgloss.NewStyle().Foreground(theme.Error)
		}
		b.WriteString(trend.Render(m.Trend))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).
		Render("Today's check-in"))
	b.WriteString("\n")
	if s.today == nil {
		b.WriteString(theme.Hint.Render("No check-in recorded today"))
		b.WriteString("\n")
	} else {
		rows := []struct {
			Label string
			Value int
			Max   int
		}{
			{"Motivation", s.today.Motivation, 10},
			{"Stress", s.today.Stress, 10},
			{"Sleep (h)", s.today.Sleep, 12},
			{"Energy", s.today.Energy, 10},
		}
		b.WriteString(theme.Body.Render("Mood: " + checkin.MoodLabel(s.today.Mood)))
		b.WriteString("\n")
		for _, r := range rows {
			bar := components.NewProgressBar(
				fmt.Sprintf("%-12s", r.Label),
				float64(r.Value)/float64(r.Max), false, barWidth+12)
			b.WriteString(bar.View())
			b.WriteString(theme.Hint.Render(fmt.Sprintf("  %d/%d", r.Value, r.Max)))
			b.WriteString("\n")
		}
	}

	card := theme.Card.Width(min(width-4, 76)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
