// Package insights shows personalized wellness recommendations derived
// from recent check-ins.
package insights

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zenspace/zenspace/internal/checkin"
	"github.com/zenspace/zenspace/internal/screen"
	"github.com/zenspace/zenspace/internal/storage"
	"github.com/zenspace/zenspace/internal/ui/layout"
	"github.com/zenspace/zenspace/internal/ui/theme"
)

type insight struct {
	Title       string
	Description string
	Category    string
	Priority    string
}

var baseInsights = []insight{
	{
		"Take a 10-minute walk today",
		"Based on your stress levels, a short walk can help reduce cortisol and improve your mood.",
		"Physical Wellness", "high",
	},
	{
		"Focus on gratitude journaling",
		"Your mood improves on days when you practice gratitude. Try writing 3 things you're grateful for.",
		"Mental Wellness", "medium",
	},
	{
		"Sleep pattern needs attention",
		"Your sleep duration has decreased this week. Consider a consistent bedtime routine.",
		"Sleep Health", "high",
	},
	{
		"Great progress this week!",
		"You've maintained consistent check-ins and your wellness score has improved.",
		"Achievement", "low",
	},
}

type loadedMsg struct {
	Today *checkin.Checkin
}

// InsightsScreen lists recommendations, reordered by today's check-in.
type InsightsScreen struct {
	store storage.Store

	insights []insight
	today    *checkin.Checkin
}

var _ screen.Screen = (*InsightsScreen)(nil)

// New creates the insights screen.
func New(store storage.Store) *InsightsScreen {
	return &InsightsScreen{store: store, insights: baseInsights}
}

func (s *InsightsScreen) Title() string {
	return "AI Insights"
}

func (s *InsightsScreen) Init() tea.Cmd {
	store := s.store
	return func() tea.Msg {
		today, _ := checkin.Load(context.Background(), store)
		return loadedMsg{Today: today}
	}
}

func (s *InsightsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *InsightsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(loadedMsg); ok {
		s.today = msg.Today
		s.insights = rank(baseInsights, msg.Today)
	}
	return s, nil
}

// rank floats the insights matching today's weakest numbers to the top.
func rank(list []insight, today *checkin.Checkin) []insight {
	if today == nil {
		return list
	}
	out := make([]insight, 0, len(list))
	rest := make([]insight, 0, len(list))
	for _, ins := range list {
		switch {
		case ins.Category == "Sleep Health" && today.Sleep < 6,
			ins.Category == "Physical Wellness" && today.Stress >= 7,
			ins.Category == "Mental Wellness" && today.Mood <= checkin.MoodAnxious:
			out = append(out, ins)
		default:
			rest = append(rest, ins)
		}
	}
	return append(out, rest...)
}

func priorityStyle(p string) lipgloss.Style {
	switch p {
	case "high":
		return lipgloss.NewStyle().Foreground(theme.Error)
	case "medium":
		return lipgloss.NewStyle().Foreground(theme.Accent)
	default:
		return lipgloss.NewStyle().Foreground(theme.Success)
	}
}

func (s *InsightsScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("AI Insights"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Personalized wellness recommendations just for you"))
	b.WriteString("\n\n")

	for _, ins := range s.insights {
		head := fmt.Sprintf("%s  %s",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(ins.Title),
			priorityStyle(ins.Priority).Render("["+ins.Priority+"]"),
		)
		b.WriteString(head)
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(ins.Description))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(ins.Category))
		b.WriteString("\n\n")
	}

	card := theme.Card.Width(min(width-4, 76)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
