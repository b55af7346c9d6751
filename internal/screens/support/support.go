// Package support is the peer and counselor hub, with crisis resources.
package support

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zenspace/zenspace/internal/nav"
	"github.com/zenspace/zenspace/internal/screen"
	"github.com/zenspace/zenspace/internal/ui/components"
	"github.com/zenspace/zenspace/internal/ui/layout"
	"github.com/zenspace/zenspace/internal/ui/theme"
)

var communityTopics = []string{
	"Dealing with exam stress",
	"Finding motivation for morning routines",
	"Social anxiety in group projects",
	"Gratitude practice ideas",
}

var counselors = []struct {
	Name      string
	Specialty string
}{
	{"Dr. Sarah Chen", "Anxiety & stress management"},
	{"Dr. Michael Rodriguez", "Academic pressure & motivation"},
}

// SupportScreen lists community topics, counselors, and crisis resources.
type SupportScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*SupportScreen)(nil)

// New creates the support hub.
func New() *SupportScreen {
	s := &SupportScreen{}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "🤖 Talk to ZenBot", Description: "Your AI companion is always available",
			Action: func() tea.Cmd {
				return func() tea.Msg { return nav.NavigateMsg{Target: "zentools"} }
			}},
		{Label: "🧘 Meditation", Description: "Calm down before reaching out",
			Action: func() tea.Cmd {
				return func() tea.Msg { return nav.NavigateMsg{Target: "meditation"} }
			}},
	})
	return s
}

func (s *SupportScreen) Title() string {
	return "Support hub"
}

func (s *SupportScreen) Init() tea.Cmd {
	return nil
}

func (s *SupportScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SupportScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SupportScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Support Hub"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("You don't have to figure it out alone"))
	b.WriteString("\n\n")

	b.WriteString(s.menu.View())
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).
		Render("Community topics"))
	b.WriteString("\n")
	for _, topic := range communityTopics {
		b.WriteString(theme.Body.Render("· " + topic))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).
		Render("Counselors"))
	b.WriteString("\n")
	for _, c := range counselors {
		b.WriteString(theme.Body.Render("· " + c.Name + "  "))
		b.WriteString(theme.Hint.Render(c.Specialty))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	crisis := lipgloss.NewStyle().
		Foreground(theme.Error).
		Bold(true).
		Render("In crisis? Call or text 988 (US) right now.")
	b.WriteString(crisis)

	card := theme.Card.Width(min(width-4, 72)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
