// Package dashboard is the signed-in home screen.
package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zenspace/zenspace/internal/checkin"
	"github.com/zenspace/zenspace/internal/nav"
	"github.com/zenspace/zenspace/internal/screen"
	"github.com/zenspace/zenspace/internal/session"
	"github.com/zenspace/zenspace/internal/storage"
	"github.com/zenspace/zenspace/internal/ui/components"
	"github.com/zenspace/zenspace/internal/ui/theme"
)

type todayMsg struct {
	Checkin *checkin.Checkin
}

// DashboardScreen greets the user and offers the main shortcuts.
type DashboardScreen struct {
	sess  *session.Session
	store storage.Store

	menu  components.Menu
	today *checkin.Checkin
}

var _ screen.Screen = (*DashboardScreen)(nil)

// New creates the dashboard for the signed-in user.
func New(sess *session.Session, store storage.Store) *DashboardScreen {
	s := &DashboardScreen{sess: sess, store: store}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "🧘 Meditation", Description: "10 min session", Action: navigate("meditation")},
		{Label: "📝 Journal", Description: "Write thoughts", Action: navigate("journal")},
		{Label: "✨ AI Insights", Description: "Get personalized tips", Action: navigate("insights")},
		{Label: "🤝 Support Hub", Description: "Connect with peers", Action: navigate("support")},
		{Label: "🛠 Zen Tools", Description: "ZenBot, dares and more", Action: navigate("zentools")},
	})
	return s
}

func navigate(target string) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg { return nav.NavigateMsg{Target: target} }
	}
}

func (s *DashboardScreen) Title() string {
	return "Dashboard"
}

func (s *DashboardScreen) Init() tea.Cmd {
	store := s.store
	return func() tea.Msg {
		c, _ := checkin.Load(context.Background(), store)
		if c != nil && c.Date != checkin.DateKey(time.Now()) {
			c = nil
		}
		return todayMsg{Checkin: c}
	}
}

func (s *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case todayMsg:
		s.today = msg.Checkin
		return s, nil
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *DashboardScreen) View(width, height int) string {
	var b strings.Builder

	name := "there"
	if s.sess != nil && s.sess.FirstName != "" {
		name = s.sess.FirstName
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render(fmt.Sprintf("Hi, %s 👋", name)))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Welcome back to your wellness journey"))
	b.WriteString("\n\n")

	if s.today != nil {
		summary := fmt.Sprintf(
			"Today: mood %s · motivation %d/10 · stress %d/10 · sleep %dh · energy %d/10",
			checkin.MoodLabel(s.today.Mood),
			s.today.Motivation, s.today.Stress, s.today.Sleep, s.today.Energy,
		)
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render(summary))
	} else {
		b.WriteString(theme.Hint.Render("No check-in yet today"))
	}
	b.WriteString("\n\n")

	b.WriteString(s.menu.View())

	card := theme.Card.Width(min(width-4, 72)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
