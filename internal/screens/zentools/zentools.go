// Package zentools is the wellness toolbox: the ZenBot chat and the random
// dare challenge live here, with shortcuts out to the other tools.
package zentools

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zenspace/zenspace/internal/chat"
	"github.com/zenspace/zenspace/internal/nav"
	"github.com/zenspace/zenspace/internal/screen"
	"github.com/zenspace/zenspace/internal/ui/components"
	"github.com/zenspace/zenspace/internal/ui/layout"
	"github.com/zenspace/zenspace/internal/ui/theme"
	"go.uber.org/zap"
)

type view int

const (
	viewHub view = iota
	viewChat
	viewDare
)

type openViewMsg view

// ZenToolsScreen hosts the tool sub-views behind a hub menu.
type ZenToolsScreen struct {
	svc chat.Service
	log *zap.Logger

	view view
	menu components.Menu
	chat *chatView
	dare *dareView
}

var _ screen.Screen = (*ZenToolsScreen)(nil)
var _ screen.Closer = (*ZenToolsScreen)(nil)

// New creates the zen tools hub.
func New(svc chat.Service, log *zap.Logger) *ZenToolsScreen {
	s := &ZenToolsScreen{svc: svc, log: log}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "🤖 ZenBot", Description: "Talk it out with your AI companion",
			Action: openView(viewChat)},
		{Label: "🎲 Random Dare", Description: "A small wellness challenge",
			Action: openView(viewDare)},
		{Label: "📝 Journaling", Description: "Write your thoughts down",
			Action: navigateCmd("journal")},
		{Label: "🧘 Meditation", Description: "Guided breathing",
			Action: navigateCmd("meditation")},
	})
	return s
}

func openView(v view) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg { return openViewMsg(v) }
	}
}

func navigateCmd(target string) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg { return nav.NavigateMsg{Target: target} }
	}
}

func (s *ZenToolsScreen) Title() string {
	switch s.view {
	case viewChat:
		return "ZenBot"
	case viewDare:
		return "Random dare"
	default:
		return "Zen tools"
	}
}

func (s *ZenToolsScreen) Init() tea.Cmd {
	return nil
}

func (s *ZenToolsScreen) KeyHints() []layout.KeyHint {
	switch s.view {
	case viewChat:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Send"},
			{Key: "1-6", Description: "Quick reply"},
			{Key: "Esc", Description: "Back to tools"},
		}
	case viewDare:
		return []layout.KeyHint{
			{Key: "Space", Description: "Spin"},
			{Key: "Enter", Description: "Complete"},
			{Key: "Esc", Description: "Back to tools"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Open"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

// CapturesInput reports whether the chat input owns the keyboard.
func (s *ZenToolsScreen) CapturesInput() bool {
	return s.view == viewChat
}

// InterceptsEsc keeps esc inside the screen while a sub-view is open.
func (s *ZenToolsScreen) InterceptsEsc() bool {
	return s.view != viewHub
}

// Online reports the chat controller's connectivity signal when a
// conversation exists.
func (s *ZenToolsScreen) Online() (online, known bool) {
	if s.chat == nil {
		return false, false
	}
	return s.chat.ctl.Online()
}

// Close releases the chat conversation, cancelling any in-flight send.
func (s *ZenToolsScreen) Close() {
	if s.chat != nil {
		s.chat.close()
		s.chat = nil
	}
}

func (s *ZenToolsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case openViewMsg:
		s.view = view(msg)
		switch s.view {
		case viewChat:
			if s.chat == nil {
				s.chat = newChatView(s.svc, s.log)
				return s, s.chat.init()
			}
		case viewDare:
			if s.dare == nil {
				s.dare = newDareView()
			}
		}
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" && s.view != viewHub {
			// Leaving the chat view destroys the conversation, matching a
			// fresh mount on re-entry.
			if s.view == viewChat && s.chat != nil {
				s.chat.close()
				s.chat = nil
			}
			s.view = viewHub
			return s, nil
		}
	}

	switch s.view {
	case viewChat:
		if s.chat != nil {
			return s, s.chat.update(msg)
		}
	case viewDare:
		if s.dare != nil {
			return s, s.dare.update(msg)
		}
	default:
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ZenToolsScreen) View(width, height int) string {
	switch s.view {
	case viewChat:
		if s.chat != nil {
			return s.chat.view(width, height)
		}
	case viewDare:
		if s.dare != nil {
			return s.dare.view(width, height)
		}
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Zen Tools"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Small practices for big feelings"))
	b.WriteString("\n\n")
	b.WriteString(s.menu.View())

	card := theme.Card.Width(min(width-4, 64)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
