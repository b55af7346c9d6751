// Package app owns the root Bubble Tea model: it feeds navigation messages
// to the controller and swaps the active screen to match.
package app

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/zenspace/zenspace/internal/api"
	"github.com/zenspace/zenspace/internal/nav"
	"github.com/zenspace/zenspace/internal/screen"
	"github.com/zenspace/zenspace/internal/screens/analytics"
	"github.com/zenspace/zenspace/internal/screens/auth"
	"github.com/zenspace/zenspace/internal/screens/checkinscreen"
	"github.com/zenspace/zenspace/internal/screens/dashboard"
	"github.com/zenspace/zenspace/internal/screens/insights"
	"github.com/zenspace/zenspace/internal/screens/meditation"
	"github.com/zenspace/zenspace/internal/screens/parentdetails"
	"github.com/zenspace/zenspace/internal/screens/profile"
	"github.com/zenspace/zenspace/internal/screens/splash"
	"github.com/zenspace/zenspace/internal/screens/support"
	"github.com/zenspace/zenspace/internal/screens/zentools"
	"github.com/zenspace/zenspace/internal/storage"
	"github.com/zenspace/zenspace/internal/ui/layout"
)

// tabs is the bottom navigation, in number-key order.
var tabs = []struct {
	Label  string
	Target string
	Screen nav.Screen
}{
	{"Home", "dashboard", nav.ScreenDashboard},
	{"Tools", "zentools", nav.ScreenZenTools},
	{"Analytics", "analytics", nav.ScreenAnalytics},
	{"Support", "support", nav.ScreenSupport},
	{"Profile", "profile", nav.ScreenProfile},
}

// Model is the root Bubble Tea model.
type Model struct {
	ctl    *nav.Controller
	store  storage.Store
	client *api.Client
	log    *zap.Logger

	active      screen.Screen
	current     nav.Screen
	wantJournal bool
	width       int
	height      int
}

// New creates the root model. The controller must already be initialized.
func New(ctl *nav.Controller, store storage.Store, client *api.Client, log *zap.Logger) Model {
	m := Model{ctl: ctl, store: store, client: client, log: log}
	m.current = ctl.Screen()
	m.active = m.build(m.current)
	return m
}

func (m Model) Init() tea.Cmd {
	if m.active != nil {
		return m.active.Init()
	}
	return nil
}

// build constructs the screen for a navigation state.
func (m *Model) build(s nav.Screen) screen.Screen {
	switch s {
	case nav.ScreenSplash:
		return splash.New()
	case nav.ScreenAuth:
		return auth.New(m.client)
	case nav.ScreenParentDetails:
		return parentdetails.New(m.client)
	case nav.ScreenCheckin:
		return checkinscreen.New()
	case nav.ScreenDashboard:
		return dashboard.New(m.ctl.Session(), m.store)
	case nav.ScreenInsights:
		return insights.New(m.store)
	case nav.ScreenSupport:
		return support.New()
	case nav.ScreenMeditation, nav.ScreenJournal:
		openJournal := m.wantJournal
		m.wantJournal = false
		return meditation.New(m.store, m.log, openJournal)
	case nav.ScreenAnalytics:
		return analytics.New(m.store)
	case nav.ScreenProfile:
		return profile.New(m.ctl.Session(), m.store, m.log)
	case nav.ScreenZenTools:
		return zentools.New(m.client, m.log)
	default:
		return dashboard.New(m.ctl.Session(), m.store)
	}
}

// swap replaces the active screen when the controller moved.
func (m Model) swap() (Model, tea.Cmd) {
	next := m.ctl.Screen()
	if next == m.current && m.active != nil {
		return m, nil
	}
	if closer, ok := m.active.(screen.Closer); ok {
		closer.Close()
	}
	m.current = next
	m.active = m.build(next)
	return m, m.active.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case nav.GetStartedMsg:
		m.ctl.GetStarted()
		return m.swap()

	case nav.AuthenticatedMsg:
		m.ctl.Authenticated(ctx, msg.Result, msg.Language)
		return m.swap()

	case nav.ParentDetailsSavedMsg:
		m.ctl.ParentDetailsCompleted(ctx, msg.Raw)
		return m.swap()

	case nav.CheckinDoneMsg:
		m.ctl.CheckinCompleted(ctx, msg.Data)
		return m.swap()

	case nav.NavigateMsg:
		m.wantJournal = msg.Target == "journal"
		m.ctl.Navigate(msg.Target)
		return m.swap()

	case nav.BackMsg:
		m.ctl.Back()
		return m.swap()

	case nav.LogoutMsg:
		m.ctl.Logout(ctx)
		return m.swap()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			if closer, ok := m.active.(screen.Closer); ok {
				closer.Close()
			}
			return m, tea.Quit
		case "esc":
			if ic, ok := m.active.(screen.EscInterceptor); ok && ic.InterceptsEsc() {
				break
			}
			if m.current == nav.ScreenSplash {
				return m, nil
			}
			m.ctl.Back()
			return m.swap()
		case "1", "2", "3", "4", "5":
			if !m.ctl.ShowTabBar() {
				break
			}
			if ic, ok := m.active.(screen.InputCapturer); ok && ic.CapturesInput() {
				break
			}
			idx := int(msg.String()[0] - '1')
			m.wantJournal = false
			m.ctl.Navigate(tabs[idx].Target)
			return m.swap()
		}
	}

	if m.active == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.active, cmd = m.active.Update(msg)
	return m, cmd
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	title := ""
	if m.active != nil {
		title = m.active.Title()
	}

	online, known := false, false
	if cr, ok := m.active.(screen.ConnectivityReporter); ok {
		online, known = cr.Online()
	}
	header := layout.RenderHeader(title, online, known, m.width)

	var footer string
	if m.ctl.ShowTabBar() {
		activeTab := m.ctl.ActiveTab()
		bar := make([]layout.Tab, len(tabs))
		for i, t := range tabs {
			bar[i] = layout.Tab{Label: t.Label, Target: t.Target, Active: t.Screen == activeTab}
		}
		footer = layout.RenderTabBar(bar, m.width)
	} else {
		hints := []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
		if hp, ok := m.active.(screen.KeyHintProvider); ok {
			hints = append(hp.KeyHints(), hints...)
		}
		footer = layout.RenderFooter(hints, m.width)
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := ""
	if m.active != nil {
		content = m.active.View(m.width, contentHeight)
	}

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run initializes the controller from storage (consuming authPayload when
// present) and starts the program.
func Run(ctl *nav.Controller, store storage.Store, client *api.Client, log *zap.Logger, authPayload string) error {
	ctl.Initialize(context.Background(), authPayload)

	p := tea.NewProgram(New(ctl, store, client, log))
	_, err := p.Run()
	return err
}
