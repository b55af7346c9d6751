// Package splash is the landing screen shown before authentication.
package splash

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zenspace/zenspace/internal/nav"
	"github.com/zenspace/zenspace/internal/screen"
	"github.com/zenspace/zenspace/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 400 * time.Millisecond
	phase2End    = 1200 * time.Millisecond
)

const lotusArt = `      .
    _ | _
  /  \|/  \
 |    |    |
  \   |   /
   '--;--'
   \_/ \_/`

var breathFrames = []string{"○", "◎", "●", "◎"}

type tickMsg time.Time

// SplashScreen plays a short breathing animation, then waits for the user
// to get started.
type SplashScreen struct {
	elapsed   time.Duration
	tickCount int
	started   bool
}

var _ screen.Screen = (*SplashScreen)(nil)

// New creates the splash screen.
func New() *SplashScreen {
	return &SplashScreen{}
}

func (s *SplashScreen) Title() string {
	return ""
}

func (s *SplashScreen) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (s *SplashScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		s.elapsed += tickInterval
		s.tickCount++
		return s, tea.Tick(tickInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyMsg:
		if s.elapsed >= phase2End && !s.started {
			s.started = true
			return s, func() tea.Msg { return nav.GetStartedMsg{} }
		}
		return s, nil
	}

	return s, nil
}

func (s *SplashScreen) View(width, height int) string {
	var sections []string

	lotus := lipgloss.NewStyle().Foreground(theme.Secondary).Render(lotusArt)

	if s.elapsed >= phase1End {
		frame := breathFrames[(s.tickCount/3)%len(breathFrames)]
		breath := lipgloss.NewStyle().Foreground(theme.Primary).Render(frame)
		lines := strings.Split(lotus, "\n")
		if len(lines) > 0 {
			lines[0] = breath + "  " + lines[0] + "  " + breath
		}
		lotus = strings.Join(lines, "\n")
	}

	sections = append(sections, lotus, "")

	banner := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Z E N   S P A C E")
	sections = append(sections, banner)

	if s.elapsed >= phase2End {
		sections = append(sections, "")
		tagline := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Your 24/7 Digital Mental Wellness Companion")
		sections = append(sections, tagline, "")

		hint := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("press any key to get started")
		sections = append(sections, hint)
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
