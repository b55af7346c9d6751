// Package checkinscreen is the daily mood survey shown once per day.
package checkinscreen

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zenspace/zenspace/internal/checkin"
	"github.com/zenspace/zenspace/internal/nav"
	"github.com/zenspace/zenspace/internal/screen"
	"github.com/zenspace/zenspace/internal/ui/components"
	"github.com/zenspace/zenspace/internal/ui/layout"
	"github.com/zenspace/zenspace/internal/ui/theme"
)

var moods = []struct {
	Emoji string
	Label string
	Value int
}{
	{"😢", "Sad", checkin.MoodSad},
	{"😟", "Anxious", checkin.MoodAnxious},
	{"😐", "Neutral", checkin.MoodNeutral},
	{"😊", "Calm", checkin.MoodCalm},
	{"😄", "Happy", checkin.MoodHappy},
}

const (
	rowMood = iota
	rowMotivation
	rowStress
	rowSleep
	rowEnergy
	rowSubmit
	rowCount
)

// CheckinScreen collects mood plus four ratings and reports the result.
type CheckinScreen struct {
	mood    int // index into moods, -1 until chosen
	sliders [4]components.Slider
	row     int
	errText string
}

var _ screen.Screen = (*CheckinScreen)(nil)

// New creates the check-in screen with the usual starting values.
func New() *CheckinScreen {
	s := &CheckinScreen{mood: -1}
	s.sliders[0] = components.NewSlider("How motivated do you feel?", "/10", 1, 10, 5)
	s.sliders[1] = components.NewSlider("How stressed are you today?", "/10", 1, 10, 3)
	s.sliders[2] = components.NewSlider("How many hours did you sleep?", "h", 0, 12, 7)
	s.sliders[3] = components.NewSlider("Energy level today", "/10", 1, 10, 5)
	return s
}

func (s *CheckinScreen) Title() string {
	return "Daily check-in"
}

func (s *CheckinScreen) Init() tea.Cmd {
	return nil
}

func (s *CheckinScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Row"},
		{Key: "←→", Description: "Adjust"},
		{Key: "Enter", Description: "Done"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *CheckinScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.row > 0 {
			s.row--
		}
		s.syncFocus()
		return s, nil
	case "down", "j", "tab":
		if s.row < rowCount-1 {
			s.row++
		}
		s.syncFocus()
		return s, nil
	case "left", "h":
		if s.row == rowMood && s.mood > 0 {
			s.mood--
			return s, nil
		}
	case "right", "l":
		if s.row == rowMood {
			if s.mood < len(moods)-1 {
				s.mood++
			}
			return s, nil
		}
	case "enter":
		if s.row == rowSubmit {
			return s, s.submit()
		}
		s.row++
		s.syncFocus()
		return s, nil
	}

	if s.row >= rowMotivation && s.row <= rowEnergy {
		i := s.row - rowMotivation
		var cmd tea.Cmd
		s.sliders[i], cmd = s.sliders[i].Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *CheckinScreen) syncFocus() {
	for i := range s.sliders {
		s.sliders[i].Focused = s.row == rowMotivation+i
	}
}

func (s *CheckinScreen) submit() tea.Cmd {
	if s.mood < 0 {
		s.errText = "Please select your mood first"
		return nil
	}
	data := checkin.Checkin{
		Mood:       moods[s.mood].Value,
		Motivation: s.sliders[0].Value,
		Stress:     s.sliders[1].Value,
		Sleep:      s.sliders[2].Value,
		Energy:     s.sliders[3].Value,
		Date:       checkin.DateKey(time.Now()),
	}
	return func() tea.Msg { return nav.CheckinDoneMsg{Data: data} }
}

func (s *CheckinScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("How are you feeling today?"))
	b.WriteString("\n\n")

	moodLabel := lipgloss.NewStyle().Foreground(theme.TextDim)
	if s.row == rowMood {
		moodLabel = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}
	b.WriteString(moodLabel.Render("Select your mood"))
	b.WriteString("\n")

	var cells []string
	for i, m := range moods {
		cell := fmt.Sprintf("%s %s", m.Emoji, m.Label)
		if i == s.mood {
			cells = append(cells, theme.Selected.Render("["+cell+"]"))
		} else {
			cells = append(cells, theme.Unselected.Render(" "+cell+" "))
		}
	}
	b.WriteString(strings.Join(cells, "  "))
	b.WriteString("\n\n")

	for i := range s.sliders {
		b.WriteString(s.sliders[i].View())
		b.WriteString("\n\n")
	}

	btn := components.Button{Label: "Complete check-in", Focused: s.row == rowSubmit}
	b.WriteString(btn.View())
	b.WriteString("\n")

	if s.errText != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(s.errText))
	}

	card := theme.Card.Width(min(width-4, 72)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
