package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zenspace/zenspace/internal/ui/theme"
)

// Slider is a horizontal integer scale adjusted with left/right keys. The
// check-in screen uses a stack of these for its 1-10 ratings.
type Slider struct {
	Label   string
	Unit    string
	Min     int
	Max     int
	Value   int
	Focused bool
}

// NewSlider creates a slider with an initial value.
func NewSlider(label, unit string, min, max, initial int) Slider {
	if initial < min {
		initial = min
	}
	if initial > max {
		initial = max
	}
	return Slider{Label: label, Unit: unit, Min: min, Max: max, Value: initial}
}

// Update handles left/right adjustment while focused.
func (s Slider) Update(msg tea.Msg) (Slider, tea.Cmd) {
	if !s.Focused {
		return s, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if s.Value > s.Min {
			s.Value--
		}
	case "right", "l":
		if s.Value < s.Max {
			s.Value++
		}
	}
	return s, nil
}

// View renders the labelled track.
func (s Slider) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if s.Focused {
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}

	span := s.Max - s.Min
	filled := 0
	if span > 0 {
		filled = (s.Value - s.Min) * 20 / span
	}
	track := lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Repeat("━", filled)) +
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("●") +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("━", 20-filled))

	value := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(fmt.Sprintf(" %d%s", s.Value, s.Unit))

	return labelStyle.Render(s.Label) + "\n" + track + value
}
