// Package parentdetails collects the guardian contact after signup.
package parentdetails

import (
	"context"
	"encoding/json"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zenspace/zenspace/internal/api"
	"github.com/zenspace/zenspace/internal/nav"
	"github.com/zenspace/zenspace/internal/screen"
	"github.com/zenspace/zenspace/internal/ui/components"
	"github.com/zenspace/zenspace/internal/ui/layout"
	"github.com/zenspace/zenspace/internal/ui/theme"
)

const (
	fieldName = iota
	fieldEmail
	fieldRelationship
	fieldMobile
	fieldAddress
	fieldCount
)

type savedMsg struct {
	Raw string
	Err error
}

// ParentDetailsScreen submits the guardian contact to the backend, then
// persists the form locally for the profile screen.
type ParentDetailsScreen struct {
	client *api.Client

	inputs     []components.TextInput
	focus      int
	submitting bool
	errText    string
}

var _ screen.Screen = (*ParentDetailsScreen)(nil)

// New creates the parent details screen.
func New(client *api.Client) *ParentDetailsScreen {
	s := &ParentDetailsScreen{client: client}
	s.inputs = make([]components.TextInput, fieldCount)
	s.inputs[fieldName] = components.NewTextInput("Parent/Guardian name", "Full name", 80)
	s.inputs[fieldEmail] = components.NewTextInput("Parent email", "parent@example.com", 120)
	s.inputs[fieldRelationship] = components.NewTextInput("Relationship", "Mother / Father / Guardian", 40)
	s.inputs[fieldMobile] = components.NewTextInput("Mobile number", "", 20)
	s.inputs[fieldAddress] = components.NewTextInput("Address", "", 200)
	return s
}

func (s *ParentDetailsScreen) Title() string {
	return "Parent details"
}

func (s *ParentDetailsScreen) Init() tea.Cmd {
	return s.inputs[s.focus].Focus()
}

func (s *ParentDetailsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Save"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ParentDetailsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		s.submitting = false
		if msg.Err != nil {
			s.errText = msg.Err.Error()
			return s, nil
		}
		return s, func() tea.Msg { return nav.ParentDetailsSavedMsg{Raw: msg.Raw} }

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			return s, s.moveFocus(1)
		case "shift+tab", "up":
			return s, s.moveFocus(-1)
		case "enter":
			return s, s.submit()
		}
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return s, cmd
}

func (s *ParentDetailsScreen) moveFocus(dir int) tea.Cmd {
	s.inputs[s.focus].Blur()
	s.focus = (s.focus + dir + fieldCount) % fieldCount
	return s.inputs[s.focus].Focus()
}

func (s *ParentDetailsScreen) submit() tea.Cmd {
	if s.submitting {
		return nil
	}

	in := api.ParentInput{
		Name:  strings.TrimSpace(s.inputs[fieldName].Value()),
		Email: strings.TrimSpace(s.inputs[fieldEmail].Value()),
		Phone: strings.TrimSpace(s.inputs[fieldMobile].Value()),
	}
	// Required-field marks stay visible until the next submit attempt.
	s.inputs[fieldName].Submit(in.Name != "")
	s.inputs[fieldEmail].Submit(in.Email != "")
	s.inputs[fieldMobile].Submit(in.Phone != "")
	if in.Name == "" || in.Email == "" || in.Phone == "" {
		s.errText = "Please fill in all required fields"
		return nil
	}

	// The full form, relationship and address included, is kept locally;
	// only name/email/phone go to the backend.
	local := map[string]string{
		"name":         in.Name,
		"email":        in.Email,
		"relationship": strings.TrimSpace(s.inputs[fieldRelationship].Value()),
		"phone":        in.Phone,
		"address":      strings.TrimSpace(s.inputs[fieldAddress].Value()),
	}
	raw, _ := json.Marshal(local)

	s.submitting = true
	s.errText = ""
	client := s.client
	return func() tea.Msg {
		_, err := client.UpdateParent(context.Background(), in)
		return savedMsg{Raw: string(raw), Err: err}
	}
}

func (s *ParentDetailsScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Who should we reach in an emergency?"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("A trusted adult we can contact if you ever need extra support"))
	b.WriteString("\n\n")

	for i := range s.inputs {
		b.WriteString(s.inputs[i].View())
		b.WriteString("\n\n")
	}

	if s.submitting {
		b.WriteString(theme.Hint.Render("Saving..."))
		b.WriteString("\n")
	}
	if s.errText != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(s.errText))
		b.WriteString("\n")
	}

	card := theme.Card.Width(min(width-4, 64)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
