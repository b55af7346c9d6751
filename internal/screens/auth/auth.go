// Package auth is the login/signup screen.
package auth

import (
	"context"
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

type mode int

const (
	modeLogin mode = iota
	modeSignup
)

// Field indexes for the signup form; login uses the first two.
const (
	fieldName = iota
	fieldEmail
	fieldPassword
	fieldCollege
	fieldYear
	fieldLanguage
	fieldCount
)

type authResultMsg struct {
	Result   *api.AuthResult
	Language string
	Err      error
}

// AuthScreen collects credentials and exchanges them with the backend.
type AuthScreen struct {
	client *api.Client

	mode       mode
	inputs     []components.TextInput
	focus      int
	submitting bool
	errText    string
}

var _ screen.Screen = (*AuthScreen)(nil)

// New creates the auth screen in login mode.
func New(client *api.Client) *AuthScreen {
	s := &AuthScreen{client: client, mode: modeLogin}
	s.inputs = buildInputs()
	s.focus = fieldEmail
	return s
}

func buildInputs() []components.TextInput {
	inputs := make([]components.TextInput, fieldCount)
	inputs[fieldName] = components.NewTextInput("Full name", "Ada Lovelace", 80)
	inputs[fieldEmail] = components.NewTextInput("Email", "you@college.edu", 120)
	inputs[fieldPassword] = components.NewPasswordInput("Password", "")
	inputs[fieldCollege] = components.NewTextInput("College/University", "", 120)
	inputs[fieldYear] = components.NewTextInput("Academic year", "1st / 2nd / 3rd / 4th", 20)
	inputs[fieldLanguage] = components.NewTextInput("Preferred language", "en", 10)
	return inputs
}

func (s *AuthScreen) Title() string {
	return "Welcome back"
}

func (s *AuthScreen) Init() tea.Cmd {
	return s.inputs[s.focus].Focus()
}

func (s *AuthScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl+T", Description: "Login/Signup"},
		{Key: "Ctrl+G", Description: "Google sign-in"},
		{Key: "Esc", Description: "Back"},
	}
}

// visible returns the field indexes active for the current mode.
func (s *AuthScreen) visible() []int {
	if s.mode == modeLogin {
		return []int{fieldEmail, fieldPassword}
	}
	return []int{fieldName, fieldEmail, fieldPassword, fieldCollege, fieldYear, fieldLanguage}
}

func (s *AuthScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case authResultMsg:
		s.submitting = false
		if msg.Err != nil {
			s.errText = msg.Err.Error()
			return s, nil
		}
		return s, func() tea.Msg {
			return nav.AuthenticatedMsg{Result: msg.Result, Language: msg.Language}
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+t":
			if s.mode == modeLogin {
				s.mode = modeSignup
			} else {
				s.mode = modeLogin
			}
			s.errText = ""
			return s, s.setFocus(s.visible()[0])
		case "ctrl+g":
			// Federated login happens in the browser; the redirect payload
			// is handed back through the --auth flag on the next launch.
			s.errText = "Open " + s.client.GoogleStartURL() + " in your browser, then relaunch with --auth <payload>"
			return s, nil
		case "tab", "down":
			return s, s.cycleFocus(1)
		case "shift+tab", "up":
			return s, s.cycleFocus(-1)
		case "enter":
			return s, s.submit()
		}
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return s, cmd
}

func (s *AuthScreen) cycleFocus(dir int) tea.Cmd {
	fields := s.visible()
	cur := 0
	for i, f := range fields {
		if f == s.focus {
			cur = i
			break
		}
	}
	next := fields[(cur+dir+len(fields))%len(fields)]
	return s.setFocus(next)
}

func (s *AuthScreen) setFocus(field int) tea.Cmd {
	s.inputs[s.focus].Blur()
	s.focus = field
	return s.inputs[s.focus].Focus()
}

// submit validates locally before any network call; no partial submission.
func (s *AuthScreen) submit() tea.Cmd {
	if s.submitting {
		return nil
	}

	email := strings.TrimSpace(s.inputs[fieldEmail].Value())
	password := s.inputs[fieldPassword].Value()

	if s.mode == modeLogin {
		if email == "" || password == "" {
			s.errText = "Please enter email and password"
			return nil
		}
		s.submitting = true
		s.errText = ""
		client := s.client
		return func() tea.Msg {
			res, err := client.Login(context.Background(), email, password)
			return authResultMsg{Result: res, Err: err}
		}
	}

	in := api.SignupInput{
		Email:    email,
		Password: password,
		Name:     strings.TrimSpace(s.inputs[fieldName].Value()),
		College:  strings.TrimSpace(s.inputs[fieldCollege].Value()),
		Year:     strings.TrimSpace(s.inputs[fieldYear].Value()),
		Language: strings.TrimSpace(s.inputs[fieldLanguage].Value()),
	}
	if in.Language == "" {
		in.Language = "en"
	}
	if in.Name == "" || in.Email == "" || in.Password == "" || in.College == "" || in.Year == "" {
		s.errText = "Please fill in all required fields"
		return nil
	}

	s.submitting = true
	s.errText = ""
	client := s.client
	return func() tea.Msg {
		res, err := client.Signup(context.Background(), in)
		return authResultMsg{Result: res, Language: in.Language, Err: err}
	}
}

func (s *AuthScreen) View(width, height int) string {
	var b strings.Builder

	heading := "Log in to Zen Space"
	if s.mode == modeSignup {
		heading = "Create your account"
	}
	b.WriteString(theme.Title.Render(heading))
	b.WriteString("\n\n")

	for _, f := range s.visible() {
		b.WriteString(s.inputs[f].View())
		b.WriteString("\n\n")
	}

	if s.submitting {
		b.WriteString(theme.Hint.Render("Signing in..."))
		b.WriteString("\n")
	}
	if s.errText != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(s.errText))
		b.WriteString("\n")
	}

	toggle := "Ctrl+T to create an account instead"
	if s.mode == modeSignup {
		toggle = "Ctrl+T to log in instead"
	}
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(toggle))

	card := theme.Card.Width(min(width-4, 64)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
