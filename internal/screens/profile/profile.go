// Package profile shows account details and app preferences.
package profile

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zenspace/zenspace/internal/nav"
	"github.com/zenspace/zenspace/internal/screen"
	"github.com/zenspace/zenspace/internal/session"
	"github.com/zenspace/zenspace/internal/storage"
	"github.com/zenspace/zenspace/internal/ui/layout"
	"github.com/zenspace/zenspace/internal/ui/theme"
	"go.uber.org/zap"
)

type prefsMsg struct {
	DarkMode bool
	Language string
	Parent   map[string]string
	Claims   *session.TokenClaims
}

// ProfileScreen shows the signed-in user, stored preferences, the guardian
// contact, and the logout action.
type ProfileScreen struct {
	sess  *session.Session
	store storage.Store
	log   *zap.Logger

	darkMode      bool
	language      string
	parent        map[string]string
	claims        *session.TokenClaims
	confirmLogout bool
}

var _ screen.Screen = (*ProfileScreen)(nil)

// New creates the profile screen.
func New(sess *session.Session, store storage.Store, log *zap.Logger) *ProfileScreen {
	return &ProfileScreen{sess: sess, store: store, log: log, language: "en"}
}

func (s *ProfileScreen) Title() string {
	return "Profile"
}

func (s *ProfileScreen) Init() tea.Cmd {
	store := s.store
	return func() tea.Msg {
		ctx := context.Background()
		msg := prefsMsg{Language: "en"}

		if v, ok, _ := store.Get(ctx, storage.KeyDarkMode); ok {
			msg.DarkMode = v == "true"
		}
		if v, ok, _ := store.Get(ctx, storage.KeyPreferredLanguage); ok && v != "" {
			msg.Language = v
		}
		if v, ok, _ := store.Get(ctx, storage.KeyParentDetails); ok {
			var parent map[string]string
			if json.Unmarshal([]byte(v), &parent) == nil {
				msg.Parent = parent
			}
		}
		if v, ok, _ := store.Get(ctx, storage.KeyAccessToken); ok {
			// Opaque tokens are fine; the expiry line just stays hidden.
			if claims, err := session.PeekToken(v); err == nil {
				msg.Claims = claims
			}
		}
		return msg
	}
}

func (s *ProfileScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "D", Description: "Dark mode"},
		{Key: "L", Description: "Log out"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case prefsMsg:
		s.darkMode = msg.DarkMode
		s.language = msg.Language
		s.parent = msg.Parent
		s.claims = msg.Claims
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "d":
			s.darkMode = !s.darkMode
			return s, s.persistDarkMode()
		case "l":
			if !s.confirmLogout {
				s.confirmLogout = true
				return s, nil
			}
			return s, func() tea.Msg { return nav.LogoutMsg{} }
		default:
			s.confirmLogout = false
		}
	}
	return s, nil
}

func (s *ProfileScreen) persistDarkMode() tea.Cmd {
	store, log, dark := s.store, s.log, s.darkMode
	return func() tea.Msg {
		value := "false"
		if dark {
			value = "true"
		}
		if err := store.Set(context.Background(), storage.KeyDarkMode, value); err != nil {
			log.Warn("dark mode write failed", zap.Error(err))
		}
		return nil
	}
}

func (s *ProfileScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Profile & Settings"))
	b.WriteString("\n\n")

	if s.sess != nil {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(s.sess.Name))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(s.sess.Email))
		b.WriteString("\n")
		if s.sess.UserID != "" {
			b.WriteString(theme.Hint.Render("ID: " + s.sess.UserID))
			b.WriteString("\n")
		}
		if s.claims != nil && !s.claims.ExpiresAt.IsZero() {
			line := "Session valid until " + s.claims.ExpiresAt.Local().Format("Jan 2, 15:04")
			if s.claims.Expired(time.Now()) {
				line = "Session expired; log in again to sync"
			}
			b.WriteString(theme.Hint.Render(line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	dark := "off"
	if s.darkMode {
		dark = "on"
	}
	b.WriteString(theme.Body.Render("Dark mode: " + dark + "  (press d)"))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render("Language: " + s.language))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).
		Render("Parent/Guardian contact"))
	b.WriteString("\n")
	if s.parent == nil {
		b.WriteString(theme.Hint.Render("Not on file"))
		b.WriteString("\n")
	} else {
		for _, key := range []string{"name", "relationship", "email", "phone"} {
			if v := s.parent[key]; v != "" {
				b.WriteString(theme.Body.Render("· " + v))
				b.WriteString("\n")
			}
		}
	}
	b.WriteString("\n")

	if s.confirmLogout {
		b.WriteString(theme.Negative.Render("Press l again to log out and erase local data"))
	} else {
		b.WriteString(theme.Hint.Render("Press l to log out"))
	}

	card := theme.Card.Width(min(width-4, 64)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
