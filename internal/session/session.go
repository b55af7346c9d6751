// Package session models the authenticated user and the credentials that
// travel with them. Sessions are reconstructed from durable storage at
// startup or produced by an authentication exchange.
package session

import (
	"encoding/json"
	"strings"

	"github.com/zenspace/zenspace/internal/api"
)

// Session is the in-memory representation of the signed-in user.
type Session struct {
	UserID    string `json:"_id,omitempty"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
}

// FromUser builds a Session from a backend user record, deriving the first
// name when the server did not send one.
func FromUser(u api.User) Session {
	s := Session{
		UserID:    u.ID,
		Name:      u.Name,
		Email:     u.Email,
		FirstName: u.FirstName,
	}
	if s.FirstName == "" {
		s.FirstName = firstName(u.Name)
	}
	return s
}

// Parse reconstructs a session from its stored JSON form. The shape is
// validated first so a corrupted record reads as an error, not a half-filled
// session. Records written by older builds may carry "userId" instead of
// "_id"; both are accepted.
func Parse(raw string) (Session, error) {
	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return Session{}, err
	}
	if err := storedSchema().Validate(parsed); err != nil {
		return Session{}, err
	}

	var rec struct {
		ID        string `json:"_id"`
		UserID    string `json:"userId"`
		Name      string `json:"name"`
		Email     string `json:"email"`
		FirstName string `json:"firstName"`
	}
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return Session{}, err
	}

	s := Session{
		UserID:    rec.ID,
		Name:      rec.Name,
		Email:     rec.Email,
		FirstName: rec.FirstName,
	}
	if s.UserID == "" {
		s.UserID = rec.UserID
	}
	if s.FirstName == "" {
		s.FirstName = firstName(rec.Name)
	}
	return s, nil
}

// Encode renders the session for durable storage.
func (s Session) Encode() string {
	raw, _ := json.Marshal(s)
	return string(raw)
}

func firstName(full string) string {
	full = strings.TrimSpace(full)
	if full == "" {
		return ""
	}
	return strings.Fields(full)[0]
}
