package nav

import (
	"github.com/zenspace/zenspace/internal/api"
	"github.com/zenspace/zenspace/internal/checkin"
)

// Screens request transitions by emitting these messages; the root model
// feeds them to the Controller and swaps the active screen. Screens never
// hold a Controller reference.

// GetStartedMsg leaves the splash screen for authentication.
type GetStartedMsg struct{}

// AuthenticatedMsg reports a successful login or signup exchange. Language
// is the preference chosen on the signup form; empty for logins.
type AuthenticatedMsg struct {
	Result   *api.AuthResult
	Language string
}

// ParentDetailsSavedMsg reports that the guardian contact was accepted by
// the backend. Raw is the JSON to persist locally.
type ParentDetailsSavedMsg struct {
	Raw string
}

// CheckinDoneMsg reports a completed daily check-in.
type CheckinDoneMsg struct {
	Data checkin.Checkin
}

// NavigateMsg requests a bottom-navigation target by name.
type NavigateMsg struct {
	Target string
}

// BackMsg requests back navigation via the predecessor table.
type BackMsg struct{}

// LogoutMsg signs the user out and purges durable storage.
type LogoutMsg struct{}
