package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zenspace/zenspace/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Closer is an optional interface for screens holding resources that must
// be released when the screen is replaced, such as an in-flight request.
type Closer interface {
	Close()
}

// InputCapturer is an optional interface for screens whose focused element
// consumes printable keys. While capturing, global shortcuts that use
// printable keys (number-key tab switching) are suspended.
type InputCapturer interface {
	CapturesInput() bool
}

// EscInterceptor is an optional interface for screens with internal
// sub-views: while intercepting, esc is delivered to the screen instead of
// triggering back navigation.
type EscInterceptor interface {
	InterceptsEsc() bool
}

// ConnectivityReporter is an optional interface for screens that know the
// backend's reachability, shown in the header.
type ConnectivityReporter interface {
	Online() (online, known bool)
}
