package components

import (
	"github.com/zenspace/zenspace/internal/ui/theme"
)

// Button renders an action row. Activation is the owning screen's job; the
// button only reflects whether it currently has focus.
type Button struct {
	Label   string
	Focused bool
}

func (b Button) View() string {
	if b.Focused {
		return theme.ButtonActive.Render("▸ " + b.Label + " ")
	}
	return theme.ButtonInactive.Render("  " + b.Label + " ")
}
