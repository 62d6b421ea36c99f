package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wordguess/internal/ui/layout"
)

// Screen is one full-window view managed by the router.
type Screen interface {
	Init() tea.Cmd

	// Update handles msg and returns the screen that should stay active.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the area between header and footer.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider lets a screen fill the right side of the header.
type StatusProvider interface {
	Status() string
}
