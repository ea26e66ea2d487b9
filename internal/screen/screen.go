package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/interference/internal/ui/layout"
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

// StatusProvider is an optional interface for screens that show a status
// string on the right side of the header.
type StatusProvider interface {
	Status() string
}

// SessionScoped is implemented by screens bound to one session. The
// application drops navigation to a screen whose session has since been
// reset.
type SessionScoped interface {
	SessionID() string
}

// ResetSessionMsg asks the application to discard the current session and
// return to the intro screen.
type ResetSessionMsg struct{}
