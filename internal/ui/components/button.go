package components

import (
	"slices"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/interference/internal/ui/theme"
)

// Button is a styled button component.
type Button struct {
	Label   string
	Active  bool
	OnPress func() tea.Cmd
	// Keys that press the button. Empty means Enter only.
	Keys []string
}

// NewButton creates a new button pressed by Enter or any of keys.
func NewButton(label string, active bool, onPress func() tea.Cmd, keys ...string) Button {
	return Button{
		Label:   label,
		Active:  active,
		OnPress: onPress,
		Keys:    append([]string{"enter"}, keys...),
	}
}

// Update handles key events.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Active || b.OnPress == nil {
		return b, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		keys := b.Keys
		if len(keys) == 0 {
			keys = []string{"enter"}
		}
		if slices.Contains(keys, kmsg.String()) {
			return b, b.OnPress()
		}
	}

	return b, nil
}

// View renders the button.
func (b Button) View() string {
	label := "  ▸ " + b.Label + " "
	if b.Active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
