package keypad

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// Keymap binds terminal keystrokes to logical keys for the Bubble Tea host.
type Keymap struct {
	Cancel  key.Binding
	Confirm key.Binding
	Help    key.Binding
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	Digits  key.Binding
}

func DefaultKeymap() Keymap {
	return Keymap{
		Cancel:  key.NewBinding(key.WithKeys("esc", "q", "ctrl+c", "ctrl+q"), key.WithHelp("esc", "exit")),
		Confirm: key.NewBinding(key.WithKeys("enter", "=", "space"), key.WithHelp("enter", "calc/back")),
		Help:    key.NewBinding(key.WithKeys("h", "?", "f1"), key.WithHelp("h", "help")),
		Left:    key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev die")),
		Right:   key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next die")),
		Up:      key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "attackers")),
		Down:    key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "defenders")),
		Digits:  key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6"), key.WithHelp("1-6", "set die")),
	}
}

func (k Keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.Digits, k.Left, k.Right, k.Up, k.Down, k.Confirm, k.Help, k.Cancel}
}

func (k Keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Digits, k.Left, k.Right}, {k.Up, k.Down}, {k.Confirm, k.Help, k.Cancel}}
}

// Lookup resolves a key press to the logical key it is bound to.
func (k Keymap) Lookup(msg tea.KeyPressMsg) (Key, bool) {
	switch {
	case key.Matches(msg, k.Cancel):
		return KeyCancel, true
	case key.Matches(msg, k.Confirm):
		return KeyConfirm, true
	case key.Matches(msg, k.Help):
		return KeyHelp, true
	case key.Matches(msg, k.Left):
		return KeyLeft, true
	case key.Matches(msg, k.Right):
		return KeyRight, true
	case key.Matches(msg, k.Up):
		return KeyUp, true
	case key.Matches(msg, k.Down):
		return KeyDown, true
	case key.Matches(msg, k.Digits):
		s := msg.String()
		if len(s) == 1 {
			return DigitKey(int(s[0] - '0'))
		}
	}
	return 0, false
}
