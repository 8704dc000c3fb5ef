package keypad

import "github.com/gdamore/tcell/v2"

// FromTcell maps a tcell key event onto a logical key.
func FromTcell(ev *tcell.EventKey) (Key, bool) {
	if ev == nil {
		return 0, false
	}

	switch ev.Key() {
	case tcell.KeyEsc, tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return KeyCancel, true
	case tcell.KeyEnter:
		return KeyConfirm, true
	case tcell.KeyF1:
		return KeyHelp, true
	case tcell.KeyLeft:
		return KeyLeft, true
	case tcell.KeyRight:
		return KeyRight, true
	case tcell.KeyUp:
		return KeyUp, true
	case tcell.KeyDown:
		return KeyDown, true
	case tcell.KeyRune:
		return fromRune(ev.Rune())
	}
	return 0, false
}

func fromRune(r rune) (Key, bool) {
	switch r {
	case 'q', 'Q':
		return KeyCancel, true
	case '=', ' ':
		return KeyConfirm, true
	case 'h', 'H', '?':
		return KeyHelp, true
	}
	if r >= '1' && r <= '6' {
		return DigitKey(int(r - '0'))
	}
	return 0, false
}
