package keypad

import (
	"slices"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/gdamore/tcell/v2"
)

func TestDetectorReportsOnlyNewPresses(t *testing.T) {
	var d Detector
	steps := []struct {
		held Set
		want Set
	}{
		{held: SetOf(KeyLeft), want: SetOf(KeyLeft)},
		{held: SetOf(KeyLeft), want: 0},
		{held: SetOf(KeyLeft, KeyDigit3), want: SetOf(KeyDigit3)},
		{held: 0, want: 0},
		{held: SetOf(KeyLeft), want: SetOf(KeyLeft)},
	}
	for i, s := range steps {
		if got := d.Pressed(s.held); got != s.want {
			t.Fatalf("tick %d: got %v, want %v", i, got, s.want)
		}
	}
}

func TestSetOperations(t *testing.T) {
	s := SetOf(KeyCancel, KeyDigit6)
	if !s.Has(KeyCancel) || !s.Has(KeyDigit6) || s.Has(KeyHelp) {
		t.Fatalf("unexpected membership: %v", s)
	}
	if got := s.Without(KeyCancel); got != SetOf(KeyDigit6) {
		t.Fatalf("without: %v", got)
	}
	if got := s.String(); got != "{cancel,6}" {
		t.Fatalf("string: %q", got)
	}
}

func TestDigitMapping(t *testing.T) {
	for n := 1; n <= 6; n++ {
		k, ok := DigitKey(n)
		if !ok {
			t.Fatalf("digit %d not mapped", n)
		}
		if d, ok := k.Digit(); !ok || d != n {
			t.Fatalf("digit %d round-tripped to %d", n, d)
		}
	}
	if _, ok := DigitKey(7); ok {
		t.Fatalf("digit 7 must not map")
	}
	if _, ok := KeyUp.Digit(); ok {
		t.Fatalf("up is not a digit")
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		in   string
		want Key
	}{
		{in: "cancel", want: KeyCancel},
		{in: "CLEAR", want: KeyCancel},
		{in: "enter", want: KeyConfirm},
		{in: "alpha", want: KeyHelp},
		{in: "right", want: KeyRight},
		{in: "digit4", want: KeyDigit4},
		{in: "5", want: KeyDigit5},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKey(tt.in)
			if err != nil {
				t.Fatalf("parse %q: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
	if _, err := ParseKey("7"); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestFromTcell(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Key
	}{
		{name: "esc", ev: tcell.NewEventKey(tcell.KeyEsc, 0, tcell.ModNone), want: KeyCancel},
		{name: "enter", ev: tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), want: KeyConfirm},
		{name: "help rune", ev: tcell.NewEventKey(tcell.KeyRune, '?', tcell.ModNone), want: KeyHelp},
		{name: "left", ev: tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), want: KeyLeft},
		{name: "down", ev: tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), want: KeyDown},
		{name: "digit", ev: tcell.NewEventKey(tcell.KeyRune, '4', tcell.ModNone), want: KeyDigit4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromTcell(tt.ev)
			if !ok || got != tt.want {
				t.Fatalf("got %v (%v), want %v", got, ok, tt.want)
			}
		})
	}
	if _, ok := FromTcell(tcell.NewEventKey(tcell.KeyRune, '9', tcell.ModNone)); ok {
		t.Fatalf("9 must not map")
	}
}

func TestKeymapLookup(t *testing.T) {
	km := DefaultKeymap()
	tests := []struct {
		name string
		msg  tea.KeyPressMsg
		want Key
	}{
		{name: "esc", msg: tea.KeyPressMsg{Code: tea.KeyEscape}, want: KeyCancel},
		{name: "ctrl c", msg: tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}, want: KeyCancel},
		{name: "enter", msg: tea.KeyPressMsg{Code: tea.KeyEnter}, want: KeyConfirm},
		{name: "help", msg: tea.KeyPressMsg{Code: 'h', Text: "h"}, want: KeyHelp},
		{name: "right", msg: tea.KeyPressMsg{Code: tea.KeyRight}, want: KeyRight},
		{name: "up", msg: tea.KeyPressMsg{Code: tea.KeyUp}, want: KeyUp},
		{name: "digit", msg: tea.KeyPressMsg{Code: '6', Text: "6"}, want: KeyDigit6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := km.Lookup(tt.msg)
			if !ok || got != tt.want {
				t.Fatalf("got %v (%v), want %v", got, ok, tt.want)
			}
		})
	}
	if _, ok := km.Lookup(tea.KeyPressMsg{Code: '7', Text: "7"}); ok {
		t.Fatalf("7 must not map")
	}
}

func TestShortHelpListsEveryKey(t *testing.T) {
	var got []string
	for _, b := range DefaultKeymap().ShortHelp() {
		got = append(got, b.Help().Key)
	}
	for _, want := range []string{"1-6", "←", "→", "↑", "↓", "enter", "h", "esc"} {
		if !slices.Contains(got, want) {
			t.Fatalf("short help %v missing %q", got, want)
		}
	}
}
