package keypad

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSourceClosed marks the end of a key stream. Hosts wrap it when their
// input goes away.
var ErrSourceClosed = errors.New("key source closed")

// Key is a logical key of the calculator, independent of how a host reads it.
type Key uint8

const (
	KeyCancel Key = iota
	KeyConfirm
	KeyHelp
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyDigit1
	KeyDigit2
	KeyDigit3
	KeyDigit4
	KeyDigit5
	KeyDigit6

	keyCount
)

var keyNames = [keyCount]string{
	KeyCancel:  "cancel",
	KeyConfirm: "confirm",
	KeyHelp:    "help",
	KeyLeft:    "left",
	KeyRight:   "right",
	KeyUp:      "up",
	KeyDown:    "down",
	KeyDigit1:  "1",
	KeyDigit2:  "2",
	KeyDigit3:  "3",
	KeyDigit4:  "4",
	KeyDigit5:  "5",
	KeyDigit6:  "6",
}

func (k Key) String() string {
	if k >= keyCount {
		return fmt.Sprintf("key(%d)", uint8(k))
	}
	return keyNames[k]
}

// ParseKey accepts the names printed by Key.String plus a few aliases.
func ParseKey(name string) (Key, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "clear", "esc", "quit":
		return KeyCancel, nil
	case "enter", "calc":
		return KeyConfirm, nil
	case "alpha":
		return KeyHelp, nil
	}
	n = strings.TrimPrefix(n, "digit")
	for k := Key(0); k < keyCount; k++ {
		if keyNames[k] == n {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown key %q", name)
}

// DigitKey maps 1..6 to its digit key.
func DigitKey(n int) (Key, bool) {
	if n < 1 || n > 6 {
		return 0, false
	}
	return KeyDigit1 + Key(n-1), true
}

// Digit reports the face value a digit key sets.
func (k Key) Digit() (int, bool) {
	if k < KeyDigit1 || k > KeyDigit6 {
		return 0, false
	}
	return int(k-KeyDigit1) + 1, true
}

// Set is a snapshot of logical keys, one bit per key.
type Set uint16

func SetOf(keys ...Key) Set {
	var s Set
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

func (s Set) Has(k Key) bool     { return s&(1<<k) != 0 }
func (s Set) With(k Key) Set     { return s | 1<<k }
func (s Set) Without(k Key) Set  { return s &^ (1 << k) }
func (s Set) Empty() bool        { return s == 0 }

// Keys lists the members in declaration order.
func (s Set) Keys() []Key {
	var out []Key
	for k := Key(0); k < keyCount; k++ {
		if s.Has(k) {
			out = append(out, k)
		}
	}
	return out
}

func (s Set) String() string {
	keys := s.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return "{" + strings.Join(names, ",") + "}"
}

// Edges returns the keys held in curr that were not held in prev.
func Edges(prev, curr Set) Set {
	return curr &^ prev
}

// Detector remembers the previous snapshot so each tick yields only the
// keys that went from released to held.
type Detector struct {
	prev Set
}

func (d *Detector) Pressed(curr Set) Set {
	p := Edges(d.prev, curr)
	d.prev = curr
	return p
}
