package ui

import (
	"riskcalc/internal/battle"
	"riskcalc/internal/keypad"
)

type Controller interface {
	// OnTick feeds the keys held during one tick and returns the resulting
	// state.
	OnTick(held keypad.Set) Update
}

type View interface {
	Run() error
	Stop()
	SetController(Controller)
}

type Screen int

const (
	ScreenMain Screen = iota
	ScreenResults
	ScreenHelp
)

func (s Screen) String() string {
	switch s {
	case ScreenResults:
		return "results"
	case ScreenHelp:
		return "help"
	default:
		return "main"
	}
}

type LayoutMode int

const (
	LayoutWide LayoutMode = iota
	LayoutCompact
	LayoutTooSmall
)

// Frame is everything the renderer needs to draw one screen.
type Frame struct {
	Screen Screen
	Battle battle.Config
	Result battle.Result
}

type Update struct {
	Frame  Frame
	Redraw bool
	Quit   bool
}
