package app

import (
	"context"

	"riskcalc/internal/keypad"
	"riskcalc/internal/ui"
)

// ErrSourceClosed is returned, possibly wrapped, by a KeySource that has no
// more ticks.
var ErrSourceClosed = keypad.ErrSourceClosed

// KeySource yields the keys held at each tick, blocking until the next tick.
type KeySource interface {
	Poll(ctx context.Context) (keypad.Set, error)
}

// Presenter shows a finished plan. It is called once per redraw.
type Presenter interface {
	Present(plan ui.Plan) error
}
