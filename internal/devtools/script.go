package devtools

import (
	"context"
	"fmt"

	"riskcalc/internal/keypad"
	"riskcalc/internal/ui"
)

// ErrScriptDone is returned by Poll once every tick has been replayed.
var ErrScriptDone = fmt.Errorf("script exhausted: %w", keypad.ErrSourceClosed)

// Script replays key snapshots one per Poll.
type Script struct {
	ticks []keypad.Set
	pos   int
}

func NewScript(ticks []keypad.Set) *Script {
	return &Script{ticks: ticks}
}

func (s *Script) Poll(ctx context.Context) (keypad.Set, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s.pos >= len(s.ticks) {
		return 0, ErrScriptDone
	}
	held := s.ticks[s.pos]
	s.pos++
	return held, nil
}

func (s *Script) Remaining() int {
	return len(s.ticks) - s.pos
}

// Recorder presents plans onto an off-screen canvas and keeps the plain
// text of the latest frame.
type Recorder struct {
	canvas *ui.Canvas
	count  int
	last   string
}

func NewRecorder(glyphs ui.Glyphs) *Recorder {
	return &Recorder{canvas: ui.NewCanvas(glyphs)}
}

func (r *Recorder) Present(p ui.Plan) error {
	r.canvas.Draw(p)
	r.last = r.canvas.PlainText()
	r.count++
	return nil
}

func (r *Recorder) Count() int { return r.count }

func (r *Recorder) Last() string { return r.last }
