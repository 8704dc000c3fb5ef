package ui

import (
	"context"
	"fmt"

	"riskcalc/internal/keypad"

	"github.com/gdamore/tcell/v2"
)

var ErrScreenClosed = fmt.Errorf("screen closed: %w", keypad.ErrSourceClosed)

// TcellHost drives the calculator from a tcell screen: Poll blocks for the
// next key event and Present draws a plan and shows it.
type TcellHost struct {
	screen tcell.Screen
	theme  Theme
	canvas *Canvas

	pendingRelease bool
	presents       int
}

func NewTcellHost(screen tcell.Screen, opts Options) *TcellHost {
	glyphs := UnicodeGlyphs()
	if opts.ASCIIOnly {
		glyphs = ASCIIGlyphs()
	}
	return &TcellHost{
		screen: screen,
		theme:  ThemeForVariant(opts.StyleVariant),
		canvas: NewCanvas(glyphs),
	}
}

// Poll waits for the next mapped key. tcell reports presses only, so the
// tick after a press always releases it.
func (h *TcellHost) Poll(ctx context.Context) (keypad.Set, error) {
	if h.pendingRelease {
		h.pendingRelease = false
		return 0, nil
	}

	stop := context.AfterFunc(ctx, func() {
		_ = h.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		switch ev := h.screen.PollEvent().(type) {
		case nil:
			return 0, ErrScreenClosed
		case *tcell.EventKey:
			if k, ok := keypad.FromTcell(ev); ok {
				h.pendingRelease = true
				return keypad.SetOf(k), nil
			}
		case *tcell.EventResize:
			h.screen.Sync()
		}
	}
}

func (h *TcellHost) Present(p Plan) error {
	h.canvas.Draw(p)

	w, ht := h.screen.Size()
	offX := max(0, (w-CanvasCols)/2)
	offY := max(0, (ht-CanvasRows)/2)

	styles := map[styleKey]tcell.Style{}
	h.screen.Clear()
	for row := 0; row < CanvasRows; row++ {
		for col := 0; col < CanvasCols; col++ {
			cell := h.canvas.At(col, row)
			k := styleKey{fg: cell.Fg, bg: cell.Bg, bold: cell.Bold}
			st, ok := styles[k]
			if !ok {
				st = tcell.StyleDefault.
					Foreground(tcell.FromImageColor(h.theme.Color(cell.Fg))).
					Background(tcell.FromImageColor(h.theme.Color(cell.Bg))).
					Bold(cell.Bold)
				styles[k] = st
			}
			h.screen.SetContent(offX+col, offY+row, cell.Ch, nil, st)
		}
	}
	h.screen.Show()
	h.presents++
	return nil
}

func (h *TcellHost) Presents() int {
	return h.presents
}
