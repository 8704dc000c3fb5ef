package ui

import (
	"strings"
	"testing"

	"riskcalc/internal/battle"
)

func drawnCanvas(t *testing.T, glyphs Glyphs, f Frame) *Canvas {
	t.Helper()
	c := NewCanvas(glyphs)
	c.Draw(NewRenderer(TerminalLabels()).Render(f))
	return c
}

func TestCanvasText(t *testing.T) {
	c := drawnCanvas(t, UnicodeGlyphs(), Frame{Screen: ScreenMain, Battle: battle.NewConfig()})
	lines := strings.Split(c.PlainText(), "\n")
	if len(lines) != CanvasRows {
		t.Fatalf("expected %d rows, got %d", CanvasRows, len(lines))
	}
	if !strings.Contains(lines[70/GlyphHeight], "ATTACKER (3)") {
		t.Fatalf("attacker label missing from row: %q", lines[70/GlyphHeight])
	}
	if !strings.Contains(lines[150/GlyphHeight], "DEFENDER (2)") {
		t.Fatalf("defender label missing from row: %q", lines[150/GlyphHeight])
	}
	if !strings.Contains(lines[CanvasRows-1], "ENTER Calc") {
		t.Fatalf("footer missing from last row: %q", lines[CanvasRows-1])
	}
	if got := c.At(CenteredX("RISK BATTLE", 2)/GlyphWidth, titleY/GlyphHeight); got.Ch != 'R' || !got.Bold {
		t.Fatalf("expected bold title glyph, got %+v", got)
	}
}

func TestCanvasDie(t *testing.T) {
	c := drawnCanvas(t, UnicodeGlyphs(), Frame{Screen: ScreenMain, Battle: battle.NewConfig()})

	// first attacker die covers cols 5..14, rows 11..15
	if got := c.At(5, 11); got.Ch != '┌' || got.Fg != RolePip {
		t.Fatalf("top-left corner: %+v", got)
	}
	if got := c.At(14, 15); got.Ch != '┘' {
		t.Fatalf("bottom-right corner: %+v", got)
	}
	if got := c.At(7, 12); got.Bg != RoleAttacker {
		t.Fatalf("die body background: %+v", got)
	}
	if got := c.At(9, 13); got.Ch != '●' || got.Fg != RolePip {
		t.Fatalf("centre pip: %+v", got)
	}
	if got := c.At(4, 10); got.Bg != RoleHighlight {
		t.Fatalf("cursor highlight: %+v", got)
	}
	if got := c.At(19, 12); got.Bg != RoleBackground {
		t.Fatalf("gap between dice: %+v", got)
	}
}

func TestCanvasRedrawClearsPreviousFrame(t *testing.T) {
	c := drawnCanvas(t, ASCIIGlyphs(), Frame{Screen: ScreenMain, Battle: battle.NewConfig()})
	c.Draw(NewRenderer(TerminalLabels()).Render(Frame{Screen: ScreenResults}))

	text := c.PlainText()
	if strings.Contains(text, "ATTACKER") {
		t.Fatalf("main screen text survived redraw")
	}
	if !strings.Contains(text, "Attacker loses 0") {
		t.Fatalf("results text missing:\n%s", text)
	}
	if got := c.At(7, 12); got.Bg != RoleBackground {
		t.Fatalf("die survived redraw: %+v", got)
	}
}

func TestCanvasASCIIGlyphs(t *testing.T) {
	c := NewCanvas(ASCIIGlyphs())
	c.Draw(Plan{
		{Op: OpClear, Role: RoleBackground},
		{Op: OpRect, Role: RolePip, X: 0, Y: 0, W: 16, H: 24},
		{Op: OpFillCircle, Role: RolePip, X: 40, Y: 40, R: 1},
	})
	if got := c.At(0, 0).Ch; got != '+' {
		t.Fatalf("corner = %q", got)
	}
	if got := c.At(1, 0).Ch; got != '-' {
		t.Fatalf("edge = %q", got)
	}
	if got := c.At(0, 1).Ch; got != '|' {
		t.Fatalf("side = %q", got)
	}
	// a circle smaller than a cell still marks its cell
	if got := c.At(10, 5).Ch; got != 'o' {
		t.Fatalf("small pip = %q", got)
	}
}

func TestSpanUsesCellCentres(t *testing.T) {
	tests := []struct {
		start, size int
		first, last int
		ok          bool
	}{
		{start: 0, size: 4, first: 0, last: 0, ok: true},
		{start: 20, size: 40, first: 5, last: 14, ok: true},
		{start: 3, size: 1, first: 1, last: 0, ok: false},
		{start: 1, size: 2, first: 0, last: 0, ok: true},
	}
	for _, tt := range tests {
		first, last, ok := span(tt.start, tt.size, GlyphWidth)
		if ok != tt.ok || (ok && (first != tt.first || last != tt.last)) {
			t.Fatalf("span(%d,%d) = %d,%d,%v want %d,%d,%v", tt.start, tt.size, first, last, ok, tt.first, tt.last, tt.ok)
		}
	}
}

func TestCanvasRenderProducesRows(t *testing.T) {
	c := drawnCanvas(t, UnicodeGlyphs(), Frame{Screen: ScreenHelp})
	out := c.Render(ThemeForVariant("classic"))
	if got := strings.Count(out, "\n"); got != CanvasRows-1 {
		t.Fatalf("expected %d line breaks, got %d", CanvasRows-1, got)
	}
	if !strings.Contains(out, "1-6: set die") {
		t.Fatalf("styled output lost text")
	}
}
