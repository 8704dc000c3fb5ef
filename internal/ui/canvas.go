package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Canvas size in terminal cells. Each cell covers GlyphWidth x GlyphHeight
// display pixels.
const (
	CanvasCols = DisplayWidth / GlyphWidth
	CanvasRows = DisplayHeight / GlyphHeight
)

type Cell struct {
	Ch   rune
	Fg   Role
	Bg   Role
	Bold bool
}

type Glyphs struct {
	Pip                     rune
	Horizontal, Vertical    rune
	TopLeft, TopRight       rune
	BottomLeft, BottomRight rune
}

func UnicodeGlyphs() Glyphs {
	return Glyphs{Pip: '●', Horizontal: '─', Vertical: '│', TopLeft: '┌', TopRight: '┐', BottomLeft: '└', BottomRight: '┘'}
}

func ASCIIGlyphs() Glyphs {
	return Glyphs{Pip: 'o', Horizontal: '-', Vertical: '|', TopLeft: '+', TopRight: '+', BottomLeft: '+', BottomRight: '+'}
}

// Canvas rasterises a Plan onto a grid of terminal cells. A display pixel
// region covers a cell when it contains the cell's centre.
type Canvas struct {
	glyphs Glyphs
	cells  [CanvasRows][CanvasCols]Cell
}

func NewCanvas(glyphs Glyphs) *Canvas {
	c := &Canvas{glyphs: glyphs}
	c.clear(RoleBackground)
	return c
}

func (c *Canvas) At(col, row int) Cell {
	if col < 0 || col >= CanvasCols || row < 0 || row >= CanvasRows {
		return Cell{}
	}
	return c.cells[row][col]
}

func (c *Canvas) Draw(p Plan) {
	for _, d := range p {
		switch d.Op {
		case OpClear:
			c.clear(d.Role)
		case OpFillRect:
			c.fillRect(d)
		case OpRect:
			c.outline(d)
		case OpFillCircle:
			c.fillCircle(d)
		case OpText:
			c.text(d)
		}
	}
}

func (c *Canvas) clear(bg Role) {
	for r := range c.cells {
		for col := range c.cells[r] {
			c.cells[r][col] = Cell{Ch: ' ', Fg: RoleText, Bg: bg}
		}
	}
}

// span returns the first and last cell whose centre lies in [start, start+size).
func span(start, size, unit int) (int, int, bool) {
	first := ceilDiv(start-unit/2, unit)
	last := ceilDiv(start+size-unit/2, unit) - 1
	return first, last, last >= first
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return -(-a / b)
	}
	return (a + b - 1) / b
}

func (c *Canvas) rectCells(d Directive) (c0, c1, r0, r1 int, ok bool) {
	c0, c1, okc := span(d.X, d.W, GlyphWidth)
	r0, r1, okr := span(d.Y, d.H, GlyphHeight)
	if !okc || !okr {
		return 0, 0, 0, 0, false
	}
	return max(c0, 0), min(c1, CanvasCols-1), max(r0, 0), min(r1, CanvasRows-1), true
}

func (c *Canvas) fillRect(d Directive) {
	c0, c1, r0, r1, ok := c.rectCells(d)
	if !ok {
		return
	}
	for r := r0; r <= r1; r++ {
		for col := c0; col <= c1; col++ {
			c.cells[r][col] = Cell{Ch: ' ', Fg: RoleText, Bg: d.Role}
		}
	}
}

func (c *Canvas) outline(d Directive) {
	c0, c1, r0, r1, ok := c.rectCells(d)
	if !ok {
		return
	}
	set := func(col, r int, ch rune) {
		cell := &c.cells[r][col]
		cell.Ch = ch
		cell.Fg = d.Role
		cell.Bold = false
	}
	for col := c0 + 1; col < c1; col++ {
		set(col, r0, c.glyphs.Horizontal)
		set(col, r1, c.glyphs.Horizontal)
	}
	for r := r0 + 1; r < r1; r++ {
		set(c0, r, c.glyphs.Vertical)
		set(c1, r, c.glyphs.Vertical)
	}
	set(c0, r0, c.glyphs.TopLeft)
	set(c1, r0, c.glyphs.TopRight)
	set(c0, r1, c.glyphs.BottomLeft)
	set(c1, r1, c.glyphs.BottomRight)
}

func (c *Canvas) fillCircle(d Directive) {
	hit := false
	for r := (d.Y - d.R) / GlyphHeight; r <= (d.Y+d.R)/GlyphHeight; r++ {
		for col := (d.X - d.R) / GlyphWidth; col <= (d.X+d.R)/GlyphWidth; col++ {
			if r < 0 || r >= CanvasRows || col < 0 || col >= CanvasCols {
				continue
			}
			dx := col*GlyphWidth + GlyphWidth/2 - d.X
			dy := r*GlyphHeight + GlyphHeight/2 - d.Y
			if dx*dx+dy*dy > d.R*d.R {
				continue
			}
			c.pip(col, r, d.Role)
			hit = true
		}
	}
	if !hit {
		c.pip(d.X/GlyphWidth, d.Y/GlyphHeight, d.Role)
	}
}

func (c *Canvas) pip(col, r int, role Role) {
	if r < 0 || r >= CanvasRows || col < 0 || col >= CanvasCols {
		return
	}
	cell := &c.cells[r][col]
	cell.Ch = c.glyphs.Pip
	cell.Fg = role
}

// text writes one glyph per cell; larger scales spread glyphs apart and
// render bold.
func (c *Canvas) text(d Directive) {
	r := d.Y / GlyphHeight
	if r < 0 || r >= CanvasRows {
		return
	}
	col := d.X / GlyphWidth
	for _, ch := range d.Text {
		if col >= CanvasCols {
			return
		}
		if col >= 0 {
			cell := &c.cells[r][col]
			cell.Ch = ch
			cell.Fg = d.Role
			cell.Bold = d.Scale > 1
		}
		col += d.Scale
	}
}

// PlainText returns the canvas without colour, one line per row.
func (c *Canvas) PlainText() string {
	var sb strings.Builder
	for r := range c.cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range c.cells[r] {
			sb.WriteRune(cell.Ch)
		}
	}
	return sb.String()
}

type styleKey struct {
	fg, bg Role
	bold   bool
}

// Render styles the canvas with the theme palette. Runs of cells sharing a
// style are rendered together.
func (c *Canvas) Render(theme Theme) string {
	styles := map[styleKey]lipgloss.Style{}
	styleFor := func(k styleKey) lipgloss.Style {
		if s, ok := styles[k]; ok {
			return s
		}
		s := lipgloss.NewStyle().
			Foreground(theme.Color(k.fg)).
			Background(theme.Color(k.bg)).
			Bold(k.bold)
		styles[k] = s
		return s
	}

	lines := make([]string, CanvasRows)
	for r := range c.cells {
		var sb strings.Builder
		var run []rune
		var cur styleKey
		flush := func() {
			if len(run) > 0 {
				sb.WriteString(styleFor(cur).Render(string(run)))
				run = run[:0]
			}
		}
		for col, cell := range c.cells[r] {
			k := styleKey{fg: cell.Fg, bg: cell.Bg, bold: cell.Bold}
			if col > 0 && k != cur {
				flush()
			}
			cur = k
			run = append(run, cell.Ch)
		}
		flush()
		lines[r] = sb.String()
	}
	return strings.Join(lines, "\n")
}
