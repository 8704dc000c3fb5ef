package ui

import (
	"fmt"

	"riskcalc/internal/battle"
)

const (
	dieSize      = 40
	dieGap       = 20
	dieLeft      = 20
	dieMargin    = 4
	pipRadius    = 4
	pipInset     = 10
	attackerRowY = 88
	defenderRowY = 168
	titleY       = 20
	footerY      = DisplayHeight - GlyphHeight
)

// KeyLabels are the key names printed in on-screen legends.
type KeyLabels struct {
	Help    string
	Confirm string
	Cancel  string
}

func TerminalLabels() KeyLabels {
	return KeyLabels{Help: "H", Confirm: "ENTER", Cancel: "ESC"}
}

func CalculatorLabels() KeyLabels {
	return KeyLabels{Help: "ALPHA", Confirm: "ENTER", Cancel: "CLEAR"}
}

// Renderer turns a Frame into a draw plan. It holds no state between frames.
type Renderer struct {
	Labels KeyLabels
}

func NewRenderer(labels KeyLabels) Renderer {
	if labels.Help == "" || labels.Confirm == "" || labels.Cancel == "" {
		labels = TerminalLabels()
	}
	return Renderer{Labels: labels}
}

func (r Renderer) Render(f Frame) Plan {
	var p Plan
	p.Clear(RoleBackground)
	switch f.Screen {
	case ScreenResults:
		r.drawResults(&p, f.Result)
	case ScreenHelp:
		r.drawHelp(&p)
	default:
		r.drawMain(&p, f.Battle)
	}
	return p
}

func drawTitle(p *Plan, label string) {
	p.Text(CenteredX(label, 2), titleY, 2, RoleText, label)
}

func (r Renderer) drawMain(p *Plan, c battle.Config) {
	drawTitle(p, "RISK BATTLE")

	p.Text(10, 70, 1, RoleAttacker, fmt.Sprintf("ATTACKER (%d)", c.AttackerCount))
	for i, face := range c.AttackerPool() {
		drawDie(p, dieX(i), attackerRowY, face, RoleAttacker, c.Cursor == i)
	}

	p.Text(10, 150, 1, RoleDefender, fmt.Sprintf("DEFENDER (%d)", c.DefenderCount))
	for i, face := range c.DefenderPool() {
		drawDie(p, dieX(i), defenderRowY, face, RoleDefender, c.Cursor == c.AttackerCount+i)
	}

	help := r.Labels.Help + " Help"
	calc := r.Labels.Confirm + " Calc"
	p.Text(5, footerY, 1, RoleText, help)
	p.Text(DisplayWidth-5-TextWidth(calc, 1), footerY, 1, RoleText, calc)
}

func (r Renderer) drawResults(p *Plan, res battle.Result) {
	drawTitle(p, "RESULT")

	atk := fmt.Sprintf("Attacker loses %d", res.AttackerLosses)
	p.Text(CenteredX(atk, 1), 70, 1, RoleAttacker, atk)

	def := fmt.Sprintf("Defender loses %d", res.DefenderLosses)
	p.Text(CenteredX(def, 1), 100, 1, RoleDefender, def)

	back := r.Labels.Confirm + " to return"
	p.Text(CenteredX(back, 1), 150, 1, RoleText, back)
}

func (r Renderer) helpLines() []string {
	return []string{
		"1-6: set die",
		"<>: select die",
		"^: attacker #",
		"v: defender #",
		r.Labels.Confirm + ": calc",
		r.Labels.Help + ": show help",
		r.Labels.Cancel + ": exit",
	}
}

func (r Renderer) drawHelp(p *Plan) {
	drawTitle(p, "HELP")

	y := 64
	for _, line := range r.helpLines() {
		p.Text(10, y, 1, RoleText, line)
		y += 2 * GlyphHeight
	}

	p.Text(5, footerY, 1, RoleText, r.Labels.Confirm+" Back")
}

func dieX(i int) int {
	return dieLeft + i*(dieSize+dieGap)
}

// drawDie draws one die with its top-left corner at x,y. Dice that would not
// fit on the display are skipped entirely.
func drawDie(p *Plan, x, y int, face battle.Face, role Role, selected bool) {
	if x < 0 || x+dieSize > DisplayWidth || y < 0 || y+dieSize > DisplayHeight {
		return
	}
	if selected {
		p.FillRect(x-dieMargin, y-dieMargin, dieSize+2*dieMargin, dieSize+2*dieMargin, RoleHighlight)
	}
	p.FillRect(x, y, dieSize, dieSize, role)
	p.Rect(x, y, dieSize, dieSize, RolePip)

	for _, pip := range pipOffsets(face) {
		p.FillCircle(x+pip[0], y+pip[1], pipRadius, RolePip)
	}
}

// pipOffsets lists pip centres relative to the die corner using the usual
// six-sided layout.
func pipOffsets(face battle.Face) [][2]int {
	if face <= 0 {
		return nil
	}
	lo, mid, hi := pipInset, dieSize/2, dieSize-pipInset
	var pips [][2]int
	if face%2 == 1 {
		pips = append(pips, [2]int{mid, mid})
	}
	if face >= 2 {
		pips = append(pips, [2]int{lo, lo}, [2]int{hi, hi})
	}
	if face >= 4 {
		pips = append(pips, [2]int{hi, lo}, [2]int{lo, hi})
	}
	if face == 6 {
		pips = append(pips, [2]int{lo, mid}, [2]int{hi, mid})
	}
	return pips
}
