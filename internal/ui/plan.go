package ui

// Logical display extent in pixels.
const (
	DisplayWidth  = 320
	DisplayHeight = 240
)

// Glyph metrics at text scale 1.
const (
	GlyphWidth  = 4
	GlyphHeight = 8
)

// Role names a colour by purpose; themes decide the actual colour.
type Role int

const (
	RoleBackground Role = iota
	RoleText
	RoleAttacker
	RoleDefender
	RoleHighlight
	RolePip
)

type Op int

const (
	OpClear Op = iota
	OpText
	OpFillRect
	OpRect
	OpFillCircle
)

func (o Op) String() string {
	switch o {
	case OpClear:
		return "clear"
	case OpText:
		return "text"
	case OpFillRect:
		return "fill_rect"
	case OpRect:
		return "rect"
	case OpFillCircle:
		return "fill_circle"
	default:
		return "unknown"
	}
}

// Directive is one drawing instruction. X/Y are the top-left corner for
// text and rectangles and the centre for circles.
type Directive struct {
	Op    Op
	Role  Role
	X, Y  int
	W, H  int
	R     int
	Scale int
	Text  string
}

// Plan is an ordered list of directives for one redraw.
type Plan []Directive

func (p *Plan) Clear(role Role) {
	*p = append(*p, Directive{Op: OpClear, Role: role})
}

// Text places s with its top-left corner at x,y. Text starting off the
// display is dropped.
func (p *Plan) Text(x, y, scale int, role Role, s string) {
	if scale < 1 {
		scale = 1
	}
	if s == "" || !onDisplay(x, y, 1, GlyphHeight*scale) {
		return
	}
	*p = append(*p, Directive{Op: OpText, Role: role, X: x, Y: y, Scale: scale, Text: s})
}

func (p *Plan) FillRect(x, y, w, h int, role Role) {
	if !onDisplay(x, y, w, h) {
		return
	}
	*p = append(*p, Directive{Op: OpFillRect, Role: role, X: x, Y: y, W: w, H: h})
}

func (p *Plan) Rect(x, y, w, h int, role Role) {
	if !onDisplay(x, y, w, h) {
		return
	}
	*p = append(*p, Directive{Op: OpRect, Role: role, X: x, Y: y, W: w, H: h})
}

func (p *Plan) FillCircle(cx, cy, r int, role Role) {
	if !onDisplay(cx-r, cy-r, 2*r, 2*r) {
		return
	}
	*p = append(*p, Directive{Op: OpFillCircle, Role: role, X: cx, Y: cy, R: r})
}

// Count returns how many directives of op the plan holds.
func (p Plan) Count(op Op) int {
	n := 0
	for _, d := range p {
		if d.Op == op {
			n++
		}
	}
	return n
}

func onDisplay(x, y, w, h int) bool {
	return x >= 0 && y >= 0 && w >= 0 && h >= 0 && x+w <= DisplayWidth && y+h <= DisplayHeight
}

// TextWidth is the pixel width of s at the given scale.
func TextWidth(s string, scale int) int {
	return len([]rune(s)) * GlyphWidth * scale
}

// CenteredX returns the x that centres s horizontally on the display.
func CenteredX(s string, scale int) int {
	return (DisplayWidth - TextWidth(s, scale)) / 2
}
