package ui

import (
	"fmt"
	"io"
	"runtime/debug"
	"sync"

	"riskcalc/internal/keypad"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	clog "github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"
)

// Root hosts the calculator inside a Bubble Tea program. Every key message
// becomes one controller tick; the canvas is redrawn only when the
// controller reports a change.
type Root struct {
	theme    Theme
	renderer Renderer
	canvas   *Canvas
	keymap   keypad.Keymap
	help     help.Model
	logger   *clog.Logger
	ctrl     Controller

	mu      sync.Mutex
	program *tea.Program
	running bool

	layout LayoutMode
	cols   int
	rows   int

	held           keypad.Set
	releaseReports bool
	started        bool

	screen   string
	presents int

	lastInputEvent string
}

type Options struct {
	ASCIIOnly    bool
	StyleVariant string
	Labels       KeyLabels
	Logger       *clog.Logger
}

func New(opts Options) *Root {
	logger := opts.Logger
	if logger == nil {
		logger = clog.NewWithOptions(io.Discard, clog.Options{Prefix: "riskcalc-ui", Level: clog.WarnLevel})
	}

	glyphs := UnicodeGlyphs()
	if opts.ASCIIOnly {
		glyphs = ASCIIGlyphs()
	}

	h := help.New()
	h.Styles = help.DefaultDarkStyles()

	return &Root{
		theme:    ThemeForVariant(opts.StyleVariant),
		renderer: NewRenderer(opts.Labels),
		canvas:   NewCanvas(glyphs),
		keymap:   keypad.DefaultKeymap(),
		help:     h,
		logger:   logger,
		layout:   LayoutCompact,
		cols:     CanvasCols,
		rows:     CanvasRows,
	}
}

func (r *Root) Init() tea.Cmd {
	return r.start()
}

// start runs the first tick so the initial screen is drawn before any key
// arrives.
func (r *Root) start() tea.Cmd {
	if r.started {
		return nil
	}
	r.started = true
	return r.tick(r.held)
}

func (r *Root) Update(msg tea.Msg) (model tea.Model, cmd tea.Cmd) {
	defer func() {
		if rec := recover(); rec != nil {
			r.onModelPanic("update", rec, msg)
			model = r
			cmd = nil
		}
	}()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.cols = msg.Width
		r.rows = msg.Height
		r.layout = DetermineLayoutMode(r.cols, r.rows)
		r.help.SetWidth(msg.Width)
		return r, nil
	case tea.KeyboardEnhancementsMsg:
		r.releaseReports = msg.SupportsEventTypes()
		return r, nil
	case tea.KeyPressMsg:
		return r.handleKey(msg)
	case tea.KeyReleaseMsg:
		return r.handleRelease(msg)
	}
	return r, nil
}

func (r *Root) View() (view tea.View) {
	defer func() {
		if rec := recover(); rec != nil {
			r.onModelPanic("view", rec, nil)
			width := max(1, r.cols)
			view = tea.NewView(r.theme.Notice.Render(trimForWidth("UI recovered from a rendering panic. Check logs.", width)))
		}
	}()

	var body string
	switch r.layout {
	case LayoutTooSmall:
		msg := fmt.Sprintf("Terminal too small: %dx%d, need %dx%d", r.cols, r.rows, CanvasCols, CanvasRows)
		body = r.theme.Notice.Render(trimForWidth(msg, max(1, r.cols)))
	case LayoutWide:
		body = lipgloss.JoinVertical(lipgloss.Center, r.screen, r.theme.Muted.Render(r.help.View(r.keymap)))
	default:
		body = r.screen
	}

	v := tea.NewView(lipgloss.Place(max(1, r.cols), max(1, r.rows), lipgloss.Center, lipgloss.Center, body))
	v.AltScreen = true
	v.KeyboardEnhancements.ReportEventTypes = true
	return v
}

func (r *Root) Run() error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return nil
	}
	p := tea.NewProgram(r)
	r.program = p
	r.running = true
	r.mu.Unlock()

	_, err := p.Run()

	r.mu.Lock()
	r.program = nil
	r.running = false
	r.mu.Unlock()
	return err
}

func (r *Root) Stop() {
	r.mu.Lock()
	p := r.program
	r.mu.Unlock()
	if p != nil {
		p.Quit()
	}
}

func (r *Root) SetController(c Controller) {
	r.ctrl = c
}

// Presents reports how many frames have been drawn.
func (r *Root) Presents() int {
	return r.presents
}

func (r *Root) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	r.recordInputEvent(fmt.Sprintf("key:%v mod:%v text:%q repeat:%v", msg.Code, msg.Mod, msg.Text, msg.IsRepeat))
	if !r.started {
		r.start()
	}

	k, ok := r.keymap.Lookup(msg)
	if !ok {
		return r, nil
	}
	if msg.IsRepeat {
		return r, r.tick(r.held)
	}

	r.held = r.held.With(k)
	cmd := r.tick(r.held)
	if !r.releaseReports {
		// Without release events every press is a tap.
		r.held = r.held.Without(k)
		r.tick(r.held)
	}
	return r, cmd
}

func (r *Root) handleRelease(msg tea.KeyReleaseMsg) (tea.Model, tea.Cmd) {
	r.releaseReports = true
	k, ok := r.keymap.Lookup(tea.KeyPressMsg(msg))
	if !ok {
		return r, nil
	}
	r.held = r.held.Without(k)
	return r, r.tick(r.held)
}

func (r *Root) tick(held keypad.Set) tea.Cmd {
	if r.ctrl == nil {
		return nil
	}
	up := r.ctrl.OnTick(held)
	if up.Redraw {
		r.present(up.Frame)
	}
	if up.Quit {
		return tea.Quit
	}
	return nil
}

// present draws one frame and swaps it in as the visible screen.
func (r *Root) present(f Frame) {
	plan := r.renderer.Render(f)
	r.canvas.Draw(plan)
	r.screen = r.canvas.Render(r.theme)
	r.presents++
	r.logger.Debug("frame presented", "screen", f.Screen, "directives", len(plan), "presents", r.presents)
}

func (r *Root) recordInputEvent(event string) {
	r.lastInputEvent = event
}

func (r *Root) onModelPanic(where string, recovered any, msg tea.Msg) {
	r.logger.Error("ui panic recovered",
		"where", where,
		"panic", fmt.Sprint(recovered),
		"msg", fmt.Sprintf("%T", msg),
		"last_input", r.lastInputEvent,
		"stack", string(debug.Stack()),
	)
}

func trimForWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return ansi.Truncate(s, 1, "")
	}
	return ansi.Truncate(s, width, "…")
}
