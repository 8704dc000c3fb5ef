package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"riskcalc/internal/devtools"
	"riskcalc/internal/keypad"
	"riskcalc/internal/telemetry"
	"riskcalc/internal/ui"

	"github.com/gdamore/tcell/v2"
)

type App struct {
	cfg Config

	logger  *telemetry.Logger
	session *Session
	view    *ui.Root
	out     io.Writer
}

func New(cfg Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := telemetry.NewLogger(cfg.LogPath, cfg.Debug)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:     cfg,
		logger:  logger,
		session: NewSession(logger.Logger),
		out:     os.Stdout,
	}
	a.view = ui.New(a.uiOptions())
	a.view.SetController(a)
	return a, nil
}

func (a *App) uiOptions() ui.Options {
	return ui.Options{
		ASCIIOnly:    a.cfg.ASCIIOnly,
		StyleVariant: a.cfg.StyleVariant,
		Labels:       labelsFor(a.cfg.Labels),
		Logger:       a.logger.Logger,
	}
}

func labelsFor(name string) ui.KeyLabels {
	if name == "calculator" {
		return ui.CalculatorLabels()
	}
	return ui.TerminalLabels()
}

func (a *App) Run(ctx context.Context) error {
	a.logger.Info("app.start", "session", a.session.ID(), "backend", a.cfg.Backend, "style", a.cfg.StyleVariant)
	defer a.logger.Info("app.stop", "session", a.session.ID())

	switch a.cfg.Backend {
	case "tcell":
		return a.runTcell(ctx)
	case "script":
		return a.runScript(ctx)
	}

	stop := context.AfterFunc(ctx, a.view.Stop)
	defer stop()
	return a.view.Run()
}

func (a *App) runTcell(ctx context.Context) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	host := ui.NewTcellHost(screen, a.uiOptions())
	err = a.session.Run(ctx, host, host, ui.NewRenderer(labelsFor(a.cfg.Labels)))
	if errors.Is(err, ErrSourceClosed) {
		a.logger.Debug("terminal closed", "session", a.session.ID())
		return nil
	}
	return err
}

// runScript replays a built-in scenario headlessly, checks its expectation
// and prints the last frame.
func (a *App) runScript(ctx context.Context) error {
	scenarios := devtools.NewManager()
	sc, err := scenarios.Scenario(a.cfg.Script)
	if err != nil {
		if names, lerr := scenarios.List(); lerr == nil {
			return fmt.Errorf("%w (available: %s)", err, strings.Join(names, ", "))
		}
		return err
	}
	script, err := sc.Script()
	if err != nil {
		return err
	}

	glyphs := ui.UnicodeGlyphs()
	if a.cfg.ASCIIOnly {
		glyphs = ui.ASCIIGlyphs()
	}
	rec := devtools.NewRecorder(glyphs)

	err = a.session.Run(ctx, script, rec, ui.NewRenderer(labelsFor(a.cfg.Labels)))
	if err != nil && !errors.Is(err, ErrSourceClosed) {
		return err
	}
	a.logger.Debug("script finished", "script", sc.Name, "presents", rec.Count(), "remaining", script.Remaining())
	if err := sc.Expect.Check(a.session.Frame(), a.session.Done(), rec.Count()); err != nil {
		return fmt.Errorf("scenario %s: %w", sc.Name, err)
	}
	_, err = fmt.Fprintln(a.out, rec.Last())
	return err
}

// OnTick implements ui.Controller for the Bubble Tea host.
func (a *App) OnTick(held keypad.Set) ui.Update {
	return a.session.Tick(held)
}

func (a *App) Close() {
	_ = a.logger.Close()
}
