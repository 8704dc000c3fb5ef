package app

import (
	"context"
	"fmt"
	"io"

	"riskcalc/internal/battle"
	"riskcalc/internal/keypad"
	"riskcalc/internal/ui"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Session is the single owned state of a calculator run: the battle setup,
// the last result, the active screen and the input edge detector.
type Session struct {
	id     string
	battle battle.Config
	result battle.Result
	screen ui.Screen
	keys   keypad.Detector
	redraw bool
	done   bool
	logger *log.Logger
}

func NewSession(logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	id := uuid.NewString()
	return &Session{
		id:     id,
		battle: battle.NewConfig(),
		screen: ui.ScreenMain,
		redraw: true,
		logger: logger.With("session", id),
	}
}

func (s *Session) ID() string { return s.id }

func (s *Session) Done() bool { return s.done }

func (s *Session) Screen() ui.Screen { return s.screen }

func (s *Session) Battle() battle.Config { return s.battle }

func (s *Session) Result() battle.Result { return s.result }

// RedrawPending reports whether state changed since the last presented frame.
func (s *Session) RedrawPending() bool { return s.redraw }

func (s *Session) Frame() ui.Frame {
	return ui.Frame{Screen: s.screen, Battle: s.battle, Result: s.result}
}

// Step runs one tick with the keys currently held. Only keys that were not
// held on the previous tick act, and at most one action runs per tick.
func (s *Session) Step(held keypad.Set) bool {
	pressed := s.keys.Pressed(held)
	if s.done || pressed.Empty() {
		return s.redraw
	}

	switch s.screen {
	case ui.ScreenMain:
		s.stepMain(pressed)
	case ui.ScreenResults:
		switch {
		case pressed.Has(keypad.KeyCancel):
			s.quit()
		case pressed.Has(keypad.KeyConfirm):
			s.show(ui.ScreenMain)
		case pressed.Has(keypad.KeyHelp):
			s.show(ui.ScreenHelp)
		}
	case ui.ScreenHelp:
		switch {
		case pressed.Has(keypad.KeyCancel):
			s.quit()
		case pressed.Has(keypad.KeyConfirm):
			s.show(ui.ScreenMain)
		}
	}
	return s.redraw
}

func (s *Session) stepMain(pressed keypad.Set) {
	switch {
	case pressed.Has(keypad.KeyCancel):
		s.quit()
	case pressed.Has(keypad.KeyConfirm):
		s.result = battle.ResolveConfig(s.battle)
		s.logger.Info("battle resolved",
			"attacker", s.battle.AttackerPool(),
			"defender", s.battle.DefenderPool(),
			"attacker_losses", s.result.AttackerLosses,
			"defender_losses", s.result.DefenderLosses,
		)
		s.show(ui.ScreenResults)
	case pressed.Has(keypad.KeyHelp):
		s.show(ui.ScreenHelp)
	case pressed.Has(keypad.KeyLeft):
		s.battle.MoveCursor(-1)
		s.redraw = true
	case pressed.Has(keypad.KeyRight):
		s.battle.MoveCursor(1)
		s.redraw = true
	case pressed.Has(keypad.KeyUp):
		s.battle.CycleAttackers()
		s.redraw = true
	case pressed.Has(keypad.KeyDown):
		s.battle.CycleDefenders()
		s.redraw = true
	default:
		for k := keypad.KeyDigit1; k <= keypad.KeyDigit6; k++ {
			if !pressed.Has(k) {
				continue
			}
			d, _ := k.Digit()
			s.battle.SetFace(battle.Face(d))
			s.redraw = true
			break
		}
	}
}

func (s *Session) show(screen ui.Screen) {
	s.logger.Debug("screen change", "from", s.screen, "to", screen)
	s.screen = screen
	s.redraw = true
}

func (s *Session) quit() {
	s.logger.Debug("session exit", "screen", s.screen)
	s.done = true
}

// Tick steps the session and hands the pending redraw to the caller, who is
// expected to present Update.Frame when Update.Redraw is set.
func (s *Session) Tick(held keypad.Set) ui.Update {
	redraw := s.Step(held)
	s.redraw = false
	return ui.Update{Frame: s.Frame(), Redraw: redraw && !s.done, Quit: s.done}
}

// Run polls src until the session exits, presenting a frame through out
// each time state changes and never otherwise.
func (s *Session) Run(ctx context.Context, src KeySource, out Presenter, r ui.Renderer) error {
	for {
		if s.redraw && !s.done {
			if err := out.Present(r.Render(s.Frame())); err != nil {
				return fmt.Errorf("present frame: %w", err)
			}
			s.redraw = false
		}
		if s.done {
			return nil
		}
		held, err := src.Poll(ctx)
		if err != nil {
			return fmt.Errorf("poll keys: %w", err)
		}
		s.Step(held)
	}
}
