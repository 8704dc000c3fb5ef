package devtools

import (
	"errors"
	"fmt"
	"slices"

	"riskcalc/internal/battle"
	"riskcalc/internal/keypad"
	"riskcalc/internal/ui"
)

// Scenario is a scripted run of the calculator: the keys held on each tick
// and the state expected once the script ends.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
	Expect      Expect `yaml:"expect"`
}

// Step holds Keys (or a raw keypad Matrix) for Hold ticks. With Hold unset
// the step is a tap: one tick held, one tick released.
type Step struct {
	Keys   []string `yaml:"keys"`
	Matrix []uint8  `yaml:"matrix"`
	Hold   int      `yaml:"hold"`
}

type Expect struct {
	Screen         string `yaml:"screen"`
	Attacker       []int  `yaml:"attacker"`
	Defender       []int  `yaml:"defender"`
	Cursor         *int   `yaml:"cursor"`
	AttackerLosses *int   `yaml:"attacker_losses"`
	DefenderLosses *int   `yaml:"defender_losses"`
	Done           bool   `yaml:"done"`
	Presents       int    `yaml:"presents"`
}

func (s Scenario) Validate() error {
	if s.Name == "" {
		return errors.New("scenario name is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("scenario %s: no steps", s.Name)
	}
	for i, st := range s.Steps {
		if _, err := st.held(); err != nil {
			return fmt.Errorf("scenario %s step %d: %w", s.Name, i+1, err)
		}
		if st.Hold < 0 {
			return fmt.Errorf("scenario %s step %d: negative hold", s.Name, i+1)
		}
	}
	switch s.Expect.Screen {
	case "", "main", "results", "help":
	default:
		return fmt.Errorf("scenario %s: unknown screen %q", s.Name, s.Expect.Screen)
	}
	return nil
}

func (st Step) held() (keypad.Set, error) {
	if len(st.Keys) > 0 && len(st.Matrix) > 0 {
		return 0, errors.New("keys and matrix are exclusive")
	}
	if len(st.Matrix) > 0 {
		var m keypad.Matrix
		if len(st.Matrix) != len(m) {
			return 0, fmt.Errorf("matrix needs %d groups, got %d", len(m), len(st.Matrix))
		}
		copy(m[:], st.Matrix)
		return m.Keys(), nil
	}
	var s keypad.Set
	for _, name := range st.Keys {
		k, err := keypad.ParseKey(name)
		if err != nil {
			return 0, err
		}
		s = s.With(k)
	}
	return s, nil
}

// Ticks expands the steps into one key snapshot per tick.
func (s Scenario) Ticks() ([]keypad.Set, error) {
	var ticks []keypad.Set
	for i, st := range s.Steps {
		held, err := st.held()
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		if st.Hold == 0 {
			ticks = append(ticks, held, 0)
			continue
		}
		for range st.Hold {
			ticks = append(ticks, held)
		}
	}
	return ticks, nil
}

// Script returns a fresh key source replaying the scenario.
func (s Scenario) Script() (*Script, error) {
	ticks, err := s.Ticks()
	if err != nil {
		return nil, err
	}
	return NewScript(ticks), nil
}

// Check compares the final frame against the expectation. Unset fields are
// not checked.
func (e Expect) Check(f ui.Frame, done bool, presents int) error {
	var errs []error
	if err := f.Battle.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("battle setup: %w", err))
	}
	if e.Screen != "" && f.Screen.String() != e.Screen {
		errs = append(errs, fmt.Errorf("screen %s, want %s", f.Screen, e.Screen))
	}
	if e.Attacker != nil && !slices.Equal(faces(f.Battle.AttackerPool()), e.Attacker) {
		errs = append(errs, fmt.Errorf("attacker %v, want %v", f.Battle.AttackerPool(), e.Attacker))
	}
	if e.Defender != nil && !slices.Equal(faces(f.Battle.DefenderPool()), e.Defender) {
		errs = append(errs, fmt.Errorf("defender %v, want %v", f.Battle.DefenderPool(), e.Defender))
	}
	if e.Cursor != nil && f.Battle.Cursor != *e.Cursor {
		errs = append(errs, fmt.Errorf("cursor %d, want %d", f.Battle.Cursor, *e.Cursor))
	}
	if e.AttackerLosses != nil && f.Result.AttackerLosses != *e.AttackerLosses {
		errs = append(errs, fmt.Errorf("attacker losses %d, want %d", f.Result.AttackerLosses, *e.AttackerLosses))
	}
	if e.DefenderLosses != nil && f.Result.DefenderLosses != *e.DefenderLosses {
		errs = append(errs, fmt.Errorf("defender losses %d, want %d", f.Result.DefenderLosses, *e.DefenderLosses))
	}
	if done != e.Done {
		errs = append(errs, fmt.Errorf("done %v, want %v", done, e.Done))
	}
	if e.Presents > 0 && presents != e.Presents {
		errs = append(errs, fmt.Errorf("presented %d frames, want %d", presents, e.Presents))
	}
	return errors.Join(errs...)
}

func faces(pool []battle.Face) []int {
	out := make([]int, len(pool))
	for i, f := range pool {
		out[i] = int(f)
	}
	return out
}
