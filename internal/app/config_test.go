package app

import "testing"

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateFillsBlanks(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if cfg.Backend != "tea" || cfg.StyleVariant != "classic" || cfg.Labels != "terminal" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestValidateRejectsUnknownValues(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "backend", cfg: Config{Backend: "sdl"}},
		{name: "style", cfg: Config{StyleVariant: "neon"}},
		{name: "labels", cfg: Config{Labels: "braille"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); err == nil {
				t.Fatalf("expected error for %+v", tt.cfg)
			}
		})
	}
}

func TestNewWiresControllerIntoView(t *testing.T) {
	a, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer a.Close()

	if up := a.OnTick(0); !up.Redraw {
		t.Fatalf("expected initial frame from controller")
	}
	if got := labelsFor("calculator").Help; got != "ALPHA" {
		t.Fatalf("calculator labels help = %q", got)
	}
}
