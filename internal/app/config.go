package app

import "fmt"

// Config controls runtime behavior of the calculator.
type Config struct {
	LogPath      string
	Debug        bool
	Backend      string
	StyleVariant string
	ASCIIOnly    bool
	Labels       string

	// Script names a built-in input scenario replayed by the "script"
	// backend.
	Script string
}

func DefaultConfig() Config {
	return Config{
		Backend:      "tea",
		StyleVariant: "classic",
		Labels:       "terminal",
	}
}

func (c *Config) Validate() error {
	switch c.Backend {
	case "":
		c.Backend = "tea"
	case "tea", "tcell":
	case "script":
		if c.Script == "" {
			return fmt.Errorf("backend %q requires a script name", c.Backend)
		}
	default:
		return fmt.Errorf("invalid backend %q", c.Backend)
	}
	switch c.StyleVariant {
	case "":
		c.StyleVariant = "classic"
	case "classic", "paper", "modern_arcade", "cozy_clean", "retro_terminal":
	default:
		return fmt.Errorf("invalid ui style variant %q", c.StyleVariant)
	}
	switch c.Labels {
	case "":
		c.Labels = "terminal"
	case "terminal", "calculator":
	default:
		return fmt.Errorf("invalid key labels %q", c.Labels)
	}
	return nil
}
