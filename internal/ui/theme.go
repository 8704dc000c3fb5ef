package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

type Theme struct {
	Background color.Color
	Text       color.Color
	Attacker   color.Color
	Defender   color.Color
	Highlight  color.Color
	Pip        color.Color

	Notice lipgloss.Style
	Muted  lipgloss.Style
}

func (t Theme) Color(role Role) color.Color {
	switch role {
	case RoleText:
		return t.Text
	case RoleAttacker:
		return t.Attacker
	case RoleDefender:
		return t.Defender
	case RoleHighlight:
		return t.Highlight
	case RolePip:
		return t.Pip
	default:
		return t.Background
	}
}

func ThemeForVariant(variant string) Theme {
	switch variant {
	case "paper":
		return paperTheme()
	case "modern_arcade":
		return modernArcadeTheme()
	case "cozy_clean":
		return cozyCleanTheme()
	case "retro_terminal":
		return retroTerminalTheme()
	default:
		return classicTheme()
	}
}

func classicTheme() Theme {
	black := lipgloss.Color("#000000")
	gray := lipgloss.Color("#C6C6C6")
	return Theme{
		Background: black,
		Text:       gray,
		Attacker:   lipgloss.Color("#E00000"),
		Defender:   lipgloss.Color("#00C0C0"),
		Highlight:  lipgloss.Color("#808080"),
		Pip:        lipgloss.Color("#FFFFFF"),
		Notice: lipgloss.NewStyle().
			Foreground(gray).
			Bold(true),
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("#707070")),
	}
}

func paperTheme() Theme {
	white := lipgloss.Color("#FFFFFF")
	black := lipgloss.Color("#000000")
	return Theme{
		Background: white,
		Text:       black,
		Attacker:   lipgloss.Color("#E00000"),
		Defender:   lipgloss.Color("#00C0C0"),
		Highlight:  lipgloss.Color("#808080"),
		Pip:        black,
		Notice:     lipgloss.NewStyle().Foreground(black).Background(white).Bold(true),
		Muted:      lipgloss.NewStyle().Foreground(lipgloss.Color("#606060")),
	}
}

func modernArcadeTheme() Theme {
	brick := lipgloss.Color("#FF6F91")
	ink := lipgloss.Color("#0E1420")
	powder := lipgloss.Color("#EAF2FF")
	blue := lipgloss.Color("#5EEBFF")
	border := lipgloss.Color("#4B5F8A")

	return Theme{
		Background: ink,
		Text:       powder,
		Attacker:   brick,
		Defender:   blue,
		Highlight:  border,
		Pip:        powder,
		Notice: lipgloss.NewStyle().
			Foreground(blue).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CAAC6")),
	}
}

func cozyCleanTheme() Theme {
	honey := lipgloss.Color("#F2B872")
	rose := lipgloss.Color("#D17A86")
	night := lipgloss.Color("#1E2430")
	paper := lipgloss.Color("#F4F6FA")
	sky := lipgloss.Color("#86B6F6")

	return Theme{
		Background: night,
		Text:       paper,
		Attacker:   rose,
		Defender:   sky,
		Highlight:  honey,
		Pip:        paper,
		Notice:     lipgloss.NewStyle().Foreground(honey).Bold(true),
		Muted:      lipgloss.NewStyle().Foreground(lipgloss.Color("#A3ACC2")),
	}
}

func retroTerminalTheme() Theme {
	lime := lipgloss.Color("#9CF5A2")
	amber := lipgloss.Color("#E5D47A")
	red := lipgloss.Color("#FF6B6B")
	deep := lipgloss.Color("#07150A")
	glow := lipgloss.Color("#C5F7C4")

	return Theme{
		Background: deep,
		Text:       glow,
		Attacker:   red,
		Defender:   lime,
		Highlight:  amber,
		Pip:        deep,
		Notice:     lipgloss.NewStyle().Foreground(amber).Bold(true),
		Muted:      lipgloss.NewStyle().Foreground(lipgloss.Color("#73A17A")),
	}
}
