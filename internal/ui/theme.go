package ui

import "strings"

// Theme bundles palette + symbols + box borders.
// Colors are termenv specs (ANSI index or hex). All UI helpers pull from `current`.
type Theme struct {
	Name                                   string
	Title, Muted, Accent, Success, Error   string
	Pending, Border                        string
	BoxUnchecked, BoxChecked               string
	CornerTL, CornerTR, CornerBL, CornerBR string
	H, V                                   string
	SymSet, SymUnset                       string
	SwitchOn, SwitchOff                    string
}

var current = classic()

// SetTheme selects classic, neon or mono. Unknown names fall back to classic.
func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Name: "neon",
			Title: "13", // bright magenta
			Muted: "8", Accent: "14",
			Success: "10", Error: "9", Pending: "11", Border: "13",
			BoxUnchecked: "◻", BoxChecked: "◼",
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
			SymSet: "✔", SymUnset: "•",
			SwitchOn: "◉", SwitchOff: "○",
		}
	case "mono":
		SetColorForcing(false, true)
		current = Theme{
			Name: "mono",
			BoxUnchecked: "[ ]", BoxChecked: "[x]",
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
			SymSet: "x", SymUnset: "-",
			SwitchOn: "(on)", SwitchOff: "(off)",
		}
	default:
		current = classic()
	}
}

func classic() Theme {
	return Theme{
		Name: "classic",
		Title: "15",
		Muted: "8", Accent: "12",
		Success: "2", Error: "1", Pending: "3", Border: "8",
		BoxUnchecked: "☐", BoxChecked: "☑",
		CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
		H: "─", V: "│",
		SymSet: "✔", SymUnset: "•",
		SwitchOn: "●", SwitchOff: "○",
	}
}

// Expose what renderers need
func Current() Theme { return current }
