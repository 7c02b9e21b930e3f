package ui

import (
	"strings"

	"github.com/idilsaglam/brewbuddy/internal/model"
)

// Theme bundles palette, symbols and box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name                                       string
	Title, Muted, Accent, Success, Error, Brew string
	CornerTL, CornerTR, CornerBL, CornerBR     string
	H, V                                       string
	BarFull, BarEmpty                          string
	QROn, QROff                                string
	StatusIcons                                map[model.Status]string
}

var current Theme

func init() { SetTheme("classic") }

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Name:  "neon",
			Title: "\033[95m", // bright magenta
			Muted: fgGray, Accent: "\033[96m",
			Success: fgGreen, Error: fgRed, Brew: "\033[93m",
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
			BarFull: "█", BarEmpty: "░",
			QROn: "██", QROff: "  ",
			StatusIcons: map[model.Status]string{
				model.StatusPending: "◷", model.StatusPreparing: "☕", model.StatusReady: "✔",
			},
		}
	case "mono":
		disableColor = true
		current = Theme{
			Name:     "mono",
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
			BarFull: "#", BarEmpty: ".",
			QROn: "##", QROff: "  ",
			StatusIcons: map[model.Status]string{
				model.StatusPending: "[ ]", model.StatusPreparing: "[~]", model.StatusReady: "[x]",
			},
		}
	default: // classic
		current = Theme{
			Name:  "classic",
			Title: bold, Muted: fgGray, Accent: fgBlue,
			Success: fgGreen, Error: fgRed, Brew: fgAmber,
			CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
			H: "─", V: "│",
			BarFull: "█", BarEmpty: "░",
			QROn: "██", QROff: "  ",
			StatusIcons: map[model.Status]string{
				model.StatusPending: "◷", model.StatusPreparing: "☕", model.StatusReady: "✔",
			},
		}
	}
}

// Expose what renderers need
func Current() Theme { return current }

// StatusIcon is the theme's glyph for s.
func (t Theme) StatusIcon(s model.Status) string {
	if ic, ok := t.StatusIcons[s]; ok {
		return ic
	}
	return "?"
}
