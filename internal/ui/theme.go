package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/opencustom/internal/highlight"
)

// Theme defines colors for the chrome and for each token category.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Header and footer bars
	Panel      string // Code panel background
	Border     string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string

	// Code panel
	Gutter string
	Cursor string
	Syntax map[highlight.Category]string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	panelBg := lipgloss.Color(t.Panel)

	tokens := make(map[highlight.Category]lipgloss.Style, len(t.Syntax))
	for cat, color := range t.Syntax {
		style := lipgloss.NewStyle().
			Background(panelBg).
			Foreground(lipgloss.Color(color))
		switch cat {
		case highlight.Comment:
			style = style.Italic(true)
		case highlight.Keyword:
			style = style.Bold(true)
		}
		tokens[cat] = style
	}

	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		InfoText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Gutter: lipgloss.NewStyle().
			Background(panelBg).
			Foreground(lipgloss.Color(t.Gutter)),

		Cursor: lipgloss.NewStyle().
			Background(panelBg).
			Foreground(lipgloss.Color(t.Cursor)).
			Bold(true),

		Plain: lipgloss.NewStyle().
			Background(panelBg).
			Foreground(lipgloss.Color(t.Text)),

		tokens: tokens,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	// Text
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	// Components
	Header lipgloss.Style
	Footer lipgloss.Style
	Logo   lipgloss.Style

	// Code panel
	Gutter lipgloss.Style
	Cursor lipgloss.Style
	Plain  lipgloss.Style

	tokens map[highlight.Category]lipgloss.Style
}

// Token returns the style for a token category, falling back to Plain.
func (s Styles) Token(cat highlight.Category) lipgloss.Style {
	if style, ok := s.tokens[cat]; ok {
		return style
	}
	return s.Plain
}

// Theme definitions

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Nightfox", "Kanagawa", "Slate"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nightfoxTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return append([]string(nil), themeOrder...)
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		Panel:      "#131a24", // bg0
		Border:     "#39506d", // bg4

		Text:    "#cdcecf", // fg1
		Muted:   "#738091", // comment
		Faint:   "#71839b", // fg3
		Accent:  "#719cd6", // blue
		Success: "#81b29a", // green
		Warning: "#dbc074", // yellow
		Danger:  "#c94f6d", // red
		Info:    "#63cdcf", // cyan

		Gutter: "#39506d", // bg4
		Cursor: "#719cd6", // blue
		Syntax: map[highlight.Category]string{
			highlight.Plain:    "#cdcecf", // fg1
			highlight.Comment:  "#738091", // comment
			highlight.String:   "#81b29a", // green
			highlight.Keyword:  "#9d79d6", // magenta
			highlight.Type:     "#dbc074", // yellow
			highlight.Function: "#719cd6", // blue
			highlight.Number:   "#f4a261", // orange
			highlight.Operator: "#63cdcf", // cyan
		},
	}
}

func kanagawaTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name: "Kanagawa",

		Background: "#16161D", // sumiInk0
		Surface:    "#1F1F28", // sumiInk3
		Panel:      "#1F1F28", // sumiInk3
		Border:     "#54546D", // sumiInk6

		Text:    "#DCD7BA", // fujiWhite
		Muted:   "#C8C093", // oldWhite
		Faint:   "#727169", // fujiGray
		Accent:  "#7E9CD8", // crystalBlue
		Success: "#98BB6C", // springGreen
		Warning: "#E6C384", // carpYellow
		Danger:  "#E46876", // waveRed
		Info:    "#7FB4CA", // springBlue

		Gutter: "#54546D", // sumiInk6
		Cursor: "#E6C384", // carpYellow
		Syntax: map[highlight.Category]string{
			highlight.Plain:    "#DCD7BA", // fujiWhite
			highlight.Comment:  "#727169", // fujiGray
			highlight.String:   "#98BB6C", // springGreen
			highlight.Keyword:  "#957FB8", // oniViolet
			highlight.Type:     "#7AA89F", // waveAqua2
			highlight.Function: "#7E9CD8", // crystalBlue
			highlight.Number:   "#D27E99", // sakuraPink
			highlight.Operator: "#C0A36E", // boatYellow2
		},
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900
		Panel:      "#020617", // slate-950
		Border:     "#334155", // slate-700

		Text:    "#f1f5f9", // slate-100
		Muted:   "#94a3b8", // slate-400
		Faint:   "#64748b", // slate-500
		Accent:  "#38bdf8", // sky-400
		Success: "#22c55e", // green-500
		Warning: "#f59e0b", // amber-500
		Danger:  "#ef4444", // red-500
		Info:    "#06b6d4", // cyan-500

		Gutter: "#334155", // slate-700
		Cursor: "#38bdf8", // sky-400
		Syntax: map[highlight.Category]string{
			highlight.Plain:    "#f1f5f9", // slate-100
			highlight.Comment:  "#64748b", // slate-500
			highlight.String:   "#86efac", // green-300
			highlight.Keyword:  "#c084fc", // purple-400
			highlight.Type:     "#fcd34d", // amber-300
			highlight.Function: "#38bdf8", // sky-400
			highlight.Number:   "#fb923c", // orange-400
			highlight.Operator: "#67e8f9", // cyan-300
		},
	}
}
