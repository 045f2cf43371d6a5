package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme represents a color scheme for the application
type Theme struct {
	Name string

	// Base colors
	Background    lipgloss.Color
	Foreground    lipgloss.Color
	ForegroundDim lipgloss.Color

	// Accent colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color

	// Semantic colors
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	// UI element colors
	Border      lipgloss.Color
	BorderFocus lipgloss.Color
	Selection   lipgloss.Color
}

// Dark is the default color theme
var Dark = Theme{
	Name: "dark",

	Background:    lipgloss.Color("#0F172A"),
	Foreground:    lipgloss.Color("#F8FAFC"),
	ForegroundDim: lipgloss.Color("#64748B"),

	Primary:   lipgloss.Color("#38BDF8"),
	Secondary: lipgloss.Color("#A78BFA"),
	Accent:    lipgloss.Color("#F472B6"),

	Success: lipgloss.Color("#34D399"),
	Warning: lipgloss.Color("#FBBF24"),
	Error:   lipgloss.Color("#F87171"),

	Border:      lipgloss.Color("#334155"),
	BorderFocus: lipgloss.Color("#38BDF8"),
	Selection:   lipgloss.Color("#1E3A5F"),
}

// Light mirrors the original app's light preset
var Light = Theme{
	Name: "light",

	Background:    lipgloss.Color("#F8FAFC"),
	Foreground:    lipgloss.Color("#0F172A"),
	ForegroundDim: lipgloss.Color("#94A3B8"),

	Primary:   lipgloss.Color("#0EA5E9"),
	Secondary: lipgloss.Color("#8B5CF6"),
	Accent:    lipgloss.Color("#EC4899"),

	Success: lipgloss.Color("#10B981"),
	Warning: lipgloss.Color("#F59E0B"),
	Error:   lipgloss.Color("#EF4444"),

	Border:      lipgloss.Color("#CBD5E1"),
	BorderFocus: lipgloss.Color("#0EA5E9"),
	Selection:   lipgloss.Color("#E0F2FE"),
}

// Ocean is a blue-green preset
var Ocean = Theme{
	Name: "ocean",

	Background:    lipgloss.Color("#042F40"),
	Foreground:    lipgloss.Color("#E0F7FA"),
	ForegroundDim: lipgloss.Color("#5E8C9B"),

	Primary:   lipgloss.Color("#26C6DA"),
	Secondary: lipgloss.Color("#4DD0E1"),
	Accent:    lipgloss.Color("#80DEEA"),

	Success: lipgloss.Color("#66BB6A"),
	Warning: lipgloss.Color("#FFCA28"),
	Error:   lipgloss.Color("#EF5350"),

	Border:      lipgloss.Color("#0E4A5C"),
	BorderFocus: lipgloss.Color("#26C6DA"),
	Selection:   lipgloss.Color("#0B3C4D"),
}

// ByName returns the theme preset with the given name, defaulting to Dark
func ByName(name string) Theme {
	switch name {
	case "light":
		return Light
	case "ocean":
		return Ocean
	default:
		return Dark
	}
}

// Styles holds all the pre-computed styles for the UI
type Styles struct {
	Theme Theme

	// Title bar
	TitleBar   lipgloss.Style
	Title      lipgloss.Style
	TitleMuted lipgloss.Style
	TabActive  lipgloss.Style
	Tab        lipgloss.Style

	// Board
	Column        lipgloss.Style
	ColumnFocused lipgloss.Style
	ColumnTitle   lipgloss.Style
	ColumnCount   lipgloss.Style
	Card          lipgloss.Style
	CardSelected  lipgloss.Style
	CardDone      lipgloss.Style

	// Dashboard
	StatCard  lipgloss.Style
	StatValue lipgloss.Style
	StatLabel lipgloss.Style
	BarFilled lipgloss.Style
	BarEmpty  lipgloss.Style

	// Input fields
	Input        lipgloss.Style
	InputFocused lipgloss.Style

	// Feedback
	Help  lipgloss.Style
	Error lipgloss.Style
}

// NewStyles builds the style set for a theme
func NewStyles(t Theme) *Styles {
	return &Styles{
		Theme: t,

		TitleBar:   lipgloss.NewStyle().Padding(0, 1),
		Title:      lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		TitleMuted: lipgloss.NewStyle().Foreground(t.ForegroundDim),
		TabActive:  lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Underline(true).Padding(0, 1),
		Tab:        lipgloss.NewStyle().Foreground(t.ForegroundDim).Padding(0, 1),

		Column: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		ColumnFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Padding(0, 1),
		ColumnTitle: lipgloss.NewStyle().Bold(true).Foreground(t.Foreground),
		ColumnCount: lipgloss.NewStyle().Foreground(t.ForegroundDim),
		Card:        lipgloss.NewStyle().Foreground(t.Foreground),
		CardSelected: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Background(t.Selection).
			Bold(true),
		CardDone: lipgloss.NewStyle().Foreground(t.ForegroundDim).Strikethrough(true),

		StatCard: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 2),
		StatValue: lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		StatLabel: lipgloss.NewStyle().Foreground(t.ForegroundDim),
		BarFilled: lipgloss.NewStyle().Foreground(t.Success),
		BarEmpty:  lipgloss.NewStyle().Foreground(t.Border),

		Input:        lipgloss.NewStyle().Foreground(t.Foreground),
		InputFocused: lipgloss.NewStyle().Foreground(t.Primary),

		Help:  lipgloss.NewStyle().Foreground(t.ForegroundDim),
		Error: lipgloss.NewStyle().Foreground(t.Error).Bold(true),
	}
}
