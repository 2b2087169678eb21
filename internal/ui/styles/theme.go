package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme represents a color scheme for the assistant
type Theme struct {
	Name string

	// Base colors
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
}

// TokyoNight is the default color theme
var TokyoNight = Theme{
	Name: "tokyonight",

	Foreground:    lipgloss.Color("#c0caf5"),
	ForegroundDim: lipgloss.Color("#565f89"),

	Primary:   lipgloss.Color("#7aa2f7"),
	Secondary: lipgloss.Color("#bb9af7"),
	Accent:    lipgloss.Color("#7dcfff"),

	Success: lipgloss.Color("#9ece6a"),
	Warning: lipgloss.Color("#e0af68"),
	Error:   lipgloss.Color("#f7768e"),

	Border:      lipgloss.Color("#3b4261"),
	BorderFocus: lipgloss.Color("#7aa2f7"),
}

// Gruvbox is an alternative warm theme
var Gruvbox = Theme{
	Name: "gruvbox",

	Foreground:    lipgloss.Color("#ebdbb2"),
	ForegroundDim: lipgloss.Color("#928374"),

	Primary:   lipgloss.Color("#fabd2f"),
	Secondary: lipgloss.Color("#d3869b"),
	Accent:    lipgloss.Color("#83a598"),

	Success: lipgloss.Color("#b8bb26"),
	Warning: lipgloss.Color("#fe8019"),
	Error:   lipgloss.Color("#fb4934"),

	Border:      lipgloss.Color("#504945"),
	BorderFocus: lipgloss.Color("#fabd2f"),
}

// Current holds the active theme
var Current = TokyoNight

// SetTheme switches the active theme by name; unknown names keep the
// current one.
func SetTheme(name string) {
	switch name {
	case Gruvbox.Name:
		Current = Gruvbox
	case TokyoNight.Name:
		Current = TokyoNight
	}
}

// MaxWidth is the maximum content width for the app
const MaxWidth = 100

// ContentWidth returns the actual content width to use (min of terminal width and MaxWidth)
func ContentWidth(terminalWidth int) int {
	if terminalWidth > MaxWidth {
		return MaxWidth
	}
	return terminalWidth
}

// Styles holds all the pre-computed styles for the UI
type Styles struct {
	// App container
	App lipgloss.Style

	// Title bar
	Title      lipgloss.Style
	TitleMuted lipgloss.Style

	// Transcript
	Prompt  lipgloss.Style
	Echo    lipgloss.Style
	Output  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style

	// Tables
	TableHeader lipgloss.Style
	TableCell   lipgloss.Style
	TableBorder lipgloss.Style

	// Input field
	Input        lipgloss.Style
	InputFocused lipgloss.Style

	// Help text
	Help lipgloss.Style
	Hint lipgloss.Style
}

// NewStyles creates the styles for the current theme
func NewStyles() *Styles {
	t := Current

	return &Styles{
		App: lipgloss.NewStyle().
			Foreground(t.Foreground),

		Title: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		TitleMuted: lipgloss.NewStyle().
			Foreground(t.ForegroundDim),

		Prompt: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Echo: lipgloss.NewStyle().
			Foreground(t.Secondary),
		Output: lipgloss.NewStyle().
			Foreground(t.Foreground),
		Success: lipgloss.NewStyle().
			Foreground(t.Success),
		Error: lipgloss.NewStyle().
			Foreground(t.Error),

		TableHeader: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true).
			Padding(0, 1),
		TableCell: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Padding(0, 1),
		TableBorder: lipgloss.NewStyle().
			Foreground(t.Border),

		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(t.ForegroundDim),
		Hint: lipgloss.NewStyle().
			Foreground(t.ForegroundDim).
			Italic(true),
	}
}
