package themes

import "github.com/charmbracelet/lipgloss"

// Theme represents a color theme for the TUI
type Theme struct {
	Name string

	// General UI colors
	Background         lipgloss.Color
	Foreground         lipgloss.Color
	HeaderBg           lipgloss.Color
	HeaderFg           lipgloss.Color
	StatusBarBg        lipgloss.Color
	StatusBarFg        lipgloss.Color
	SelectionBg        lipgloss.Color
	SelectionFg        lipgloss.Color
	BorderColor        lipgloss.Color
	FocusedBorderColor lipgloss.Color

	// Call status colors
	CompletedColor lipgloss.Color
	InitiatedColor lipgloss.Color
	FailedColor    lipgloss.Color

	// Sentiment colors
	PositiveColor lipgloss.Color
	NeutralColor  lipgloss.Color
	NegativeColor lipgloss.Color

	// Emphasis colors
	ErrorColor   lipgloss.Color
	WarningColor lipgloss.Color
	SuccessColor lipgloss.Color
	InfoColor    lipgloss.Color
	FilterColor  lipgloss.Color
}

// Solarized color palette
var (
	// Solarized Dark base colors
	solarizedBase02 = lipgloss.Color("#073642") // background highlights
	solarizedBase01 = lipgloss.Color("#586e75") // comments / secondary content
	solarizedBase0  = lipgloss.Color("#839496") // body text / default code
	solarizedBase1  = lipgloss.Color("#93a1a1") // optional emphasized content

	// Solarized accent colors
	solarizedYellow = lipgloss.Color("#b58900")
	solarizedOrange = lipgloss.Color("#cb4b16")
	solarizedRed    = lipgloss.Color("#dc322f")
	solarizedViolet = lipgloss.Color("#6c71c4")
	solarizedBlue   = lipgloss.Color("#268bd2")
	solarizedCyan   = lipgloss.Color("#2aa198")
	solarizedGreen  = lipgloss.Color("#859900")
)

// Solarized returns the Solarized theme (htop-like with transparent background)
func Solarized() Theme {
	return Theme{
		Name: "Solarized",

		// General UI
		Background:         lipgloss.Color("0"),
		Foreground:         solarizedBase0,
		HeaderBg:           solarizedGreen,
		HeaderFg:           lipgloss.Color("0"),
		StatusBarBg:        solarizedBase02,
		StatusBarFg:        solarizedBase0,
		SelectionBg:        solarizedCyan,
		SelectionFg:        lipgloss.Color("0"),
		BorderColor:        solarizedBase1,
		FocusedBorderColor: solarizedRed,

		// Call status
		CompletedColor: solarizedGreen,
		InitiatedColor: solarizedYellow,
		FailedColor:    solarizedRed,

		// Sentiment
		PositiveColor: solarizedGreen,
		NeutralColor:  solarizedBase01,
		NegativeColor: solarizedOrange,

		// Emphasis
		ErrorColor:   solarizedRed,
		WarningColor: solarizedOrange,
		SuccessColor: solarizedGreen,
		InfoColor:    solarizedBlue,
		FilterColor:  solarizedViolet,
	}
}

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	switch name {
	case "solarized":
		return Solarized()
	default:
		return Solarized() // Default to solarized
	}
}
