package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/thesixpathguy/VoiceWise-sub001/cmd/tui/themes"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/version"
)

// Footer displays the bottom footer bar with keybindings
type Footer struct {
	width      int
	theme      themes.Theme
	tab        int
	filterMode bool
	hasFilter  bool
	editing    bool
}

// NewFooter creates a new footer component
func NewFooter() Footer {
	return Footer{
		width: 80,
		theme: themes.Solarized(),
	}
}

// SetTheme updates the theme
func (f *Footer) SetTheme(theme themes.Theme) {
	f.theme = theme
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetTab sets the active tab so keybindings match the current view
func (f *Footer) SetTab(tab int) {
	f.tab = tab
}

// SetFilterMode sets whether filter input is active
func (f *Footer) SetFilterMode(active bool) {
	f.filterMode = active
}

// SetHasFilter sets whether a filter is currently applied
func (f *Footer) SetHasFilter(hasFilter bool) {
	f.hasFilter = hasFilter
}

// SetEditing sets whether a text field on the current tab has focus
func (f *Footer) SetEditing(editing bool) {
	f.editing = editing
}

// View renders the footer
func (f *Footer) View() string {
	baseStyle := lipgloss.NewStyle().
		Foreground(f.theme.Foreground).
		Padding(0, 1)

	keyStyle := lipgloss.NewStyle().
		Foreground(f.theme.InfoColor).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(f.theme.Foreground)

	separatorStyle := lipgloss.NewStyle().
		Foreground(f.theme.BorderColor).
		Render("│")

	bind := func(key, desc string) string {
		return keyStyle.Render(key) + descStyle.Render(": "+desc)
	}

	// Build keybindings based on current mode and tab
	var bindings []string

	switch {
	case f.filterMode:
		bindings = []string{
			bind("Enter", "apply"),
			bind("Esc", "cancel"),
			bind("↑↓", "history"),
		}
	case f.editing:
		bindings = []string{
			bind("Esc", "done"),
			bind("Ctrl+s", "dial"),
			bind("Alt+c/Alt+r", "add segment"),
		}
	default:
		switch f.tab {
		case 0: // Calls
			bindings = []string{
				bind("/", "filter"),
				bind("[ ]", "page"),
				bind("↑↓", "select"),
				bind("Enter", "insights"),
				bind("a", "analyze"),
				bind("t", "transcript"),
				bind("r", "refresh"),
			}
			if f.hasFilter {
				bindings = append(bindings, bind("c", "clear filter"))
			}
		case 1: // Dashboard
			bindings = []string{
				bind("r", "refresh"),
				bind("↑↓", "scroll"),
			}
		case 2: // Initiate
			bindings = []string{
				bind("↑↓", "field"),
				bind("Enter", "edit/apply"),
				bind("Alt+c/Alt+r", "segment"),
				bind("Ctrl+s", "dial"),
			}
		default: // Help
			bindings = []string{
				bind("↑↓", "scroll"),
			}
		}
		bindings = append(bindings, bind("Tab", "next view"), bind("q", "quit"))
	}

	var content string
	for i, binding := range bindings {
		if i > 0 {
			content += "  " + separatorStyle + "  "
		}
		content += binding
	}

	// Version info for far right (only show if enough space)
	versionText := fmt.Sprintf("📞 voicewise v%s", version.GetVersion())
	versionStyle := lipgloss.NewStyle().
		Foreground(f.theme.BorderColor)
	versionRendered := versionStyle.Render(versionText)
	versionWidth := lipgloss.Width(versionRendered)

	leftContent := baseStyle.Render(content)
	leftWidth := lipgloss.Width(leftContent)
	minWidthForVersion := leftWidth + versionWidth + 4

	var footer string
	if f.width >= minWidthForVersion {
		paddingWidth := f.width - leftWidth - versionWidth
		paddingStr := lipgloss.NewStyle().Width(paddingWidth).Render("")
		footer = leftContent + paddingStr + versionRendered
	} else {
		footer = leftContent
		footerWidth := lipgloss.Width(footer)
		if footerWidth < f.width {
			padding := f.width - footerWidth
			footer += baseStyle.Render(lipgloss.NewStyle().Width(padding).Render(""))
		}
	}

	return footer
}
