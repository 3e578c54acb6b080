package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/thesixpathguy/VoiceWise-sub001/cmd/tui/themes"
)

// Tab represents a single tab
type Tab struct {
	Label string
	Icon  string
}

// Tabs displays a tab bar for switching views
type Tabs struct {
	tabs   []Tab
	active int
	width  int
	theme  themes.Theme
}

// NewTabs creates a new tabs component
func NewTabs(tabs []Tab) Tabs {
	return Tabs{
		tabs:   tabs,
		active: 0,
		width:  80,
		theme:  themes.Solarized(),
	}
}

// SetTheme updates the theme
func (t *Tabs) SetTheme(theme themes.Theme) {
	t.theme = theme
}

// SetWidth sets the tabs width
func (t *Tabs) SetWidth(width int) {
	t.width = width
}

// SetActive sets the active tab index
func (t *Tabs) SetActive(index int) {
	if index >= 0 && index < len(t.tabs) {
		t.active = index
	}
}

// GetActive returns the active tab index
func (t *Tabs) GetActive() int {
	return t.active
}

// Count returns the number of tabs
func (t *Tabs) Count() int {
	return len(t.tabs)
}

// GetTabAtX returns the index of the tab covering screen column x, or -1.
// Width per tab mirrors View: label plus padding (6) and borders (2), with
// a one-column gap between tabs.
func (t *Tabs) GetTabAtX(x int) int {
	pos := 0
	for i, tab := range t.tabs {
		w := lipgloss.Width(tab.Icon+" "+tab.Label) + 8
		if x >= pos && x < pos+w {
			return i
		}
		pos += w + 1
	}
	return -1
}

// Next switches to the next tab
func (t *Tabs) Next() {
	t.active = (t.active + 1) % len(t.tabs)
}

// Previous switches to the previous tab
func (t *Tabs) Previous() {
	t.active = (t.active - 1 + len(t.tabs)) % len(t.tabs)
}

// View renders the tabs
func (t *Tabs) View() string {
	// Active tab: open bottom so it visually joins the content below
	activeStyle := lipgloss.NewStyle().
		Foreground(t.theme.InfoColor).
		Bold(true).
		Padding(0, 3, 1, 3).
		Border(lipgloss.Border{
			Top:      "─",
			Left:     "│",
			Right:    "│",
			TopLeft:  "╭",
			TopRight: "╮",
		}).
		BorderTop(true).
		BorderLeft(true).
		BorderRight(true).
		BorderBottom(false).
		BorderForeground(t.theme.InfoColor)

	// Inactive tab: muted, fully boxed
	inactiveStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Padding(0, 3).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.theme.BorderColor)

	var tabParts []string
	for i, tab := range t.tabs {
		label := tab.Icon + " " + tab.Label
		if i == t.active {
			tabParts = append(tabParts, activeStyle.Render(label))
		} else {
			tabParts = append(tabParts, inactiveStyle.Render(label))
		}
	}

	lineStyle := lipgloss.NewStyle().Foreground(t.theme.InfoColor)

	// Split each rendered tab into lines so the bottom line can be rebuilt
	// with corner characters that tie the active tab into the content area.
	tabLines := make([][]string, len(tabParts))
	maxLines := 0
	for i := range tabParts {
		tabLines[i] = strings.Split(tabParts[i], "\n")
		if len(tabLines[i]) > maxLines {
			maxLines = len(tabLines[i])
		}
	}

	var result strings.Builder

	for lineNum := 0; lineNum < maxLines-1; lineNum++ {
		for i := range t.tabs {
			if lineNum < len(tabLines[i])-1 {
				result.WriteString(tabLines[i][lineNum])
			} else if len(tabLines[i]) > 0 {
				lastLineWidth := lipgloss.Width(tabLines[i][len(tabLines[i])-1])
				result.WriteString(strings.Repeat(" ", lastLineWidth))
			}
			if i < len(t.tabs)-1 {
				result.WriteString(" ")
			}
		}
		result.WriteString("\n")
	}

	// Bottom line: the active tab drops corners into the content border,
	// inactive tabs get a plain horizontal run.
	lastLineWidth := 0
	for i := range t.tabs {
		tabWidth := lipgloss.Width(tabLines[i][len(tabLines[i])-1])
		if i == t.active && tabWidth >= 2 {
			result.WriteString(lineStyle.Render("┘"))
			if tabWidth > 2 {
				result.WriteString(strings.Repeat(" ", tabWidth-2))
			}
			result.WriteString(lineStyle.Render("└"))
		} else if tabWidth > 0 {
			result.WriteString(lineStyle.Render(strings.Repeat("─", tabWidth)))
		}
		lastLineWidth += tabWidth
		if i < len(t.tabs)-1 {
			result.WriteString(lineStyle.Render("─"))
			lastLineWidth++
		}
	}

	// Extend the bottom line to the full width
	if lastLineWidth < t.width {
		result.WriteString(lineStyle.Render(strings.Repeat("─", t.width-lastLineWidth)))
	}

	return result.String()
}
