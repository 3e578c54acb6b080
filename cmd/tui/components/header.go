package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/thesixpathguy/VoiceWise-sub001/cmd/tui/themes"
)

// FetchPhase describes where the most recent backend fetch stands.
type FetchPhase int

const (
	PhaseIdle FetchPhase = iota
	PhaseLoading
	PhaseReady
	PhaseError
)

// Header displays the top header bar
type Header struct {
	width      int
	theme      themes.Theme
	backendURL string
	gymID      string
	total      int
	totalExact bool
	phase      FetchPhase
}

// NewHeader creates a new header component
func NewHeader() Header {
	return Header{
		width:      80,
		theme:      themes.Solarized(),
		backendURL: "",
		gymID:      "",
		phase:      PhaseIdle,
	}
}

// SetTheme updates the theme
func (h *Header) SetTheme(theme themes.Theme) {
	h.theme = theme
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetBackend sets the backend URL and gym id shown in the middle section
func (h *Header) SetBackend(url, gymID string) {
	h.backendURL = url
	h.gymID = gymID
}

// SetTotal sets the call count. exact is false when the count is the
// pagination estimate rather than a server-reported total.
func (h *Header) SetTotal(total int, exact bool) {
	h.total = total
	h.totalExact = exact
}

// SetPhase updates the fetch state indicator
func (h *Header) SetPhase(phase FetchPhase) {
	h.phase = phase
}

// View renders the header
func (h *Header) View() string {
	leftStyle := lipgloss.NewStyle().
		Foreground(h.theme.Foreground).
		Bold(true).
		Padding(0, 1)

	middleStyle := lipgloss.NewStyle().
		Foreground(h.theme.Foreground).
		Padding(0, 1)

	rightStyle := lipgloss.NewStyle().
		Foreground(h.theme.Foreground).
		Padding(0, 1)

	// Status indicator with color
	var statusText string
	var statusColor lipgloss.Color
	switch h.phase {
	case PhaseLoading:
		statusText = "● FETCHING"
		statusColor = h.theme.InfoColor
	case PhaseReady:
		statusText = "● READY"
		statusColor = h.theme.SuccessColor
	case PhaseError:
		statusText = "● ERROR"
		statusColor = h.theme.ErrorColor
	default:
		statusText = "○ IDLE"
		statusColor = lipgloss.Color("240")
	}

	statusStyle := leftStyle.Foreground(statusColor)

	// Fixed width sections to prevent shifting
	leftWidth := 16
	rightWidth := 20
	paddingTotal := 6 // 2 per section * 3 sections

	leftContent := statusStyle.Render(statusText)
	leftPart := leftStyle.Width(leftWidth).Render(leftContent)

	middleText := fmt.Sprintf("Backend: %s", h.backendURL)
	if h.gymID != "" {
		middleText += fmt.Sprintf("  │  Gym: %s", h.gymID)
	}
	middleWidth := h.width - leftWidth - rightWidth - paddingTotal
	if middleWidth < 10 {
		middleWidth = 10
	}
	middlePart := middleStyle.Width(middleWidth).Align(lipgloss.Center).Render(middleText)

	marker := ""
	if !h.totalExact {
		marker = "~"
	}
	rightText := fmt.Sprintf("Calls: %s%s", marker, formatNumber(h.total))
	rightPart := rightStyle.Width(rightWidth).Align(lipgloss.Right).Render(rightText)

	header := lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftPart,
		middlePart,
		rightPart,
	)

	borderStyle := lipgloss.NewStyle().
		Foreground(h.theme.BorderColor)
	border := borderStyle.Render(strings.Repeat("─", max(h.width, 0)))

	return header + "\n" + border
}

// formatNumber formats a number with thousand separators
func formatNumber(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}

	str := fmt.Sprintf("%d", n)
	var result string
	for i, c := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result += ","
		}
		result += string(c)
	}
	return result
}
