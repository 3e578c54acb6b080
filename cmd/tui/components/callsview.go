package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/thesixpathguy/VoiceWise-sub001/cmd/tui/themes"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/types"
)

// CallsView displays one server page of feedback calls
type CallsView struct {
	calls      []types.Call
	selected   int
	offset     int
	width      int
	height     int
	theme      themes.Theme
	page       int
	totalPages int
	total      int
	totalExact bool
	filterDesc string
	loading    bool
	errMsg     string
	spinner    string
}

// NewCallsView creates a new calls view
func NewCallsView() CallsView {
	return CallsView{
		calls: make([]types.Call, 0),
		page:  1,
		theme: themes.Solarized(),
	}
}

// SetTheme sets the color theme
func (cv *CallsView) SetTheme(theme themes.Theme) {
	cv.theme = theme
}

// SetSize sets the dimensions
func (cv *CallsView) SetSize(width, height int) {
	cv.width = width
	cv.height = height
}

// SetCalls replaces the displayed page. Selection resets to the first row
// because the rows under the old cursor no longer exist.
func (cv *CallsView) SetCalls(calls []types.Call) {
	cv.calls = calls
	cv.selected = 0
	cv.offset = 0
	cv.loading = false
	cv.errMsg = ""
}

// SetPage records the pagination position for the status line
func (cv *CallsView) SetPage(page, totalPages, total int, exact bool) {
	cv.page = page
	cv.totalPages = totalPages
	cv.total = total
	cv.totalExact = exact
}

// SetFilterDesc sets the human description of the active filter
func (cv *CallsView) SetFilterDesc(desc string) {
	cv.filterDesc = desc
}

// SetLoading marks a fetch in flight. Existing rows stay visible.
func (cv *CallsView) SetLoading(loading bool) {
	cv.loading = loading
	if loading {
		cv.errMsg = ""
	}
}

// SetError records a fetch failure rendered as an inline banner
func (cv *CallsView) SetError(msg string) {
	cv.loading = false
	cv.errMsg = msg
}

// SetSpinner sets the spinner frame shown while loading
func (cv *CallsView) SetSpinner(frame string) {
	cv.spinner = frame
}

// Count returns the number of rows on the current page
func (cv *CallsView) Count() int {
	return len(cv.calls)
}

// GetSelected returns the currently selected call
func (cv *CallsView) GetSelected() *types.Call {
	if cv.selected >= 0 && cv.selected < len(cv.calls) {
		return &cv.calls[cv.selected]
	}
	return nil
}

// SelectNext moves selection down
func (cv *CallsView) SelectNext() {
	if cv.selected < len(cv.calls)-1 {
		cv.selected++
		cv.adjustOffset()
	}
}

// SelectPrevious moves selection up
func (cv *CallsView) SelectPrevious() {
	if cv.selected > 0 {
		cv.selected--
		cv.adjustOffset()
	}
}

// SelectFirst jumps to the first row
func (cv *CallsView) SelectFirst() {
	if len(cv.calls) > 0 {
		cv.selected = 0
		cv.offset = 0
	}
}

// SelectLast jumps to the last row
func (cv *CallsView) SelectLast() {
	if len(cv.calls) > 0 {
		cv.selected = len(cv.calls) - 1
		cv.adjustOffset()
	}
}

// Update handles mouse selection. Key navigation is routed by the model.
func (cv *CallsView) Update(msg tea.Msg) tea.Cmd {
	if mouse, ok := msg.(tea.MouseMsg); ok {
		if mouse.Type == tea.MouseLeft {
			cv.HandleMouseClick(mouse.Y)
		}
	}
	return nil
}

// HandleMouseClick selects the clicked row
func (cv *CallsView) HandleMouseClick(mouseY int) {
	// Border, padding and the header row sit above the first data row
	headerOffset := 4
	if mouseY < headerOffset {
		return
	}

	clickedRow := mouseY - headerOffset + cv.offset
	if clickedRow >= 0 && clickedRow < len(cv.calls) {
		cv.selected = clickedRow
		cv.adjustOffset()
	}
}

// adjustOffset ensures the selected row is visible
func (cv *CallsView) adjustOffset() {
	visibleLines := cv.visibleLines()

	if cv.selected < cv.offset {
		cv.offset = cv.selected
	}
	if cv.selected >= cv.offset+visibleLines {
		cv.offset = cv.selected - visibleLines + 1
	}
	if cv.offset < 0 {
		cv.offset = 0
	}
}

func (cv *CallsView) visibleLines() int {
	// Border overhead, header row and the status line
	lines := cv.height - 6
	if lines < 1 {
		lines = 1
	}
	return lines
}

// View renders the calls table
func (cv *CallsView) View() string {
	borderStyle := lipgloss.NewStyle().
		Foreground(cv.theme.BorderColor).
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2).
		Width(cv.width - 4).
		Height(cv.height - 3)

	if len(cv.calls) == 0 {
		return borderStyle.Render(cv.renderEmpty())
	}

	return borderStyle.Render(cv.renderTable())
}

// renderEmpty shows a message when the page has no rows
func (cv *CallsView) renderEmpty() string {
	style := lipgloss.NewStyle().
		Foreground(cv.theme.StatusBarFg).
		Italic(true).
		Width(cv.width - 8).
		Height(cv.height - 5).
		Align(lipgloss.Center, lipgloss.Center)

	switch {
	case cv.errMsg != "":
		return cv.renderBanner() + "\n" + style.Render("Could not load calls")
	case cv.loading:
		return style.Render(cv.spinner + " Loading calls...")
	case cv.filterDesc != "":
		return style.Render("No calls match " + cv.filterDesc)
	default:
		return style.Render("No calls yet. Switch to the Initiate tab to dial some.")
	}
}

// renderBanner renders the inline error banner
func (cv *CallsView) renderBanner() string {
	bannerStyle := lipgloss.NewStyle().
		Foreground(cv.theme.ErrorColor).
		Bold(true)
	return bannerStyle.Render("✗ " + cv.errMsg)
}

// renderTable shows the calls table
func (cv *CallsView) renderTable() string {
	availableWidth := cv.width - 8

	const (
		phoneMin   = 12
		phoneMax   = 18
		statusMin  = 9
		sentMin    = 8
		churnMin   = 5
		revMin     = 5
		durMin     = 5
		createdMin = 11
		createdMax = 19
	)

	minTotal := phoneMin + statusMin + sentMin + churnMin + revMin + durMin + createdMin + 6

	phoneWidth := phoneMin
	createdWidth := createdMin
	if availableWidth >= minTotal+13 {
		// Wide terminal: let the flexible columns grow
		phoneWidth = phoneMax
		createdWidth = createdMax
	}

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(cv.theme.HeaderBg).
		Reverse(true).
		Inline(true)

	rowStyle := lipgloss.NewStyle().
		Foreground(cv.theme.Foreground).
		Inline(true)

	selectedStyle := lipgloss.NewStyle().
		Foreground(cv.theme.SelectionBg).
		Reverse(true).
		Bold(true).
		Inline(true)

	header := fmt.Sprintf("%-*s %-*s %-*s %-*s %-*s %-*s %-*s",
		phoneWidth, truncate("Phone", phoneWidth),
		statusMin, "Status",
		sentMin, "Sent",
		churnMin, "Churn",
		revMin, "Rev",
		durMin, "Dur",
		createdWidth, truncate("Created", createdWidth))

	var content strings.Builder

	if cv.errMsg != "" {
		content.WriteString(cv.renderBanner())
		content.WriteString("\n")
	}

	content.WriteString(headerStyle.Render(header))
	content.WriteString("\n")

	visibleLines := cv.visibleLines()
	visibleEnd := min(cv.offset+visibleLines, len(cv.calls))

	for i := cv.offset; i < visibleEnd; i++ {
		call := cv.calls[i]

		sentiment := "-"
		churn := "-"
		revenue := "-"
		if call.Insights != nil {
			sentiment = types.FormatSentiment(call.Insights.Sentiment)
			churn = types.FormatScore(call.Insights.ChurnScore)
			revenue = types.FormatScore(call.Insights.RevenueInterestScore)
		}

		row := fmt.Sprintf("%-*s %-*s %-*s %-*s %-*s %-*s %-*s",
			phoneWidth, truncate(call.PhoneNumber, phoneWidth),
			statusMin, truncate(string(call.Status), statusMin),
			sentMin, truncate(sentiment, sentMin),
			churnMin, churn,
			revMin, revenue,
			durMin, call.FormatDuration(),
			createdWidth, truncate(call.CreatedAt.Display(), createdWidth))

		if i == cv.selected {
			content.WriteString(selectedStyle.Render(row))
		} else {
			style := rowStyle
			switch call.Status {
			case types.StatusCompleted:
				style = style.Foreground(cv.theme.CompletedColor)
			case types.StatusFailed:
				style = style.Foreground(cv.theme.FailedColor)
			case types.StatusInitiated:
				style = style.Foreground(cv.theme.InitiatedColor)
			}
			content.WriteString(style.Render(row))
		}
		content.WriteString("\n")
	}

	// Pad so the status line stays put when the page is short
	for i := visibleEnd - cv.offset; i < visibleLines; i++ {
		content.WriteString("\n")
	}

	content.WriteString(cv.renderStatusLine())

	return content.String()
}

// renderStatusLine renders the pagination position under the table
func (cv *CallsView) renderStatusLine() string {
	statusStyle := lipgloss.NewStyle().
		Foreground(cv.theme.StatusBarFg).
		Inline(true)

	marker := "~"
	if cv.totalExact {
		marker = ""
	}
	line := fmt.Sprintf("page %d of %d (%s%d calls)", cv.page, max(cv.totalPages, 1), marker, cv.total)
	if cv.filterDesc != "" {
		filterStyle := lipgloss.NewStyle().Foreground(cv.theme.FilterColor).Inline(true)
		line += "  ·  "
		return statusStyle.Render(line) + filterStyle.Render(cv.filterDesc)
	}
	if cv.loading {
		line += "  ·  " + cv.spinner + " fetching"
	}
	return statusStyle.Render(line)
}

// sanitize replaces characters that can break terminal rendering
func sanitize(s string) string {
	needsWork := false
	for _, r := range s {
		if (r < 32 && r != '\t') || r == 127 || r == 0xFFFD {
			needsWork = true
			break
		}
	}
	if !needsWork {
		return s
	}

	runes := []rune(s)
	for i, r := range runes {
		switch {
		case r < 32 && r != '\t', r == 127:
			runes[i] = ' '
		case r == 0xFFFD:
			runes[i] = '?'
		}
	}
	return string(runes)
}

// truncate shortens a string to fit width with an ellipsis
func truncate(s string, width int) string {
	s = sanitize(s)
	if len(s) <= width {
		return s
	}
	if width <= 3 {
		return s[:width]
	}
	return s[:width-3] + "..."
}
