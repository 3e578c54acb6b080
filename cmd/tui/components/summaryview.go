package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/thesixpathguy/VoiceWise-sub001/cmd/tui/themes"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/stats"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/types"
)

// SummaryView displays the gym dashboard: backend aggregates plus metrics
// derived client-side from a recent call window. The two halves are fetched
// independently, so each renders its own loading and error state.
type SummaryView struct {
	viewport viewport.Model
	width    int
	height   int
	theme    themes.Theme
	ready    bool

	summary        *types.DashboardSummary
	summaryLoading bool
	summaryErr     string

	pickup        stats.PickupStats
	volume        []stats.DayCount
	windowDays    int
	windowLoaded  bool
	windowLoading bool
	windowErr     string

	spinner string
}

// NewSummaryView creates a new summary view
func NewSummaryView() SummaryView {
	return SummaryView{
		width:  80,
		height: 20,
		theme:  themes.Solarized(),
	}
}

// SetTheme updates the theme
func (s *SummaryView) SetTheme(theme themes.Theme) {
	s.theme = theme
	s.refresh()
}

// SetSize sets the display size
func (s *SummaryView) SetSize(width, height int) {
	s.width = width
	s.height = height

	if !s.ready {
		s.viewport = viewport.New(width, height)
		s.ready = true
		s.viewport.SetContent(s.renderContent())
	} else {
		s.viewport.Width = width
		s.viewport.Height = height
	}
}

// SetSummary sets the backend aggregate data
func (s *SummaryView) SetSummary(summary *types.DashboardSummary) {
	s.summary = summary
	s.summaryLoading = false
	s.summaryErr = ""
	s.refresh()
}

// SetSummaryLoading marks the summary fetch in flight
func (s *SummaryView) SetSummaryLoading(loading bool) {
	s.summaryLoading = loading
	if loading {
		s.summaryErr = ""
	}
	s.refresh()
}

// SetSummaryError records a summary fetch failure
func (s *SummaryView) SetSummaryError(msg string) {
	s.summaryLoading = false
	s.summaryErr = msg
	s.refresh()
}

// SetWindow sets the client-side metrics computed over the recent window
func (s *SummaryView) SetWindow(pickup stats.PickupStats, volume []stats.DayCount, days int) {
	s.pickup = pickup
	s.volume = volume
	s.windowDays = days
	s.windowLoaded = true
	s.windowLoading = false
	s.windowErr = ""
	s.refresh()
}

// SetWindowLoading marks the window fetch in flight
func (s *SummaryView) SetWindowLoading(loading bool) {
	s.windowLoading = loading
	if loading {
		s.windowErr = ""
	}
	s.refresh()
}

// SetWindowError records a window fetch failure
func (s *SummaryView) SetWindowError(msg string) {
	s.windowLoading = false
	s.windowErr = msg
	s.refresh()
}

// SetSpinner sets the spinner frame shown while loading
func (s *SummaryView) SetSpinner(frame string) {
	s.spinner = frame
}

func (s *SummaryView) refresh() {
	if s.ready {
		s.viewport.SetContent(s.renderContent())
	}
}

// Update handles viewport messages for scrolling
func (s *SummaryView) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return cmd
}

// View renders the summary view
func (s *SummaryView) View() string {
	if !s.ready {
		return ""
	}
	return s.viewport.View()
}

// renderContent generates the dashboard content
func (s *SummaryView) renderContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(s.theme.InfoColor)
	labelStyle := lipgloss.NewStyle().
		Foreground(s.theme.StatusBarFg).
		Bold(true)
	valueStyle := lipgloss.NewStyle().
		Foreground(s.theme.Foreground)
	dimStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)
	errStyle := lipgloss.NewStyle().
		Foreground(s.theme.ErrorColor).
		Bold(true)

	var b strings.Builder

	writeRow := func(label, value string) {
		b.WriteString("  ")
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-22s", label)))
		b.WriteString(valueStyle.Render(value))
		b.WriteString("\n")
	}

	// Section: backend aggregates
	b.WriteString(titleStyle.Render("📊 Overview"))
	b.WriteString("\n\n")

	switch {
	case s.summaryErr != "":
		b.WriteString("  ")
		b.WriteString(errStyle.Render("✗ " + s.summaryErr))
		b.WriteString("\n")
	case s.summary == nil && s.summaryLoading:
		b.WriteString("  ")
		b.WriteString(dimStyle.Render(s.spinner + " Fetching summary..."))
		b.WriteString("\n")
	case s.summary == nil:
		b.WriteString("  ")
		b.WriteString(dimStyle.Render("No summary yet. Press r to fetch."))
		b.WriteString("\n")
	default:
		sum := s.summary
		writeRow("Calls analyzed", formatNumber(sum.TotalCalls))
		avgDur := "n/a"
		if sum.AvgDurationSeconds != nil {
			avgDur = types.FormatSeconds(int(*sum.AvgDurationSeconds))
		}
		writeRow("Avg duration", avgDur)
		writeRow("Avg confidence", types.FormatScore(sum.AvgConfidence))
		writeRow("Revenue opportunities", formatNumber(sum.RevenueOpportunities))

		b.WriteString("\n")
		b.WriteString(titleStyle.Render("🙂 Sentiment"))
		b.WriteString("\n\n")
		total := sum.Sentiment.Total()
		if total == 0 {
			b.WriteString("  ")
			b.WriteString(dimStyle.Render("No analyzed calls yet"))
			b.WriteString("\n")
		} else {
			b.WriteString(s.renderSentimentBar("positive", sum.Sentiment.Positive, total, s.theme.PositiveColor))
			b.WriteString(s.renderSentimentBar("neutral", sum.Sentiment.Neutral, total, s.theme.NeutralColor))
			b.WriteString(s.renderSentimentBar("negative", sum.Sentiment.Negative, total, s.theme.NegativeColor))
		}

		if len(sum.TopPainPoints) > 0 {
			b.WriteString("\n")
			b.WriteString(titleStyle.Render("⚠ Top pain points"))
			b.WriteString("\n\n")
			for i, pp := range sum.TopPainPoints {
				b.WriteString(valueStyle.Render(fmt.Sprintf("  %d. %-30s", i+1, pp.Name)))
				b.WriteString(labelStyle.Render(fmt.Sprintf("%4d", pp.Count)))
				b.WriteString("\n")
			}
		}

		if len(sum.HighInterestQuotes) > 0 {
			b.WriteString("\n")
			b.WriteString(titleStyle.Render("💬 High-interest quotes"))
			b.WriteString("\n\n")
			quoteStyle := lipgloss.NewStyle().
				Foreground(s.theme.Foreground).
				Italic(true)
			shown := min(len(sum.HighInterestQuotes), 3)
			for _, q := range sum.HighInterestQuotes[:shown] {
				b.WriteString(quoteStyle.Render("  “" + q.Quote + "”"))
				b.WriteString("\n")
				b.WriteString(dimStyle.Render("    — " + q.PhoneNumber))
				b.WriteString("\n")
			}
		}
	}

	// Section: client-side window metrics
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(fmt.Sprintf("📈 Last %d days", max(s.windowDays, 1))))
	b.WriteString("\n\n")

	switch {
	case s.windowErr != "":
		b.WriteString("  ")
		b.WriteString(errStyle.Render("✗ " + s.windowErr))
		b.WriteString("\n")
	case !s.windowLoaded && s.windowLoading:
		b.WriteString("  ")
		b.WriteString(dimStyle.Render(s.spinner + " Fetching recent calls..."))
		b.WriteString("\n")
	case !s.windowLoaded:
		b.WriteString("  ")
		b.WriteString(dimStyle.Render("No window data yet. Press r to fetch."))
		b.WriteString("\n")
	default:
		writeRow("Calls dispatched", formatNumber(s.pickup.Total))
		pickupDetail := fmt.Sprintf("%s  (%d answered / %d unanswered / %d pending)",
			s.pickup.FormatRate(), s.pickup.Answered, s.pickup.Unanswered, s.pickup.Pending)
		writeRow("Pickup rate", pickupDetail)

		if len(s.volume) > 0 {
			values := make([]float64, len(s.volume))
			peak := 0
			for i, day := range s.volume {
				values[i] = float64(day.Count)
				if day.Count > peak {
					peak = day.Count
				}
			}
			b.WriteString("\n")
			chartWidth := min(s.width-6, len(values)*4)
			if chartWidth < len(values) {
				chartWidth = len(values)
			}
			b.WriteString(labelStyle.Render("  Daily volume"))
			b.WriteString(dimStyle.Render(fmt.Sprintf("  (peak %d/day)", peak)))
			b.WriteString("\n")
			chart := RenderVolumeSparkline(values, chartWidth, 4, s.theme)
			for _, line := range strings.Split(chart, "\n") {
				b.WriteString("  " + line + "\n")
			}
			first := s.volume[0].Date.Format("Jan 2")
			last := s.volume[len(s.volume)-1].Date.Format("Jan 2")
			b.WriteString(dimStyle.Render(fmt.Sprintf("  %s%s%s", first, strings.Repeat(" ", max(chartWidth-len(first)-len(last), 1)), last)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderSentimentBar renders one sentiment class as a proportional bar
func (s *SummaryView) renderSentimentBar(label string, count, total int, color lipgloss.Color) string {
	const barWidth = 24

	filled := 0
	if total > 0 {
		filled = count * barWidth / total
	}
	if filled > barWidth {
		filled = barWidth
	}

	barStyle := lipgloss.NewStyle().Foreground(color)
	trackStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	labelStyle := lipgloss.NewStyle().Foreground(s.theme.Foreground)

	bar := barStyle.Render(strings.Repeat("█", filled)) +
		trackStyle.Render(strings.Repeat("░", barWidth-filled))

	percentage := 0.0
	if total > 0 {
		percentage = float64(count) / float64(total) * 100
	}

	return fmt.Sprintf("  %s %s %s\n",
		labelStyle.Render(fmt.Sprintf("%-9s", label)),
		bar,
		labelStyle.Render(fmt.Sprintf("%4d  (%.1f%%)", count, percentage)))
}
