package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/thesixpathguy/VoiceWise-sub001/cmd/tui/themes"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/types"
)

// InsightsPanel shows the selected call and its extracted insights
type InsightsPanel struct {
	viewport viewport.Model
	width    int
	height   int
	theme    themes.Theme
	ready    bool

	call     *types.Call
	insights *types.Insights
	loading  bool
	errMsg   string
	spinner  string
}

// NewInsightsPanel creates a new insights panel
func NewInsightsPanel() InsightsPanel {
	return InsightsPanel{
		width:  60,
		height: 20,
		theme:  themes.Solarized(),
	}
}

// SetTheme updates the theme
func (p *InsightsPanel) SetTheme(theme themes.Theme) {
	p.theme = theme
	if p.ready {
		p.viewport.SetContent(p.renderContent())
	}
}

// SetSize sets the display size
func (p *InsightsPanel) SetSize(width, height int) {
	p.width = width
	p.height = height

	// Viewport content area sits inside the border and title
	vpWidth := width - 4
	vpHeight := height - 5
	if vpWidth < 1 {
		vpWidth = 1
	}
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !p.ready {
		p.viewport = viewport.New(vpWidth, vpHeight)
		p.ready = true
		p.viewport.SetContent(p.renderContent())
	} else {
		p.viewport.Width = vpWidth
		p.viewport.Height = vpHeight
	}
}

// SetCall sets the call whose insights the panel shows. Passing nil clears
// the panel, which happens on every page change.
func (p *InsightsPanel) SetCall(call *types.Call) {
	p.call = call
	p.insights = nil
	p.loading = false
	p.errMsg = ""
	p.refresh()
}

// SetInsights sets the fetched insights for the current call
func (p *InsightsPanel) SetInsights(insights *types.Insights) {
	p.insights = insights
	p.loading = false
	p.errMsg = ""
	p.refresh()
}

// SetLoading marks an insights fetch in flight
func (p *InsightsPanel) SetLoading(loading bool) {
	p.loading = loading
	if loading {
		p.errMsg = ""
	}
	p.refresh()
}

// SetError records a fetch failure
func (p *InsightsPanel) SetError(msg string) {
	p.loading = false
	p.errMsg = msg
	p.refresh()
}

// SetSpinner sets the spinner frame shown while loading
func (p *InsightsPanel) SetSpinner(frame string) {
	p.spinner = frame
}

// Call returns the call currently shown, or nil
func (p *InsightsPanel) Call() *types.Call {
	return p.call
}

func (p *InsightsPanel) refresh() {
	if p.ready {
		p.viewport.SetContent(p.renderContent())
		p.viewport.GotoTop()
	}
}

// Update handles viewport messages for scrolling
func (p *InsightsPanel) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd
}

// View renders the insights panel
func (p *InsightsPanel) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(p.theme.InfoColor)

	title := "Insights"
	if p.call != nil {
		title = "Insights — " + p.call.PhoneNumber
	}

	body := ""
	if p.ready {
		body = p.viewport.View()
	}

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.theme.BorderColor).
		Padding(0, 1).
		Width(p.width - 2).
		Height(p.height - 2)

	return borderStyle.Render(titleStyle.Render(title) + "\n\n" + body)
}

// renderContent generates the panel content
func (p *InsightsPanel) renderContent() string {
	dimStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	if p.call == nil {
		return dimStyle.Render("Select a call and press enter to load insights.")
	}

	labelStyle := lipgloss.NewStyle().
		Foreground(p.theme.StatusBarFg).
		Bold(true)
	valueStyle := lipgloss.NewStyle().
		Foreground(p.theme.Foreground)
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(p.theme.InfoColor)

	var b strings.Builder

	writeRow := func(label, value string) {
		b.WriteString(labelStyle.Render(label + ": "))
		b.WriteString(valueStyle.Render(value))
		b.WriteString("\n")
	}

	writeRow("Call", p.call.CallID)
	writeRow("Status", string(p.call.Status))
	writeRow("Duration", p.call.FormatDuration())
	writeRow("Created", p.call.CreatedAt.Display())

	if len(p.call.CustomInstructions) > 0 {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Custom instructions"))
		b.WriteString("\n")
		for i, instr := range p.call.CustomInstructions {
			b.WriteString(valueStyle.Render(fmt.Sprintf("%d. %s", i+1, instr)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")

	switch {
	case p.errMsg != "":
		errStyle := lipgloss.NewStyle().Foreground(p.theme.ErrorColor).Bold(true)
		b.WriteString(errStyle.Render("✗ " + p.errMsg))
		b.WriteString("\n")
		return b.String()
	case p.loading:
		b.WriteString(dimStyle.Render(p.spinner + " Fetching insights..."))
		b.WriteString("\n")
		return b.String()
	case p.insights == nil:
		b.WriteString(dimStyle.Render("No insights yet. Press a to analyze this call."))
		b.WriteString("\n")
		return b.String()
	}

	ins := p.insights

	b.WriteString(titleStyle.Render("Analysis"))
	b.WriteString("\n")

	sentStyle := valueStyle
	switch ins.Sentiment {
	case types.SentimentPositive:
		sentStyle = sentStyle.Foreground(p.theme.PositiveColor)
	case types.SentimentNegative:
		sentStyle = sentStyle.Foreground(p.theme.NegativeColor)
	case types.SentimentNeutral:
		sentStyle = sentStyle.Foreground(p.theme.NeutralColor)
	}
	b.WriteString(labelStyle.Render("Sentiment: "))
	b.WriteString(sentStyle.Render(types.FormatSentiment(ins.Sentiment)))
	b.WriteString("\n")

	writeRow("Gym rating", types.FormatRating(ins.GymRating))
	writeRow("Churn score", types.FormatScore(ins.ChurnScore))
	writeRow("Revenue interest", types.FormatScore(ins.RevenueInterestScore))
	writeRow("Confidence", types.FormatScore(ins.Confidence))
	if ins.AnomalyScore != nil {
		writeRow("Anomaly score", types.FormatScore(ins.AnomalyScore))
	}

	writeList := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		b.WriteString("\n")
		b.WriteString(titleStyle.Render(title))
		b.WriteString("\n")
		for _, item := range items {
			b.WriteString(valueStyle.Render("• " + item))
			b.WriteString("\n")
		}
	}

	writeList("Topics", ins.Topics)
	writeList("Pain points", ins.PainPoints)
	writeList("Opportunities", ins.Opportunities)

	quoteStyle := lipgloss.NewStyle().
		Foreground(p.theme.StatusBarFg).
		Italic(true)
	if ins.ChurnInterestQuote != nil && *ins.ChurnInterestQuote != "" {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Churn signal"))
		b.WriteString("\n")
		b.WriteString(quoteStyle.Render("“" + *ins.ChurnInterestQuote + "”"))
		b.WriteString("\n")
	}
	if ins.RevenueInterestQuote != nil && *ins.RevenueInterestQuote != "" {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Revenue signal"))
		b.WriteString("\n")
		b.WriteString(quoteStyle.Render("“" + *ins.RevenueInterestQuote + "”"))
		b.WriteString("\n")
	}

	if len(ins.CustomInstructionAnswers) > 0 {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Instruction answers"))
		b.WriteString("\n")
		// Iterate in the order the instructions were asked
		seen := make(map[string]bool, len(p.call.CustomInstructions))
		for _, instr := range p.call.CustomInstructions {
			if answer, ok := ins.CustomInstructionAnswers[instr]; ok {
				b.WriteString(labelStyle.Render("Q: "))
				b.WriteString(valueStyle.Render(instr))
				b.WriteString("\n")
				b.WriteString(labelStyle.Render("A: "))
				b.WriteString(valueStyle.Render(answer))
				b.WriteString("\n")
				seen[instr] = true
			}
		}
		for question, answer := range ins.CustomInstructionAnswers {
			if !seen[question] {
				b.WriteString(labelStyle.Render("Q: "))
				b.WriteString(valueStyle.Render(question))
				b.WriteString("\n")
				b.WriteString(labelStyle.Render("A: "))
				b.WriteString(valueStyle.Render(answer))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}
