package components

import (
	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/lipgloss"
	"github.com/thesixpathguy/VoiceWise-sub001/cmd/tui/themes"
)

// RenderVolumeSparkline renders daily call counts as a sparkline. The max
// value scales the chart so a quiet day reads as a short bar, not a gap.
func RenderVolumeSparkline(values []float64, width, height int, theme themes.Theme) string {
	if len(values) == 0 {
		return ""
	}

	style := lipgloss.NewStyle().Foreground(theme.InfoColor)
	opts := []sparkline.Option{
		sparkline.WithStyle(style),
		sparkline.WithData(values),
	}

	peak := 0.0
	for _, v := range values {
		if v > peak {
			peak = v
		}
	}
	if peak > 0 {
		opts = append(opts, sparkline.WithMaxValue(peak))
	}

	sl := sparkline.New(width, height, opts...)
	sl.DrawColumnsOnly()
	return sl.View()
}

// RenderLabeledSparkline renders a sparkline with a bold label above it
func RenderLabeledSparkline(label string, values []float64, width, height int, theme themes.Theme) string {
	labelStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.InfoColor)

	return labelStyle.Render(label) + "\n" + RenderVolumeSparkline(values, width, height, theme)
}
