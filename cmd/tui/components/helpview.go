package components

import (
	_ "embed"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/lipgloss"

	"github.com/thesixpathguy/VoiceWise-sub001/cmd/tui/themes"
)

//go:embed help.md
var helpMarkdown string

// HelpView renders the embedded keybinding and configuration reference.
type HelpView struct {
	viewport viewport.Model
	ready    bool
	width    int
	height   int
	theme    themes.Theme
}

// NewHelpView creates a new help view
func NewHelpView() HelpView {
	return HelpView{
		theme: themes.Solarized(),
	}
}

// SetTheme sets the color theme and re-renders the document
func (h *HelpView) SetTheme(theme themes.Theme) {
	h.theme = theme
	if h.ready {
		h.viewport.SetContent(h.renderMarkdown())
	}
}

// SetSize updates the dimensions and re-wraps the document
func (h *HelpView) SetSize(width, height int) {
	h.width = width
	h.height = height

	vpWidth := width - 4
	vpHeight := height - 4

	if !h.ready {
		h.viewport = viewport.New(vpWidth, vpHeight)
		h.ready = true
	} else {
		h.viewport.Width = vpWidth
		h.viewport.Height = vpHeight
	}
	h.viewport.SetContent(h.renderMarkdown())
}

// Update handles scrolling
func (h *HelpView) Update(msg tea.Msg) tea.Cmd {
	if !h.ready {
		return nil
	}
	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return cmd
}

// View renders the help view
func (h *HelpView) View() string {
	if !h.ready {
		return ""
	}

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(h.theme.BorderColor).
		Padding(0, 1).
		Width(h.width - 2).
		Height(h.height - 2)

	return borderStyle.Render(h.viewport.View())
}

// renderMarkdown renders the help document through glamour, falling back
// to the raw markdown if rendering fails.
func (h *HelpView) renderMarkdown() string {
	wrapWidth := h.viewport.Width - 2
	if wrapWidth < 20 {
		wrapWidth = 20
	}

	var styleOption glamour.TermRendererOption
	if h.theme.Name == "Solarized" {
		styleOption = glamour.WithStyles(solarizedGlamourStyle())
	} else {
		styleOption = glamour.WithAutoStyle()
	}

	renderer, err := glamour.NewTermRenderer(
		styleOption,
		glamour.WithWordWrap(wrapWidth),
	)
	if err != nil {
		return helpMarkdown
	}

	rendered, err := renderer.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return rendered
}

// solarizedGlamourStyle builds a glamour style config matching the
// Solarized Dark palette used by the rest of the TUI.
func solarizedGlamourStyle() ansi.StyleConfig {
	return ansi.StyleConfig{
		Document: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Color: strPtr("#839496"),
			},
			Margin: uintPtr(0),
		},
		BlockQuote: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Color:  strPtr("#586e75"),
				Italic: boolPtr(true),
			},
			Indent: uintPtr(2),
		},
		Paragraph: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{},
		},
		List: ansi.StyleList{
			StyleBlock: ansi.StyleBlock{
				StylePrimitive: ansi.StylePrimitive{
					Color: strPtr("#839496"),
				},
			},
			LevelIndent: 2,
		},
		Heading: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Color: strPtr("#268bd2"),
				Bold:  boolPtr(true),
			},
		},
		H1: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Color:  strPtr("#268bd2"),
				Bold:   boolPtr(true),
				Prefix: "# ",
			},
		},
		H2: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Color:  strPtr("#2aa198"),
				Bold:   boolPtr(true),
				Prefix: "## ",
			},
		},
		H3: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Color:  strPtr("#859900"),
				Bold:   boolPtr(true),
				Prefix: "### ",
			},
		},
		H4: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Color:  strPtr("#b58900"),
				Bold:   boolPtr(true),
				Prefix: "#### ",
			},
		},
		Strong: ansi.StylePrimitive{
			Color: strPtr("#93a1a1"),
			Bold:  boolPtr(true),
		},
		Emph: ansi.StylePrimitive{
			Color:  strPtr("#93a1a1"),
			Italic: boolPtr(true),
		},
		HorizontalRule: ansi.StylePrimitive{
			Color:  strPtr("#586e75"),
			Format: "\n--------\n",
		},
		Item: ansi.StylePrimitive{
			BlockPrefix: "• ",
		},
		Link: ansi.StylePrimitive{
			Color:     strPtr("#268bd2"),
			Underline: boolPtr(true),
		},
		LinkText: ansi.StylePrimitive{
			Color: strPtr("#2aa198"),
			Bold:  boolPtr(true),
		},
		Code: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Color:           strPtr("#cb4b16"),
				BackgroundColor: strPtr("#073642"),
			},
		},
		CodeBlock: ansi.StyleCodeBlock{
			StyleBlock: ansi.StyleBlock{
				StylePrimitive: ansi.StylePrimitive{
					Color:           strPtr("#839496"),
					BackgroundColor: strPtr("#073642"),
				},
				Margin: uintPtr(2),
			},
		},
		Table: ansi.StyleTable{
			StyleBlock: ansi.StyleBlock{
				StylePrimitive: ansi.StylePrimitive{
					Color: strPtr("#839496"),
				},
			},
			CenterSeparator: strPtr("┼"),
			ColumnSeparator: strPtr("│"),
			RowSeparator:    strPtr("─"),
		},
	}
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
func uintPtr(u uint) *uint    { return &u }
