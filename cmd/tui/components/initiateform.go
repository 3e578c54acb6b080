package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/thesixpathguy/VoiceWise-sub001/cmd/tui/themes"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/api"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/segments"
)

// ApplyPresetMsg asks the model to fetch a segment preset and append its
// numbers to the editor.
type ApplyPresetMsg struct {
	Preset segments.Preset
}

// SubmitMsg asks the model to dial the numbers currently in the editor.
type SubmitMsg struct{}

// Form zones, in focus order. Preset rows sit between the instruction
// input and the submit row.
const (
	zoneNumbers     = 0
	zoneInstruction = 1
	zonePresetsBase = 2
)

// InitiateForm is the Initiate tab: a phone number editor, an optional
// instruction, the segment preset list, and a submit row.
type InitiateForm struct {
	numbers     textarea.Model
	instruction textinput.Model
	presets     []segments.Preset
	focus       int
	editing     bool
	width       int
	height      int
	theme       themes.Theme

	submitting bool
	result     *api.InitiateResult
	errMsg     string
	status     string
	spinner    string
}

// NewInitiateForm creates a new initiate form
func NewInitiateForm() InitiateForm {
	ta := textarea.New()
	ta.Placeholder = "+15551234567\none number per line"
	ta.ShowLineNumbers = false
	ta.SetHeight(6)
	ta.CharLimit = 0

	ti := textinput.New()
	ti.Placeholder = "optional instruction, e.g. Ask about the new sauna"
	ti.CharLimit = 200

	return InitiateForm{
		numbers:     ta,
		instruction: ti,
		focus:       zoneNumbers,
		theme:       themes.Solarized(),
	}
}

// SetTheme updates the theme
func (f *InitiateForm) SetTheme(theme themes.Theme) {
	f.theme = theme
}

// SetSize sets the display size
func (f *InitiateForm) SetSize(width, height int) {
	f.width = width
	f.height = height

	editorWidth := width - 8
	if editorWidth < 20 {
		editorWidth = 20
	}
	f.numbers.SetWidth(editorWidth)
	f.instruction.Width = editorWidth - 4
}

// SetPresets replaces the preset list, keeping focus in range
func (f *InitiateForm) SetPresets(presets []segments.Preset) {
	f.presets = presets
	if f.focus > f.submitIndex() {
		f.focus = f.submitIndex()
	}
}

// submitIndex returns the focus index of the submit row
func (f *InitiateForm) submitIndex() int {
	return zonePresetsBase + len(f.presets)
}

// Editing reports whether a text field currently has focus
func (f *InitiateForm) Editing() bool {
	return f.editing
}

// FocusNext moves focus to the next zone
func (f *InitiateForm) FocusNext() {
	if f.focus < f.submitIndex() {
		f.focus++
	}
}

// FocusPrevious moves focus to the previous zone
func (f *InitiateForm) FocusPrevious() {
	if f.focus > 0 {
		f.focus--
	}
}

// AppendNumbers appends numbers to the editor, one per line. Existing
// content is kept. Duplicates are kept too, the backend owns that call.
func (f *InitiateForm) AppendNumbers(numbers []string) int {
	if len(numbers) == 0 {
		return 0
	}

	value := f.numbers.Value()
	if value != "" && !strings.HasSuffix(value, "\n") {
		value += "\n"
	}
	value += strings.Join(numbers, "\n")
	f.numbers.SetValue(value)
	return len(numbers)
}

// Numbers returns the trimmed, order-preserving number list
func (f *InitiateForm) Numbers() []string {
	return api.SplitNumbers(f.numbers.Value())
}

// Instruction returns the trimmed instruction, empty when unset
func (f *InitiateForm) Instruction() string {
	return strings.TrimSpace(f.instruction.Value())
}

// ClearInputs empties both fields after a successful submit
func (f *InitiateForm) ClearInputs() {
	f.numbers.SetValue("")
	f.instruction.SetValue("")
}

// SetSubmitting marks the dial request in flight
func (f *InitiateForm) SetSubmitting(submitting bool) {
	f.submitting = submitting
	if submitting {
		f.errMsg = ""
		f.status = ""
		f.result = nil
	}
}

// Submitting reports whether a dial request is in flight
func (f *InitiateForm) Submitting() bool {
	return f.submitting
}

// SetResult records a successful dial
func (f *InitiateForm) SetResult(result *api.InitiateResult) {
	f.submitting = false
	f.result = result
	f.errMsg = ""
}

// SetError records a failed dial or segment fetch
func (f *InitiateForm) SetError(msg string) {
	f.submitting = false
	f.errMsg = msg
	f.status = ""
}

// SetStatus sets the transient info line, e.g. after a segment append
func (f *InitiateForm) SetStatus(msg string) {
	f.status = msg
	f.errMsg = ""
}

// SetSpinner sets the spinner frame shown while submitting
func (f *InitiateForm) SetSpinner(frame string) {
	f.spinner = frame
}

// Update handles messages for the form. While editing, non-key messages
// (cursor blink, paste) still reach the focused field.
func (f *InitiateForm) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if f.editing {
			return f.updateFocusedField(msg)
		}
		return nil
	}

	if f.editing {
		switch keyMsg.String() {
		case "esc":
			f.stopEdit()
			return nil
		}
		return f.updateFocusedField(msg)
	}

	switch keyMsg.String() {
	case "up", "k":
		f.FocusPrevious()
	case "down", "j":
		f.FocusNext()
	case "enter":
		return f.activate()
	}
	return nil
}

func (f *InitiateForm) updateFocusedField(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case zoneNumbers:
		f.numbers, cmd = f.numbers.Update(msg)
	case zoneInstruction:
		f.instruction, cmd = f.instruction.Update(msg)
	}
	return cmd
}

// activate acts on the focused zone: edit a field, apply a preset, or submit
func (f *InitiateForm) activate() tea.Cmd {
	switch {
	case f.focus == zoneNumbers:
		f.editing = true
		return f.numbers.Focus()
	case f.focus == zoneInstruction:
		f.editing = true
		return f.instruction.Focus()
	case f.focus == f.submitIndex():
		return func() tea.Msg { return SubmitMsg{} }
	default:
		preset := f.presets[f.focus-zonePresetsBase]
		return func() tea.Msg { return ApplyPresetMsg{Preset: preset} }
	}
}

func (f *InitiateForm) stopEdit() {
	f.editing = false
	f.numbers.Blur()
	f.instruction.Blur()
}

// View renders the initiate form
func (f *InitiateForm) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(f.theme.InfoColor)
	labelStyle := lipgloss.NewStyle().
		Foreground(f.theme.StatusBarFg).
		Bold(true)
	dimStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	fieldBorder := func(focused bool) lipgloss.Style {
		color := f.theme.BorderColor
		if focused {
			color = f.theme.FocusedBorderColor
		}
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(color).
			Padding(0, 1).
			Width(f.width - 6)
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("📣 Dial feedback calls"))
	b.WriteString("\n\n")

	count := len(f.Numbers())
	b.WriteString(labelStyle.Render("Phone numbers"))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  (%d queued)", count)))
	b.WriteString("\n")
	b.WriteString(fieldBorder(f.focus == zoneNumbers).Render(f.numbers.View()))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Instruction"))
	b.WriteString("\n")
	b.WriteString(fieldBorder(f.focus == zoneInstruction).Render(f.instruction.View()))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Segment presets"))
	b.WriteString(dimStyle.Render("  (enter appends the segment's numbers; alt+c churn, alt+r revenue)"))
	b.WriteString("\n")
	if len(f.presets) == 0 {
		b.WriteString(dimStyle.Render("  none defined in segments.yaml"))
		b.WriteString("\n")
	}
	for i, preset := range f.presets {
		b.WriteString(f.renderPresetRow(preset, f.focus == zonePresetsBase+i))
	}
	b.WriteString("\n")

	b.WriteString(f.renderSubmitRow())
	b.WriteString("\n")

	if footer := f.renderOutcome(); footer != "" {
		b.WriteString("\n")
		b.WriteString(footer)
	}

	return b.String()
}

// renderPresetRow renders one preset with a kind badge and its query
func (f *InitiateForm) renderPresetRow(preset segments.Preset, selected bool) string {
	badgeColor := f.theme.InfoColor
	switch preset.Kind {
	case segments.KindChurn:
		badgeColor = f.theme.FailedColor
	case segments.KindRevenue:
		badgeColor = f.theme.CompletedColor
	case segments.KindPrompt:
		badgeColor = f.theme.FilterColor
	}

	badgeStyle := lipgloss.NewStyle().
		Foreground(badgeColor).
		Bold(true)
	rowStyle := lipgloss.NewStyle().
		Foreground(f.theme.Foreground)
	if selected {
		rowStyle = lipgloss.NewStyle().
			Foreground(f.theme.SelectionBg).
			Reverse(true).
			Bold(true)
	}

	row := fmt.Sprintf("  %-16s %s", preset.Name, describePresetShort(preset))
	return rowStyle.Render(row) + "  " + badgeStyle.Render("["+preset.Kind+"]") + "\n"
}

// renderSubmitRow renders the dial button
func (f *InitiateForm) renderSubmitRow() string {
	label := fmt.Sprintf("  Dial %d number(s)  ", len(f.Numbers()))
	if f.submitting {
		label = "  " + f.spinner + " Dialing...  "
	}

	style := lipgloss.NewStyle().
		Foreground(f.theme.Foreground).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(f.theme.BorderColor).
		Padding(0, 1)
	if f.focus == f.submitIndex() {
		style = style.
			Foreground(f.theme.SelectionFg).
			Background(f.theme.SelectionBg).
			BorderForeground(f.theme.FocusedBorderColor).
			Bold(true)
	}

	return style.Render(label)
}

// renderOutcome renders the status line, error banner, or dial results
func (f *InitiateForm) renderOutcome() string {
	if f.errMsg != "" {
		errStyle := lipgloss.NewStyle().
			Foreground(f.theme.ErrorColor).
			Bold(true)
		return errStyle.Render("✗ " + f.errMsg)
	}

	var b strings.Builder

	if f.status != "" {
		statusStyle := lipgloss.NewStyle().
			Foreground(f.theme.SuccessColor)
		b.WriteString(statusStyle.Render("✓ " + f.status))
		b.WriteString("\n")
	}

	if f.result != nil {
		titleStyle := lipgloss.NewStyle().
			Bold(true).
			Foreground(f.theme.InfoColor)
		rowStyle := lipgloss.NewStyle().
			Foreground(f.theme.Foreground)

		b.WriteString(titleStyle.Render(fmt.Sprintf("Initiated %d call(s)", f.result.Total)))
		b.WriteString("\n")
		for _, call := range f.result.CallsInitiated {
			statusStyle := rowStyle
			switch call.Status {
			case "initiated":
				statusStyle = statusStyle.Foreground(f.theme.InitiatedColor)
			case "failed":
				statusStyle = statusStyle.Foreground(f.theme.FailedColor)
			}
			b.WriteString(rowStyle.Render(fmt.Sprintf("  %-16s %-30s ", call.PhoneNumber, call.CallID)))
			b.WriteString(statusStyle.Render(string(call.Status)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// describePresetShort condenses a preset's parameters into one cell
func describePresetShort(p segments.Preset) string {
	switch p.Kind {
	case segments.KindChurn, segments.KindRevenue:
		if p.Threshold != nil {
			return fmt.Sprintf("threshold %.2f", *p.Threshold)
		}
		return "backend default threshold"
	case segments.KindFilter:
		value := ""
		if p.Value != nil {
			value = fmt.Sprintf("%v", *p.Value)
		}
		return fmt.Sprintf("%s %s %s", p.Metric, p.Op, value)
	case segments.KindPrompt:
		return fmt.Sprintf("%q", p.Prompt)
	}
	return ""
}
