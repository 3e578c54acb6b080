package components

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/thesixpathguy/VoiceWise-sub001/cmd/tui/themes"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/types"
)

// TranscriptModal overlays the running transcript of one call. While it is
// open the model keeps polling the call so the text grows in place.
type TranscriptModal struct {
	call     *types.Call
	viewport viewport.Model
	ready    bool
	visible  bool
	playing  bool
	width    int
	height   int
	theme    themes.Theme
	errMsg   string
}

// NewTranscriptModal creates a new transcript modal
func NewTranscriptModal() TranscriptModal {
	return TranscriptModal{
		width:  80,
		height: 24,
		theme:  themes.Solarized(),
	}
}

// SetTheme updates the theme
func (m *TranscriptModal) SetTheme(theme themes.Theme) {
	m.theme = theme
}

// SetSize sets the terminal size
func (m *TranscriptModal) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.resizeViewport()
}

func (m *TranscriptModal) modalDims() (int, int) {
	modalWidth := m.width * 6 / 10
	modalHeight := m.height * 7 / 10
	if modalWidth < 40 {
		modalWidth = 40
	}
	if modalHeight < 10 {
		modalHeight = 10
	}
	return modalWidth, modalHeight
}

func (m *TranscriptModal) resizeViewport() {
	modalWidth, modalHeight := m.modalDims()
	vpWidth := modalWidth - 8
	vpHeight := modalHeight - 9
	if vpWidth < 1 {
		vpWidth = 1
	}
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.viewport = viewport.New(vpWidth, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = vpWidth
		m.viewport.Height = vpHeight
	}
}

// Show opens the modal for a call
func (m *TranscriptModal) Show(call *types.Call) {
	m.call = call
	m.visible = true
	m.playing = false
	m.errMsg = ""
	m.resizeViewport()
	m.viewport.SetContent(m.transcriptText())
	m.viewport.GotoBottom()
}

// Hide closes the modal
func (m *TranscriptModal) Hide() {
	m.visible = false
	m.playing = false
}

// IsVisible returns whether the modal is visible
func (m *TranscriptModal) IsVisible() bool {
	return m.visible
}

// CallID returns the id of the call being shown, or "" when closed
func (m *TranscriptModal) CallID() string {
	if m.call == nil {
		return ""
	}
	return m.call.CallID
}

// SetCall replaces the call with a fresh poll result. The view keeps
// following the tail unless the user has scrolled up.
func (m *TranscriptModal) SetCall(call *types.Call) {
	if call == nil {
		return
	}
	wasAtBottom := m.viewport.AtBottom()
	m.call = call
	m.errMsg = ""
	if m.ready {
		m.viewport.SetContent(m.transcriptText())
		if wasAtBottom {
			m.viewport.GotoBottom()
		}
	}
}

// SetError records a poll failure shown inside the modal
func (m *TranscriptModal) SetError(msg string) {
	m.errMsg = msg
}

// TogglePlay flips the audio indicator and reports the new state
func (m *TranscriptModal) TogglePlay() bool {
	m.playing = !m.playing
	return m.playing
}

// Playing reports whether audio streaming is toggled on
func (m *TranscriptModal) Playing() bool {
	return m.playing
}

// Update handles viewport messages for scrolling
func (m *TranscriptModal) Update(msg tea.Msg) tea.Cmd {
	if !m.ready {
		return nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

func (m *TranscriptModal) transcriptText() string {
	if m.call == nil {
		return ""
	}
	if text := m.call.Transcript(); text != "" {
		return text
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true).
		Render("No transcript yet. The call may still be ringing.")
}

// View renders the modal as an overlay
func (m *TranscriptModal) View(underlayContent string) string {
	if !m.visible || m.call == nil {
		return underlayContent
	}

	modalWidth, modalHeight := m.modalDims()

	overlayStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240"))
	dimmedUnderlay := overlayStyle.Render(underlayContent)

	modalStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.InfoColor).
		Background(m.theme.Background).
		Foreground(m.theme.Foreground).
		Width(modalWidth - 4).
		Height(modalHeight - 4).
		Padding(1, 2)

	titleStyle := lipgloss.NewStyle().
		Background(m.theme.InfoColor).
		Foreground(m.theme.SelectionFg).
		Bold(true).
		Padding(0, 2).
		Width(modalWidth - 4)

	title := titleStyle.Render("Transcript — " + m.call.PhoneNumber)

	// Live indicator: initiated calls are still in flight, the transcript
	// may still be growing.
	var liveText string
	liveStyle := lipgloss.NewStyle()
	if m.call.Status.Terminal() {
		liveText = string(m.call.Status)
		liveStyle = liveStyle.Foreground(lipgloss.Color("240"))
	} else {
		liveText = "● live"
		liveStyle = liveStyle.Foreground(m.theme.SuccessColor).Bold(true)
	}

	var audioText string
	audioStyle := lipgloss.NewStyle()
	if m.playing {
		audioText = "▶ audio streaming"
		audioStyle = audioStyle.Foreground(m.theme.SuccessColor)
	} else {
		audioText = "⏸ audio off"
		audioStyle = audioStyle.Foreground(lipgloss.Color("240"))
	}

	statusLine := liveStyle.Render(liveText) + "   " + audioStyle.Render(audioText)
	if m.errMsg != "" {
		errStyle := lipgloss.NewStyle().
			Foreground(m.theme.ErrorColor).
			Bold(true)
		statusLine += "   " + errStyle.Render("✗ "+m.errMsg)
	}

	closeHint := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Align(lipgloss.Center).
		MarginTop(1).
		Render("p: play/pause · ↑↓: scroll · Esc or q: close")

	modalContent := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		statusLine,
		"",
		m.viewport.View(),
		closeHint,
	)

	modal := modalStyle.Render(modalContent)

	centeredModal := lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
	)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Left,
		lipgloss.Top,
		dimmedUnderlay+"\n"+centeredModal,
	)
}
