package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/paging"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/segments"
)

// handleKey routes key presses: transcript modal first, then filter input,
// then global shortcuts, then the active tab.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.transcript.IsVisible() {
		return m.handleTranscriptKeys(msg)
	}

	if m.filterMode {
		return m.handleFilterInput(msg)
	}

	switch msg.String() {
	case "ctrl+z":
		return m, tea.Suspend

	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "tab":
		m.tabs.Next()
		return m, nil

	case "shift+tab":
		m.tabs.Previous()
		return m, nil

	case "alt+1":
		m.tabs.SetActive(tabCalls)
		return m, nil

	case "alt+2":
		m.tabs.SetActive(tabDashboard)
		return m, nil

	case "alt+3":
		m.tabs.SetActive(tabInitiate)
		return m, nil

	case "alt+4":
		m.tabs.SetActive(tabHelp)
		return m, nil
	}

	switch m.tabs.GetActive() {
	case tabCalls:
		return m.handleCallsKeys(msg)
	case tabDashboard:
		return m.handleDashboardKeys(msg)
	case tabInitiate:
		return m.handleInitiateKeys(msg)
	case tabHelp:
		cmd := m.helpView.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleTranscriptKeys handles keys while the transcript modal is open
func (m Model) handleTranscriptKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "esc", "q", "t":
		m.audio.Stop()
		m.transcript.Hide()
		return m, nil

	case "p":
		if m.transcript.TogglePlay() {
			if err := m.audio.Start(m.transcript.CallID()); err != nil {
				m.transcript.TogglePlay()
				m.transcript.SetError(err.Error())
			}
		} else {
			m.audio.Stop()
		}
		return m, nil
	}

	cmd := m.transcript.Update(msg)
	return m, cmd
}

// handleFilterInput handles keys while the filter input has focus
func (m Model) handleFilterInput(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		value := m.filterInput.Value()
		m.filterMode = false
		m.filterInput.Deactivate()

		if value == "" {
			// Submitting an empty filter clears the active one
			if !m.filter.Empty() {
				return m.clearFilter()
			}
			return m, nil
		}

		m.filterInput.AddToHistory(value)
		m.filter = parseFilter(value)
		desc := m.filter.Describe()
		m.filterInput.SetActiveFilter(desc)
		m.callsView.SetFilterDesc(desc)
		return m.changePage(1)

	case "esc":
		m.filterMode = false
		m.filterInput.Deactivate()
		return m, nil

	case "up":
		m.filterInput.HistoryUp()
	case "down":
		m.filterInput.HistoryDown()
	case "left":
		m.filterInput.CursorLeft()
	case "right":
		m.filterInput.CursorRight()
	case "home", "ctrl+a":
		m.filterInput.CursorHome()
	case "end", "ctrl+e":
		m.filterInput.CursorEnd()
	case "backspace":
		m.filterInput.Backspace()
	case "delete":
		m.filterInput.Delete()
	case " ":
		m.filterInput.InsertRune(' ')
	default:
		if msg.Type == tea.KeyRunes {
			for _, r := range msg.Runes {
				m.filterInput.InsertRune(r)
			}
		}
	}

	return m, nil
}

// handleCallsKeys handles keys on the calls tab
func (m Model) handleCallsKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "/":
		m.filterMode = true
		m.filterInput.Activate()
		m.filterInput.Clear()
		return m, nil

	case "c":
		if !m.filter.Empty() {
			return m.clearFilter()
		}
		return m, nil

	case "r":
		return m.changePage(m.page)

	case "[", "left":
		if m.page > 1 {
			return m.changePage(m.page - 1)
		}
		return m, nil

	case "]", "right":
		if m.page < paging.TotalPages(m.total, m.pageSize) {
			return m.changePage(m.page + 1)
		}
		return m, nil

	case "up", "k":
		m.callsView.SelectPrevious()
		return m, nil

	case "down", "j":
		m.callsView.SelectNext()
		return m, nil

	case "home":
		m.callsView.SelectFirst()
		return m, nil

	case "end", "G":
		m.callsView.SelectLast()
		return m, nil

	case "g":
		// Vim-style gg: jump to the first row on a double press
		now := time.Now()
		if m.lastKeyPress == "g" && now.Sub(m.lastKeyPressTime) < 500*time.Millisecond {
			m.callsView.SelectFirst()
			m.lastKeyPress = ""
			return m, nil
		}
		m.lastKeyPress = "g"
		m.lastKeyPressTime = now
		return m, nil

	case "enter", "i":
		selected := m.callsView.GetSelected()
		if selected == nil {
			return m, nil
		}
		m.insightsPanel.SetCall(selected)
		m.insightsPanel.SetLoading(true)
		return m, m.fetchInsights(selected.CallID)

	case "a":
		selected := m.callsView.GetSelected()
		if selected == nil {
			return m, nil
		}
		m.insightsPanel.SetCall(selected)
		m.insightsPanel.SetLoading(true)
		return m, m.triggerAnalyze(selected.CallID)

	case "t":
		selected := m.callsView.GetSelected()
		if selected == nil {
			return m, nil
		}
		m.transcript.Show(selected)
		return m, m.pollTranscript(selected.CallID)
	}

	return m, nil
}

// handleDashboardKeys handles keys on the dashboard tab
func (m Model) handleDashboardKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "r":
		m.summaryLoading = true
		m.windowLoading = true
		m.summaryView.SetSummaryLoading(true)
		m.summaryView.SetWindowLoading(true)
		return m, tea.Batch(m.fetchSummary(), m.fetchRecentWindow())
	}

	cmd := m.summaryView.Update(msg)
	return m, cmd
}

// handleInitiateKeys handles keys on the initiate tab when no field is
// being edited; editing passthrough lives in Update.
func (m Model) handleInitiateKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		return m.handleSubmit()

	case "alt+c":
		return m.fetchQuickSegment(segments.KindChurn)

	case "alt+r":
		return m.fetchQuickSegment(segments.KindRevenue)
	}

	cmd := m.initiateForm.Update(msg)
	return m, cmd
}

// clearFilter drops the active filter and reloads page one
func (m Model) clearFilter() (Model, tea.Cmd) {
	m.filter = filterSpec{}
	m.filterInput.SetActiveFilter("")
	m.callsView.SetFilterDesc("")
	return m.changePage(1)
}

// changePage moves the calls list to page, dropping the row selection and
// the insights panel along the way.
func (m Model) changePage(page int) (Model, tea.Cmd) {
	m.page = page
	m.fetchSeq++
	m.callsLoading = true
	m.callsView.SetLoading(true)
	m.insightsPanel.SetCall(nil)
	return m, m.fetchCallsPage(m.fetchSeq, page)
}
