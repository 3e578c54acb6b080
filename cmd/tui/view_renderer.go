package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/thesixpathguy/VoiceWise-sub001/cmd/tui/components"
)

// View renders the entire TUI based on current state
func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	// Push current state into header and footer
	switch {
	case m.anyLoading():
		m.header.SetPhase(components.PhaseLoading)
	case m.lastErr != "":
		m.header.SetPhase(components.PhaseError)
	default:
		m.header.SetPhase(components.PhaseReady)
	}
	m.header.SetTotal(m.total, m.totalKnown)

	m.footer.SetTab(m.tabs.GetActive())
	m.footer.SetFilterMode(m.filterMode)
	m.footer.SetHasFilter(!m.filter.Empty())
	m.footer.SetEditing(m.tabs.GetActive() == tabInitiate && m.initiateForm.Editing())

	headerView := m.header.View()
	tabsView := m.tabs.View()
	footerView := m.footer.View()

	var mainContent string
	switch m.tabs.GetActive() {
	case tabCalls:
		mainContent = m.renderCallsTab()
	case tabDashboard:
		mainContent = m.summaryView.View()
	case tabInitiate:
		mainContent = m.initiateForm.View()
	case tabHelp:
		mainContent = m.helpView.View()
	}

	mainView := lipgloss.JoinVertical(lipgloss.Left, headerView, tabsView, mainContent)
	bottomArea := m.renderBottomArea(footerView)
	fullView := lipgloss.JoinVertical(lipgloss.Left, mainView, bottomArea)

	if m.transcript.IsVisible() {
		return m.transcript.View(fullView)
	}
	return fullView
}

// renderCallsTab renders the calls table, with the insights panel beside
// it when the terminal is wide enough.
func (m Model) renderCallsTab() string {
	if m.width >= minWidthForInsights {
		return lipgloss.JoinHorizontal(lipgloss.Top, m.callsView.View(), m.insightsPanel.View())
	}
	return m.callsView.View()
}

// renderBottomArea keeps the footer pinned while the filter input, when
// focused, takes the three lines above it.
func (m Model) renderBottomArea(footerView string) string {
	if m.filterMode {
		return m.filterInput.View() + "\n" + footerView
	}
	return "\n\n\n" + footerView
}
