package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handleMouse processes mouse events: wheel scrolls whatever the active
// tab shows, left clicks switch tabs or select a calls row.
func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.transcript.IsVisible() {
		switch msg.Button {
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
			cmd := m.transcript.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelUp {
		switch m.tabs.GetActive() {
		case tabCalls:
			m.callsView.SelectPrevious()
		case tabDashboard:
			cmd := m.summaryView.Update(tea.KeyMsg{Type: tea.KeyUp})
			return m, cmd
		case tabHelp:
			cmd := m.helpView.Update(tea.KeyMsg{Type: tea.KeyUp})
			return m, cmd
		}
		return m, nil
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelDown {
		switch m.tabs.GetActive() {
		case tabCalls:
			m.callsView.SelectNext()
		case tabDashboard:
			cmd := m.summaryView.Update(tea.KeyMsg{Type: tea.KeyDown})
			return m, cmd
		case tabHelp:
			cmd := m.helpView.Update(tea.KeyMsg{Type: tea.KeyDown})
			return m, cmd
		}
		return m, nil
	}

	if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionPress {
		return m, nil
	}

	// Tab bar sits below the header; its clickable rows are Y=2-4
	if msg.Y >= headerHeight && msg.Y < headerHeight+tabsHeight-1 {
		if clicked := m.tabs.GetTabAtX(msg.X); clicked >= 0 {
			m.tabs.SetActive(clicked)
		}
		return m, nil
	}

	// Row selection in the calls table
	if m.tabs.GetActive() == tabCalls {
		contentStartY := headerHeight + tabsHeight
		if msg.Y < contentStartY {
			return m, nil
		}
		adjusted := msg
		adjusted.Y = msg.Y - contentStartY
		cmd := m.callsView.Update(adjusted)
		return m, cmd
	}

	return m, nil
}
