package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thesixpathguy/VoiceWise-sub001/cmd/tui/components"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/paging"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/segments"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/stats"
)

// Layout constants shared by sizing and rendering
const (
	headerHeight = 2
	tabsHeight   = 4
	bottomHeight = 4

	// minWidthForInsights is the terminal width below which the insights
	// panel folds away and the calls table takes the full width.
	minWidthForInsights = 130
	insightsPanelWidth  = 48
)

// handleWindowSize resizes every component for the new terminal size
func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	m.header.SetWidth(msg.Width)
	m.footer.SetWidth(msg.Width)
	m.tabs.SetWidth(msg.Width)
	m.filterInput.SetWidth(msg.Width)

	contentHeight := msg.Height - headerHeight - tabsHeight - bottomHeight

	if msg.Width >= minWidthForInsights {
		m.callsView.SetSize(msg.Width-insightsPanelWidth, contentHeight)
		m.insightsPanel.SetSize(insightsPanelWidth, contentHeight)
	} else {
		m.callsView.SetSize(msg.Width, contentHeight)
		m.insightsPanel.SetSize(0, contentHeight)
	}

	m.summaryView.SetSize(msg.Width, contentHeight)
	m.initiateForm.SetSize(msg.Width, contentHeight)
	m.helpView.SetSize(msg.Width, contentHeight)
	m.transcript.SetSize(msg.Width, msg.Height)

	return m, nil
}

// handleTick re-arms the tick and keeps the open transcript fresh
func (m Model) handleTick() (Model, tea.Cmd) {
	if m.transcript.IsVisible() {
		if callID := m.transcript.CallID(); callID != "" {
			return m, tea.Batch(tickCmd(m.refreshEvery), m.pollTranscript(callID))
		}
	}
	return m, tickCmd(m.refreshEvery)
}

// handleCallsPage applies a fetched page to the calls view. Responses from
// superseded fetches are dropped so a slow page cannot overwrite a newer one.
func (m Model) handleCallsPage(msg CallsPageMsg) (Model, tea.Cmd) {
	if msg.Seq != m.fetchSeq {
		return m, nil
	}
	m.callsLoading = false

	if msg.Err != nil {
		m.lastErr = msg.Err.Error()
		m.callsView.SetError(msg.Err.Error())
		return m, nil
	}
	m.lastErr = ""

	// A page past the end of a shrunken listing comes back empty; step
	// back instead of stranding the operator on a blank page.
	if len(msg.Calls) == 0 && msg.Page > 1 {
		return m.changePage(msg.Page - 1)
	}

	pager := paging.New(msg.Page, m.pageSize)
	m.total = paging.EstimateTotal(pager.Skip(), len(msg.Calls), pager.Limit(), msg.Total, msg.TotalKnown)
	m.totalKnown = msg.TotalKnown

	m.callsView.SetCalls(msg.Calls)
	m.callsView.SetPage(msg.Page, paging.TotalPages(m.total, m.pageSize), m.total, m.totalKnown)
	return m, nil
}

// handleInsights applies fetched insights if the panel still shows the call
func (m Model) handleInsights(msg InsightsMsg) (Model, tea.Cmd) {
	current := m.insightsPanel.Call()
	if current == nil || current.CallID != msg.CallID {
		return m, nil
	}

	if msg.Err != nil {
		m.insightsPanel.SetError(msg.Err.Error())
		return m, nil
	}
	m.insightsPanel.SetInsights(msg.Insights)
	return m, nil
}

// handleAnalyzeDone reacts to a triggered analysis. A synchronous backend
// returns the insights inline; otherwise they are fetched right after.
func (m Model) handleAnalyzeDone(msg AnalyzeDoneMsg) (Model, tea.Cmd) {
	current := m.insightsPanel.Call()
	if current == nil || current.CallID != msg.CallID {
		return m, nil
	}

	if msg.Err != nil {
		m.insightsPanel.SetError(msg.Err.Error())
		return m, nil
	}
	if msg.Insights != nil {
		m.insightsPanel.SetInsights(msg.Insights)
		return m, nil
	}

	m.insightsPanel.SetLoading(true)
	return m, m.fetchInsights(msg.CallID)
}

// handleSummary applies the backend's dashboard aggregate
func (m Model) handleSummary(msg SummaryMsg) (Model, tea.Cmd) {
	m.summaryLoading = false
	if msg.Err != nil {
		m.summaryView.SetSummaryError(msg.Err.Error())
		return m, nil
	}
	m.summaryView.SetSummary(msg.Summary)
	return m, nil
}

// handleRecentWindow computes the client-side dashboard metrics
func (m Model) handleRecentWindow(msg RecentWindowMsg) (Model, tea.Cmd) {
	m.windowLoading = false
	if msg.Err != nil {
		m.summaryView.SetWindowError(msg.Err.Error())
		return m, nil
	}

	pickup := stats.Pickup(msg.Calls)
	volume := stats.DailyVolume(msg.Calls, recentWindowDays, time.Now())
	m.summaryView.SetWindow(pickup, volume, recentWindowDays)
	return m, nil
}

// handleInitiateDone applies the outcome of a dial batch
func (m Model) handleInitiateDone(msg InitiateDoneMsg) (Model, tea.Cmd) {
	if msg.Err != nil {
		m.initiateForm.SetError(msg.Err.Error())
		return m, nil
	}

	// Inputs clear on success so the next batch starts fresh; the result
	// stays on screen.
	m.initiateForm.SetResult(msg.Result)
	m.initiateForm.ClearInputs()
	return m, nil
}

// handleSegment appends fetched segment members to the number editor
func (m Model) handleSegment(msg SegmentMsg) (Model, tea.Cmd) {
	if msg.Err != nil {
		m.initiateForm.SetError(fmt.Sprintf("%s segment: %s", msg.Label, msg.Err.Error()))
		return m, nil
	}

	if len(msg.Numbers) == 0 {
		m.initiateForm.SetStatus(fmt.Sprintf("The %s segment is empty", msg.Label))
		return m, nil
	}

	added := m.initiateForm.AppendNumbers(msg.Numbers)
	m.initiateForm.SetStatus(fmt.Sprintf("Appended %d number(s) from the %s segment", added, msg.Label))
	return m, nil
}

// handleTranscript applies a re-fetched call if the modal still shows it
func (m Model) handleTranscript(msg TranscriptMsg) (Model, tea.Cmd) {
	if !m.transcript.IsVisible() || m.transcript.CallID() != msg.CallID {
		return m, nil
	}

	if msg.Err != nil {
		m.transcript.SetError(msg.Err.Error())
		return m, nil
	}
	m.transcript.SetCall(msg.Call)
	return m, nil
}

// handlePresetsLoaded installs reloaded segment presets and re-arms the wait
func (m Model) handlePresetsLoaded(msg PresetsLoadedMsg) (Model, tea.Cmd) {
	m.initiateForm.SetPresets(msg.Presets)
	if m.presetCh == nil {
		return m, nil
	}
	return m, waitForPresets(m.presetCh)
}

// handleApplyPreset fetches the segment behind a preset row
func (m Model) handleApplyPreset(msg components.ApplyPresetMsg) (Model, tea.Cmd) {
	m.initiateForm.SetStatus(fmt.Sprintf("Fetching the %s segment...", msg.Preset.Name))
	return m, m.fetchPresetCmd(msg.Preset)
}

// handleSubmit validates and dispatches the dial batch
func (m Model) handleSubmit() (Model, tea.Cmd) {
	if m.initiateForm.Submitting() {
		return m, nil
	}

	numbers := m.initiateForm.Numbers()
	if len(numbers) == 0 {
		m.initiateForm.SetError("Add at least one phone number first")
		return m, nil
	}

	instruction := m.initiateForm.Instruction()
	m.initiateForm.SetSubmitting(true)
	return m, m.submitInitiate(numbers, instruction)
}

// fetchQuickSegment handles the alt+c / alt+r segment shortcuts
func (m Model) fetchQuickSegment(kind string) (Model, tea.Cmd) {
	label := "churn-risk"
	if kind == segments.KindRevenue {
		label = "revenue-interest"
	}
	m.initiateForm.SetStatus(fmt.Sprintf("Fetching the %s segment...", label))
	return m, m.fetchSegmentCmd(kind, label)
}
