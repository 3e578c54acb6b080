package tui

import (
	"errors"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/api"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/segments"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/types"
)

func testModel(t *testing.T) Model {
	t.Helper()
	client, err := api.New(api.Config{BaseURL: "http://localhost:1"})
	require.NoError(t, err)

	m := NewModel(client, nil)
	m, _ = m.handleWindowSize(tea.WindowSizeMsg{Width: 160, Height: 48})
	return m
}

func fakeCalls(n int) []types.Call {
	calls := make([]types.Call, n)
	for i := range calls {
		calls[i] = types.Call{
			CallID:      fmt.Sprintf("c-%d", i),
			PhoneNumber: fmt.Sprintf("+1555000%04d", i),
			Status:      types.StatusCompleted,
			CreatedAt:   types.Timestamp{Time: time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)},
		}
	}
	return calls
}

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// TestHandleCallsPageDropsStaleResponse verifies that a page from a
// superseded fetch cannot overwrite the one currently loading.
func TestHandleCallsPageDropsStaleResponse(t *testing.T) {
	m := testModel(t)
	m.fetchSeq = 2

	m2, cmd := m.handleCallsPage(CallsPageMsg{Seq: 1, Page: 1, Calls: fakeCalls(3), Total: 3, TotalKnown: true})

	assert.Nil(t, cmd)
	assert.Equal(t, 0, m2.callsView.Count())
	assert.Equal(t, 0, m2.total)
	assert.True(t, m2.callsLoading, "a stale page must not clear the loading state")
}

func TestHandleCallsPageAppliesReportedTotal(t *testing.T) {
	m := testModel(t)

	m2, cmd := m.handleCallsPage(CallsPageMsg{Seq: 0, Page: 1, Calls: fakeCalls(10), Total: 37, TotalKnown: true})

	assert.Nil(t, cmd)
	assert.False(t, m2.callsLoading)
	assert.Equal(t, 37, m2.total)
	assert.True(t, m2.totalKnown)
	assert.Equal(t, 10, m2.callsView.Count())
}

// TestHandleCallsPageEstimatesTotal covers listings whose responses carry
// no total: a full page implies at least one more record, a short page
// pins the exact count.
func TestHandleCallsPageEstimatesTotal(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		returned  int
		wantTotal int
	}{
		{name: "full first page", page: 1, returned: 10, wantTotal: 11},
		{name: "short second page", page: 2, returned: 4, wantTotal: 14},
		{name: "empty first page", page: 1, returned: 0, wantTotal: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testModel(t)
			m.page = tt.page

			m2, _ := m.handleCallsPage(CallsPageMsg{Seq: 0, Page: tt.page, Calls: fakeCalls(tt.returned)})

			assert.Equal(t, tt.wantTotal, m2.total)
			assert.False(t, m2.totalKnown)
		})
	}
}

// TestHandleCallsPageEmptyPageStepsBack verifies the snap-back when a
// listing shrinks under the operator and the current page vanishes.
func TestHandleCallsPageEmptyPageStepsBack(t *testing.T) {
	m := testModel(t)
	m.page = 3

	m2, cmd := m.handleCallsPage(CallsPageMsg{Seq: 0, Page: 3})

	require.NotNil(t, cmd)
	assert.Equal(t, 2, m2.page)
	assert.Equal(t, 1, m2.fetchSeq)
	assert.True(t, m2.callsLoading)
}

func TestHandleCallsPageError(t *testing.T) {
	m := testModel(t)

	m2, cmd := m.handleCallsPage(CallsPageMsg{Seq: 0, Page: 1, Err: errors.New("backend down")})

	assert.Nil(t, cmd)
	assert.False(t, m2.callsLoading)
	assert.Equal(t, "backend down", m2.lastErr)
}

func TestChangePageDropsInsightsPanel(t *testing.T) {
	m := testModel(t)
	calls := fakeCalls(3)
	m.callsView.SetCalls(calls)
	m.insightsPanel.SetCall(&calls[0])

	m2, cmd := m.changePage(2)

	require.NotNil(t, cmd)
	assert.Equal(t, 2, m2.page)
	assert.Nil(t, m2.insightsPanel.Call())
	assert.True(t, m2.callsLoading)
	assert.Equal(t, 1, m2.fetchSeq)
}

func TestHandleInsightsIgnoresSupersededCall(t *testing.T) {
	m := testModel(t)
	calls := fakeCalls(2)
	m.insightsPanel.SetCall(&calls[0])

	m2, cmd := m.handleInsights(InsightsMsg{
		CallID:   calls[1].CallID,
		Insights: &types.Insights{CallID: calls[1].CallID, Sentiment: types.SentimentPositive},
	})

	assert.Nil(t, cmd)
	require.NotNil(t, m2.insightsPanel.Call())
	assert.Equal(t, calls[0].CallID, m2.insightsPanel.Call().CallID)
}

func TestHandleInsightsWithoutSelection(t *testing.T) {
	m := testModel(t)
	_, cmd := m.handleInsights(InsightsMsg{CallID: "c-0"})
	assert.Nil(t, cmd)
}

// TestHandleAnalyzeDoneChainsFetch verifies that an analysis acknowledged
// without inline insights triggers a follow-up insights fetch.
func TestHandleAnalyzeDoneChainsFetch(t *testing.T) {
	m := testModel(t)
	calls := fakeCalls(1)
	m.insightsPanel.SetCall(&calls[0])

	_, cmd := m.handleAnalyzeDone(AnalyzeDoneMsg{CallID: calls[0].CallID})
	assert.NotNil(t, cmd)

	inline := &types.Insights{CallID: calls[0].CallID, Sentiment: types.SentimentNeutral}
	_, cmd = m.handleAnalyzeDone(AnalyzeDoneMsg{CallID: calls[0].CallID, Insights: inline})
	assert.Nil(t, cmd)
}

func TestHandleSubmitRequiresNumbers(t *testing.T) {
	m := testModel(t)

	m2, cmd := m.handleSubmit()

	assert.Nil(t, cmd)
	assert.False(t, m2.initiateForm.Submitting())
}

func TestHandleSubmitDispatchesBatch(t *testing.T) {
	m := testModel(t)
	m.initiateForm.AppendNumbers([]string{"+15551234567"})

	m2, cmd := m.handleSubmit()

	assert.NotNil(t, cmd)
	assert.True(t, m2.initiateForm.Submitting())

	// A second submit while one is in flight is ignored
	_, cmd = m2.handleSubmit()
	assert.Nil(t, cmd)
}

// TestHandleSegmentAppendsWithoutDeduplicating verifies that segment
// fetches grow the number editor and never rewrite what is already there,
// repeats included.
func TestHandleSegmentAppendsWithoutDeduplicating(t *testing.T) {
	m := testModel(t)

	m2, _ := m.handleSegment(SegmentMsg{Label: "churn-risk", Numbers: []string{"+15550001", "+15550002"}})
	assert.Equal(t, []string{"+15550001", "+15550002"}, m2.initiateForm.Numbers())

	m3, _ := m2.handleSegment(SegmentMsg{Label: "revenue-interest", Numbers: []string{"+15550002", "+15550003"}})
	assert.Equal(t, []string{"+15550001", "+15550002", "+15550002", "+15550003"}, m3.initiateForm.Numbers())
}

func TestHandleSegmentEmptyAndError(t *testing.T) {
	m := testModel(t)

	m2, cmd := m.handleSegment(SegmentMsg{Label: "churn-risk"})
	assert.Nil(t, cmd)
	assert.Empty(t, m2.initiateForm.Numbers())

	m2, cmd = m.handleSegment(SegmentMsg{Label: "churn-risk", Err: errors.New("backend down")})
	assert.Nil(t, cmd)
	assert.Empty(t, m2.initiateForm.Numbers())
}

func TestHandleInitiateDoneClearsInputs(t *testing.T) {
	m := testModel(t)
	m.initiateForm.AppendNumbers([]string{"+15551234567"})
	m.initiateForm.SetSubmitting(true)

	m2, cmd := m.handleInitiateDone(InitiateDoneMsg{Result: &api.InitiateResult{Total: 1}})

	assert.Nil(t, cmd)
	assert.False(t, m2.initiateForm.Submitting())
	assert.Empty(t, m2.initiateForm.Numbers())
}

func TestHandleInitiateDoneKeepsInputsOnError(t *testing.T) {
	m := testModel(t)
	m.initiateForm.AppendNumbers([]string{"+15551234567"})
	m.initiateForm.SetSubmitting(true)

	m2, _ := m.handleInitiateDone(InitiateDoneMsg{Err: errors.New("provider rejected the batch")})

	assert.False(t, m2.initiateForm.Submitting())
	assert.Equal(t, []string{"+15551234567"}, m2.initiateForm.Numbers())
}

func TestHandleTranscriptIgnoresMismatchedCall(t *testing.T) {
	m := testModel(t)
	calls := fakeCalls(2)
	m.transcript.Show(&calls[0])

	m2, cmd := m.handleTranscript(TranscriptMsg{CallID: calls[1].CallID, Call: &calls[1]})

	assert.Nil(t, cmd)
	assert.Equal(t, calls[0].CallID, m2.transcript.CallID())
}

func TestHandleTranscriptIgnoredWhenClosed(t *testing.T) {
	m := testModel(t)
	_, cmd := m.handleTranscript(TranscriptMsg{CallID: "c-0", Call: &types.Call{CallID: "c-0"}})
	assert.Nil(t, cmd)
}

func TestHandlePresetsLoadedRearmsWait(t *testing.T) {
	client, err := api.New(api.Config{BaseURL: "http://localhost:1"})
	require.NoError(t, err)

	ch := make(chan []segments.Preset, 1)
	m := NewModel(client, ch)
	_, cmd := m.handlePresetsLoaded(PresetsLoadedMsg{Presets: []segments.Preset{{Name: "lapsed", Kind: segments.KindChurn}}})
	assert.NotNil(t, cmd)

	noCh := NewModel(client, nil)
	_, cmd = noCh.handlePresetsLoaded(PresetsLoadedMsg{})
	assert.Nil(t, cmd)
}

func TestTabNavigationKeys(t *testing.T) {
	m := testModel(t)

	m2, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, tabDashboard, m2.tabs.GetActive())

	m2, _ = m2.handleKey(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, tabCalls, m2.tabs.GetActive())

	m2, _ = m2.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}, Alt: true})
	assert.Equal(t, tabInitiate, m2.tabs.GetActive())
}

func TestQuitKey(t *testing.T) {
	m := testModel(t)

	m2, cmd := m.handleKey(keyRunes('q'))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.True(t, m2.quitting)
	assert.Equal(t, "Goodbye!\n", m2.View())
}

// TestFilterFlow walks the filter lifecycle: open with /, type a token,
// apply with enter, then clear with an empty submit.
func TestFilterFlow(t *testing.T) {
	m := testModel(t)

	m2, _ := m.handleKey(keyRunes('/'))
	assert.True(t, m2.filterMode)

	m2, _ = m2.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("status:completed")})
	m2, cmd := m2.handleKey(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.False(t, m2.filterMode)
	assert.Equal(t, "completed", m2.filter.Status)
	assert.Equal(t, 1, m2.page)

	// An empty submit clears the active filter and reloads
	m3, _ := m2.handleKey(keyRunes('/'))
	m3, cmd = m3.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m3.filter.Empty())
}

func TestFilterEscCancelsWithoutClearing(t *testing.T) {
	m := testModel(t)
	m.filter = filterSpec{Status: "completed"}

	m2, _ := m.handleKey(keyRunes('/'))
	m2, cmd := m2.handleKey(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Nil(t, cmd)
	assert.False(t, m2.filterMode)
	assert.Equal(t, "completed", m2.filter.Status)
}

func TestPageNavigationKeys(t *testing.T) {
	m := testModel(t)
	m.total = 25
	m.totalKnown = true

	m2, cmd := m.handleKey(keyRunes(']'))
	require.NotNil(t, cmd)
	assert.Equal(t, 2, m2.page)

	m3, _ := m2.handleKey(keyRunes(']'))
	assert.Equal(t, 3, m3.page)

	// Past the last page, forward is a no-op
	m4, cmd := m3.handleKey(keyRunes(']'))
	assert.Nil(t, cmd)
	assert.Equal(t, 3, m4.page)

	m5, cmd := m4.handleKey(keyRunes('['))
	require.NotNil(t, cmd)
	assert.Equal(t, 2, m5.page)
}

func TestBackwardPagingStopsAtFirstPage(t *testing.T) {
	m := testModel(t)
	_, cmd := m.handleKey(keyRunes('['))
	assert.Nil(t, cmd)
}

func TestGgJumpsToFirstRow(t *testing.T) {
	m := testModel(t)
	m.callsView.SetCalls(fakeCalls(5))
	m.callsView.SelectLast()

	m2, _ := m.handleKey(keyRunes('g'))
	require.NotNil(t, m2.callsView.GetSelected())
	assert.Equal(t, "c-4", m2.callsView.GetSelected().CallID)

	m3, _ := m2.handleKey(keyRunes('g'))
	assert.Equal(t, "c-0", m3.callsView.GetSelected().CallID)
}

func TestEnterOpensInsightsForSelection(t *testing.T) {
	m := testModel(t)
	m.callsView.SetCalls(fakeCalls(3))

	m2, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	require.NotNil(t, m2.insightsPanel.Call())
	assert.Equal(t, "c-0", m2.insightsPanel.Call().CallID)
}

func TestTranscriptKeyOpensModal(t *testing.T) {
	m := testModel(t)
	m.callsView.SetCalls(fakeCalls(3))

	m2, cmd := m.handleKey(keyRunes('t'))

	require.NotNil(t, cmd)
	assert.True(t, m2.transcript.IsVisible())
	assert.Equal(t, "c-0", m2.transcript.CallID())

	// t again closes it
	m3, _ := m2.handleKey(keyRunes('t'))
	assert.False(t, m3.transcript.IsVisible())
}

func TestHandleSummaryAndWindowClearLoading(t *testing.T) {
	m := testModel(t)

	m2, cmd := m.handleSummary(SummaryMsg{Summary: &types.DashboardSummary{}})
	assert.Nil(t, cmd)
	assert.False(t, m2.summaryLoading)

	m3, cmd := m2.handleRecentWindow(RecentWindowMsg{Calls: fakeCalls(4)})
	assert.Nil(t, cmd)
	assert.False(t, m3.windowLoading)
}
