package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"

	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/api"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/paging"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/segments"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/types"
)

// Request timeouts ride on the api.Client; commands use a background
// context and let the client cancel slow calls.

// fetchCallsPage fetches one page of the calls list, routed through the
// search endpoint when the active filter carries free text.
func (m Model) fetchCallsPage(seq, page int) tea.Cmd {
	client := m.client
	filter := m.filter
	pager := paging.New(page, m.pageSize)

	return func() tea.Msg {
		if filter.Query != "" {
			result, err := client.SearchCalls(context.Background(), api.SearchQuery{
				Query:      filter.Query,
				SearchType: api.SearchTypeNLP,
				Limit:      pager.Limit(),
				Skip:       pager.Skip(),
			})
			if err != nil {
				return CallsPageMsg{Seq: seq, Page: page, Err: err}
			}
			// A reported count larger than the page can only be a
			// collection total; a count equal to the page proves nothing.
			totalKnown := result.TotalResults > len(result.Calls)
			return CallsPageMsg{
				Seq:        seq,
				Page:       page,
				Calls:      result.Calls,
				Total:      result.TotalResults,
				TotalKnown: totalKnown,
			}
		}

		callPage, err := client.ListCalls(context.Background(), api.ListFilter{
			Status:    filter.Status,
			Sentiment: filter.Sentiment,
			Limit:     pager.Limit(),
			Skip:      pager.Skip(),
		})
		if err != nil {
			return CallsPageMsg{Seq: seq, Page: page, Err: err}
		}
		return CallsPageMsg{
			Seq:        seq,
			Page:       page,
			Calls:      callPage.Calls,
			Total:      callPage.Total,
			TotalKnown: callPage.TotalKnown,
		}
	}
}

// fetchInsights loads the insights for one call. A 404 means the call has
// not been analyzed yet and is not an error.
func (m Model) fetchInsights(callID string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		insights, err := client.GetCallInsights(context.Background(), callID)
		if err != nil {
			if api.IsNotFound(err) {
				return InsightsMsg{CallID: callID}
			}
			return InsightsMsg{CallID: callID, Err: err}
		}
		return InsightsMsg{CallID: callID, Insights: insights}
	}
}

// triggerAnalyze asks the backend to (re)analyze a call's transcript
func (m Model) triggerAnalyze(callID string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		result, err := client.AnalyzeCall(context.Background(), callID)
		if err != nil {
			return AnalyzeDoneMsg{CallID: callID, Err: err}
		}
		return AnalyzeDoneMsg{CallID: callID, Insights: result.Insights}
	}
}

// fetchSummary loads the backend's dashboard aggregate
func (m Model) fetchSummary() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		summary, err := client.DashboardSummary(context.Background(), api.SummaryQuery{})
		if err != nil {
			return SummaryMsg{Err: err}
		}
		return SummaryMsg{Summary: summary}
	}
}

// fetchRecentWindow pulls the recent calls the client-side dashboard
// metrics are computed from.
func (m Model) fetchRecentWindow() tea.Cmd {
	client := m.client
	start := time.Now().UTC().AddDate(0, 0, -(recentWindowDays - 1)).Format("2006-01-02")

	return func() tea.Msg {
		page, err := client.ListCalls(context.Background(), api.ListFilter{
			StartDate: start,
			Limit:     recentWindowLimit,
		})
		if err != nil {
			return RecentWindowMsg{Err: err}
		}
		return RecentWindowMsg{Calls: page.Calls}
	}
}

// submitInitiate dispatches a dial batch
func (m Model) submitInitiate(numbers []string, instruction string) tea.Cmd {
	client := m.client
	req := api.InitiateRequest{PhoneNumbers: numbers}
	if instruction != "" {
		req.CustomInstructions = []string{instruction}
	}

	return func() tea.Msg {
		result, err := client.InitiateCalls(context.Background(), req)
		if err != nil {
			return InitiateDoneMsg{Err: err}
		}
		return InitiateDoneMsg{Result: result}
	}
}

// fetchSegmentCmd fetches a score segment with the backend's default
// threshold, for the alt+c / alt+r quick keys.
func (m Model) fetchSegmentCmd(kind, label string) tea.Cmd {
	client := m.client
	limit := viper.GetInt("segments.limit")

	return func() tea.Msg {
		params := api.ScoreSegmentParams{Limit: limit}
		var seg *types.Segment
		var err error
		if kind == segments.KindChurn {
			seg, err = client.ChurnSegment(context.Background(), params)
		} else {
			seg, err = client.RevenueSegment(context.Background(), params)
		}
		if err != nil {
			return SegmentMsg{Label: label, Err: err}
		}
		return SegmentMsg{Label: label, Numbers: seg.Numbers()}
	}
}

// fetchPresetCmd runs a named preset from the segments file
func (m Model) fetchPresetCmd(preset segments.Preset) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		seg, err := preset.Fetch(context.Background(), client)
		if err != nil {
			return SegmentMsg{Label: preset.Name, Err: err}
		}
		return SegmentMsg{Label: preset.Name, Numbers: seg.Numbers()}
	}
}

// pollTranscript re-fetches the call shown in the transcript modal
func (m Model) pollTranscript(callID string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		call, err := client.GetCall(context.Background(), callID)
		if err != nil {
			return TranscriptMsg{CallID: callID, Err: err}
		}
		return TranscriptMsg{CallID: callID, Call: call}
	}
}
