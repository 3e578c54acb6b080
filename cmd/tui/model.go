package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"

	"github.com/thesixpathguy/VoiceWise-sub001/cmd/tui/components"
	"github.com/thesixpathguy/VoiceWise-sub001/cmd/tui/themes"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/api"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/paging"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/segments"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/types"
)

// Tab indices
const (
	tabCalls = iota
	tabDashboard
	tabInitiate
	tabHelp
)

// recentWindowDays is the span of the client-side dashboard metrics.
const recentWindowDays = 7

// recentWindowLimit caps how many calls the window fetch pulls.
const recentWindowLimit = 200

// TickMsg is sent periodically to drive transcript polling
type TickMsg struct{}

func tickCmd(every time.Duration) tea.Cmd {
	return tea.Tick(every, func(t time.Time) tea.Msg {
		return TickMsg{}
	})
}

// CallsPageMsg carries one fetched page of the calls list. Seq ties the
// response to the request that asked for it; stale pages are dropped.
type CallsPageMsg struct {
	Seq        int
	Page       int
	Calls      []types.Call
	Total      int
	TotalKnown bool
	Err        error
}

// InsightsMsg carries the insights fetched for one call
type InsightsMsg struct {
	CallID   string
	Insights *types.Insights
	Err      error
}

// AnalyzeDoneMsg is sent when a triggered analysis returns. Insights are
// set when the backend analyzed synchronously.
type AnalyzeDoneMsg struct {
	CallID   string
	Insights *types.Insights
	Err      error
}

// SummaryMsg carries the backend's dashboard aggregate
type SummaryMsg struct {
	Summary *types.DashboardSummary
	Err     error
}

// RecentWindowMsg carries the call window used for client-side metrics
type RecentWindowMsg struct {
	Calls []types.Call
	Err   error
}

// InitiateDoneMsg is sent when a dial batch returns
type InitiateDoneMsg struct {
	Result *api.InitiateResult
	Err    error
}

// SegmentMsg carries the members of a fetched user segment
type SegmentMsg struct {
	Label   string
	Numbers []string
	Err     error
}

// TranscriptMsg carries a re-fetched call for the transcript modal
type TranscriptMsg struct {
	CallID string
	Call   *types.Call
	Err    error
}

// PresetsLoadedMsg is sent when the segment preset file loads or changes
type PresetsLoadedMsg struct {
	Presets []segments.Preset
}

// Model is the TUI application state. All data flows through messages;
// nothing outside Update mutates it.
type Model struct {
	client *api.Client
	theme  themes.Theme

	width    int
	height   int
	quitting bool

	header  components.Header
	tabs    components.Tabs
	footer  components.Footer
	spinner spinner.Model

	// Calls tab
	callsView     components.CallsView
	insightsPanel components.InsightsPanel
	filterInput   components.FilterInput
	filterMode    bool
	filter        filterSpec
	page          int
	pageSize      int
	total         int
	totalKnown    bool
	fetchSeq      int
	callsLoading  bool

	// Dashboard tab
	summaryView    components.SummaryView
	summaryLoading bool
	windowLoading  bool

	// Initiate tab
	initiateForm components.InitiateForm
	presetCh     <-chan []segments.Preset

	// Help tab
	helpView components.HelpView

	// Transcript modal
	transcript components.TranscriptModal
	audio      AudioStreamer

	refreshEvery time.Duration
	lastErr      string

	// gg navigation
	lastKeyPress     string
	lastKeyPressTime time.Time
}

// NewModel creates the TUI model. presetCh delivers segment preset reloads
// from the file watcher; nil disables presets.
func NewModel(client *api.Client, presetCh <-chan []segments.Preset) Model {
	themeName := viper.GetString("tui.theme")
	theme := themes.GetTheme(themeName)

	pageSize := viper.GetInt("tui.page_size")
	if pageSize < 1 {
		pageSize = paging.DefaultPageSize
	}

	refreshEvery := viper.GetDuration("tui.refresh_interval")
	if refreshEvery <= 0 {
		refreshEvery = 2 * time.Second
	}

	header := components.NewHeader()
	header.SetTheme(theme)
	header.SetBackend(client.BaseURL(), client.GymID())

	tabs := components.NewTabs([]components.Tab{
		{Label: "Calls", Icon: "📞"},
		{Label: "Dashboard", Icon: "📊"},
		{Label: "Initiate", Icon: "📣"},
		{Label: "Help", Icon: "❓"},
	})
	tabs.SetTheme(theme)

	footer := components.NewFooter()
	footer.SetTheme(theme)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	callsView := components.NewCallsView()
	callsView.SetTheme(theme)
	callsView.SetLoading(true)

	insightsPanel := components.NewInsightsPanel()
	insightsPanel.SetTheme(theme)

	filterInput := components.NewFilterInput("/ ")
	filterInput.SetTheme(theme)

	summaryView := components.NewSummaryView()
	summaryView.SetTheme(theme)
	summaryView.SetSummaryLoading(true)
	summaryView.SetWindowLoading(true)

	initiateForm := components.NewInitiateForm()
	initiateForm.SetTheme(theme)

	helpView := components.NewHelpView()
	helpView.SetTheme(theme)

	transcript := components.NewTranscriptModal()
	transcript.SetTheme(theme)

	return Model{
		client:         client,
		theme:          theme,
		header:         header,
		tabs:           tabs,
		footer:         footer,
		spinner:        sp,
		callsView:      callsView,
		insightsPanel:  insightsPanel,
		filterInput:    filterInput,
		page:           1,
		pageSize:       pageSize,
		callsLoading:   true,
		summaryView:    summaryView,
		summaryLoading: true,
		windowLoading:  true,
		initiateForm:   initiateForm,
		presetCh:       presetCh,
		helpView:       helpView,
		transcript:     transcript,
		audio:          noopStreamer{},
		refreshEvery:   refreshEvery,
	}
}

// Init starts the tick loop and kicks off the initial fetches. Init runs
// on a copy of the model, so it must not mutate; the initial fetch uses
// the sequence number NewModel left in place.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tickCmd(m.refreshEvery),
		m.spinner.Tick,
		m.fetchCallsPage(m.fetchSeq, m.page),
		m.fetchSummary(),
		m.fetchRecentWindow(),
	}
	if m.presetCh != nil {
		cmds = append(cmds, waitForPresets(m.presetCh))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// While a text field on the initiate tab is being edited, it gets every
	// message except our own data messages, so typing (and cursor blink)
	// works without global shortcuts stealing keys.
	if m.tabs.GetActive() == tabInitiate && m.initiateForm.Editing() && !m.transcript.IsVisible() {
		switch msg.(type) {
		case TickMsg, CallsPageMsg, InsightsMsg, AnalyzeDoneMsg, SummaryMsg,
			RecentWindowMsg, InitiateDoneMsg, SegmentMsg, TranscriptMsg,
			PresetsLoadedMsg, spinner.TickMsg, tea.WindowSizeMsg:
			// Fall through to normal handling
		default:
			if keyMsg, ok := msg.(tea.KeyMsg); ok {
				switch keyMsg.String() {
				case "ctrl+c":
					m.quitting = true
					return m, tea.Quit
				case "ctrl+z":
					return m, tea.Suspend
				case "ctrl+s":
					return m.handleSubmit()
				case "alt+c":
					return m.fetchQuickSegment(segments.KindChurn)
				case "alt+r":
					return m.fetchQuickSegment(segments.KindRevenue)
				}
			}
			cmd := m.initiateForm.Update(msg)
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.ResumeMsg:
		// Some terminals do not restore mouse tracking after fg
		return m, tea.Batch(tea.EnableMouseAllMotion, tea.EnterAltScreen)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		frame := m.spinner.View()
		m.callsView.SetSpinner(frame)
		m.insightsPanel.SetSpinner(frame)
		m.summaryView.SetSpinner(frame)
		m.initiateForm.SetSpinner(frame)
		return m, cmd

	case TickMsg:
		return m.handleTick()

	case CallsPageMsg:
		return m.handleCallsPage(msg)

	case InsightsMsg:
		return m.handleInsights(msg)

	case AnalyzeDoneMsg:
		return m.handleAnalyzeDone(msg)

	case SummaryMsg:
		return m.handleSummary(msg)

	case RecentWindowMsg:
		return m.handleRecentWindow(msg)

	case InitiateDoneMsg:
		return m.handleInitiateDone(msg)

	case SegmentMsg:
		return m.handleSegment(msg)

	case TranscriptMsg:
		return m.handleTranscript(msg)

	case PresetsLoadedMsg:
		return m.handlePresetsLoaded(msg)

	case components.ApplyPresetMsg:
		return m.handleApplyPreset(msg)

	case components.SubmitMsg:
		return m.handleSubmit()
	}

	return m, nil
}

// anyLoading reports whether a fetch is in flight, for the header state dot.
func (m Model) anyLoading() bool {
	return m.callsLoading || m.summaryLoading || m.windowLoading
}
