package tui

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/cmdutil"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/logger"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/segments"
)

var TuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start voicewise in TUI mode",
	Long:  `Start voicewise with an interactive terminal console for browsing calls, insights, and the gym dashboard.`,
	Run:   runTUI,
}

var (
	themeName    string
	pageSize     int
	refreshEvery time.Duration
	presetsFile  string
)

func runTUI(cmd *cobra.Command, args []string) {
	// Disable logging to prevent corrupting TUI display
	logger.Disable()
	defer logger.Enable()

	client, err := cmdutil.NewClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	path := presetsFile
	if path == "" {
		path = segments.DefaultPath()
	}

	// The watcher feeds preset reloads into the model through a channel;
	// its initial load arrives the same way.
	presetCh := make(chan []segments.Preset, 1)
	watcher := segments.NewWatcher(path, segments.DefaultWatcherConfig(), presetBridge(presetCh))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := watcher.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: preset watcher: %v\n", err)
	}
	defer func() { _ = watcher.Stop() }()

	model := NewModel(client, presetCh)

	// WithMouseAllMotion survives suspend/resume better than cell motion
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	TuiCmd.Flags().StringVar(&themeName, "theme", "", "color theme (default: solarized)")
	TuiCmd.Flags().IntVar(&pageSize, "page-size", 0, "calls per page (default 10)")
	TuiCmd.Flags().DurationVar(&refreshEvery, "refresh", 0, "transcript poll interval (default 2s)")
	TuiCmd.Flags().StringVar(&presetsFile, "presets", "", "segment presets YAML (default: ~/.config/voicewise/segments.yaml)")

	cmdutil.AddClientFlags(TuiCmd)

	_ = viper.BindPFlag("tui.theme", TuiCmd.Flags().Lookup("theme"))
	_ = viper.BindPFlag("tui.page_size", TuiCmd.Flags().Lookup("page-size"))
	_ = viper.BindPFlag("tui.refresh_interval", TuiCmd.Flags().Lookup("refresh"))
}
