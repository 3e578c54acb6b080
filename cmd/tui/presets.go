package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/segments"
)

// presetBridge adapts the segment file watcher's callback to a channel the
// TUI drains. A reload landing before the previous one was consumed
// replaces it; only the newest preset list matters.
func presetBridge(ch chan []segments.Preset) func(*segments.File) {
	return func(f *segments.File) {
		select {
		case <-ch:
		default:
		}
		ch <- f.Presets
	}
}

// waitForPresets blocks until the watcher delivers a preset reload
func waitForPresets(ch <-chan []segments.Preset) tea.Cmd {
	return func() tea.Msg {
		presets, ok := <-ch
		if !ok {
			return nil
		}
		return PresetsLoadedMsg{Presets: presets}
	}
}
