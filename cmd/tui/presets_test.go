package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/segments"
)

// TestPresetBridgeKeepsNewestReload verifies that a reload landing before
// the previous one was consumed replaces it instead of blocking the
// watcher goroutine.
func TestPresetBridgeKeepsNewestReload(t *testing.T) {
	ch := make(chan []segments.Preset, 1)
	bridge := presetBridge(ch)

	bridge(&segments.File{Presets: []segments.Preset{{Name: "old", Kind: segments.KindChurn}}})
	bridge(&segments.File{Presets: []segments.Preset{{Name: "new", Kind: segments.KindRevenue}}})

	got := <-ch
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].Name)
}

func TestWaitForPresets(t *testing.T) {
	ch := make(chan []segments.Preset, 1)
	ch <- []segments.Preset{{Name: "lapsed", Kind: segments.KindChurn}}

	msg := waitForPresets(ch)()
	loaded, ok := msg.(PresetsLoadedMsg)
	require.True(t, ok)
	require.Len(t, loaded.Presets, 1)
	assert.Equal(t, "lapsed", loaded.Presets[0].Name)
}

func TestWaitForPresetsClosedChannel(t *testing.T) {
	ch := make(chan []segments.Preset)
	close(ch)
	assert.Nil(t, waitForPresets(ch)())
}
