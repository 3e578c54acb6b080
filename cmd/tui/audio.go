package tui

// AudioStreamer plays call audio alongside the transcript modal. Live
// audio rides with the calling provider rather than the backend, so the
// default implementation only carries the play state the UI shows.
type AudioStreamer interface {
	// Start begins streaming audio for a call
	Start(callID string) error
	// Stop ends any active stream
	Stop()
}

// noopStreamer satisfies AudioStreamer without producing sound
type noopStreamer struct{}

func (noopStreamer) Start(string) error { return nil }
func (noopStreamer) Stop()              {}
