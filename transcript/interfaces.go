package transcript

import "context"

// Caption is a single timed caption segment returned by a caption service.
type Caption struct {
	// Text is the caption content.
	Text string

	// Start is the segment start offset in seconds.
	Start float64

	// Duration is the segment duration in seconds.
	Duration float64
}

// CaptionService looks up published captions for a remote video id.
// Implementations return the segments in playback order, or
// ErrCaptionsDisabled when the video has no retrievable captions.
type CaptionService interface {
	Captions(ctx context.Context, videoID string) ([]Caption, error)
}

// AudioDownloader fetches the best available audio for a remote video id
// and returns the path of the downloaded file.
type AudioDownloader interface {
	Download(ctx context.Context, videoID string) (string, error)
}

// SpeechToText transcribes a local audio file into plain text.
type SpeechToText interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}
