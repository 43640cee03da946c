package transcript

import (
	"context"
	"fmt"
	"strings"

	"github.com/Shradaya/chat-with-youtube-video/core"
)

// Strategy is one way of obtaining transcript text for a source. Strategies
// are tried in order by the Acquirer; a failing strategy is skipped, not
// fatal.
type Strategy interface {
	// Name identifies the strategy in logs.
	Name() string

	// Supports reports whether the strategy can be attempted for the
	// given source.
	Supports(src core.Source) bool

	// Fetch produces the transcript for the source.
	Fetch(ctx context.Context, src core.Source) (core.Transcript, error)
}

// CaptionStrategy obtains transcripts from published captions. It applies
// to remote sources only.
type CaptionStrategy struct {
	service CaptionService
}

// NewCaptionStrategy creates a caption-based acquisition strategy.
func NewCaptionStrategy(service CaptionService) (*CaptionStrategy, error) {
	if service == nil {
		return nil, fmt.Errorf("caption service cannot be nil")
	}
	return &CaptionStrategy{service: service}, nil
}

// Name implements Strategy.
func (s *CaptionStrategy) Name() string { return "captions" }

// Supports implements Strategy. Local files have no published captions.
func (s *CaptionStrategy) Supports(src core.Source) bool {
	return !src.Local
}

// Fetch retrieves caption segments and joins them in playback order with
// single spaces.
func (s *CaptionStrategy) Fetch(ctx context.Context, src core.Source) (core.Transcript, error) {
	captions, err := s.service.Captions(ctx, src.ID)
	if err != nil {
		return core.Transcript{}, fmt.Errorf("fetching captions for %s: %w", src.ID, err)
	}

	parts := make([]string, 0, len(captions))
	for _, c := range captions {
		if c.Text == "" {
			continue
		}
		parts = append(parts, c.Text)
	}
	text := strings.Join(parts, " ")
	if strings.TrimSpace(text) == "" {
		return core.Transcript{}, ErrEmptyTranscript
	}

	return core.Transcript{Text: text, Origin: core.OriginAPI}, nil
}

// AudioStrategy obtains transcripts by transcribing audio locally. For
// remote sources it downloads the audio first; local sources already carry
// an audio path.
type AudioStrategy struct {
	downloader AudioDownloader
	stt        SpeechToText
}

// NewAudioStrategy creates a download-and-transcribe acquisition strategy.
func NewAudioStrategy(downloader AudioDownloader, stt SpeechToText) (*AudioStrategy, error) {
	if downloader == nil {
		return nil, fmt.Errorf("audio downloader cannot be nil")
	}
	if stt == nil {
		return nil, fmt.Errorf("speech-to-text engine cannot be nil")
	}
	return &AudioStrategy{downloader: downloader, stt: stt}, nil
}

// Name implements Strategy.
func (s *AudioStrategy) Name() string { return "audio" }

// Supports implements Strategy. Transcription works for any source that can
// yield an audio file.
func (s *AudioStrategy) Supports(src core.Source) bool { return true }

// Fetch resolves an audio path for the source and transcribes it.
func (s *AudioStrategy) Fetch(ctx context.Context, src core.Source) (core.Transcript, error) {
	audioPath := src.AudioPath
	if !src.Local {
		path, err := s.downloader.Download(ctx, src.ID)
		if err != nil {
			return core.Transcript{}, fmt.Errorf("downloading audio for %s: %w", src.ID, err)
		}
		audioPath = path
	}
	if audioPath == "" {
		return core.Transcript{}, ErrNoAudio
	}

	text, err := s.stt.Transcribe(ctx, audioPath)
	if err != nil {
		return core.Transcript{}, fmt.Errorf("transcribing %s: %w", audioPath, err)
	}
	if strings.TrimSpace(text) == "" {
		return core.Transcript{}, ErrEmptyTranscript
	}

	return core.Transcript{Text: text, Origin: core.OriginTranscribed}, nil
}

var (
	_ Strategy = (*CaptionStrategy)(nil)
	_ Strategy = (*AudioStrategy)(nil)
)
