package transcript

import "errors"

var (
	// ErrCaptionsDisabled indicates the caption service has no retrievable
	// captions for the video (disabled by the uploader or never generated).
	ErrCaptionsDisabled = errors.New("captions disabled")

	// ErrNoAudio indicates the audio download produced no usable file.
	ErrNoAudio = errors.New("no audio file produced")

	// ErrEmptyTranscript indicates a strategy completed without producing
	// any text.
	ErrEmptyTranscript = errors.New("empty transcript")
)
