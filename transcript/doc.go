// Package transcript obtains raw transcript text for a resolved source.
//
// Acquisition runs an ordered fallback chain: published captions first
// (cheap, accurate), then audio download plus local speech-to-text (the
// expensive path, only reached when no captions exist). Each strategy
// failure downgrades to the next strategy with a log line; only full
// exhaustion surfaces as a transcript with OriginNone.
//
// The package defines the CaptionService, AudioDownloader and SpeechToText
// interfaces it consumes. Production implementations live in the youtube
// and whisper subpackages.
package transcript
