package chunk

import (
	"strings"

	"github.com/Shradaya/chat-with-youtube-video/core"
)

// Default separators. Prose transcripts split cleanly on sentence ends,
// caption dumps on blank lines.
const (
	SentenceSeparator  = ". "
	ParagraphSeparator = "\n\n"
)

// Splitter divides text into bounded units on a fixed separator. The
// separator is matched literally, never as a pattern.
type Splitter struct {
	separator string
	maxChars  int
}

// NewSplitter creates a splitter that produces units of at most maxChars
// characters, splitting on sep. A non-positive maxChars or empty sep falls
// back to sentence splitting at 500 characters.
func NewSplitter(sep string, maxChars int) *Splitter {
	if sep == "" {
		sep = SentenceSeparator
	}
	if maxChars <= 0 {
		maxChars = 500
	}
	return &Splitter{separator: sep, maxChars: maxChars}
}

// Split divides text into ordered units no longer than the configured
// maximum. A single segment longer than the maximum becomes its own
// oversized unit; it is never truncated. Returns core.ErrEmptyInput for
// empty or whitespace-only text, and at least one unit otherwise.
func (s *Splitter) Split(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, core.ErrEmptyInput
	}

	segments := strings.Split(text, s.separator)

	units := make([]string, 0, 1)
	var current strings.Builder
	for _, segment := range segments {
		if current.Len() == 0 {
			current.WriteString(segment)
			continue
		}

		// Joining keeps the separator, so account for it.
		if current.Len()+len(s.separator)+len(segment) <= s.maxChars {
			current.WriteString(s.separator)
			current.WriteString(segment)
			continue
		}

		units = append(units, current.String())
		current.Reset()
		current.WriteString(segment)
	}
	if current.Len() > 0 {
		units = append(units, current.String())
	}

	return units, nil
}

// MaxChars returns the configured unit size limit.
func (s *Splitter) MaxChars() int {
	return s.maxChars
}

// Separator returns the configured separator.
func (s *Splitter) Separator() string {
	return s.separator
}
