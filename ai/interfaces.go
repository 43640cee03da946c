package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity
// search. Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in
	// a batch. The returned slice contains embeddings in the same order as
	// the input texts. Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Summarizer reduces an ordered list of transcript segments into one
// consolidated summary string.
type Summarizer interface {
	// Summarize produces a single summary covering all segments.
	// Segment order carries meaning and must be respected.
	Summarize(ctx context.Context, segments []string) (string, error)
}

// Answerer generates an answer to a question constrained to the supplied
// context text. An empty context means nothing is known about the source
// and the answer must say so rather than draw on outside knowledge.
type Answerer interface {
	Answer(ctx context.Context, contextText, question string) (string, error)
}

// Provider aggregates AI services for convenient initialization and
// lifecycle management. A provider creates and manages Embedder, Summarizer
// and Answerer instances, ensuring they share configuration.
type Provider interface {
	// Embedder returns the text embedding service.
	Embedder() Embedder

	// Summarizer returns the transcript summarization service.
	Summarizer() Summarizer

	// Answerer returns the question answering service.
	Answerer() Answerer

	// Close releases resources held by the provider and its services.
	Close() error
}
