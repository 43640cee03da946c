// Package openai implements the ai interfaces against OpenAI-compatible
// APIs (the hosted OpenAI service, Ollama, LocalAI, vLLM, and similar).
//
// Summarization follows a map-reduce shape: each transcript segment is
// condensed independently on a bounded worker pool, then the partial
// summaries are distilled into one consolidated summary. Answering applies
// a rules prompt that forbids the model from drawing on knowledge outside
// the supplied context.
package openai
