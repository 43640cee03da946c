// Copyright 2025 Shradaya
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package videochat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/Shradaya/chat-with-youtube-video/ai"
	"github.com/Shradaya/chat-with-youtube-video/ai/openai"
	"github.com/Shradaya/chat-with-youtube-video/core"
	"github.com/Shradaya/chat-with-youtube-video/ingestion"
	"github.com/Shradaya/chat-with-youtube-video/search"
	"github.com/Shradaya/chat-with-youtube-video/source"
	"github.com/Shradaya/chat-with-youtube-video/storage"
	"github.com/Shradaya/chat-with-youtube-video/storage/badger"
	"github.com/Shradaya/chat-with-youtube-video/store"
	"github.com/Shradaya/chat-with-youtube-video/transcript"
	"github.com/Shradaya/chat-with-youtube-video/transcript/whisper"
	"github.com/Shradaya/chat-with-youtube-video/transcript/youtube"
)

// Canned chat replies for states where no answer can be generated.
const (
	NoSourceReply         = "Please share a YouTube link or upload an audio file first, then ask me anything about it."
	WrongURLReply         = "That doesn't look like a YouTube link I can work with. Please check the URL and try again."
	ExtractionFailedReply = "I couldn't extract a transcript from that video, so I can't answer questions about it."
)

const defaultCollection = "content"

// Config holds the assistant's configuration.
type Config struct {
	// DataDir is the root directory for all persisted state: the content
	// index, the session database and the audio work directory.
	DataDir string

	// Collection names the content index. Defaults to "content".
	Collection string

	// AI configures the language model backend.
	AI *ai.Config
}

// Assistant wires the full pipeline together: source resolution, transcript
// acquisition, ingestion, retrieval, question answering and session
// persistence.
type Assistant struct {
	resolver  *source.Resolver
	contents  *store.ContentStore
	pipeline  *ingestion.Pipeline
	retriever *search.Retriever
	sessions  storage.SessionRepository
	provider  ai.Provider
	logger    *slog.Logger
}

// AssistantOption configures an Assistant.
type AssistantOption func(*assistantOptions)

type assistantOptions struct {
	provider ai.Provider
	acquirer ingestion.TranscriptAcquirer
	sessions storage.SessionRepository
	resolver *source.Resolver
}

// WithProvider injects a custom AI provider. Used by tests to avoid real
// model calls.
func WithProvider(provider ai.Provider) AssistantOption {
	return func(o *assistantOptions) {
		o.provider = provider
	}
}

// WithAcquirer injects a custom transcript acquirer.
func WithAcquirer(acquirer ingestion.TranscriptAcquirer) AssistantOption {
	return func(o *assistantOptions) {
		o.acquirer = acquirer
	}
}

// WithSessionRepository injects a custom session repository.
func WithSessionRepository(sessions storage.SessionRepository) AssistantOption {
	return func(o *assistantOptions) {
		o.sessions = sessions
	}
}

// WithResolver injects a custom source resolver.
func WithResolver(resolver *source.Resolver) AssistantOption {
	return func(o *assistantOptions) {
		o.resolver = resolver
	}
}

// NewAssistant builds an assistant from the configuration. Components not
// overridden by options are created with production implementations.
func NewAssistant(cfg Config, opts ...AssistantOption) (*Assistant, error) {
	if cfg.DataDir == "" {
		return nil, fmt.Errorf("data directory cannot be empty")
	}
	if cfg.Collection == "" {
		cfg.Collection = defaultCollection
	}
	if cfg.AI == nil {
		cfg.AI = ai.DefaultConfig()
	}

	options := &assistantOptions{}
	for _, opt := range opts {
		opt(options)
	}

	provider := options.provider
	if provider == nil {
		var err error
		provider, err = openai.NewProvider(cfg.AI)
		if err != nil {
			return nil, err
		}
	}

	contents, err := store.NewContentStore(filepath.Join(cfg.DataDir, "index"), cfg.Collection, provider.Embedder())
	if err != nil {
		provider.Close()
		return nil, err
	}

	acquirer := options.acquirer
	if acquirer == nil {
		acquirer, err = defaultAcquirer(filepath.Join(cfg.DataDir, "audio"))
		if err != nil {
			contents.Close()
			provider.Close()
			return nil, err
		}
	}

	pipeline, err := ingestion.NewPipeline(acquirer, provider.Summarizer(), contents)
	if err != nil {
		contents.Close()
		provider.Close()
		return nil, err
	}

	retriever, err := search.NewRetriever(contents)
	if err != nil {
		contents.Close()
		provider.Close()
		return nil, err
	}

	sessions := options.sessions
	if sessions == nil {
		sessions, err = badger.NewSessionRepository(filepath.Join(cfg.DataDir, "sessions"))
		if err != nil {
			contents.Close()
			provider.Close()
			return nil, err
		}
	}

	resolver := options.resolver
	if resolver == nil {
		resolver = source.NewResolver()
	}

	return &Assistant{
		resolver:  resolver,
		contents:  contents,
		pipeline:  pipeline,
		retriever: retriever,
		sessions:  sessions,
		provider:  provider,
		logger:    slog.Default(),
	}, nil
}

// defaultAcquirer assembles the production acquisition chain: captions
// first, then yt-dlp download plus whisper transcription.
func defaultAcquirer(audioDir string) (*transcript.Acquirer, error) {
	captionStrategy, err := transcript.NewCaptionStrategy(youtube.NewCaptionClient())
	if err != nil {
		return nil, err
	}

	downloader, err := youtube.NewDownloader(audioDir)
	if err != nil {
		return nil, err
	}
	audioStrategy, err := transcript.NewAudioStrategy(downloader, whisper.NewTranscriber())
	if err != nil {
		return nil, err
	}

	return transcript.NewAcquirer([]transcript.Strategy{captionStrategy, audioStrategy})
}

// Close releases all held resources.
func (a *Assistant) Close() error {
	if err := a.provider.Close(); err != nil {
		a.logger.Error("error closing AI provider", "err", err)
	}

	if err := a.sessions.Close(); err != nil {
		a.logger.Error("error closing session repository", "err", err)
		return err
	}
	if err := a.contents.Close(); err != nil {
		a.logger.Error("error closing content store", "err", err)
		return err
	}
	return nil
}

// IngestURL resolves and ingests a YouTube URL, returning the source and
// its summary.
func (a *Assistant) IngestURL(ctx context.Context, rawURL string) (core.Source, string, error) {
	src, err := a.resolver.ResolveURL(ctx, rawURL)
	if err != nil {
		return core.Source{}, "", err
	}
	summary, err := a.pipeline.Ingest(ctx, src)
	if err != nil {
		return src, "", err
	}
	return src, summary, nil
}

// IngestFile ingests a local audio file, returning the source and its
// summary.
func (a *Assistant) IngestFile(ctx context.Context, path string) (core.Source, string, error) {
	src, err := a.resolver.ResolveFile(path)
	if err != nil {
		return core.Source{}, "", err
	}
	summary, err := a.pipeline.Ingest(ctx, src)
	if err != nil {
		return src, "", err
	}
	return src, summary, nil
}

// Ask answers a question about an ingested source, grounded in retrieved
// transcript passages only.
func (a *Assistant) Ask(ctx context.Context, question string, src core.Source) (string, error) {
	contextText, err := a.retriever.Context(ctx, question, src)
	if err != nil {
		return "", err
	}
	return a.provider.Answerer().Answer(ctx, contextText, question)
}

// Chat handles one turn of a conversation. A message containing a YouTube
// link switches the session to that video and replies with its summary;
// any other message is answered from the session's current source. Both
// sides of the exchange are persisted to the session history.
func (a *Assistant) Chat(ctx context.Context, sessionID, input string) (string, error) {
	if sessionID == "" {
		return "", fmt.Errorf("session id cannot be empty")
	}

	session, err := a.sessions.GetSession(ctx, sessionID)
	if errors.Is(err, storage.ErrNotFound) {
		session = &core.Session{ID: sessionID}
	} else if err != nil {
		return "", err
	}

	reply, err := a.respond(ctx, session, input)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	_, err = a.sessions.AppendMessages(ctx, sessionID,
		&core.ChatMessage{Speaker: core.SpeakerHuman, Contents: input, Timestamp: now},
		&core.ChatMessage{Speaker: core.SpeakerAI, Contents: reply, Timestamp: now},
	)
	if err != nil {
		return "", err
	}
	return reply, nil
}

// History returns a session's persisted messages, oldest first.
func (a *Assistant) History(ctx context.Context, sessionID string, limit int) ([]*core.ChatMessage, error) {
	return a.sessions.GetMessages(ctx, sessionID, limit)
}

func (a *Assistant) respond(ctx context.Context, session *core.Session, input string) (string, error) {
	rawURL, hasURL := source.ExtractURL(input)
	if !hasURL {
		// A link that isn't a usable video URL gets a correction, not an
		// answer attempt.
		if strings.Contains(input, "://") {
			return WrongURLReply, nil
		}
		if !session.HasSource() {
			return NoSourceReply, nil
		}
		return a.Ask(ctx, input, session.Source)
	}

	src, err := a.resolver.ResolveURL(ctx, rawURL)
	if err != nil {
		if errors.Is(err, core.ErrInvalidSource) {
			return WrongURLReply, nil
		}
		return "", err
	}

	summary, err := a.pipeline.Ingest(ctx, src)
	if err != nil {
		if errors.Is(err, core.ErrExtractionFailed) {
			return ExtractionFailedReply, nil
		}
		return "", err
	}

	session.Source = src
	if err := a.sessions.SaveSession(ctx, session); err != nil {
		return "", err
	}
	return summary, nil
}
