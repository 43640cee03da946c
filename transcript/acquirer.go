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


package transcript

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Shradaya/chat-with-youtube-video/core"
)

// Acquirer obtains transcript text for a source by walking an ordered list
// of strategies. The first strategy producing text wins; strategy failures
// are logged and the chain continues. When every strategy has been tried
// without success the result carries OriginNone, which callers must treat
// as extraction failure rather than an empty transcript.
type Acquirer struct {
	strategies []Strategy
	logger     *slog.Logger
}

// Option configures an Acquirer.
type Option func(*Acquirer)

// WithLogger sets a custom logger for the acquirer.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Acquirer) {
		a.logger = logger
	}
}

// NewAcquirer creates an acquirer over the given strategies. Strategy order
// matters: caption retrieval is cheap and should come before local
// transcription.
func NewAcquirer(strategies []Strategy, opts ...Option) (*Acquirer, error) {
	if len(strategies) == 0 {
		return nil, fmt.Errorf("at least one strategy is required")
	}
	for i, s := range strategies {
		if s == nil {
			return nil, fmt.Errorf("strategy at index %d is nil", i)
		}
	}

	a := &Acquirer{
		strategies: strategies,
		logger:     slog.Default().With("component", "transcript_acquirer"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Acquire walks the strategy chain for the source. It returns the first
// successful transcript. Exhaustion is not an error at this level: the
// returned transcript has OriginNone and Failed() reports true.
func (a *Acquirer) Acquire(ctx context.Context, src core.Source) (core.Transcript, error) {
	if err := core.ValidateSource(&src); err != nil {
		return core.Transcript{}, err
	}

	for _, strategy := range a.strategies {
		if err := ctx.Err(); err != nil {
			return core.Transcript{}, err
		}
		if !strategy.Supports(src) {
			a.logger.Debug("strategy skipped",
				"strategy", strategy.Name(),
				"source_id", src.ID)
			continue
		}

		result, err := strategy.Fetch(ctx, src)
		if err != nil {
			a.logger.Warn("strategy failed, trying next",
				"strategy", strategy.Name(),
				"source_id", src.ID,
				"error", err)
			continue
		}

		a.logger.Info("transcript acquired",
			"strategy", strategy.Name(),
			"source_id", src.ID,
			"origin", result.Origin.String(),
			"chars", len(result.Text))
		return result, nil
	}

	a.logger.Error("all strategies exhausted", "source_id", src.ID)
	return core.Transcript{Origin: core.OriginNone}, nil
}
