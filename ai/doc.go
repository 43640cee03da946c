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


// Package ai provides abstractions for the AI services used by the
// assistant.
//
// This package defines interfaces for text embeddings, transcript
// summarization, and context-constrained question answering. It follows the
// dependency inversion principle: the pipeline and retrieval layers depend
// on these abstractions rather than concrete implementations.
//
// Two implementation sub-packages exist:
//
//   - ai/openai: production implementation using OpenAI-compatible APIs
//   - ai/mock: deterministic test doubles for unit testing without
//     external services
//
// Public constructors in ai/openai return interface types to enforce
// abstraction; constructors in ai/mock return concrete types so tests can
// inject behavior and assert on call counts.
package ai
