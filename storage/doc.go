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


// Package storage provides the persistence abstraction for chat sessions.
//
// This package defines the SessionRepository interface that decouples the
// session model from its storage backend. The badger subpackage provides
// the production implementation; tests can use its in-memory mode or a
// mock.
//
// Public constructors in backend packages return the SessionRepository
// interface rather than concrete types, so consumers never couple to
// BadgerDB specifics.
//
// # Usage
//
//	repo, err := badger.NewSessionRepository("/path/to/db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer repo.Close()
//
// Use in tests with in-memory storage:
//
//	repo, err := badger.NewMemorySessionRepository()
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines.
package storage
