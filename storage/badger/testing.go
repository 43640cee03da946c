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


package badger

import "github.com/Shradaya/chat-with-youtube-video/storage"

// NewMemorySessionRepository creates an in-memory session repository for
// testing. Caller must close the repository when done.
func NewMemorySessionRepository() (storage.SessionRepository, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, err
	}

	repo, err := newSessionRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}
	return repo, nil
}
