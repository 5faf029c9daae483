// Copyright 2025 Poiesic Systems
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

import "github.com/poiesic/cedizen/storage"

// NewMemoryRepositories creates in-memory vote, chat and shelf repositories
// for testing. Caller must close the repos and the backend when done.
func NewMemoryRepositories() (storage.VoteRepository, storage.ChatRepository, storage.ShelfRepository, *Backend, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	voteRepo, err := NewVoteRepository(backend)
	if err != nil {
		backend.Close()
		return nil, nil, nil, nil, err
	}

	chatRepo, err := NewChatRepository(backend)
	if err != nil {
		voteRepo.Close()
		backend.Close()
		return nil, nil, nil, nil, err
	}

	shelfRepo, err := NewShelfRepository(backend)
	if err != nil {
		chatRepo.Close()
		voteRepo.Close()
		backend.Close()
		return nil, nil, nil, nil, err
	}

	return voteRepo, chatRepo, shelfRepo, backend, nil
}
