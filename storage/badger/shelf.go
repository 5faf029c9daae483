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

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/cedizen/core"
	"github.com/poiesic/cedizen/storage"
)

// ShelfRepository implements storage.ShelfRepository for BadgerDB.
// Each device owns a single shelf record holding its saved list and read
// history; mutations are read-modify-write within one transaction.
type ShelfRepository struct {
	backend *Backend
}

var _ storage.ShelfRepository = (*ShelfRepository)(nil)

// NewShelfRepository creates a new ShelfRepository.
func NewShelfRepository(backend *Backend) (*ShelfRepository, error) {
	return &ShelfRepository{backend: backend}, nil
}

// Close is a no-op; the shelf repository holds no resources of its own.
func (r *ShelfRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *ShelfRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// ToggleSaved adds the article to the device's saved list, or removes it if
// already present.
func (r *ShelfRepository) ToggleSaved(ctx context.Context, deviceID, articleID string) ([]string, error) {
	var saved []string
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		shelf, err := readShelf(tx, deviceID)
		if err != nil {
			return err
		}

		if i := slices.Index(shelf.Saved, articleID); i >= 0 {
			shelf.Saved = slices.Delete(shelf.Saved, i, i+1)
		} else {
			shelf.Saved = append(shelf.Saved, articleID)
		}
		shelf.UpdatedAt = time.Now().UTC()

		if err := tx.Set(makeShelfKey(deviceID), storage.MarshalShelf(shelf)); err != nil {
			return err
		}
		saved = shelf.Saved
		return tx.Commit()
	}, true)

	return saved, err
}

// SavedArticles retrieves the device's saved article IDs, oldest first.
func (r *ShelfRepository) SavedArticles(ctx context.Context, deviceID string) ([]string, error) {
	var saved []string
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		shelf, err := readShelf(tx, deviceID)
		if err != nil {
			return err
		}
		saved = shelf.Saved
		return nil
	}, false)
	return saved, err
}

// AddToHistory moves the article to the front of the device's read history
// and trims the history to core.HistoryLimit entries.
func (r *ShelfRepository) AddToHistory(ctx context.Context, deviceID, articleID string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		shelf, err := readShelf(tx, deviceID)
		if err != nil {
			return err
		}

		history := make([]string, 0, len(shelf.History)+1)
		history = append(history, articleID)
		for _, id := range shelf.History {
			if id != articleID {
				history = append(history, id)
			}
		}
		if len(history) > core.HistoryLimit {
			history = history[:core.HistoryLimit]
		}
		shelf.History = history
		shelf.UpdatedAt = time.Now().UTC()

		if err := tx.Set(makeShelfKey(deviceID), storage.MarshalShelf(shelf)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// History retrieves the device's read history, newest first.
func (r *ShelfRepository) History(ctx context.Context, deviceID string) ([]string, error) {
	var history []string
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		shelf, err := readShelf(tx, deviceID)
		if err != nil {
			return err
		}
		history = shelf.History
		return nil
	}, false)
	return history, err
}

// readShelf reads a device's shelf; absent shelves come back empty.
func readShelf(tx *badger.Txn, deviceID string) (*core.Shelf, error) {
	item, err := tx.Get(makeShelfKey(deviceID))
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return &core.Shelf{DeviceId: deviceID}, nil
		}
		return nil, err
	}

	var shelf *core.Shelf
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		shelf, unmarshalErr = storage.UnmarshalShelf(val)
		return unmarshalErr
	})
	return shelf, err
}
