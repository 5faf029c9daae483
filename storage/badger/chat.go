package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/cedizen/core"
	"github.com/poiesic/cedizen/storage"
)

// ChatRepository implements storage.ChatRepository for BadgerDB.
type ChatRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.ChatRepository = (*ChatRepository)(nil)

// NewChatRepository creates a new ChatRepository.
func NewChatRepository(backend *Backend) (*ChatRepository, error) {
	idSeq, err := backend.GetSequence(chatMessageIDSeq)
	if err != nil {
		return nil, err
	}

	return &ChatRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *ChatRepository) Close() error {
	return r.idSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *ChatRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddMessages appends messages to a device's transcript.
func (r *ChatRepository) AddMessages(ctx context.Context, messages ...*core.ChatMessage) ([]*core.ChatMessage, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, message := range messages {
			// Always generate new ID from sequence
			nextID, err := r.idSeq.Next()
			if err != nil {
				return err
			}
			// BadgerDB sequences can return 0 on first call, so we skip it
			if nextID == 0 {
				nextID, err = r.idSeq.Next()
				if err != nil {
					return err
				}
			}
			message.Id = core.ID(nextID)

			message.InsertedAt = time.Now().UTC()
			message.UpdatedAt = message.InsertedAt
			if message.Timestamp.IsZero() {
				message.Timestamp = message.InsertedAt
			}

			// Store primary record
			key := makeChatMessageKey(message.Id)
			value := storage.MarshalChatMessage(message)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update device index
			deviceKey := makeChatDeviceKey(message.DeviceId, message.Timestamp, message.Id)
			if err := tx.Set(deviceKey, storage.MarshalID(message.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return messages, err
}

// GetMessages retrieves a device's transcript, oldest first.
func (r *ChatRepository) GetMessages(ctx context.Context, deviceID string) ([]*core.ChatMessage, error) {
	var results []*core.ChatMessage
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		startKey := makePartialChatDeviceKey(deviceID)
		iter := tx.NewIterator(badger.DefaultIteratorOptions)
		defer iter.Close()

		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if len(key) < len(startKey) || slices.Compare(key[:len(startKey)], startKey) != 0 {
				break
			}

			var messageID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				messageID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			message, err := readChatMessage(tx, makeChatMessageKey(messageID))
			if err != nil {
				return err
			}
			if message != nil {
				results = append(results, message)
			}
		}
		return nil
	}, false)

	return results, err
}

// GetRecentMessages retrieves the N most recent messages of a device's
// transcript, newest first.
func (r *ChatRepository) GetRecentMessages(ctx context.Context, deviceID string, limit int) ([]*core.ChatMessage, error) {
	var results []*core.ChatMessage
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Use reverse iterator to get most recent messages first
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true

		iter := tx.NewIterator(opts)
		defer iter.Close()

		prefix := makePartialChatDeviceKey(deviceID)
		startKey := makeChatDeviceKey(deviceID,
			time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC), core.ID(^uint64(0)))

		count := 0
		for iter.Seek(startKey); iter.Valid() && count < limit; iter.Next() {
			key := iter.Item().Key()
			if len(key) < len(prefix) || slices.Compare(key[:len(prefix)], prefix) != 0 {
				break
			}

			var messageID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				messageID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			message, err := readChatMessage(tx, makeChatMessageKey(messageID))
			if err != nil {
				return err
			}
			if message != nil {
				results = append(results, message)
				count++
			}
		}
		return nil
	}, false)

	return results, err
}

// DeleteMessages removes a device's entire transcript.
func (r *ChatRepository) DeleteMessages(ctx context.Context, deviceID string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		startKey := makePartialChatDeviceKey(deviceID)
		iter := tx.NewIterator(badger.DefaultIteratorOptions)

		var indexKeys [][]byte
		var messageIDs []core.ID

		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if len(key) < len(startKey) || slices.Compare(key[:len(startKey)], startKey) != 0 {
				break
			}

			var messageID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				messageID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				iter.Close()
				return err
			}

			indexKeys = append(indexKeys, iter.Item().KeyCopy(nil))
			messageIDs = append(messageIDs, messageID)
		}
		iter.Close()

		for i, indexKey := range indexKeys {
			if err := tx.Delete(indexKey); err != nil {
				return err
			}
			if err := tx.Delete(makeChatMessageKey(messageIDs[i])); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// readChatMessage reads a chat message from the transaction.
func readChatMessage(tx *badger.Txn, key []byte) (*core.ChatMessage, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var message *core.ChatMessage
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		message, unmarshalErr = storage.UnmarshalChatMessage(val)
		return unmarshalErr
	})
	return message, err
}
