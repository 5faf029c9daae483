package badger

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/poiesic/cedizen/core"
	"github.com/poiesic/cedizen/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupChatRepo(t *testing.T) storage.ChatRepository {
	t.Helper()

	voteRepo, chatRepo, shelfRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		shelfRepo.Close()
		chatRepo.Close()
		voteRepo.Close()
		backend.Close()
	})
	return chatRepo
}

func seedTranscript(t *testing.T, repo storage.ChatRepository, deviceID string, turns int) {
	t.Helper()

	ctx := context.Background()
	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < turns; i++ {
		speaker := core.SpeakerUser
		if i%2 == 1 {
			speaker = core.SpeakerAssistant
		}
		_, err := repo.AddMessages(ctx, &core.ChatMessage{
			DeviceId:  deviceID,
			Speaker:   speaker,
			Contents:  fmt.Sprintf("turn %d", i),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}
}

func TestChatRepository_AddMessages(t *testing.T) {
	repo := setupChatRepo(t)
	ctx := context.Background()

	messages, err := repo.AddMessages(ctx, &core.ChatMessage{
		DeviceId:  "device-1",
		Speaker:   core.SpeakerUser,
		Contents:  "can they arrest me without a warrant?",
		Timestamp: time.Now().UTC(),
	})
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.NotZero(t, messages[0].Id)
	assert.False(t, messages[0].InsertedAt.IsZero())
}

func TestChatRepository_GetMessages(t *testing.T) {
	repo := setupChatRepo(t)
	ctx := context.Background()

	seedTranscript(t, repo, "device-1", 4)
	seedTranscript(t, repo, "device-2", 2)

	t.Run("oldest first", func(t *testing.T) {
		messages, err := repo.GetMessages(ctx, "device-1")
		require.NoError(t, err)
		require.Len(t, messages, 4)
		assert.Equal(t, "turn 0", messages[0].Contents)
		assert.Equal(t, "turn 3", messages[3].Contents)
	})

	t.Run("devices are isolated", func(t *testing.T) {
		messages, err := repo.GetMessages(ctx, "device-2")
		require.NoError(t, err)
		assert.Len(t, messages, 2)
	})

	t.Run("unknown device is empty", func(t *testing.T) {
		messages, err := repo.GetMessages(ctx, "device-99")
		require.NoError(t, err)
		assert.Empty(t, messages)
	})
}

func TestChatRepository_GetRecentMessages(t *testing.T) {
	repo := setupChatRepo(t)
	ctx := context.Background()

	seedTranscript(t, repo, "device-1", 5)

	messages, err := repo.GetRecentMessages(ctx, "device-1", 2)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "turn 4", messages[0].Contents)
	assert.Equal(t, "turn 3", messages[1].Contents)
}

func TestChatRepository_DeleteMessages(t *testing.T) {
	repo := setupChatRepo(t)
	ctx := context.Background()

	seedTranscript(t, repo, "device-1", 3)
	seedTranscript(t, repo, "device-2", 3)

	require.NoError(t, repo.DeleteMessages(ctx, "device-1"))

	messages, err := repo.GetMessages(ctx, "device-1")
	require.NoError(t, err)
	assert.Empty(t, messages)

	// Other devices untouched
	messages, err = repo.GetMessages(ctx, "device-2")
	require.NoError(t, err)
	assert.Len(t, messages, 3)
}
