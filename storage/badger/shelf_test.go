package badger

import (
	"context"
	"fmt"
	"testing"

	"github.com/poiesic/cedizen/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupShelfRepo(t *testing.T) storage.ShelfRepository {
	t.Helper()

	voteRepo, chatRepo, shelfRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		shelfRepo.Close()
		chatRepo.Close()
		voteRepo.Close()
		backend.Close()
	})
	return shelfRepo
}

func TestShelfRepository_ToggleSaved(t *testing.T) {
	repo := setupShelfRepo(t)
	ctx := context.Background()

	t.Run("adds then removes", func(t *testing.T) {
		saved, err := repo.ToggleSaved(ctx, "device-1", "art-21")
		require.NoError(t, err)
		assert.Equal(t, []string{"art-21"}, saved)

		saved, err = repo.ToggleSaved(ctx, "device-1", "art-42")
		require.NoError(t, err)
		assert.Equal(t, []string{"art-21", "art-42"}, saved)

		saved, err = repo.ToggleSaved(ctx, "device-1", "art-21")
		require.NoError(t, err)
		assert.Equal(t, []string{"art-42"}, saved)
	})

	t.Run("devices are isolated", func(t *testing.T) {
		saved, err := repo.SavedArticles(ctx, "device-2")
		require.NoError(t, err)
		assert.Empty(t, saved)
	})
}

func TestShelfRepository_History(t *testing.T) {
	repo := setupShelfRepo(t)
	ctx := context.Background()

	t.Run("newest first", func(t *testing.T) {
		require.NoError(t, repo.AddToHistory(ctx, "device-1", "art-1"))
		require.NoError(t, repo.AddToHistory(ctx, "device-1", "art-2"))

		history, err := repo.History(ctx, "device-1")
		require.NoError(t, err)
		assert.Equal(t, []string{"art-2", "art-1"}, history)
	})

	t.Run("rereading moves to front without duplicating", func(t *testing.T) {
		require.NoError(t, repo.AddToHistory(ctx, "device-1", "art-1"))

		history, err := repo.History(ctx, "device-1")
		require.NoError(t, err)
		assert.Equal(t, []string{"art-1", "art-2"}, history)
	})

	t.Run("bounded to five entries", func(t *testing.T) {
		for i := 0; i < 8; i++ {
			require.NoError(t, repo.AddToHistory(ctx, "device-3", fmt.Sprintf("art-%d", i)))
		}

		history, err := repo.History(ctx, "device-3")
		require.NoError(t, err)
		assert.Equal(t, []string{"art-7", "art-6", "art-5", "art-4", "art-3"}, history)
	})

	t.Run("unknown device is empty", func(t *testing.T) {
		history, err := repo.History(ctx, "device-99")
		require.NoError(t, err)
		assert.Empty(t, history)
	})
}
