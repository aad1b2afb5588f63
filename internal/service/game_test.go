package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameService_GetOrCreateGame(t *testing.T) {
	t.Run("Empty id opens a fresh session", func(t *testing.T) {
		ctx := context.Background()
		gameService := NewGameService(newFakeGameRepo())

		// When: connecting without a session id
		game, err := gameService.GetOrCreateGame(ctx, "", false)

		// Then: a new session with a generated id is stored
		require.NoError(t, err)
		assert.NotEmpty(t, game.ID)
		assert.True(t, game.IsOngoing())
	})

	t.Run("Known id resumes the stored session", func(t *testing.T) {
		ctx := context.Background()
		repo := newFakeGameRepo()
		gameService := NewGameService(repo)

		created, err := gameService.GetOrCreateGame(ctx, "", true)
		require.NoError(t, err)

		// When: reconnecting with the same id
		resumed, err := gameService.GetOrCreateGame(ctx, created.ID, false)

		// Then: the stored session comes back, bot mode included
		require.NoError(t, err)
		assert.Equal(t, created.ID, resumed.ID)
		assert.True(t, resumed.WithBot)
	})

	t.Run("Unknown id opens a fresh session instead of failing", func(t *testing.T) {
		ctx := context.Background()
		gameService := NewGameService(newFakeGameRepo())

		// When: connecting with an id nobody stored
		game, err := gameService.GetOrCreateGame(ctx, "gone", false)

		// Then: a new session is created under a new id
		require.NoError(t, err)
		assert.NotEqual(t, "gone", game.ID)
	})
}
