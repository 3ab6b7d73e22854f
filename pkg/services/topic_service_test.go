package services

import (
	"context"
	"testing"

	testdb "github.com/credlens/pundit/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicService_GetOrCreate(t *testing.T) {
	client := testdb.NewTestClient(t)
	topicService := NewTopicService(client.Client)
	ctx := context.Background()

	t.Run("creates and reuses by name", func(t *testing.T) {
		first, err := topicService.GetOrCreate(ctx, "monetary policy", strPtr("central bank actions and rates"))
		require.NoError(t, err)
		require.NotNil(t, first.Description)

		second, err := topicService.GetOrCreate(ctx, "monetary policy", nil)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		first, err := topicService.GetOrCreate(ctx, "gold", nil)
		require.NoError(t, err)

		second, err := topicService.GetOrCreate(ctx, "  gold  ", nil)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		_, err := topicService.GetOrCreate(ctx, "   ", nil)
		assert.True(t, IsValidationError(err))
	})
}

func TestTopicService_ListTopics(t *testing.T) {
	client := testdb.NewTestClient(t)
	topicService := NewTopicService(client.Client)
	ctx := context.Background()

	for _, name := range []string{"rates", "crypto", "ai"} {
		_, err := topicService.GetOrCreate(ctx, name, nil)
		require.NoError(t, err)
	}

	topics, err := topicService.ListTopics(ctx)
	require.NoError(t, err)
	require.Len(t, topics, 3)
	assert.Equal(t, "ai", topics[0].Name)
	assert.Equal(t, "crypto", topics[1].Name)
	assert.Equal(t, "rates", topics[2].Name)
}
