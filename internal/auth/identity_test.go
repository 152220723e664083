package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-sheet-api/internal/errors"
)

func TestRequireUser(t *testing.T) {
	t.Run("no identity", func(t *testing.T) {
		_, err := RequireUser(context.Background())
		require.Error(t, err)
		assert.True(t, errors.IsUnauthenticated(err))
	})

	t.Run("blank user id", func(t *testing.T) {
		ctx := WithIdentity(context.Background(), Identity{UserID: "  "})
		_, err := RequireUser(ctx)
		assert.True(t, errors.IsUnauthenticated(err))
	})

	t.Run("verified identity", func(t *testing.T) {
		ctx := WithIdentity(context.Background(), Identity{UserID: "user-1", Role: "authenticated"})
		userID, err := RequireUser(ctx)
		require.NoError(t, err)
		assert.Equal(t, UserID("user-1"), userID)
	})
}
