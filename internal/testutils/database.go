package testutils

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/KirkDiggler/rpg-sheet-api/internal/database"
	"github.com/KirkDiggler/rpg-sheet-api/internal/logger"
)

// CreateTestDB opens a private in-memory SQLite database with the full schema
func CreateTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(&database.Config{
		Driver: database.DriverSQLite,
		DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		Logger: logger.Nop(),
	})
	require.NoError(t, err, "failed to open test database")

	require.NoError(t, database.Migrate(context.Background(), db), "failed to migrate test database")

	t.Cleanup(func() {
		_ = database.Close(db)
	})

	return db
}
