package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authsite/internal/app/user"
	"authsite/internal/configs"
)

func TestOpenUserStore(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		users, closeStore, err := openUserStore(ctx, &configs.AppConfig{StoreDriver: configs.StoreDriverMemory})
		require.NoError(t, err)
		defer closeStore()
		assert.IsType(t, &user.MemoryStore{}, users)
	})

	t.Run("postgres passes DATABASE_URL to the pool", func(t *testing.T) {
		_, _, err := openUserStore(ctx, &configs.AppConfig{
			StoreDriver: configs.StoreDriverPostgres,
			DatabaseDSN: "postgres://u:p@localhost:5432/%zz",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse database DSN")
	})
}
