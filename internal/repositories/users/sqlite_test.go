package users

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/studentdesk/internal/common"
	"github.com/dmitrijs2005/studentdesk/internal/models"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE users (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  username TEXT NOT NULL UNIQUE,
  password TEXT NOT NULL,
  created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`)
	require.NoError(t, err)
	return db
}

func TestAddAndGetByUsername(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	u, err := models.NewUser("admin", "admin123")
	require.NoError(t, err)

	id, err := r.Add(ctx, u)
	require.NoError(t, err)
	require.Positive(t, id)

	got, err := r.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "admin", got.Username)
	assert.Equal(t, "admin123", got.Password)
}

func TestGetByUsername_NotFound(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	_, err := r.GetByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestAdd_DuplicateUsername(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	u, err := models.NewUser("admin", "pw1")
	require.NoError(t, err)
	_, err = r.Add(ctx, u)
	require.NoError(t, err)

	again, err := models.NewUser("admin", "pw2")
	require.NoError(t, err)
	_, err = r.Add(ctx, again)
	require.Error(t, err)

	var dup *common.DuplicateKeyError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "username", dup.Field)
}

func TestCount(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	u, err := models.NewUser("admin", "pw")
	require.NoError(t, err)
	_, err = r.Add(ctx, u)
	require.NoError(t, err)

	n, err = r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
