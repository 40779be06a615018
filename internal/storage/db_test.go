package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDatabase_SeedsAdminOnce(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "students.db")

	repos, db, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)

	n, err := repos.Users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	admin, err := repos.Users.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin123", admin.Password)

	require.NoError(t, db.Close())

	// a second initialization must not create a second admin
	repos, db, err = InitDatabase(ctx, dsn)
	require.NoError(t, err)
	defer db.Close()

	n, err = repos.Users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestInitDatabase_StudentsUsable(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "students.db")

	repos, db, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	defer db.Close()

	all, err := repos.Students.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
