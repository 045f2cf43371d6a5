package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "pano.db")

	db, err := OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, found, err := db.Get(ctx, TasksKey)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, db.Set(ctx, TasksKey, []byte("[]")))

	value, found, err := db.Get(ctx, TasksKey)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "[]", string(value))
}

func TestSQLiteOverwrite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "pano.db")

	db, err := OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Set(ctx, BoardKey, []byte("v1")))
	require.NoError(t, db.Set(ctx, BoardKey, []byte("v2")))

	value, found, err := db.Get(ctx, BoardKey)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "v2", string(value))
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "pano.db")

	db, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, db.Set(ctx, TasksKey, []byte(`[{"id":"1"}]`)))
	require.NoError(t, db.Close())

	db, err = OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	value, found, err := db.Get(ctx, TasksKey)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, `[{"id":"1"}]`, string(value))
}
