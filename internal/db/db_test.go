package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenCreatesSchema(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "local.db"))
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, db.Close()) })

	var tableName string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='local_storage'").Scan(&tableName)
	require.NoError(t, err)
	assert.Equal(t, "local_storage", tableName)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.db")

	first, err := Open(path)
	require.NoError(t, err)
	_, err = first.Exec("INSERT INTO local_storage (key, value) VALUES ('k', 'v')")
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, second.Close()) })

	var value string
	err = second.QueryRow("SELECT value FROM local_storage WHERE key = 'k'").Scan(&value)
	require.NoError(t, err)
	assert.Equal(t, "v", value)
}

func TestMigrationsApplyToExistingHandle(t *testing.T) {
	db, err := sql.Open("sqlite", "file:"+filepath.Join(t.TempDir(), "raw.db"))
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, db.Close()) })

	require.NoError(t, runMigrations(db))
	require.NoError(t, runMigrations(db))

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM local_storage").Scan(&count)
	require.NoError(t, err)
	assert.Zero(t, count)
}
