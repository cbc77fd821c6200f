package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "file:/tmp/guestadmin.db?_busy_timeout=5000&_txlock=immediate", sqliteDSN("/tmp/guestadmin.db"))
}

func TestEnsureDBFile_CreatesOwnerOnlyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "guestadmin.db")

	require.NoError(t, ensureDBFile(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// existing file is left alone
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
	require.NoError(t, ensureDBFile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}
