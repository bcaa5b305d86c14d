package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilePersister_LoadMissing(t *testing.T) {
	p, err := NewFilePersister(t.TempDir())
	require.NoError(t, err)

	_, err = p.Load(context.Background(), "appointments")
	assert.ErrorIs(t, err, ErrNotExist)
}

func TestFilePersister_SaveOverwrites(t *testing.T) {
	dir := t.TempDir()
	p, err := NewFilePersister(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, p.Save(ctx, "users", []byte(`[{"id":1}]`)))
	require.NoError(t, p.Save(ctx, "users", []byte(`[]`)))

	got, err := p.Load(ctx, "users")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
	assert.Equal(t, "users.json", entries[0].Name())
}

func TestNewFilePersister_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	_, err := NewFilePersister(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
