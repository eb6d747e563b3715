package blobstore

import (
	"context"
	"io"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	// 1. Put and Open
	data := []byte("table bytes")
	require.NoError(t, store.Put(ctx, "customers.dbf", data))

	rc, err := store.Open(ctx, "customers.dbf")
	require.NoError(t, err)

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, data, got)
	require.NoError(t, rc.Close())

	// 2. Missing tables fail at Open
	_, err = store.Open(ctx, "absent.dbf")
	require.ErrorIs(t, err, ErrNotFound)

	// 3. List with prefix
	require.NoError(t, store.Put(ctx, "archive/2019.dbf", []byte("old")))
	require.NoError(t, store.Put(ctx, "archive/2020.dbf", []byte("older")))

	names, err := store.List(ctx, "archive/")
	require.NoError(t, err)
	sort.Strings(names)
	assert.Equal(t, []string{"archive/2019.dbf", "archive/2020.dbf"}, names)

	all, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// 4. Delete
	require.NoError(t, store.Delete(ctx, "customers.dbf"))
	_, err = store.Open(ctx, "customers.dbf")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Isolation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	data := []byte("original")
	require.NoError(t, store.Put(ctx, "t.dbf", data))

	// Mutating the source slice after Put must not change stored bytes.
	data[0] = 'X'

	rc, err := store.Open(ctx, "t.dbf")
	require.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "original", string(got))

	// An open reader keeps its bytes across a replacing Put.
	rc2, err := store.Open(ctx, "t.dbf")
	require.NoError(t, err)
	defer rc2.Close()

	require.NoError(t, store.Put(ctx, "t.dbf", []byte("replaced")))

	got2, err := io.ReadAll(rc2)
	require.NoError(t, err)
	assert.Equal(t, "original", string(got2))
}
