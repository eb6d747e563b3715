package mmap

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "table.dbf")
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestMmap_OpenReadClose(t *testing.T) {
	content := []byte("Hello, Mmap!")

	m, err := Open(writeTemp(t, content))
	require.NoError(t, err)
	defer m.Close()

	assert.Equal(t, len(content), m.Size())
	assert.Equal(t, content, m.Bytes())

	// ReadAt
	buf := make([]byte, 5)
	n, err := m.ReadAt(buf, 7) // "Mmap!"
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "Mmap!", string(buf))

	// ReadAt out of bounds
	buf2 := make([]byte, 10)
	n, err = m.ReadAt(buf2, 100)
	assert.Equal(t, 0, n)
	assert.Equal(t, io.EOF, err)

	// ReadAt partial
	buf3 := make([]byte, 10)
	n, err = m.ReadAt(buf3, 7) // "Mmap!" (5 bytes)
	assert.Equal(t, 5, n)
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, "Mmap!", string(buf3[:n]))

	// ReadAt negative offset
	_, err = m.ReadAt(buf, -1)
	assert.Equal(t, ErrInvalidOffset, err)
}

func TestMmap_EmptyFile(t *testing.T) {
	m, err := Open(writeTemp(t, nil))
	require.NoError(t, err)
	defer m.Close()

	assert.Equal(t, 0, m.Size())
	assert.Empty(t, m.Bytes())
	assert.NoError(t, m.Advise(AccessSequential))
}

func TestMmap_Advise(t *testing.T) {
	m, err := Open(writeTemp(t, make([]byte, 1024)))
	require.NoError(t, err)
	defer m.Close()

	require.NoError(t, m.Advise(AccessSequential))
	require.NoError(t, m.Advise(AccessRandom))
	require.NoError(t, m.Advise(AccessDefault))
}

func TestMmap_AfterClose(t *testing.T) {
	m, err := Open(writeTemp(t, []byte("data")))
	require.NoError(t, err)

	require.NoError(t, m.Close())

	// Close is idempotent
	require.NoError(t, m.Close())

	// Methods after close
	assert.Nil(t, m.Bytes())
	assert.Error(t, m.Advise(AccessRandom))
	_, err = m.ReadAt(make([]byte, 1), 0)
	assert.Equal(t, ErrClosed, err)
}
