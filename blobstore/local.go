package blobstore

import (
	"bytes"
	"context"
	"io"
	"path/filepath"

	"github.com/hupe1980/dbfgo/internal/mmap"
)

// LocalStore implements Store using the local file system.
type LocalStore struct {
	root string
}

// NewLocalStore creates a new LocalStore rooted at the given directory.
func NewLocalStore(root string) *LocalStore {
	return &LocalStore{root: root}
}

// Open opens the named table for reading. The file is memory-mapped and
// advised for sequential access; bytes are served without further copies.
func (s *LocalStore) Open(_ context.Context, name string) (io.ReadCloser, error) {
	m, err := mmap.Open(filepath.Join(s.root, name))
	if err != nil {
		return nil, err
	}

	// The hint is advisory; a refusal changes nothing about correctness.
	_ = m.Advise(mmap.AccessSequential)

	return &localBlob{m: m, r: bytes.NewReader(m.Bytes())}, nil
}

type localBlob struct {
	m *mmap.Mapping
	r *bytes.Reader
}

func (b *localBlob) Read(p []byte) (int, error) {
	return b.r.Read(p)
}

func (b *localBlob) Close() error {
	return b.m.Close()
}
