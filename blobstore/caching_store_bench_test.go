package blobstore

import (
	"context"
	"io"
	"testing"
)

func BenchmarkCachingStore_WarmOpen(b *testing.B) {
	ctx := context.Background()

	remote := NewMemoryStore()
	data := make([]byte, 1<<20)
	if err := remote.Put(ctx, "bench.dbf", data); err != nil {
		b.Fatal(err)
	}

	store, err := NewCachingStore(remote, b.TempDir(), nil)
	if err != nil {
		b.Fatal(err)
	}

	// Warm the cache once so the loop measures local opens only.
	if err := store.Prefetch(ctx, []string{"bench.dbf"}); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()

	for b.Loop() {
		rc, err := store.Open(ctx, "bench.dbf")
		if err != nil {
			b.Fatal(err)
		}
		if _, err := io.Copy(io.Discard, rc); err != nil {
			b.Fatal(err)
		}
		if err := rc.Close(); err != nil {
			b.Fatal(err)
		}
	}
}
