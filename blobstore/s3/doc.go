// Package s3 provides an Amazon S3 implementation of the blobstore.Store
// interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("tables/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	r, err := dbfgo.OpenStore(ctx, store, "stations.dbf")
//
// # Features
//
//   - Streaming reads: a table open is one GetObject body, no buffering
//   - Bulk Download with parallel ranged parts, used by blobstore.CachingStore
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
