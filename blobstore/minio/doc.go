// Package minio provides a blobstore.Store implementation using the MinIO
// client.
//
// MinIO is a high-performance, S3-compatible object storage system. This
// package uses the official MinIO Go client library for compatibility with
// MinIO and other S3-compatible systems like Ceph, SeaweedFS, and Garage.
//
// # Basic Usage
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := minioblob.NewStore(client, "my-bucket", "tables/")
//	r, err := dbfgo.OpenStore(ctx, store, "customers.dbf")
//
// # Features
//
//   - Native MinIO client, no AWS dependencies required
//   - Works with any S3-compatible storage (Ceph, Garage, SeaweedFS)
//   - Streaming reads, one GET per table scan
//   - Missing tables reported at Open, not mid-scan
package minio
