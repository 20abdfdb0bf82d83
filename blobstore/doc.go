// Package blobstore provides the read-only source abstraction for point data.
//
// A BlobStore resolves a name to a Blob; the point loader reads the whole
// blob sequentially through ReadRange.
//
// # Built-in Implementations
//
//   - LocalStore: Local filesystem rooted at a directory
//   - MemoryStore: In-memory blobs, used by tests
//   - minio.Store: MinIO and S3-compatible object storage
//   - s3.Store: Amazon S3 via the AWS SDK download manager
//
// # Custom Implementations
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)
//	}
//
//	type Blob interface {
//	    ReadAt(ctx, p, off) (int, error)
//	    ReadRange(ctx, off, len) (io.ReadCloser, error)
//	    Size() int64
//	    Close() error
//	}
package blobstore
