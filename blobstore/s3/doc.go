// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("cities/"),
//	    s3.WithRegion("eu-central-1"),
//	)
//
//	atlas, err := citysearch.Open(ctx, "data.txt", citysearch.WithBlobStore(store))
//
// # Features
//
//   - Whole-object fetch through the SDK download manager (parallel ranged GETs)
//   - Not-found mapping to blobstore.ErrNotFound
//   - Configurable prefix for multi-tenant isolation
package s3
