// Package minio provides a BlobStore implementation using the MinIO client.
//
// MinIO is an S3-compatible object storage system. This package uses the
// official MinIO Go client library and works with other S3-compatible
// storage systems like Ceph, SeaweedFS, and Garage.
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
//	store := minioblob.NewStore(client, "my-bucket", "cities/")
//	atlas, err := citysearch.Open(ctx, "data.txt", citysearch.WithBlobStore(store))
//
// Or, with static credentials:
//
//	store, err := minioblob.Dial("localhost:9000", "minioadmin", "minioadmin", false, "my-bucket", "")
package minio
