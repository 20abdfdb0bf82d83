package s3

import (
	"context"
	"errors"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/hupe1980/citysearch/blobstore"
)

// Client is the subset of the S3 API used by Store.
// *s3.Client satisfies it.
type Client interface {
	manager.DownloadAPIClient
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

// DownloadConfig configures the S3 download manager.
type DownloadConfig struct {
	// PartSize is the size of each ranged GET.
	// Default: SDK default (5MB)
	PartSize int64

	// Concurrency is the number of concurrent part downloads.
	// Default: 1; point files are small.
	Concurrency int
}

// Store implements blobstore.BlobStore for S3.
type Store struct {
	client   Client
	bucket   string
	prefix   string
	download DownloadConfig
}

// NewStore creates a new S3 blob store.
// rootPrefix is prepended to all keys (e.g. "cities/").
func NewStore(client Client, bucket, rootPrefix string) *Store {
	return &Store{
		client: client,
		bucket: bucket,
		prefix: rootPrefix,
		download: DownloadConfig{
			Concurrency: 1,
		},
	}
}

type options struct {
	prefix   string
	region   string
	endpoint string
	download DownloadConfig
}

// Option configures New.
type Option func(*options)

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithRegion overrides the region from the default AWS configuration chain.
func WithRegion(region string) Option {
	return func(o *options) {
		o.region = region
	}
}

// WithEndpoint sets a custom endpoint (e.g. LocalStack) and enables path-style addressing.
func WithEndpoint(endpoint string) Option {
	return func(o *options) {
		o.endpoint = endpoint
	}
}

// WithDownloadConfig overrides the download manager settings.
func WithDownloadConfig(cfg DownloadConfig) Option {
	return func(o *options) {
		o.download = cfg
	}
}

// New creates a Store using the default AWS configuration chain
// (environment, shared config, IMDS).
func New(ctx context.Context, bucket string, optFns ...Option) (*Store, error) {
	if bucket == "" {
		return nil, errors.New("s3: bucket is required")
	}

	o := options{download: DownloadConfig{Concurrency: 1}}
	for _, fn := range optFns {
		fn(&o)
	}

	var loadOpts []func(*config.LoadOptions) error
	if o.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(o.region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("s3: load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(so *s3.Options) {
		if o.endpoint != "" {
			so.BaseEndpoint = aws.String(o.endpoint)
			so.UsePathStyle = true
		}
	})

	s := NewStore(client, bucket, o.prefix)
	s.download = o.download
	return s, nil
}

func (s *Store) key(name string) string {
	return path.Join(s.prefix, name)
}

// Open fetches the whole object and returns it as an in-memory blob.
func (s *Store) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	key := s.key(name)

	// Get metadata to verify existence and size
	head, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, blobstore.ErrNotFound
		}
		return nil, err
	}

	size := aws.ToInt64(head.ContentLength)
	if size == 0 {
		return blobstore.NewMemoryBlob(nil), nil
	}

	downloader := manager.NewDownloader(s.client, func(d *manager.Downloader) {
		if s.download.PartSize > 0 {
			d.PartSize = s.download.PartSize
		}
		if s.download.Concurrency > 0 {
			d.Concurrency = s.download.Concurrency
		}
	})

	buf := manager.NewWriteAtBuffer(make([]byte, 0, size))
	n, err := downloader.Download(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, blobstore.ErrNotFound
		}
		return nil, fmt.Errorf("s3: download %s: %w", key, err)
	}

	return blobstore.NewMemoryBlob(buf.Bytes()[:n]), nil
}

func isNotFound(err error) bool {
	var nf *types.NotFound
	if errors.As(err, &nf) {
		return true
	}
	var nsk *types.NoSuchKey
	return errors.As(err, &nsk)
}
