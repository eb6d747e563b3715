package s3

import (
	"context"
	"errors"
	"io"
	"path"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/hupe1980/dbfgo/blobstore"
)

// Client is the subset of the S3 API the store uses. *s3.Client satisfies
// it; tests substitute a mock.
type Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// Options configures a Store.
type Options struct {
	// Prefix is prepended to all keys (e.g. "tables/").
	Prefix string

	// Region overrides the region of the default configuration chain.
	// Only used by New.
	Region string

	// DownloadConcurrency is the number of parallel part fetches used by
	// Download. Zero keeps the manager default.
	DownloadConcurrency int
}

// WithPrefix prepends a key prefix to every table name.
func WithPrefix(prefix string) func(*Options) {
	return func(o *Options) {
		o.Prefix = prefix
	}
}

// WithRegion pins the AWS region instead of resolving it from the
// environment.
func WithRegion(region string) func(*Options) {
	return func(o *Options) {
		o.Region = region
	}
}

// WithDownloadConcurrency sets the number of parallel part fetches used by
// Download.
func WithDownloadConcurrency(n int) func(*Options) {
	return func(o *Options) {
		o.DownloadConcurrency = n
	}
}

// Store implements blobstore.Store for Amazon S3.
type Store struct {
	client     Client
	downloader *manager.Downloader
	bucket     string
	prefix     string
}

// New creates a Store using the default AWS configuration chain
// (environment, shared config, instance role).
func New(ctx context.Context, bucket string, optFns ...func(*Options)) (*Store, error) {
	o := applyOptions(optFns)

	var loadOpts []func(*config.LoadOptions) error
	if o.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(o.Region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	return newStore(s3.NewFromConfig(cfg), bucket, o), nil
}

// NewStore creates a Store from an existing client.
func NewStore(client Client, bucket string, optFns ...func(*Options)) *Store {
	return newStore(client, bucket, applyOptions(optFns))
}

func newStore(client Client, bucket string, o Options) *Store {
	downloader := manager.NewDownloader(client, func(d *manager.Downloader) {
		if o.DownloadConcurrency > 0 {
			d.Concurrency = o.DownloadConcurrency
		}
	})

	return &Store{
		client:     client,
		downloader: downloader,
		bucket:     bucket,
		prefix:     o.Prefix,
	}
}

func applyOptions(optFns []func(*Options)) Options {
	var o Options
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

func (s *Store) key(name string) string {
	return path.Join(s.prefix, name)
}

// Open starts a streaming read of the named table. The returned body is the
// GetObject stream; close it to release the connection.
func (s *Store) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	resp, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, blobstore.ErrNotFound
		}
		return nil, err
	}

	return resp.Body, nil
}

// Download fetches the whole object into w with parallel ranged parts.
// It implements blobstore.Downloader for CachingStore warm-ups.
func (s *Store) Download(ctx context.Context, name string, w io.WriterAt) (int64, error) {
	n, err := s.downloader.Download(ctx, w, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return n, blobstore.ErrNotFound
		}
		return n, err
	}
	return n, nil
}

// List returns the table names under prefix, sorted, with the store's root
// prefix stripped.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	fullPrefix := s.key(prefix)
	var keys []string

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(fullPrefix),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, obj := range page.Contents {
			relPath := *obj.Key
			if len(s.prefix) > 0 {
				if len(relPath) > len(s.prefix) && relPath[:len(s.prefix)] == s.prefix {
					relPath = relPath[len(s.prefix):]
					if len(relPath) > 0 && relPath[0] == '/' {
						relPath = relPath[1:]
					}
				}
			}
			keys = append(keys, relPath)
		}
	}
	sort.Strings(keys)
	return keys, nil
}
