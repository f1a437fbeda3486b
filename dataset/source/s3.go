package source

import (
	"context"
	"errors"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Client is the subset of the S3 API used by the source. *s3.Client
// satisfies it; tests substitute a mock.
type S3Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3 fetches snapshots from Amazon S3 using the manager downloader.
type S3 struct {
	client S3Client
	bucket string
	key    string
}

// NewS3 creates an S3-backed source for one snapshot object.
// prefix is prepended to the key (e.g. "datasets/").
func NewS3(client S3Client, bucket, prefix, key string) *S3 {
	return &S3{
		client: client,
		bucket: bucket,
		key:    path.Join(prefix, key),
	}
}

// NewS3Default creates an S3 source with a client built from the default
// AWS configuration chain (environment, shared config, instance role).
func NewS3Default(ctx context.Context, bucket, prefix, key string) (*S3, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}
	return NewS3(s3.NewFromConfig(cfg), bucket, prefix, key), nil
}

// Fetch downloads the snapshot object.
func (s *S3) Fetch(ctx context.Context) ([]byte, error) {
	buf := manager.NewWriteAtBuffer(nil)
	downloader := manager.NewDownloader(s.client)

	_, err := downloader.Download(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, ErrNotFound
		}
		var nf *types.NotFound
		if errors.As(err, &nf) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return buf.Bytes(), nil
}
