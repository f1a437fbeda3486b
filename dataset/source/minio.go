package source

import (
	"context"
	"io"
	"path"

	"github.com/minio/minio-go/v7"
)

// MinIO fetches snapshots from MinIO or any S3-compatible object store.
type MinIO struct {
	client *minio.Client
	bucket string
	key    string
}

// NewMinIO creates a MinIO-backed source for one snapshot object.
// prefix is prepended to the key (e.g. "datasets/").
func NewMinIO(client *minio.Client, bucket, prefix, key string) *MinIO {
	return &MinIO{
		client: client,
		bucket: bucket,
		key:    path.Join(prefix, key),
	}
}

// Fetch downloads the snapshot object.
func (s *MinIO) Fetch(ctx context.Context) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.Code == "NotFound" {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}
