package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockS3Client struct {
	mock.Mock
}

func (m *MockS3Client) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	args := m.Called(ctx, params)
	if out := args.Get(0); out != nil {
		return out.(*s3.GetObjectOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestS3Fetch(t *testing.T) {
	payload := []byte("snapshot payload")
	mockClient := new(MockS3Client)
	src := NewS3(mockClient, "test-bucket", "datasets", "periodic.bin")

	mockClient.On("GetObject", mock.Anything, mock.MatchedBy(func(input *s3.GetObjectInput) bool {
		return *input.Bucket == "test-bucket" && *input.Key == "datasets/periodic.bin"
	})).Return(&s3.GetObjectOutput{
		Body:          io.NopCloser(bytes.NewReader(payload)),
		ContentLength: aws.Int64(int64(len(payload))),
		ContentRange:  aws.String(fmt.Sprintf("bytes 0-%d/%d", len(payload)-1, len(payload))),
	}, nil).Once()

	got, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, payload, got)
	mockClient.AssertExpectations(t)
}

func TestS3FetchNotFound(t *testing.T) {
	mockClient := new(MockS3Client)
	src := NewS3(mockClient, "test-bucket", "", "missing.bin")

	mockClient.On("GetObject", mock.Anything, mock.MatchedBy(func(input *s3.GetObjectInput) bool {
		return *input.Key == "missing.bin"
	})).Return(nil, &types.NoSuchKey{}).Once()

	_, err := src.Fetch(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
	mockClient.AssertExpectations(t)
}

func TestS3FetchBackendError(t *testing.T) {
	mockClient := new(MockS3Client)
	src := NewS3(mockClient, "test-bucket", "", "broken.bin")

	mockClient.On("GetObject", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("throttled")).Once()

	_, err := src.Fetch(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestNewS3JoinsPrefix(t *testing.T) {
	src := NewS3(new(MockS3Client), "b", "datasets/", "v1/periodic.bin")
	assert.Equal(t, "datasets/v1/periodic.bin", src.key)
}
