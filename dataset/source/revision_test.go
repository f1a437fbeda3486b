package source

import (
	"context"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockDDBClient is an in-memory DynamoDB mock for testing.
type mockDDBClient struct {
	mu    sync.RWMutex
	items map[string]map[string]types.AttributeValue
}

func newMockDDBClient() *mockDDBClient {
	return &mockDDBClient{
		items: make(map[string]map[string]types.AttributeValue),
	}
}

func (m *mockDDBClient) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ds := params.Item["dataset"].(*types.AttributeValueMemberS).Value
	rev := params.Item["revision"].(*types.AttributeValueMemberN).Value
	key := ds + ":" + rev

	if params.ConditionExpression != nil && *params.ConditionExpression == "attribute_not_exists(revision)" {
		if _, exists := m.items[key]; exists {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("condition failed")}
		}
	}

	m.items[key] = params.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (m *mockDDBClient) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ds := params.ExpressionAttributeValues[":ds"].(*types.AttributeValueMemberS).Value

	var items []map[string]types.AttributeValue
	for _, item := range m.items {
		if item["dataset"].(*types.AttributeValueMemberS).Value == ds {
			items = append(items, item)
		}
	}

	// Sort descending by revision. Revisions in these tests are single
	// digit, so the string compare matches the numeric order.
	for i := 0; i < len(items)-1; i++ {
		for j := i + 1; j < len(items); j++ {
			vi := items[i]["revision"].(*types.AttributeValueMemberN).Value
			vj := items[j]["revision"].(*types.AttributeValueMemberN).Value
			if vi < vj {
				items[i], items[j] = items[j], items[i]
			}
		}
	}

	if params.Limit != nil && int(*params.Limit) < len(items) {
		items = items[:*params.Limit]
	}

	return &dynamodb.QueryOutput{Items: items}, nil
}

func TestRevisionStoreEmpty(t *testing.T) {
	store := NewRevisionStore(newMockDDBClient(), "revisions", "periodic")

	_, _, err := store.Current(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRevisionStorePublishAndCurrent(t *testing.T) {
	ctx := context.Background()
	store := NewRevisionStore(newMockDDBClient(), "revisions", "periodic")

	require.NoError(t, store.Publish(ctx, 1, "snapshots/periodic-v1.bin"))
	require.NoError(t, store.Publish(ctx, 2, "snapshots/periodic-v2.bin"))

	rev, key, err := store.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), rev)
	assert.Equal(t, "snapshots/periodic-v2.bin", key)
}

func TestRevisionStoreConcurrentPublish(t *testing.T) {
	ctx := context.Background()
	store := NewRevisionStore(newMockDDBClient(), "revisions", "periodic")

	require.NoError(t, store.Publish(ctx, 1, "snapshots/a.bin"))

	err := store.Publish(ctx, 1, "snapshots/b.bin")
	assert.ErrorIs(t, err, ErrConcurrentPublish)

	// The losing publish must not overwrite the winner.
	_, key, err := store.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "snapshots/a.bin", key)
}

func TestRevisionStoreIsolatedByDataset(t *testing.T) {
	ctx := context.Background()
	client := newMockDDBClient()
	periodic := NewRevisionStore(client, "revisions", "periodic")
	constants := NewRevisionStore(client, "revisions", "constants")

	require.NoError(t, periodic.Publish(ctx, 5, "snapshots/periodic.bin"))
	require.NoError(t, constants.Publish(ctx, 1, "snapshots/constants.bin"))

	rev, key, err := constants.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), rev)
	assert.Equal(t, "snapshots/constants.bin", key)

	rev, key, err = periodic.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), rev)
	assert.Equal(t, "snapshots/periodic.bin", key)
}
