package source

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ErrConcurrentPublish is returned when another publisher already claimed
// the revision being published.
var ErrConcurrentPublish = errors.New("concurrent publish detected")

// DDBClient is the subset of the DynamoDB API used by RevisionStore.
type DDBClient interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// RevisionStore tracks which snapshot key is currently published for a
// named dataset, backed by DynamoDB.
//
// Publishing writes a new monotonically increasing revision with a
// conditional put, so two publishers racing on the same revision fail loudly
// instead of silently overwriting each other.
//
// Table schema:
//   - Partition key: dataset (string)
//   - Sort key: revision (number)
type RevisionStore struct {
	client    DDBClient
	tableName string
	dataset   string
}

// NewRevisionStore creates a revision store for one dataset name.
func NewRevisionStore(client DDBClient, tableName, datasetName string) *RevisionStore {
	return &RevisionStore{
		client:    client,
		tableName: tableName,
		dataset:   datasetName,
	}
}

// Current returns the most recently published revision and its snapshot
// key. Returns ErrNotFound when nothing was published yet.
func (s *RevisionStore) Current(ctx context.Context) (revision uint64, snapshotKey string, err error) {
	resp, err := s.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.tableName),
		KeyConditionExpression: aws.String("dataset = :ds"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ds": &types.AttributeValueMemberS{Value: s.dataset},
		},
		ScanIndexForward: aws.Bool(false), // Descending order
		Limit:            aws.Int32(1),
	})
	if err != nil {
		return 0, "", fmt.Errorf("query revisions: %w", err)
	}
	if len(resp.Items) == 0 {
		return 0, "", ErrNotFound
	}

	item := resp.Items[0]
	revAttr, ok := item["revision"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, "", errors.New("invalid revision attribute")
	}
	keyAttr, ok := item["snapshot_key"].(*types.AttributeValueMemberS)
	if !ok {
		return 0, "", errors.New("invalid snapshot_key attribute")
	}
	revision, err = strconv.ParseUint(revAttr.Value, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("parse revision: %w", err)
	}
	return revision, keyAttr.Value, nil
}

// Publish records revision -> snapshotKey. The put is conditional on the
// revision not existing yet; a race on the same revision returns
// ErrConcurrentPublish.
func (s *RevisionStore) Publish(ctx context.Context, revision uint64, snapshotKey string) error {
	_, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item: map[string]types.AttributeValue{
			"dataset":      &types.AttributeValueMemberS{Value: s.dataset},
			"revision":     &types.AttributeValueMemberN{Value: strconv.FormatUint(revision, 10)},
			"snapshot_key": &types.AttributeValueMemberS{Value: snapshotKey},
		},
		ConditionExpression: aws.String("attribute_not_exists(revision)"),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return ErrConcurrentPublish
		}
		return fmt.Errorf("publish revision: %w", err)
	}
	return nil
}
