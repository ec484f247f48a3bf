package repository

import (
	"context"
	"time"

	"turismo_xpto/internal/domain/entities"
	"turismo_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultHistoryTableName = "operator_cost_history"
	entityIDIndexName       = "entity_id-index"
)

type historyChangeItem struct {
	Field  string  `dynamodbav:"field"`
	Before *string `dynamodbav:"before"`
	After  *string `dynamodbav:"after"`
}

type historyItem struct {
	ID        string              `dynamodbav:"id"`
	EntityID  string              `dynamodbav:"entity_id"`
	Action    string              `dynamodbav:"action"`
	Changes   []historyChangeItem `dynamodbav:"changes"`
	UserID    string              `dynamodbav:"user_id"`
	Timestamp string              `dynamodbav:"timestamp"`
}

// marshalHistoryEntry is shared with the operator cost repository, which puts
// history items inside its transition transactions.
func marshalHistoryEntry(e entities.HistoryEntry) (map[string]types.AttributeValue, error) {
	changes := make([]historyChangeItem, 0, len(e.Changes))
	for _, c := range e.Changes {
		changes = append(changes, historyChangeItem{Field: string(c.Field), Before: c.Before, After: c.After})
	}
	return attributevalue.MarshalMap(historyItem{
		ID:        e.ID,
		EntityID:  e.EntityID,
		Action:    string(e.Action),
		Changes:   changes,
		UserID:    e.UserID,
		Timestamp: e.Timestamp.UTC().Format(time.RFC3339Nano),
	})
}

// HistoryDynamoRepository reads the audit log.
//
// Table requirements:
//   - PK: id (string)
//   - GSI entity_id-index: entity_id (hash), timestamp (range)
//
// Entries are immutable once written; this repository exposes no update or
// delete path at all.

type HistoryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IHistoryRepository = (*HistoryDynamoRepository)(nil)

func NewHistoryDynamoRepository(ddb *dynamodb.Client) *HistoryDynamoRepository {
	return &HistoryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("OPERATOR_COST_HISTORY_TABLE", defaultHistoryTableName),
	}
}

func (r *HistoryDynamoRepository) ListByEntityID(ctx context.Context, entityID string) ([]entities.HistoryEntry, error) {
	var entries []entities.HistoryEntry
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(entityIDIndexName),
			KeyConditionExpression: aws.String("#entity_id = :entity_id"),
			ExpressionAttributeNames: map[string]string{
				"#entity_id": "entity_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":entity_id": &types.AttributeValueMemberS{Value: entityID},
			},
			// Newest first is the canonical read order of the audit trail.
			ScanIndexForward:  aws.Bool(false),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it historyItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			entries = append(entries, fromHistoryItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return entries, nil
}

func fromHistoryItem(it historyItem) entities.HistoryEntry {
	ts, _ := time.Parse(time.RFC3339Nano, it.Timestamp)
	changes := make([]entities.FieldChange, 0, len(it.Changes))
	for _, c := range it.Changes {
		changes = append(changes, entities.FieldChange{Field: entities.CostField(c.Field), Before: c.Before, After: c.After})
	}
	return entities.HistoryEntry{
		ID:        it.ID,
		EntityID:  it.EntityID,
		Action:    entities.HistoryAction(it.Action),
		Changes:   changes,
		UserID:    it.UserID,
		Timestamp: ts,
	}
}
