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

const defaultRevenuesTableName = "revenues"

type revenueItem struct {
	ID           string `dynamodbav:"id"`
	RequestID    string `dynamodbav:"request_id"`
	Description  string `dynamodbav:"description,omitempty"`
	Amount       int64  `dynamodbav:"amount"`
	ReceivedDate string `dynamodbav:"received_date"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// RevenueDynamoRepository reads customer revenue records (PK: id). Writes
// belong to the booking workflow.

type RevenueDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRevenueRepository = (*RevenueDynamoRepository)(nil)

func NewRevenueDynamoRepository(ddb *dynamodb.Client) *RevenueDynamoRepository {
	return &RevenueDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REVENUES_TABLE", defaultRevenuesTableName),
	}
}

func (r *RevenueDynamoRepository) ListAll(ctx context.Context) ([]entities.Revenue, error) {
	var revenues []entities.Revenue
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it revenueItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			receivedDate, _ := time.Parse(time.RFC3339Nano, it.ReceivedDate)
			createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
			revenues = append(revenues, entities.Revenue{
				ID:           it.ID,
				RequestID:    it.RequestID,
				Description:  it.Description,
				Amount:       it.Amount,
				ReceivedDate: receivedDate,
				CreatedAt:    createdAt,
			})
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return revenues, nil
}
