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

const defaultServiceTypesTableName = "service_types"

type serviceTypeItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	SortOrder int    `dynamodbav:"sort_order"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ServiceTypeDynamoRepository persists the service category catalog (PK: id).
//
// BatchUpdateSortOrder runs one TransactWriteItems call with an
// attribute_exists condition per item: a single unknown id cancels the whole
// transaction and nothing is written. A nil result with a nil error signals
// that cancellation.

type ServiceTypeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceTypeRepository = (*ServiceTypeDynamoRepository)(nil)

func NewServiceTypeDynamoRepository(ddb *dynamodb.Client) *ServiceTypeDynamoRepository {
	return &ServiceTypeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICE_TYPES_TABLE", defaultServiceTypesTableName),
	}
}

func (r *ServiceTypeDynamoRepository) ListAll(ctx context.Context) ([]entities.ServiceType, error) {
	var out []entities.ServiceType
	var startKey map[string]types.AttributeValue
	for {
		page, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it serviceTypeItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, fromServiceTypeItem(it))
		}
		if len(page.LastEvaluatedKey) == 0 {
			break
		}
		startKey = page.LastEvaluatedKey
	}
	return out, nil
}

func (r *ServiceTypeDynamoRepository) BatchUpdateSortOrder(ctx context.Context, updates []interfaces.SortOrderUpdate) ([]entities.ServiceType, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	items := make([]types.TransactWriteItem, 0, len(updates))
	for _, upd := range updates {
		items = append(items, types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: upd.ID},
				},
				UpdateExpression:    aws.String("SET #sort_order = :sort_order, #updated_at = :updated_at"),
				ConditionExpression: aws.String("attribute_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id":         "id",
					"#sort_order": "sort_order",
					"#updated_at": "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":sort_order": numberAttr(int64(upd.SortOrder)),
					":updated_at": &types.AttributeValueMemberS{Value: now},
				},
			},
		})
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		if isConditionCanceled(err) {
			return nil, nil
		}
		return nil, err
	}

	updated := make([]entities.ServiceType, 0, len(updates))
	for _, upd := range updates {
		st, err := r.getByID(ctx, upd.ID)
		if err != nil {
			return nil, err
		}
		updated = append(updated, st)
	}
	return updated, nil
}

func (r *ServiceTypeDynamoRepository) getByID(ctx context.Context, id string) (entities.ServiceType, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceType{}, err
	}
	var it serviceTypeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceType{}, err
	}
	return fromServiceTypeItem(it), nil
}

func fromServiceTypeItem(it serviceTypeItem) entities.ServiceType {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.ServiceType{
		ID:        it.ID,
		Name:      it.Name,
		SortOrder: it.SortOrder,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
