package repository

import (
	"context"
	"errors"
	"time"

	"turismo_xpto/internal/domain/entities"
	"turismo_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOperatorCostsTableName = "operator_costs"
	requestIDIndexName            = "request_id-index"
)

type operatorCostItem struct {
	ID              string `dynamodbav:"id"`
	RequestID       string `dynamodbav:"request_id"`
	SupplierID      string `dynamodbav:"supplier_id,omitempty"`
	SupplierName    string `dynamodbav:"supplier_name,omitempty"`
	ServiceType     string `dynamodbav:"service_type"`
	ServiceDate     string `dynamodbav:"service_date"`
	CostBeforeTax   int64  `dynamodbav:"cost_before_tax"`
	VAT             int64  `dynamodbav:"vat"`
	TotalCost       int64  `dynamodbav:"total_cost"`
	PaymentStatus   string `dynamodbav:"payment_status"`
	PaymentDate     string `dynamodbav:"payment_date,omitempty"`
	PaymentDeadline string `dynamodbav:"payment_deadline,omitempty"`
	IsLocked        bool   `dynamodbav:"is_locked"`
	LockedAt        string `dynamodbav:"locked_at,omitempty"`
	LockedBy        string `dynamodbav:"locked_by,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// OperatorCostDynamoRepository persists OperatorCost entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI request_id-index: request_id (string)
//
// Every transition method re-asserts its guard precondition as a condition
// expression and writes the history entry in the same TransactWriteItems
// call: either the state change and the audit record both commit, or neither
// does. A condition failure (record gone or state changed since it was
// loaded) surfaces as a zero-value entity with a nil error.

type OperatorCostDynamoRepository struct {
	ddb              *dynamodb.Client
	tableName        string
	historyTableName string
}

var _ interfaces.IOperatorCostRepository = (*OperatorCostDynamoRepository)(nil)

func NewOperatorCostDynamoRepository(ddb *dynamodb.Client) *OperatorCostDynamoRepository {
	return &OperatorCostDynamoRepository{
		ddb:              ddb,
		tableName:        getenvDefault("OPERATOR_COSTS_TABLE", defaultOperatorCostsTableName),
		historyTableName: getenvDefault("OPERATOR_COST_HISTORY_TABLE", defaultHistoryTableName),
	}
}

func (r *OperatorCostDynamoRepository) GetByID(ctx context.Context, id string) (entities.OperatorCost, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.OperatorCost{}, err
	}
	if len(out.Item) == 0 {
		return entities.OperatorCost{}, nil
	}

	var it operatorCostItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.OperatorCost{}, err
	}
	return fromOperatorCostItem(it), nil
}

func (r *OperatorCostDynamoRepository) ListByRequestID(ctx context.Context, requestID string) ([]entities.OperatorCost, error) {
	var costs []entities.OperatorCost
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(requestIDIndexName),
			KeyConditionExpression: aws.String("#request_id = :request_id"),
			ExpressionAttributeNames: map[string]string{
				"#request_id": "request_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":request_id": &types.AttributeValueMemberS{Value: requestID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it operatorCostItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			costs = append(costs, fromOperatorCostItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return costs, nil
}

func (r *OperatorCostDynamoRepository) ListAll(ctx context.Context) ([]entities.OperatorCost, error) {
	var costs []entities.OperatorCost
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
			var it operatorCostItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			costs = append(costs, fromOperatorCostItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return costs, nil
}

func (r *OperatorCostDynamoRepository) ApprovePayment(ctx context.Context, cost entities.OperatorCost, paidAt time.Time, entry entities.HistoryEntry) (entities.OperatorCost, error) {
	return r.applyTransition(ctx, cost.ID, entry, approvedCost(cost, paidAt), func(now string) transitionWrite {
		return transitionWrite{
			update:    "SET #payment_status = :paid, #payment_date = :payment_date, #updated_at = :updated_at",
			condition: "attribute_exists(#id) AND #is_locked = :false AND #payment_status <> :paid",
			values: map[string]types.AttributeValue{
				":paid":         &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPaid)},
				":payment_date": &types.AttributeValueMemberS{Value: paidAt.UTC().Format(time.RFC3339Nano)},
				":updated_at":   &types.AttributeValueMemberS{Value: now},
				":false":        &types.AttributeValueMemberBOOL{Value: false},
			},
			names: map[string]string{
				"#payment_status": "payment_status",
				"#payment_date":   "payment_date",
				"#updated_at":     "updated_at",
				"#is_locked":      "is_locked",
			},
		}
	})
}

func (r *OperatorCostDynamoRepository) Lock(ctx context.Context, cost entities.OperatorCost, lock entities.LockState, entry entities.HistoryEntry) (entities.OperatorCost, error) {
	at, by, ok := lock.Holder()
	if !ok {
		return entities.OperatorCost{}, errors.New("lock state carries no holder")
	}
	return r.applyTransition(ctx, cost.ID, entry, lockedCost(cost, lock), func(now string) transitionWrite {
		return transitionWrite{
			update:    "SET #is_locked = :true, #locked_at = :locked_at, #locked_by = :locked_by, #updated_at = :updated_at",
			condition: "attribute_exists(#id) AND #is_locked = :false",
			values: map[string]types.AttributeValue{
				":true":       &types.AttributeValueMemberBOOL{Value: true},
				":false":      &types.AttributeValueMemberBOOL{Value: false},
				":locked_at":  &types.AttributeValueMemberS{Value: at.UTC().Format(time.RFC3339Nano)},
				":locked_by":  &types.AttributeValueMemberS{Value: by},
				":updated_at": &types.AttributeValueMemberS{Value: now},
			},
			names: map[string]string{
				"#is_locked":  "is_locked",
				"#locked_at":  "locked_at",
				"#locked_by":  "locked_by",
				"#updated_at": "updated_at",
			},
		}
	})
}

func (r *OperatorCostDynamoRepository) Unlock(ctx context.Context, cost entities.OperatorCost, entry entities.HistoryEntry) (entities.OperatorCost, error) {
	return r.applyTransition(ctx, cost.ID, entry, unlockedCost(cost), func(now string) transitionWrite {
		return transitionWrite{
			update:    "SET #is_locked = :false, #updated_at = :updated_at REMOVE #locked_at, #locked_by",
			condition: "attribute_exists(#id) AND #is_locked = :true",
			values: map[string]types.AttributeValue{
				":true":       &types.AttributeValueMemberBOOL{Value: true},
				":false":      &types.AttributeValueMemberBOOL{Value: false},
				":updated_at": &types.AttributeValueMemberS{Value: now},
			},
			names: map[string]string{
				"#is_locked":  "is_locked",
				"#locked_at":  "locked_at",
				"#locked_by":  "locked_by",
				"#updated_at": "updated_at",
			},
		}
	})
}

func (r *OperatorCostDynamoRepository) UpdateDetails(ctx context.Context, cost entities.OperatorCost, patch interfaces.CostDetailsPatch, entry entities.HistoryEntry) (entities.OperatorCost, error) {
	return r.applyTransition(ctx, cost.ID, entry, patchedCost(cost, patch), func(now string) transitionWrite {
		w := transitionWrite{
			update:    "SET #updated_at = :updated_at",
			condition: "attribute_exists(#id) AND #is_locked = :false",
			values: map[string]types.AttributeValue{
				":updated_at": &types.AttributeValueMemberS{Value: now},
				":false":      &types.AttributeValueMemberBOOL{Value: false},
			},
			names: map[string]string{
				"#updated_at": "updated_at",
				"#is_locked":  "is_locked",
			},
		}
		if patch.CostBeforeTax != nil {
			w.set("cost_before_tax", numberAttr(*patch.CostBeforeTax))
		}
		if patch.VAT != nil {
			w.set("vat", numberAttr(*patch.VAT))
		}
		if patch.TotalCost != nil {
			w.set("total_cost", numberAttr(*patch.TotalCost))
		}
		if patch.ServiceDate != nil {
			w.set("service_date", &types.AttributeValueMemberS{Value: patch.ServiceDate.UTC().Format(time.RFC3339Nano)})
		}
		if patch.PaymentDeadline != nil {
			w.set("payment_deadline", &types.AttributeValueMemberS{Value: patch.PaymentDeadline.UTC().Format(time.RFC3339Nano)})
		}
		return w
	})
}

// transitionWrite is the conditional update half of a transition transaction.
type transitionWrite struct {
	update    string
	condition string
	values    map[string]types.AttributeValue
	names     map[string]string
}

func (w *transitionWrite) set(attr string, value types.AttributeValue) {
	w.update += ", #" + attr + " = :" + attr
	w.names["#"+attr] = attr
	w.values[":"+attr] = value
}

func (r *OperatorCostDynamoRepository) applyTransition(
	ctx context.Context,
	id string,
	entry entities.HistoryEntry,
	projected entities.OperatorCost,
	build func(now string) transitionWrite,
) (entities.OperatorCost, error) {
	now := time.Now().UTC()
	projected.UpdatedAt = now
	w := build(now.Format(time.RFC3339Nano))

	histItem, err := marshalHistoryEntry(entry)
	if err != nil {
		return entities.OperatorCost{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: id},
					},
					UpdateExpression:          aws.String(w.update),
					ConditionExpression:       aws.String(w.condition),
					ExpressionAttributeValues: w.values,
					ExpressionAttributeNames:  mergeNames(w.names, map[string]string{"#id": "id"}),
				},
			},
			{
				Put: &types.Put{
					TableName: aws.String(r.historyTableName),
					Item:      histItem,
				},
			},
		},
	})
	if err != nil {
		if isConditionCanceled(err) {
			return entities.OperatorCost{}, nil
		}
		return entities.OperatorCost{}, err
	}
	// Return the committed patch projected onto the record the guard
	// validated. A re-read here could pick up a concurrent later write and
	// hand the caller state its own transition never produced.
	return projected, nil
}

func approvedCost(c entities.OperatorCost, paidAt time.Time) entities.OperatorCost {
	paidAt = paidAt.UTC()
	c.PaymentStatus = entities.PaymentStatusPaid
	c.PaymentDate = &paidAt
	return c
}

func lockedCost(c entities.OperatorCost, lock entities.LockState) entities.OperatorCost {
	c.Lock = lock
	return c
}

func unlockedCost(c entities.OperatorCost) entities.OperatorCost {
	c.Lock = entities.Unlocked()
	return c
}

func patchedCost(c entities.OperatorCost, patch interfaces.CostDetailsPatch) entities.OperatorCost {
	if patch.CostBeforeTax != nil {
		c.CostBeforeTax = *patch.CostBeforeTax
	}
	if patch.VAT != nil {
		c.VAT = *patch.VAT
	}
	if patch.TotalCost != nil {
		c.TotalCost = *patch.TotalCost
	}
	if patch.ServiceDate != nil {
		c.ServiceDate = patch.ServiceDate.UTC()
	}
	if patch.PaymentDeadline != nil {
		deadline := patch.PaymentDeadline.UTC()
		c.PaymentDeadline = &deadline
	}
	return c
}

// isConditionCanceled reports whether a transaction was canceled by a failed
// condition check, as opposed to a transport or throughput error.
func isConditionCanceled(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	for _, reason := range tce.CancellationReasons {
		if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}

func fromOperatorCostItem(it operatorCostItem) entities.OperatorCost {
	serviceDate, _ := time.Parse(time.RFC3339Nano, it.ServiceDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	lock := entities.Unlocked()
	if it.IsLocked {
		lockedAt, _ := time.Parse(time.RFC3339Nano, it.LockedAt)
		lock = entities.Locked(lockedAt, it.LockedBy)
	}

	return entities.OperatorCost{
		ID:              it.ID,
		RequestID:       it.RequestID,
		SupplierID:      it.SupplierID,
		SupplierName:    it.SupplierName,
		ServiceType:     it.ServiceType,
		ServiceDate:     serviceDate,
		CostBeforeTax:   it.CostBeforeTax,
		VAT:             it.VAT,
		TotalCost:       it.TotalCost,
		PaymentStatus:   entities.PaymentStatus(it.PaymentStatus),
		PaymentDate:     parseTimePtr(it.PaymentDate),
		PaymentDeadline: parseTimePtr(it.PaymentDeadline),
		Lock:            lock,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}
