package repository

import (
	"context"
	"errors"
	"time"

	"chatpay/internal/domain/entities"
	"chatpay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultFlowsTableName       = "payment_flows"
	flowsProviderPaymentIDIndex = "provider_payment_id-index"
)

type flowItemItem struct {
	ID        string `dynamodbav:"id"`
	Title     string `dynamodbav:"title"`
	Quantity  int64  `dynamodbav:"quantity"`
	UnitPrice int64  `dynamodbav:"unit_price"`
}

type paymentFlowItem struct {
	FlowID            string            `dynamodbav:"flow_id"`
	ConversationID    string            `dynamodbav:"conversation_id"`
	CustomerPhone     string            `dynamodbav:"customer_phone"`
	CustomerName      string            `dynamodbav:"customer_name,omitempty"`
	Items             []flowItemItem    `dynamodbav:"items"`
	TotalAmount       int64             `dynamodbav:"total_amount"`
	ProviderPaymentID string            `dynamodbav:"provider_payment_id,omitempty"`
	CheckoutURL       string            `dynamodbav:"checkout_url,omitempty"`
	Status            string            `dynamodbav:"status"`
	StatusReason      string            `dynamodbav:"status_reason,omitempty"`
	RetryCount        int               `dynamodbav:"retry_count"`
	Metadata          map[string]string `dynamodbav:"metadata,omitempty"`
	CreatedAt         string            `dynamodbav:"created_at"`
	UpdatedAt         string            `dynamodbav:"updated_at"`
	ExpiresAt         string            `dynamodbav:"expires_at"`
}

// PaymentFlowDynamoRepository persists PaymentFlow entities in DynamoDB.
//
// Table requirements:
//   - PK: flow_id (string)
//   - GSI: provider_payment_id-index (PK: provider_payment_id)
//
// All writes go through conditional expressions: inserts require the key to
// be absent, updates require the stored status to match the status the caller
// read. DynamoDB's conditional PutItem is the whole concurrency story here;
// the service holds no locks across external calls.

type PaymentFlowDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentFlowStore = (*PaymentFlowDynamoRepository)(nil)

func NewPaymentFlowDynamoRepository(ddb *dynamodb.Client) *PaymentFlowDynamoRepository {
	return &PaymentFlowDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_FLOWS_TABLE", defaultFlowsTableName),
	}
}

func (r *PaymentFlowDynamoRepository) Insert(ctx context.Context, flow entities.PaymentFlow) error {
	av, err := attributevalue.MarshalMap(toPaymentFlowItem(flow))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "flow_id",
		},
	})
	if isConditionalCheckFailed(err) {
		return interfaces.ErrFlowConflict
	}
	return err
}

func (r *PaymentFlowDynamoRepository) GetByFlowID(ctx context.Context, flowID string) (entities.PaymentFlow, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"flow_id": &types.AttributeValueMemberS{Value: flowID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentFlow{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentFlow{}, nil
	}

	var it paymentFlowItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentFlow{}, err
	}
	return fromPaymentFlowItem(it), nil
}

func (r *PaymentFlowDynamoRepository) GetByProviderPaymentID(ctx context.Context, providerPaymentID string) (entities.PaymentFlow, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(flowsProviderPaymentIDIndex),
		KeyConditionExpression: aws.String("provider_payment_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: providerPaymentID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.PaymentFlow{}, err
	}
	if len(out.Items) == 0 {
		return entities.PaymentFlow{}, nil
	}

	var it paymentFlowItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.PaymentFlow{}, err
	}
	return fromPaymentFlowItem(it), nil
}

func (r *PaymentFlowDynamoRepository) ConditionalUpdate(ctx context.Context, flow entities.PaymentFlow, expectedStatus entities.FlowStatus) error {
	av, err := attributevalue.MarshalMap(toPaymentFlowItem(flow))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("#status = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberS{Value: string(expectedStatus)},
		},
	})
	if isConditionalCheckFailed(err) {
		return interfaces.ErrConcurrentUpdate
	}
	return err
}

func (r *PaymentFlowDynamoRepository) ListExpired(ctx context.Context, now time.Time) ([]entities.PaymentFlow, error) {
	// Sweep volumes are small (flows expire after minutes); a filtered scan
	// keeps the table free of extra sparse indexes.
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#status IN (:created, :linkSent, :pending) AND expires_at < :now"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":created":  &types.AttributeValueMemberS{Value: string(entities.FlowStatusCreated)},
			":linkSent": &types.AttributeValueMemberS{Value: string(entities.FlowStatusLinkSent)},
			":pending":  &types.AttributeValueMemberS{Value: string(entities.FlowStatusPending)},
			":now":      &types.AttributeValueMemberS{Value: now.UTC().Format(time.RFC3339Nano)},
		},
	})
	if err != nil {
		return nil, err
	}

	flows := make([]entities.PaymentFlow, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentFlowItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		flows = append(flows, fromPaymentFlowItem(it))
	}
	return flows, nil
}

func isConditionalCheckFailed(err error) bool {
	if err == nil {
		return false
	}
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}

func toPaymentFlowItem(f entities.PaymentFlow) paymentFlowItem {
	items := make([]flowItemItem, 0, len(f.Items))
	for _, it := range f.Items {
		items = append(items, flowItemItem(it))
	}
	return paymentFlowItem{
		FlowID:            f.FlowID,
		ConversationID:    f.ConversationID,
		CustomerPhone:     f.CustomerPhone,
		CustomerName:      f.CustomerName,
		Items:             items,
		TotalAmount:       f.TotalAmount,
		ProviderPaymentID: f.ProviderPaymentID,
		CheckoutURL:       f.CheckoutURL,
		Status:            string(f.Status),
		StatusReason:      f.StatusReason,
		RetryCount:        f.RetryCount,
		Metadata:          f.Metadata,
		CreatedAt:         f.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         f.UpdatedAt.UTC().Format(time.RFC3339Nano),
		ExpiresAt:         f.ExpiresAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPaymentFlowItem(it paymentFlowItem) entities.PaymentFlow {
	items := make([]entities.FlowItem, 0, len(it.Items))
	for _, li := range it.Items {
		items = append(items, entities.FlowItem(li))
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	expiresAt, _ := time.Parse(time.RFC3339Nano, it.ExpiresAt)
	return entities.PaymentFlow{
		FlowID:            it.FlowID,
		ConversationID:    it.ConversationID,
		CustomerPhone:     it.CustomerPhone,
		CustomerName:      it.CustomerName,
		Items:             items,
		TotalAmount:       it.TotalAmount,
		ProviderPaymentID: it.ProviderPaymentID,
		CheckoutURL:       it.CheckoutURL,
		Status:            entities.FlowStatus(it.Status),
		StatusReason:      it.StatusReason,
		RetryCount:        it.RetryCount,
		Metadata:          it.Metadata,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
		ExpiresAt:         expiresAt,
	}
}
