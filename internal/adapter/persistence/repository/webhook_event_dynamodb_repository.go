package repository

import (
	"context"
	"fmt"
	"time"

	"chatpay/internal/domain/entities"
	"chatpay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultWebhookEventsTableName = "webhook_events"

type webhookEventItem struct {
	ProviderEventID string `dynamodbav:"provider_event_id"`
	FlowID          string `dynamodbav:"flow_id,omitempty"`
	PayloadHash     string `dynamodbav:"raw_payload_hash,omitempty"`
	ReceivedAt      string `dynamodbav:"received_at"`
}

// WebhookEventDynamoRepository persists webhook dedup records in DynamoDB.
//
// Table requirements:
//   - PK: provider_event_id (string)
//
// Notification-sent markers share the table under a composite key
// ("notification#<flow_id>#<status>"); both record kinds are insert-once and
// never mutated.

type WebhookEventDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWebhookEventStore = (*WebhookEventDynamoRepository)(nil)

func NewWebhookEventDynamoRepository(ddb *dynamodb.Client) *WebhookEventDynamoRepository {
	return &WebhookEventDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WEBHOOK_EVENTS_TABLE", defaultWebhookEventsTableName),
	}
}

func (r *WebhookEventDynamoRepository) RecordEvent(ctx context.Context, ev entities.WebhookEvent) (bool, error) {
	return r.insertOnce(ctx, webhookEventItem{
		ProviderEventID: ev.ProviderEventID,
		FlowID:          ev.FlowID,
		PayloadHash:     ev.PayloadHash,
		ReceivedAt:      ev.ReceivedAt.UTC().Format(time.RFC3339Nano),
	})
}

func (r *WebhookEventDynamoRepository) MarkNotificationSent(ctx context.Context, flowID string, status entities.FlowStatus) (bool, error) {
	return r.insertOnce(ctx, webhookEventItem{
		ProviderEventID: fmt.Sprintf("notification#%s#%s", flowID, status),
		FlowID:          flowID,
		ReceivedAt:      time.Now().UTC().Format(time.RFC3339Nano),
	})
}

func (r *WebhookEventDynamoRepository) insertOnce(ctx context.Context, it webhookEventItem) (bool, error) {
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "provider_event_id",
		},
	})
	if isConditionalCheckFailed(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
