package dynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/subtrack-notify/internal/domain"
)

// batchWriteMax is DynamoDB's per-request BatchWriteItem limit.
const batchWriteMax = 25

// NotificationRepo provides typed DynamoDB operations for the notifications table.
type NotificationRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewNotificationRepo(client *dynamodb.Client, tableName string) *NotificationRepo {
	return &NotificationRepo{client: client, tableName: tableName}
}

func (r *NotificationRepo) Put(ctx context.Context, n *domain.Notification) error {
	item, err := attributevalue.MarshalMap(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

// BatchPut bulk-inserts notifications in chunks of 25 (the BatchWriteItem cap).
func (r *NotificationRepo) BatchPut(ctx context.Context, notifications []domain.Notification) error {
	for start := 0; start < len(notifications); start += batchWriteMax {
		end := start + batchWriteMax
		if end > len(notifications) {
			end = len(notifications)
		}
		var writes []types.WriteRequest
		for i := start; i < end; i++ {
			item, err := attributevalue.MarshalMap(notifications[i])
			if err != nil {
				return fmt.Errorf("marshal notification: %w", err)
			}
			writes = append(writes, types.WriteRequest{
				PutRequest: &types.PutRequest{Item: item},
			})
		}
		_, err := r.client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{r.tableName: writes},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// ExistsSince reports whether a reminder notification already exists for the
// (user, subscription) pair created at or after since. The dispatcher passes
// the start of the user's local day to suppress duplicate sends.
func (r *NotificationRepo) ExistsSince(ctx context.Context, userID, subscriptionID string, since time.Time) (bool, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("user_id-created_at-index"),
		KeyConditionExpression: aws.String("user_id = :uid AND created_at >= :since"),
		FilterExpression:       aws.String("subscription_id = :sid AND #t = :reminder"),
		ExpressionAttributeNames: map[string]string{
			"#t": "type",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid":      &types.AttributeValueMemberS{Value: userID},
			":sid":      &types.AttributeValueMemberS{Value: subscriptionID},
			":since":    &types.AttributeValueMemberS{Value: since.UTC().Format(time.RFC3339Nano)},
			":reminder": &types.AttributeValueMemberS{Value: domain.NotificationTypeReminder},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return false, err
	}
	return len(out.Items) > 0, nil
}

// ListByUser returns the user's most recent notifications, newest first.
func (r *NotificationRepo) ListByUser(ctx context.Context, userID string, limit int32) ([]domain.Notification, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("user_id-created_at-index"),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(limit),
	})
	if err != nil {
		return nil, err
	}
	var notifications []domain.Notification
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// ScanRecent returns a page of notifications across all users (admin view).
// cursor is the notification_id to resume from; empty cursor starts a fresh scan.
func (r *NotificationRepo) ScanRecent(ctx context.Context, limit int32, cursor string) ([]domain.Notification, string, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
		Limit:     aws.Int32(limit),
	}
	if cursor != "" {
		input.ExclusiveStartKey = strKey("notification_id", cursor)
	}
	out, err := r.client.Scan(ctx, input)
	if err != nil {
		return nil, "", err
	}
	var notifications []domain.Notification
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &notifications); err != nil {
		return nil, "", err
	}
	nextCursor := ""
	if v, ok := out.LastEvaluatedKey["notification_id"].(*types.AttributeValueMemberS); ok {
		nextCursor = v.Value
	}
	return notifications, nextCursor, nil
}
