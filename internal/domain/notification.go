package domain

import "time"

const (
	NotificationTypeReminder = "reminder"

	NotificationStatusSent   = "sent"
	NotificationStatusFailed = "failed"
)

// Notification is the audit record of one reminder delivery attempt.
// At most one non-forced reminder is created per (user, subscription) per
// calendar day; the dispatcher's same-day existence query enforces it.
type Notification struct {
	NotificationID    string            `json:"id" dynamodbav:"notification_id"`
	UserID            string            `json:"user_id" dynamodbav:"user_id"`
	SubscriptionID    string            `json:"subscription_id" dynamodbav:"subscription_id"`
	Type              string            `json:"type" dynamodbav:"type"`
	Title             string            `json:"title" dynamodbav:"title"`
	Message           string            `json:"message" dynamodbav:"message"`
	Status            string            `json:"status" dynamodbav:"status"`
	WhatsAppMessageID string            `json:"whatsapp_message_id,omitempty" dynamodbav:"whatsapp_message_id"`
	Metadata          map[string]string `json:"metadata,omitempty" dynamodbav:"metadata"`
	CreatedAt         time.Time         `json:"created" dynamodbav:"created_at"`
}
