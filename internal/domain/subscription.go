package domain

import "time"

const SubscriptionActive = "active"

// Subscription is a tracked recurring charge. Read-only from this service's
// perspective; the subscription CRUD lives in the main product API.
type Subscription struct {
	SubscriptionID string    `json:"id" dynamodbav:"subscription_id"`
	UserID         string    `json:"user_id" dynamodbav:"user_id"`
	Name           string    `json:"name" dynamodbav:"name"`
	Amount         float64   `json:"amount" dynamodbav:"amount"`
	Currency       string    `json:"currency" dynamodbav:"currency"`
	BillingCycle   string    `json:"billing_cycle" dynamodbav:"billing_cycle"`
	NextBilling    time.Time `json:"next_billing" dynamodbav:"next_billing"`
	Category       string    `json:"category" dynamodbav:"category"`
	PaymentMethod  string    `json:"payment_method" dynamodbav:"payment_method"`
	Status         string    `json:"status" dynamodbav:"status"`
	CreatedAt      time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt      time.Time `json:"updated" dynamodbav:"updated_at"`
}
