package http

import (
	"context"
	"time"

	"github.com/subtrack-notify/internal/domain"
)

// VerificationRepository is the minimal interface the router requires from a
// phone verification store.
type VerificationRepository interface {
	Put(ctx context.Context, v *domain.PhoneVerification) error
	Get(ctx context.Context, userID, phoneNumber string) (*domain.PhoneVerification, error)
	Update(ctx context.Context, userID, phoneNumber string, updates map[string]interface{}) error
}

// SettingsRepository is the minimal interface the router requires from a
// user settings store.
type SettingsRepository interface {
	Get(ctx context.Context, userID string) (*domain.UserSettings, error)
	Put(ctx context.Context, s *domain.UserSettings) error
	Update(ctx context.Context, userID string, updates map[string]interface{}) error
	ListReminderEligible(ctx context.Context) ([]domain.UserSettings, error)
}

// SubscriptionRepository is the minimal interface the router requires from a
// subscription store.
type SubscriptionRepository interface {
	Get(ctx context.Context, subscriptionID string) (*domain.Subscription, error)
	ListActiveByUser(ctx context.Context, userID string) ([]domain.Subscription, error)
}

// NotificationRepository is the minimal interface the router requires from a
// notification log store.
type NotificationRepository interface {
	Put(ctx context.Context, n *domain.Notification) error
	BatchPut(ctx context.Context, ns []domain.Notification) error
	ExistsSince(ctx context.Context, userID, subscriptionID string, since time.Time) (bool, error)
	ListByUser(ctx context.Context, userID string, limit int32) ([]domain.Notification, error)
	ScanRecent(ctx context.Context, limit int32, cursor string) ([]domain.Notification, string, error)
}
