package reminder

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/subtrack-notify/internal/domain"
	"github.com/subtrack-notify/internal/pkg/id"
)

// SettingsStore lists users eligible for WhatsApp reminders.
type SettingsStore interface {
	ListReminderEligible(ctx context.Context) ([]domain.UserSettings, error)
}

// SubscriptionStore reads a user's active subscriptions.
type SubscriptionStore interface {
	ListActiveByUser(ctx context.Context, userID string) ([]domain.Subscription, error)
}

// NotificationStore checks the dedup window and records delivery outcomes.
type NotificationStore interface {
	ExistsSince(ctx context.Context, userID, subscriptionID string, since time.Time) (bool, error)
	BatchPut(ctx context.Context, notifications []domain.Notification) error
}

// MessageSender delivers a reminder over WhatsApp.
type MessageSender interface {
	SendText(ctx context.Context, to, body string) (string, error)
}

// DispatchRequest narrows a dispatch scan. A zero value means "scan everyone".
type DispatchRequest struct {
	UserID         *string `json:"userId"`
	SubscriptionID *string `json:"subscriptionId"`
	Force          bool    `json:"force"`
}

// DispatchResult summarises one dispatch scan.
type DispatchResult struct {
	RemindersSent        int `json:"remindersSent"`
	NotificationsCreated int `json:"notificationsCreated"`
}

type Service interface {
	Dispatch(ctx context.Context, req DispatchRequest) (*DispatchResult, error)
}

type service struct {
	settings      SettingsStore
	subscriptions SubscriptionStore
	notifications NotificationStore
	sender        MessageSender
	sendDelay     time.Duration
	now           func() time.Time
	sleep         func(time.Duration)
}

func NewService(
	settings SettingsStore,
	subscriptions SubscriptionStore,
	notifications NotificationStore,
	sender MessageSender,
	sendDelay time.Duration,
) Service {
	return &service{
		settings:      settings,
		subscriptions: subscriptions,
		notifications: notifications,
		sender:        sender,
		sendDelay:     sendDelay,
		now:           time.Now,
		sleep:         time.Sleep,
	}
}

// Dispatch runs one sequential scan over eligible users and their active
// subscriptions. Per-user and per-subscription failures are logged and
// skipped; only a failure to list eligible users aborts the scan. Individual
// send failures end up as failed notification records, not as an error.
func (s *service) Dispatch(ctx context.Context, req DispatchRequest) (*DispatchResult, error) {
	users, err := s.settings.ListReminderEligible(ctx)
	if err != nil {
		return nil, err
	}

	sent := 0
	var queued []domain.Notification

	for _, user := range users {
		if req.UserID != nil && *req.UserID != user.UserID {
			continue
		}
		subs, err := s.subscriptions.ListActiveByUser(ctx, user.UserID)
		if err != nil {
			slog.Warn("skipping user, could not list subscriptions", "user_id", user.UserID, "err", err)
			continue
		}

		loc := user.Location()
		now := s.now().In(loc)
		dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

		for _, sub := range subs {
			if req.SubscriptionID != nil && *req.SubscriptionID != sub.SubscriptionID {
				continue
			}
			daysUntil := domain.DaysUntil(sub.NextBilling, now)
			reminderType, ok := domain.SelectReminderType(daysUntil, user.Prefs(), req.Force)
			if !ok {
				continue
			}

			if !req.Force {
				exists, err := s.notifications.ExistsSince(ctx, user.UserID, sub.SubscriptionID, dayStart)
				if err != nil {
					slog.Warn("dedup check failed, skipping subscription",
						"user_id", user.UserID, "subscription_id", sub.SubscriptionID, "err", err)
					continue
				}
				if exists {
					continue
				}
			}

			queued = append(queued, s.send(ctx, &user, &sub, daysUntil, reminderType, &sent))
			s.sleep(s.sendDelay)
		}
	}

	if len(queued) > 0 {
		if err := s.notifications.BatchPut(ctx, queued); err != nil {
			slog.Error("failed to record notifications", "count", len(queued), "err", err)
		}
	}

	return &DispatchResult{RemindersSent: sent, NotificationsCreated: len(queued)}, nil
}

// send delivers one reminder and builds its audit record. Failures are
// captured in the record's status and metadata.
func (s *service) send(ctx context.Context, user *domain.UserSettings, sub *domain.Subscription, daysUntil int, reminderType domain.ReminderType, sent *int) domain.Notification {
	n := domain.Notification{
		NotificationID: id.New(),
		UserID:         user.UserID,
		SubscriptionID: sub.SubscriptionID,
		Type:           domain.NotificationTypeReminder,
		Title:          domain.ReminderTitle(sub.Name, daysUntil),
		Message:        domain.FormatReminderMessage(sub, daysUntil),
		Metadata: map[string]string{
			"reminder_type": string(reminderType),
			"days_until":    strconv.Itoa(daysUntil),
			"amount":        strconv.FormatFloat(sub.Amount, 'f', 2, 64),
			"currency":      sub.Currency,
		},
		CreatedAt: s.now().UTC(),
	}

	msgID, err := s.sender.SendText(ctx, user.WhatsAppNumber, n.Message)
	if err != nil {
		slog.Warn("reminder send failed",
			"user_id", user.UserID, "subscription_id", sub.SubscriptionID, "err", err)
		n.Status = domain.NotificationStatusFailed
		n.Metadata["error"] = err.Error()
		return n
	}

	n.Status = domain.NotificationStatusSent
	n.WhatsAppMessageID = msgID
	*sent++
	return n
}
