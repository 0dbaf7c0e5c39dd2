package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/subtrack-notify/internal/domain"
)

// Store is the persistence the service needs for user settings.
type Store interface {
	Get(ctx context.Context, userID string) (*domain.UserSettings, error)
	Put(ctx context.Context, s *domain.UserSettings) error
	Update(ctx context.Context, userID string, updates map[string]interface{}) error
}

type Service interface {
	Get(ctx context.Context, userID string) (*domain.UserSettings, error)
	Update(ctx context.Context, userID string, req domain.UpdateSettingsRequest) (*domain.UserSettings, error)
}

type service struct {
	repo Store
}

func NewService(repo Store) Service {
	return &service{repo: repo}
}

// Get returns the user's settings, creating a default record on first access
// so new users always have toggles to flip.
func (s *service) Get(ctx context.Context, userID string) (*domain.UserSettings, error) {
	existing, err := s.repo.Get(ctx, userID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	now := time.Now().UTC()
	fresh := &domain.UserSettings{
		UserID:         userID,
		ReminderDays7:  true,
		ReminderDays3:  true,
		ReminderUrgent: true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.Put(ctx, fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}

// Update applies the provided toggles. Only non-nil fields are written.
func (s *service) Update(ctx context.Context, userID string, req domain.UpdateSettingsRequest) (*domain.UserSettings, error) {
	if _, err := s.Get(ctx, userID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.WhatsAppNotifications != nil {
		updates["whatsapp_notifications"] = *req.WhatsAppNotifications
	}
	if req.ReminderDays7 != nil {
		updates["reminder_days7"] = *req.ReminderDays7
	}
	if req.ReminderDays3 != nil {
		updates["reminder_days3"] = *req.ReminderDays3
	}
	if req.ReminderUrgent != nil {
		updates["reminder_urgent"] = *req.ReminderUrgent
	}
	if req.Timezone != nil {
		updates["timezone"] = *req.Timezone
	}
	if len(updates) == 0 {
		return nil, fmt.Errorf("no fields to update: %w", domain.ErrBadRequest)
	}
	if err := s.repo.Update(ctx, userID, updates); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, userID)
}
