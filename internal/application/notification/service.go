package notification

import (
	"context"

	"github.com/subtrack-notify/internal/domain"
)

// defaultLimit caps how many log rows a single list call returns.
const defaultLimit = 50

// Store reads the notification audit log.
type Store interface {
	ListByUser(ctx context.Context, userID string, limit int32) ([]domain.Notification, error)
	ScanRecent(ctx context.Context, limit int32, cursor string) ([]domain.Notification, string, error)
}

type Service interface {
	ListForUser(ctx context.Context, userID string) ([]domain.Notification, error)
	ListAll(ctx context.Context, cursor string) ([]domain.Notification, string, error)
}

type service struct {
	repo Store
}

func NewService(repo Store) Service {
	return &service{repo: repo}
}

func (s *service) ListForUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	return s.repo.ListByUser(ctx, userID, defaultLimit)
}

// ListAll pages through the whole log; admin only.
func (s *service) ListAll(ctx context.Context, cursor string) ([]domain.Notification, string, error) {
	return s.repo.ScanRecent(ctx, defaultLimit, cursor)
}
