package subscription

import (
	"context"

	"github.com/subtrack-notify/internal/domain"
)

// Store reads the subscriptions table.
type Store interface {
	ListActiveByUser(ctx context.Context, userID string) ([]domain.Subscription, error)
}

type Service interface {
	ListActive(ctx context.Context, userID string) ([]domain.Subscription, error)
}

type service struct {
	repo Store
}

func NewService(repo Store) Service {
	return &service{repo: repo}
}

func (s *service) ListActive(ctx context.Context, userID string) ([]domain.Subscription, error) {
	return s.repo.ListActiveByUser(ctx, userID)
}
