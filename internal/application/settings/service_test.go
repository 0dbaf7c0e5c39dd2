package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/subtrack-notify/internal/domain"
)

type mockStore struct{ mock.Mock }

func (m *mockStore) Get(ctx context.Context, userID string) (*domain.UserSettings, error) {
	args := m.Called(ctx, userID)
	if v, _ := args.Get(0).(*domain.UserSettings); v != nil {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockStore) Put(ctx context.Context, s *domain.UserSettings) error {
	return m.Called(ctx, s).Error(0)
}
func (m *mockStore) Update(ctx context.Context, userID string, updates map[string]interface{}) error {
	return m.Called(ctx, userID, updates).Error(0)
}

func TestGet_CreatesDefaultsOnFirstAccess(t *testing.T) {
	repo := &mockStore{}
	repo.On("Get", mock.Anything, "u1").Return(nil, domain.ErrNotFound)

	var created *domain.UserSettings
	repo.On("Put", mock.Anything, mock.AnythingOfType("*domain.UserSettings")).Run(func(args mock.Arguments) {
		created = args.Get(1).(*domain.UserSettings)
	}).Return(nil)

	svc := NewService(repo)
	s, err := svc.Get(context.Background(), "u1")

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "u1", s.UserID)
	// Reminder toggles default on; the WhatsApp channel stays off until verified.
	assert.True(t, s.ReminderDays7)
	assert.True(t, s.ReminderDays3)
	assert.True(t, s.ReminderUrgent)
	assert.False(t, s.WhatsAppVerified)
	assert.False(t, s.WhatsAppNotifications)
}

func TestGet_PropagatesStoreError(t *testing.T) {
	repo := &mockStore{}
	repo.On("Get", mock.Anything, "u1").Return(nil, errors.New("dynamo down"))

	svc := NewService(repo)
	_, err := svc.Get(context.Background(), "u1")
	assert.Error(t, err)
}

func TestUpdate_WritesOnlyProvidedFields(t *testing.T) {
	repo := &mockStore{}
	existing := &domain.UserSettings{UserID: "u1"}
	repo.On("Get", mock.Anything, "u1").Return(existing, nil)
	repo.On("Update", mock.Anything, "u1", map[string]interface{}{
		"reminder_days3": false,
		"timezone":       "Asia/Karachi",
	}).Return(nil)

	off := false
	tz := "Asia/Karachi"
	svc := NewService(repo)
	_, err := svc.Update(context.Background(), "u1", domain.UpdateSettingsRequest{
		ReminderDays3: &off,
		Timezone:      &tz,
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdate_NoFields_ReturnsBadRequest(t *testing.T) {
	repo := &mockStore{}
	repo.On("Get", mock.Anything, "u1").Return(&domain.UserSettings{UserID: "u1"}, nil)

	svc := NewService(repo)
	_, err := svc.Update(context.Background(), "u1", domain.UpdateSettingsRequest{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
}
