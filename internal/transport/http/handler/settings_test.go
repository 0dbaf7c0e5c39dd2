package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/subtrack-notify/internal/domain"
)

type mockSettingsSvc struct{ mock.Mock }

func (m *mockSettingsSvc) Get(ctx context.Context, userID string) (*domain.UserSettings, error) {
	args := m.Called(ctx, userID)
	if s, _ := args.Get(0).(*domain.UserSettings); s != nil {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSettingsSvc) Update(ctx context.Context, userID string, req domain.UpdateSettingsRequest) (*domain.UserSettings, error) {
	args := m.Called(ctx, userID, req)
	if s, _ := args.Get(0).(*domain.UserSettings); s != nil {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestSettingsGet_MissingClaims(t *testing.T) {
	svc := &mockSettingsSvc{}
	h := NewSettingsHandler(svc)
	r := httptest.NewRequest(http.MethodGet, "/v1/settings", nil)
	rr := httptest.NewRecorder()
	h.Get(rr, r)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestSettingsGet_HappyPath(t *testing.T) {
	key, p := newTestAuth(t)
	svc := &mockSettingsSvc{}
	svc.On("Get", mock.Anything, "u1").Return(&domain.UserSettings{
		UserID:                "u1",
		WhatsAppNumber:        "+15551234567",
		WhatsAppVerified:      true,
		WhatsAppNotifications: true,
		ReminderDays3:         true,
	}, nil)
	h := NewSettingsHandler(svc)

	r := bearerReq(t, key, http.MethodGet, "/v1/settings", "u1", domain.RoleUser, nil)
	rr := httptest.NewRecorder()
	serveAuthed(p, http.HandlerFunc(h.Get), rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp domain.UserSettings
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "+15551234567", resp.WhatsAppNumber)
	assert.True(t, resp.WhatsAppVerified)
	svc.AssertExpectations(t)
}

func TestSettingsUpdate_NoFields(t *testing.T) {
	key, p := newTestAuth(t)
	svc := &mockSettingsSvc{}
	svc.On("Update", mock.Anything, "u1", domain.UpdateSettingsRequest{}).
		Return(nil, domain.ErrBadRequest)
	h := NewSettingsHandler(svc)

	r := bearerReq(t, key, http.MethodPut, "/v1/settings", "u1", domain.RoleUser, []byte(`{}`))
	rr := httptest.NewRecorder()
	serveAuthed(p, http.HandlerFunc(h.Update), rr, r)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSettingsUpdate_HappyPath(t *testing.T) {
	key, p := newTestAuth(t)
	svc := &mockSettingsSvc{}
	enabled := true
	updated := &domain.UserSettings{UserID: "u1", WhatsAppNotifications: true}
	svc.On("Update", mock.Anything, "u1", mock.MatchedBy(func(req domain.UpdateSettingsRequest) bool {
		return req.WhatsAppNotifications != nil && *req.WhatsAppNotifications
	})).Return(updated, nil)
	h := NewSettingsHandler(svc)

	body, _ := json.Marshal(domain.UpdateSettingsRequest{WhatsAppNotifications: &enabled})
	r := bearerReq(t, key, http.MethodPut, "/v1/settings", "u1", domain.RoleUser, body)
	rr := httptest.NewRecorder()
	serveAuthed(p, http.HandlerFunc(h.Update), rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	svc.AssertExpectations(t)
}
