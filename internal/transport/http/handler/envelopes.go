package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/subtrack-notify/internal/domain"
)

// MessageEnvelope is the generic response wrapper.
type MessageEnvelope struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// VerifyEnvelope wraps verification check responses.
type VerifyEnvelope struct {
	Success           bool   `json:"success,omitempty"`
	Message           string `json:"message,omitempty"`
	PhoneNumber       string `json:"phoneNumber,omitempty"`
	Error             string `json:"error,omitempty"`
	AttemptsRemaining *int   `json:"attemptsRemaining,omitempty"`
}

// DispatchEnvelope wraps reminder dispatch responses.
type DispatchEnvelope struct {
	Success              bool   `json:"success"`
	Message              string `json:"message"`
	RemindersSent        int    `json:"remindersSent"`
	NotificationsCreated int    `json:"notificationsCreated"`
	Timestamp            string `json:"timestamp"`
}

// PaginatedNotificationsEnvelope wraps the admin notification log listing.
type PaginatedNotificationsEnvelope struct {
	Data       []domain.Notification `json:"data"`
	NextCursor string                `json:"next_cursor,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Error: msg})
}

// httpError maps domain sentinel errors to HTTP status codes. Anything not in
// the taxonomy is an internal error.
func httpError(w http.ResponseWriter, err error) {
	var ice *domain.InvalidCodeError
	switch {
	case errors.As(err, &ice):
		remaining := ice.AttemptsRemaining
		writeJSON(w, http.StatusBadRequest, VerifyEnvelope{
			Error:             "invalid verification code",
			AttemptsRemaining: &remaining,
		})
	case errors.Is(err, domain.ErrTooManyAttempts):
		writeError(w, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrBadRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
