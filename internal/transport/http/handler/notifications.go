package handler

import (
	"net/http"

	"github.com/subtrack-notify/internal/application/notification"
	"github.com/subtrack-notify/internal/transport/http/middleware"
)

// NotificationHandler serves the notification audit log.
type NotificationHandler struct {
	svc notification.Service
}

func NewNotificationHandler(svc notification.Service) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// List returns the caller's recent notifications, newest first.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	items, err := h.svc.ListForUser(r.Context(), claims.UserID)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// ListAll pages through every user's notifications. Admin only.
func (h *NotificationHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	cursor := r.URL.Query().Get("cursor")
	items, next, err := h.svc.ListAll(r.Context(), cursor)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, PaginatedNotificationsEnvelope{Data: items, NextCursor: next})
}
