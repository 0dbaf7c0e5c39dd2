package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/subtrack-notify/internal/application/reminder"
)

// ReminderHandler exposes the dispatch endpoint the external cron hits.
type ReminderHandler struct {
	svc reminder.Service
}

func NewReminderHandler(svc reminder.Service) *ReminderHandler {
	return &ReminderHandler{svc: svc}
}

// Dispatch runs one reminder scan. The body is optional: absent or empty
// means "scan everyone". Individual send failures are recorded as failed
// notifications, not surfaced here — the response is 200 as long as the scan
// itself completes.
func (h *ReminderHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	var req reminder.DispatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Dispatch(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, DispatchEnvelope{
		Success:              true,
		Message:              "reminder scan completed",
		RemindersSent:        result.RemindersSent,
		NotificationsCreated: result.NotificationsCreated,
		Timestamp:            time.Now().UTC().Format(time.RFC3339),
	})
}
