package handler

import (
	"encoding/json"
	"net/http"

	"github.com/subtrack-notify/internal/application/verification"
	"github.com/subtrack-notify/internal/domain"
	"github.com/subtrack-notify/internal/pkg/validate"
	"github.com/subtrack-notify/internal/transport/http/middleware"
)

// VerificationHandler handles the phone verification flow.
type VerificationHandler struct {
	svc verification.Service
}

func NewVerificationHandler(svc verification.Service) *VerificationHandler {
	return &VerificationHandler{svc: svc}
}

// RequestCode issues a verification code for the authenticated user's phone.
func (h *VerificationHandler) RequestCode(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req domain.RequestCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.RequestCode(r.Context(), claims.UserID, req.PhoneNumber); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "verification code sent"})
}

// CheckCode validates a submitted code. The endpoint is public (the mobile
// client calls it before it holds a session for the new number), so the user
// id travels in the body and the route is rate limited.
func (h *VerificationHandler) CheckCode(w http.ResponseWriter, r *http.Request) {
	var req domain.CheckCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "missing fields: "+err.Error())
		return
	}
	result, err := h.svc.CheckCode(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, VerifyEnvelope{
		Success:     true,
		Message:     "phone number verified",
		PhoneNumber: result.PhoneNumber,
	})
}
