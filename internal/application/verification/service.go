package verification

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/subtrack-notify/internal/domain"
)

const (
	codeTTL = 10 * time.Minute
	// Verified records are kept for audit well past code expiry; DynamoDB TTL
	// purges them on purge_at.
	recordRetention = 30 * 24 * time.Hour
)

// VerificationStore is the persistence the service needs for verification records.
type VerificationStore interface {
	Put(ctx context.Context, v *domain.PhoneVerification) error
	Get(ctx context.Context, userID, phoneNumber string) (*domain.PhoneVerification, error)
	Update(ctx context.Context, userID, phoneNumber string, updates map[string]interface{}) error
}

// SettingsStore is the slice of the settings table the service writes on success.
type SettingsStore interface {
	Update(ctx context.Context, userID string, updates map[string]interface{}) error
}

// CodeSender delivers a verification code over WhatsApp.
type CodeSender interface {
	SendText(ctx context.Context, to, body string) (string, error)
}

// SMSSender is the optional fallback delivery channel.
type SMSSender interface {
	SendSMS(ctx context.Context, to, message string) error
}

// CheckResult is returned on a successful code check.
type CheckResult struct {
	PhoneNumber string
}

type Service interface {
	RequestCode(ctx context.Context, userID, phoneNumber string) error
	CheckCode(ctx context.Context, req domain.CheckCodeRequest) (*CheckResult, error)
}

type service struct {
	verifications VerificationStore
	settings      SettingsStore
	sender        CodeSender
	smsSender     SMSSender // may be nil
	now           func() time.Time
}

func NewService(verifications VerificationStore, settings SettingsStore, sender CodeSender, smsSender SMSSender) Service {
	return &service{
		verifications: verifications,
		settings:      settings,
		sender:        sender,
		smsSender:     smsSender,
		now:           time.Now,
	}
}

// RequestCode issues a fresh 6-digit code for the (user, phone) pair,
// replacing any in-flight record, and delivers it over WhatsApp with an SMS
// fallback when configured.
func (s *service) RequestCode(ctx context.Context, userID, phoneNumber string) error {
	code, err := generateCode()
	if err != nil {
		return err
	}
	now := s.now()
	v := &domain.PhoneVerification{
		UserID:      userID,
		PhoneNumber: phoneNumber,
		Code:        code,
		ExpiresAt:   now.Add(codeTTL).Unix(),
		PurgeAt:     now.Add(recordRetention).Unix(),
	}
	if err := s.verifications.Put(ctx, v); err != nil {
		return err
	}

	body := fmt.Sprintf("Your verification code is %s. It expires in 10 minutes.", code)
	if _, err := s.sender.SendText(ctx, phoneNumber, body); err != nil {
		if s.smsSender == nil {
			return fmt.Errorf("send verification code: %w", err)
		}
		slog.Warn("whatsapp code delivery failed, falling back to SMS", "user_id", userID, "err", err)
		if smsErr := s.smsSender.SendSMS(ctx, phoneNumber, body); smsErr != nil {
			return fmt.Errorf("send verification code: %w", smsErr)
		}
	}
	return nil
}

// CheckCode validates a submitted code against the stored record.
// A record with MaxFailedAttempts failures is locked: the 429 fires before any
// code comparison, so even the correct code cannot unlock it.
func (s *service) CheckCode(ctx context.Context, req domain.CheckCodeRequest) (*CheckResult, error) {
	v, err := s.verifications.Get(ctx, req.UserID, req.PhoneNumber)
	if err != nil {
		return nil, fmt.Errorf("verification not found: %w", domain.ErrNotFound)
	}
	if v.Verified {
		return nil, fmt.Errorf("phone number already verified: %w", domain.ErrConflict)
	}
	if v.FailedAttempts >= domain.MaxFailedAttempts {
		return nil, fmt.Errorf("verification locked: %w", domain.ErrTooManyAttempts)
	}
	now := s.now()
	// Strictly after expires_at counts as expired; at the boundary the code
	// is still valid.
	if now.Unix() > v.ExpiresAt {
		return nil, fmt.Errorf("verification code expired, request a new one: %w", domain.ErrBadRequest)
	}

	if req.VerificationCode != v.Code {
		attempts := v.FailedAttempts + 1
		if err := s.verifications.Update(ctx, req.UserID, req.PhoneNumber, map[string]interface{}{
			"failed_attempts": attempts,
		}); err != nil {
			slog.Warn("failed to persist attempt counter", "user_id", req.UserID, "err", err)
		}
		if attempts >= domain.MaxFailedAttempts {
			return nil, fmt.Errorf("verification locked: %w", domain.ErrTooManyAttempts)
		}
		return nil, &domain.InvalidCodeError{AttemptsRemaining: domain.MaxFailedAttempts - attempts}
	}

	if err := s.verifications.Update(ctx, req.UserID, req.PhoneNumber, map[string]interface{}{
		"verified":    true,
		"verified_at": now.Unix(),
	}); err != nil {
		return nil, fmt.Errorf("mark verification: %w", err)
	}

	// Best effort: the verification itself is the authoritative success
	// signal, a settings write failure must not undo it.
	if err := s.settings.Update(ctx, req.UserID, map[string]interface{}{
		"whatsapp_number":   req.PhoneNumber,
		"whatsapp_verified": true,
	}); err != nil {
		slog.Warn("failed to update user settings after verification", "user_id", req.UserID, "err", err)
	}

	return &CheckResult{PhoneNumber: req.PhoneNumber}, nil
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
