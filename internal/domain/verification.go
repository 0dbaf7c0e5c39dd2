package domain

import "fmt"

// PhoneVerification is the server-held state for an in-progress phone-number
// ownership proof. PK: user_id, SK: phone_number — one active record per pair;
// re-requesting a code overwrites it.
// PurgeAt is a Unix timestamp used as DynamoDB TTL, set well past ExpiresAt so
// verified records survive code expiry.
type PhoneVerification struct {
	UserID         string `json:"user_id" dynamodbav:"user_id"`
	PhoneNumber    string `json:"phone_number" dynamodbav:"phone_number"`
	Code           string `json:"-" dynamodbav:"code"`
	ExpiresAt      int64  `json:"expires_at" dynamodbav:"expires_at"` // Unix seconds
	FailedAttempts int    `json:"failed_attempts" dynamodbav:"failed_attempts"`
	Verified       bool   `json:"verified" dynamodbav:"verified"`
	VerifiedAt     int64  `json:"verified_at,omitempty" dynamodbav:"verified_at"`
	PurgeAt        int64  `json:"-" dynamodbav:"purge_at"` // TTL (Unix seconds)
}

// MaxFailedAttempts is the cap after which a verification record is locked.
const MaxFailedAttempts = 5

// InvalidCodeError is returned when a submitted code does not match, carrying
// the number of attempts the caller has left before the record locks.
type InvalidCodeError struct {
	AttemptsRemaining int
}

func (e *InvalidCodeError) Error() string {
	return fmt.Sprintf("invalid verification code, %d attempts remaining", e.AttemptsRemaining)
}

func (e *InvalidCodeError) Unwrap() error { return ErrBadRequest }

type RequestCodeRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
}

type CheckCodeRequest struct {
	PhoneNumber      string `json:"phoneNumber" validate:"required"`
	VerificationCode string `json:"verificationCode" validate:"required"`
	UserID           string `json:"userId" validate:"required"`
}
