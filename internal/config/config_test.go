package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_MissingWhatsAppCredentials(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WHATSAPP_ACCESS_TOKEN")
	assert.Contains(t, err.Error(), "WHATSAPP_PHONE_NUMBER_ID")
}

func TestValidate_OK(t *testing.T) {
	cfg := &Config{WhatsAppToken: "token", WhatsAppPhoneNumberID: "12345"}
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, "3000", cfg.AppPort)
	assert.Equal(t, "user_settings", cfg.DynamoTables.UserSettings)
	assert.Equal(t, "phone_verifications", cfg.DynamoTables.PhoneVerifications)
	assert.Equal(t, 500*time.Millisecond, cfg.SendDelay)
	assert.Equal(t, "https://graph.facebook.com/v19.0", cfg.WhatsAppAPIBaseURL)
}
