package domain

import "time"

// UserSettings holds a user's WhatsApp channel state and reminder preferences.
// The dispatcher reads it to select eligible users; the verification checker
// updates it after a successful phone-ownership proof.
type UserSettings struct {
	UserID                string    `json:"user_id" dynamodbav:"user_id"`
	WhatsAppNumber        string    `json:"whatsapp_number" dynamodbav:"whatsapp_number"`
	WhatsAppVerified      bool      `json:"whatsapp_verified" dynamodbav:"whatsapp_verified"`
	WhatsAppNotifications bool      `json:"whatsapp_notifications" dynamodbav:"whatsapp_notifications"`
	ReminderDays7         bool      `json:"reminder_days7" dynamodbav:"reminder_days7"`
	ReminderDays3         bool      `json:"reminder_days3" dynamodbav:"reminder_days3"`
	ReminderUrgent        bool      `json:"reminder_urgent" dynamodbav:"reminder_urgent"`
	Timezone              string    `json:"timezone" dynamodbav:"timezone"`
	CreatedAt             time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt             time.Time `json:"updated" dynamodbav:"updated_at"`
}

// Prefs extracts the reminder toggles used by the type-selection decision.
func (s *UserSettings) Prefs() ReminderPrefs {
	return ReminderPrefs{
		Days7:  s.ReminderDays7,
		Days3:  s.ReminderDays3,
		Urgent: s.ReminderUrgent,
	}
}

// Location resolves the user's IANA timezone, falling back to the server's
// local zone when unset or unparseable.
func (s *UserSettings) Location() *time.Location {
	if s.Timezone != "" {
		if loc, err := time.LoadLocation(s.Timezone); err == nil {
			return loc
		}
	}
	return time.Local
}

type UpdateSettingsRequest struct {
	WhatsAppNotifications *bool   `json:"whatsapp_notifications"`
	ReminderDays7         *bool   `json:"reminder_days7"`
	ReminderDays3         *bool   `json:"reminder_days3"`
	ReminderUrgent        *bool   `json:"reminder_urgent"`
	Timezone              *string `json:"timezone" validate:"omitempty,timezone"`
}
