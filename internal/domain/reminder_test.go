package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// --- SelectReminderType ---

func TestSelectReminderType_Table(t *testing.T) {
	all := ReminderPrefs{Days7: true, Days3: true, Urgent: true}
	none := ReminderPrefs{}

	tests := []struct {
		name      string
		daysUntil int
		prefs     ReminderPrefs
		force     bool
		want      ReminderType
		wantOK    bool
	}{
		{"7 days, toggle on", 7, all, false, Reminder7Days, true},
		{"7 days, toggle off", 7, ReminderPrefs{Days3: true, Urgent: true}, false, "", false},
		{"3 days, toggle on", 3, all, false, Reminder3Days, true},
		{"3 days, toggle off", 3, ReminderPrefs{Days7: true, Urgent: true}, false, "", false},
		{"due today, toggle on", 0, all, false, ReminderUrgent, true},
		{"due today, toggle off", 0, ReminderPrefs{Days7: true, Days3: true}, false, "", false},
		{"non-matching day", 5, all, false, "", false},
		{"negative day", -1, all, false, "", false},
		{"force inside window, toggles off", 5, none, true, ReminderManual, true},
		{"force overrides specific day", 7, all, true, ReminderManual, true},
		{"force at window edge", 0, none, true, ReminderManual, true},
		{"force upper edge", 7, none, true, ReminderManual, true},
		{"force outside window", 10, all, true, "", false},
		{"force negative day", -1, all, true, "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := SelectReminderType(tc.daysUntil, tc.prefs, tc.force)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

// --- DaysUntil ---

func TestDaysUntil_RoundsPartialDaysUp(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, 3, DaysUntil(now.Add(72*time.Hour), now))
	assert.Equal(t, 3, DaysUntil(now.Add(49*time.Hour), now)) // 2 days 1 hour rounds up
	assert.Equal(t, 1, DaysUntil(now.Add(time.Hour), now))
	assert.Equal(t, 0, DaysUntil(now, now))
	assert.Equal(t, 0, DaysUntil(now.Add(-time.Hour), now)) // billed earlier today
}

// --- CurrencySymbol ---

func TestCurrencySymbol(t *testing.T) {
	assert.Equal(t, "$", CurrencySymbol("USD"))
	assert.Equal(t, "€", CurrencySymbol("EUR"))
	assert.Equal(t, "£", CurrencySymbol("GBP"))
	assert.Equal(t, "Rs.", CurrencySymbol("PKR"))
	assert.Equal(t, "₹", CurrencySymbol("INR"))
	assert.Equal(t, "¥", CurrencySymbol("JPY"))
	assert.Equal(t, "CA$", CurrencySymbol("CAD"))
	assert.Equal(t, "AU$", CurrencySymbol("AUD"))
	// unknown codes pass through unchanged
	assert.Equal(t, "XYZ", CurrencySymbol("XYZ"))
}

// --- FormatReminderMessage ---

func TestFormatReminderMessage_SubstitutesFields(t *testing.T) {
	sub := &Subscription{
		Name:          "Netflix",
		Amount:        15.99,
		Currency:      "USD",
		NextBilling:   time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC),
		Category:      "Entertainment",
		PaymentMethod: "Visa •••• 4242",
	}

	msg := FormatReminderMessage(sub, 3)
	assert.Contains(t, msg, "Netflix")
	assert.Contains(t, msg, "$15.99")
	assert.Contains(t, msg, "renews in 3 days")
	assert.Contains(t, msg, "Friday, Mar 13, 2026")
	assert.Contains(t, msg, "Visa •••• 4242")
	assert.Contains(t, msg, "Entertainment")
}

func TestFormatReminderMessage_DistinctWordingPerDayCount(t *testing.T) {
	sub := &Subscription{Name: "Spotify", Amount: 9.99, Currency: "EUR", NextBilling: time.Now()}

	today := FormatReminderMessage(sub, 0)
	three := FormatReminderMessage(sub, 3)
	seven := FormatReminderMessage(sub, 7)
	other := FormatReminderMessage(sub, 5)

	assert.Contains(t, today, "TODAY")
	assert.Contains(t, three, "in 3 days")
	assert.Contains(t, seven, "in 7 days")
	assert.Contains(t, other, "in 5 days")

	for _, msg := range []string{today, three, seven, other} {
		assert.Contains(t, msg, "€9.99")
	}
}

func TestFormatReminderMessage_UnknownCurrencyPassthrough(t *testing.T) {
	sub := &Subscription{Name: "Gym", Amount: 30, Currency: "XYZ", NextBilling: time.Now()}
	msg := FormatReminderMessage(sub, 0)
	assert.True(t, strings.Contains(msg, "XYZ30.00"), "expected XYZ passthrough amount, got: %s", msg)
}

// --- ReminderTitle ---

func TestReminderTitle(t *testing.T) {
	assert.Equal(t, "Netflix renews today", ReminderTitle("Netflix", 0))
	assert.Equal(t, "Netflix renews tomorrow", ReminderTitle("Netflix", 1))
	assert.Equal(t, "Netflix renews in 7 days", ReminderTitle("Netflix", 7))
}
