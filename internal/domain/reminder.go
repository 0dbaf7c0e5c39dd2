package domain

import (
	"fmt"
	"math"
	"time"
)

// ReminderType determines the message template and is stored for dedup/audit.
type ReminderType string

const (
	Reminder7Days  ReminderType = "7_days"
	Reminder3Days  ReminderType = "3_days"
	ReminderUrgent ReminderType = "urgent"
	ReminderManual ReminderType = "manual"
)

// ForceWindowDays bounds the forced ("manual") reminder window: a forced
// dispatch only sends for subscriptions billing within 0..7 days.
const ForceWindowDays = 7

// ReminderPrefs are the per-user reminder toggles.
type ReminderPrefs struct {
	Days7  bool
	Days3  bool
	Urgent bool
}

// SelectReminderType decides which reminder (if any) applies for a
// subscription billing in daysUntil days. Force overrides the per-day toggles
// for anything inside the 0..7 day window, even when the matching toggle is
// off. Second return is false when no reminder applies.
func SelectReminderType(daysUntil int, prefs ReminderPrefs, force bool) (ReminderType, bool) {
	if force {
		if daysUntil >= 0 && daysUntil <= ForceWindowDays {
			return ReminderManual, true
		}
		return "", false
	}
	switch {
	case daysUntil == 7 && prefs.Days7:
		return Reminder7Days, true
	case daysUntil == 3 && prefs.Days3:
		return Reminder3Days, true
	case daysUntil == 0 && prefs.Urgent:
		return ReminderUrgent, true
	}
	return "", false
}

// DaysUntil returns the number of whole days from now until the billing date,
// rounding partial days up. A billing date earlier today yields 0.
func DaysUntil(nextBilling, now time.Time) int {
	return int(math.Ceil(nextBilling.Sub(now).Hours() / 24))
}

// currencySymbols maps ISO currency codes to display symbols. Unknown codes
// pass through unchanged as the "symbol".
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"PKR": "Rs.",
	"INR": "₹",
	"JPY": "¥",
	"CAD": "CA$",
	"AUD": "AU$",
}

// CurrencySymbol returns the display symbol for a currency code.
func CurrencySymbol(code string) string {
	if sym, ok := currencySymbols[code]; ok {
		return sym
	}
	return code
}

// ReminderTitle builds the notification title for a day count.
func ReminderTitle(name string, daysUntil int) string {
	switch daysUntil {
	case 0:
		return fmt.Sprintf("%s renews today", name)
	case 1:
		return fmt.Sprintf("%s renews tomorrow", name)
	default:
		return fmt.Sprintf("%s renews in %d days", name, daysUntil)
	}
}

// FormatReminderMessage renders the WhatsApp message body for a subscription
// billing in daysUntil days. Distinct wording for 0, 3, 7 and any other day
// count.
func FormatReminderMessage(sub *Subscription, daysUntil int) string {
	amount := fmt.Sprintf("%s%.2f", CurrencySymbol(sub.Currency), sub.Amount)
	date := sub.NextBilling.Format("Monday, Jan 2, 2006")

	var lead string
	switch daysUntil {
	case 0:
		lead = fmt.Sprintf("⚠️ *%s* renews TODAY for %s.", sub.Name, amount)
	case 3:
		lead = fmt.Sprintf("⏰ *%s* renews in 3 days for %s.", sub.Name, amount)
	case 7:
		lead = fmt.Sprintf("📅 *%s* renews in 7 days for %s.", sub.Name, amount)
	default:
		lead = fmt.Sprintf("🔔 *%s* renews in %d days for %s.", sub.Name, daysUntil, amount)
	}

	return fmt.Sprintf("%s\n\nBilling date: %s\nPayment method: %s\nCategory: %s\n\nReply STOP to pause reminders.",
		lead, date, sub.PaymentMethod, sub.Category)
}
