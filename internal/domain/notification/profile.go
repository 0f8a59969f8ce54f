package notification

import "github.com/huluca/repairshop-backend/internal/domain/entity"

// Android priorities as used by the delivery profile.
const (
	PriorityHigh    = "high"
	PriorityDefault = "default"
)

// Profile is the category-derived delivery profile: which client channel the
// notification lands on, its Android priority, and whether it plays a sound.
type Profile struct {
	ChannelID string
	Priority  string
	Sound     bool
}

// ProfileFor returns the delivery profile for a category. Unknown categories
// get the system profile. Only the two high-priority channels play a sound.
func ProfileFor(category string) Profile {
	switch category {
	case CategoryNewOrder:
		return Profile{ChannelID: "new_order_channel", Priority: PriorityHigh, Sound: true}
	case CategoryPayment:
		return Profile{ChannelID: "payment_channel", Priority: PriorityHigh, Sound: true}
	case CategoryInventory:
		return Profile{ChannelID: "inventory_channel", Priority: PriorityDefault}
	case CategoryStaff:
		return Profile{ChannelID: "staff_channel", Priority: PriorityDefault}
	default:
		return Profile{ChannelID: "system_channel", Priority: PriorityDefault}
	}
}

// maxBodyRunes is the visible body length before truncation.
const maxBodyRunes = 100

// Truncate limits a body to 100 visible characters, appending an ellipsis
// marker when anything was cut.
func Truncate(body string) string {
	runes := []rune(body)
	if len(runes) <= maxBodyRunes {
		return body
	}
	return string(runes[:maxBodyRunes]) + "..."
}

// StatusText maps a repair status code to the notification title announcing
// the change. Unknown codes get the generic update text.
func StatusText(status int) string {
	switch status {
	case entity.RepairStatusRepaired:
		return "Repair finished"
	case entity.RepairStatusDelivered:
		return "Device delivered"
	default:
		return "Repair order updated"
	}
}
