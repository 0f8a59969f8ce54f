package dto

// SendNotificationRequest payload for the generic shop notification callable.
// Defaults: empty Title -> "Notification", empty Type -> "system".
// TargetUserID narrows the audience to one shop member. ShopID is honored only
// for the super admin; everyone else notifies their own shop.
type SendNotificationRequest struct {
	Title        string `json:"title"`
	Body         string `json:"body"`
	Type         string `json:"type"`
	TargetUserID string `json:"targetUserId"`
	ShopID       string `json:"shopId"`
}

// SendNotificationResponse aggregate delivery counts reported to the caller.
type SendNotificationResponse struct {
	Success     bool `json:"success"`
	SentCount   int  `json:"sentCount"`
	FailedCount int  `json:"failedCount"`
}
