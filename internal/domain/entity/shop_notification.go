package entity

import "time"

// ShopNotification is the persisted record of a generic notification sent to a
// shop, written before dispatch as an audit trail.
type ShopNotification struct {
	ID           string    `firestore:"-"`
	ShopID       string    `firestore:"shopId"`
	Category     string    `firestore:"type"`
	Title        string    `firestore:"title"`
	Body         string    `firestore:"body"`
	TargetUserID string    `firestore:"targetUserId"`
	SenderID     string    `firestore:"senderId"`
	CreatedAt    time.Time `firestore:"createdAt"`
}
