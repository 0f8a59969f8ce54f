package entity

import "time"

// Repair status codes. The numeric values are part of the external contract
// with the mobile client and must not change.
const (
	RepairStatusNew       = 1
	RepairStatusRepaired  = 2
	RepairStatusDelivered = 3
)

// Repair is a repair order stored in the `repairs` collection. Soft-deleted
// orders (Deleted=true) become eligible for permanent removal once DeletedAt
// passes the retention window.
type Repair struct {
	ID           string    `firestore:"-"`
	CustomerName string    `firestore:"customerName"`
	Model        string    `firestore:"model"`
	Status       int       `firestore:"status"`
	Deleted      bool      `firestore:"deleted"`
	DeletedAt    time.Time `firestore:"deletedAt"`
}
