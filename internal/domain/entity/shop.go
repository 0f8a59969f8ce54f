package entity

import "time"

// Shop groups staff profiles. Created or merged implicitly the first time a
// staff account is provisioned for it.
type Shop struct {
	ID                 string    `firestore:"-"`
	CreatedAt          time.Time `firestore:"createdAt"`
	LastStaffCreatedBy string    `firestore:"lastStaffCreatedBy"`
}
