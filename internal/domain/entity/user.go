package entity

import "time"

// Staff roles. A shop groups users; roles gate which notification categories
// a user receives and whether they may provision new accounts.
const (
	RoleAdmin      = "admin"
	RoleOwner      = "owner"
	RoleManager    = "manager"
	RoleEmployee   = "employee"
	RoleTechnician = "technician"
	RoleUser       = "user"
)

// User is a staff profile stored in the `users` collection. The document id is
// the identity-provider account id.
type User struct {
	ID                string    `firestore:"-"`
	Email             string    `firestore:"email"`
	DisplayName       string    `firestore:"displayName"`
	Phone             string    `firestore:"phone"`
	Address           string    `firestore:"address"`
	Role              string    `firestore:"role"`
	ShopID            string    `firestore:"shopId"`
	FCMToken          string    `firestore:"fcmToken"`
	FCMTokenUpdatedAt time.Time `firestore:"fcmTokenUpdatedAt"`
	CreatedBy         string    `firestore:"createdBy"`
	CreatedAt         time.Time `firestore:"createdAt"`
	UpdatedAt         time.Time `firestore:"updatedAt"`

	Permissions
}

// EffectiveRole returns the stored role, defaulting to "user" when absent.
func (u *User) EffectiveRole() string {
	if u == nil || u.Role == "" {
		return RoleUser
	}
	return u.Role
}

// Permissions per-feature visibility flags written alongside the profile.
type Permissions struct {
	AllowViewSales     bool `firestore:"allowViewSales"`
	AllowViewRepairs   bool `firestore:"allowViewRepairs"`
	AllowViewInventory bool `firestore:"allowViewInventory"`
	AllowViewParts     bool `firestore:"allowViewParts"`
	AllowViewSuppliers bool `firestore:"allowViewSuppliers"`
	AllowViewCustomers bool `firestore:"allowViewCustomers"`
	AllowViewWarranty  bool `firestore:"allowViewWarranty"`
	AllowViewChat      bool `firestore:"allowViewChat"`
	AllowViewPrinter   bool `firestore:"allowViewPrinter"`
	AllowViewRevenue   bool `firestore:"allowViewRevenue"`
	AllowViewExpenses  bool `firestore:"allowViewExpenses"`
	AllowViewDebts     bool `firestore:"allowViewDebts"`
}

// DefaultPermissions returns the role-derived default flags: everything visible,
// except the financial views which only an admin gets.
func DefaultPermissions(role string) Permissions {
	isAdmin := role == RoleAdmin
	return Permissions{
		AllowViewSales:     true,
		AllowViewRepairs:   true,
		AllowViewInventory: true,
		AllowViewParts:     true,
		AllowViewSuppliers: true,
		AllowViewCustomers: true,
		AllowViewWarranty:  true,
		AllowViewChat:      true,
		AllowViewPrinter:   true,
		AllowViewRevenue:   isAdmin,
		AllowViewExpenses:  isAdmin,
		AllowViewDebts:     isAdmin,
	}
}
