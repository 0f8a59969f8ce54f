package dto

// CreateStaffRequest payload for provisioning a staff account.
// Role is advisory: anything other than "admin" requested by an admin-level
// caller is narrowed to "user". ShopID is honored only for the super admin;
// everyone else provisions into their own shop.
type CreateStaffRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Role        string `json:"role"`
	ShopID      string `json:"shopId"`
}

// CreateStaffResponse result of a successful provisioning.
type CreateStaffResponse struct {
	UID    string `json:"uid"`
	Role   string `json:"role"`
	ShopID string `json:"shopId"`
}
