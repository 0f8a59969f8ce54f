package notification

import "github.com/huluca/repairshop-backend/internal/domain/entity"

// Notification categories. The category selects both the audience roles and
// the delivery profile.
const (
	CategoryNewOrder  = "new_order"
	CategoryPayment   = "payment"
	CategoryInventory = "inventory"
	CategoryStaff     = "staff"
	CategorySystem    = "system"
)

// allowedRoles returns the roles permitted to receive a category. Unknown
// categories fall back to the system rule set.
func allowedRoles(category string) []string {
	switch category {
	case CategoryNewOrder, CategoryPayment:
		return []string{entity.RoleAdmin, entity.RoleOwner, entity.RoleManager, entity.RoleEmployee}
	case CategoryInventory:
		return []string{entity.RoleAdmin, entity.RoleOwner, entity.RoleManager, entity.RoleTechnician}
	case CategoryStaff:
		return []string{entity.RoleAdmin, entity.RoleOwner, entity.RoleManager}
	default:
		return []string{entity.RoleAdmin, entity.RoleOwner, entity.RoleManager, entity.RoleEmployee, entity.RoleTechnician, entity.RoleUser}
	}
}

// Allowed reports whether a user with the given role may receive a
// notification of the given category. Admins always receive everything.
func Allowed(category, role string) bool {
	if role == entity.RoleAdmin {
		return true
	}
	for _, r := range allowedRoles(category) {
		if r == role {
			return true
		}
	}
	return false
}
