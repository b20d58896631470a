package constants

import "fmt"

// Role names carried in JWT claims and tenant membership rows.
const (
	RoleUser    = "user"
	RoleSales   = "sales"
	RoleManager = "manager"
	RoleAdmin   = "admin"
	RoleOwner   = "owner"
)

// Template pesan error role
const (
	ErrOnlyStaffCanAccess  = "❌ Only dealership staff may access %s."
	ErrOnlyAdminsCanAccess = "❌ Only admins may access %s."
	ErrOnlyOwnersCanAccess = "❌ Only the platform owner may access %s."
)

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorOwner(feature string) string {
	return fmt.Sprintf(ErrOnlyOwnersCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RoleSales,
		RoleManager,
		RoleAdmin,
		RoleOwner,
	}

	StaffRoles = []string{
		RoleSales,
		RoleManager,
		RoleAdmin,
		RoleOwner,
	}

	ManagerAndAbove = []string{
		RoleManager,
		RoleAdmin,
		RoleOwner,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	OwnerOnly = []string{
		RoleOwner,
	}
)
