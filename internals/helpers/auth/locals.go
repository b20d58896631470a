// file: internals/helpers/auth/locals.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

/* ==========================
   Locals keys (hydrated by the JWT middleware)
========================== */

const (
	LocUserID      = "user_id"
	LocUserRole    = "user_role"
	LocTenantID    = "tenant_id"
	LocTenantType  = "tenant_type"
	LocIsOwner     = "is_owner"
	LocTenantRoles = "tenant_roles"
)

// GetUserID reads the authenticated user id from locals.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(LocUserID).(string)
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user id missing in token")
	}
	return id, nil
}

// GetTenantID reads the caller's active tenant id from locals.
func GetTenantID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(LocTenantID).(string)
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "tenant id missing in token")
	}
	return id, nil
}

// IsOwnerGlobal reports whether the token carries the platform-owner flag.
func IsOwnerGlobal(c *fiber.Ctx) bool {
	v, _ := c.Locals(LocIsOwner).(bool)
	return v
}

// EnsureTenantStaff guards tenant-scoped admin endpoints: the path tenant
// must match the token's tenant, unless the caller is a platform owner.
func EnsureTenantStaff(c *fiber.Ctx, tenantID uuid.UUID) error {
	if IsOwnerGlobal(c) {
		return nil
	}
	own, err := GetTenantID(c)
	if err != nil {
		return err
	}
	if own != tenantID {
		return fiber.NewError(fiber.StatusForbidden, "not a member of this tenant")
	}
	return nil
}

// HasRole checks the token's role claim against any of the wanted roles.
func HasRole(c *fiber.Ctx, wanted ...string) bool {
	role, _ := c.Locals(LocUserRole).(string)
	role = strings.ToLower(strings.TrimSpace(role))
	for _, w := range wanted {
		if role == strings.ToLower(w) {
			return true
		}
	}
	return false
}
