package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"vahanhub_backend/internals/constants"
	helper "vahanhub_backend/internals/helpers/auth"
)

/* ==========================
   Tenant scope & role guards
========================== */

// extractTenantID reads the tenant from the path param, then query,
// then the X-Tenant-ID header.
func extractTenantID(c *fiber.Ctx) string {
	if v := strings.TrimSpace(c.Params("tenant_id")); v != "" {
		return v
	}
	if v := strings.TrimSpace(c.Query("tenant_id")); v != "" {
		return v
	}
	if v := strings.TrimSpace(c.Get("X-Tenant-ID")); v != "" {
		return v
	}
	return ""
}

// UseTenantScope pins the request to one tenant. The tenant comes from
// the path (UUID only) with the token as fallback; non-owners must match
// the tenant in their token.
func UseTenantScope() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqTenant := extractTenantID(c)

		if reqTenant == "" {
			if id, err := helper.GetTenantID(c); err == nil && id != uuid.Nil {
				reqTenant = id.String()
			} else {
				return fiber.NewError(fiber.StatusBadRequest, "tenant_id required in path, parameter, or token")
			}
		}

		tid, err := uuid.Parse(reqTenant)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "tenant_id is not valid")
		}

		if !helper.IsOwnerGlobal(c) {
			own, err := helper.GetTenantID(c)
			if err != nil {
				return err
			}
			if own != tid {
				return fiber.NewError(fiber.StatusForbidden, "Not a member of the requested tenant")
			}
		}

		c.Locals("active_tenant_id", tid.String())
		return c.Next()
	}
}

// IsTenantAdmin allows admin and owner roles only.
func IsTenantAdmin() fiber.Handler {
	return requireRole(constants.RoleAdmin, constants.RoleOwner)
}

// IsTenantStaff allows any dealership staff role.
func IsTenantStaff() fiber.Handler {
	return requireRole(constants.StaffRoles...)
}

func requireRole(wanted ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if helper.IsOwnerGlobal(c) {
			return c.Next()
		}
		if !helper.HasRole(c, wanted...) {
			return fiber.NewError(fiber.StatusForbidden, "Role may not access this endpoint")
		}
		return c.Next()
	}
}

// IsOwnerGlobal restricts an endpoint to the platform owner.
func IsOwnerGlobal() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !helper.IsOwnerGlobal(c) {
			return fiber.NewError(fiber.StatusForbidden, "Owner-only endpoint")
		}
		return c.Next()
	}
}
