// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authHelper "vahanhub_backend/internals/features/users/auth/helper"
	"vahanhub_backend/internals/features/users/user/dto"
	"vahanhub_backend/internals/features/users/user/model"
	helper "vahanhub_backend/internals/helpers"
	helperAuth "vahanhub_backend/internals/helpers/auth"
)

type Handler struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Handler { return &Handler{DB: db} }

var validate = validator.New()

/* ==========================
   Self-service profile
========================== */

// UpdateProfile lets the authenticated user edit their own profile.
func (h *Handler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var in dto.UserUpdateProfileDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user model.UserModel
	if err := h.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	dto.ApplyProfileUpdate(&user, &in)
	if err := h.DB.Save(&user).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate") {
			return helper.JsonError(c, fiber.StatusBadRequest, "Username already taken")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update profile")
	}

	return helper.JsonUpdated(c, "Profile updated successfully", dto.ToUserResponse(&user))
}

/* ==========================
   Tenant staff management
========================== */

// CreateStaff creates a staff account bound to the caller's tenant.
func (h *Handler) CreateStaff(c *fiber.Ctx) error {
	tenantID, err := h.activeTenantID(c)
	if err != nil {
		return err
	}

	var in dto.UserCreateStaffDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hash, err := authHelper.HashPassword(in.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	user := model.UserModel{
		UserName: strings.TrimSpace(in.UserName),
		Email:    strings.ToLower(strings.TrimSpace(in.Email)),
		Password: hash,
		FullName: in.FullName,
		Phone:    in.Phone,
		Role:     in.Role,
		TenantID: &tenantID,
		IsActive: true,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate") {
			return helper.JsonError(c, fiber.StatusBadRequest, "Email or username already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create staff user")
	}

	return helper.JsonCreated(c, "Staff user created successfully", dto.ToUserResponse(&user))
}

// ListStaff lists the caller's tenant members with optional role / q filters.
func (h *Handler) ListStaff(c *fiber.Ctx) error {
	tenantID, err := h.activeTenantID(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.UserModel{}).Where("tenant_id = ?", tenantID)
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		q = q.Where("role = ?", strings.ToLower(role))
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(user_name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count users")
	}

	var users []model.UserModel
	if err := q.Order("created_at DESC").Offset(p.Offset).Limit(p.Limit).Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}

	return helper.JsonList(c, "OK", dto.ToUserResponses(users),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// UpdateStaff edits a tenant member. Tenant reassignment is owner-only.
func (h *Handler) UpdateStaff(c *fiber.Ctx) error {
	tenantID, err := h.activeTenantID(c)
	if err != nil {
		return err
	}
	staffID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var in dto.UserAdminUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&in); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if in.TenantID != nil && !helperAuth.IsOwnerGlobal(c) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the platform owner can move users between tenants")
	}

	var user model.UserModel
	if err := h.DB.First(&user, "id = ? AND tenant_id = ?", staffID, tenantID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found in this tenant")
	}

	dto.ApplyAdminUpdate(&user, &in)
	if err := h.DB.Save(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user")
	}

	return helper.JsonUpdated(c, "User updated successfully", dto.ToUserResponse(&user))
}

// DeactivateStaff soft-disables an account without deleting its history.
func (h *Handler) DeactivateStaff(c *fiber.Ctx) error {
	tenantID, err := h.activeTenantID(c)
	if err != nil {
		return err
	}
	staffID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	res := h.DB.Model(&model.UserModel{}).
		Where("id = ? AND tenant_id = ?", staffID, tenantID).
		Update("is_active", false)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to deactivate user")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found in this tenant")
	}

	return helper.JsonDeleted(c, "User deactivated successfully", fiber.Map{"id": staffID})
}

func (h *Handler) activeTenantID(c *fiber.Ctx) (uuid.UUID, error) {
	if raw, ok := c.Locals("active_tenant_id").(string); ok && raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			return id, nil
		}
	}
	id, err := helperAuth.GetTenantID(c)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Tenant scope missing")
	}
	return id, nil
}
