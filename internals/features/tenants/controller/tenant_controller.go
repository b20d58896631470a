// file: internals/features/tenants/controller/tenant_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"vahanhub_backend/internals/features/tenants/dto"
	"vahanhub_backend/internals/features/tenants/model"
	helper "vahanhub_backend/internals/helpers"
	helperAuth "vahanhub_backend/internals/helpers/auth"
)

type Handler struct {
	DB *gorm.DB
}

var validate = validator.New()

var tenantSlugOpts = helper.SlugOptions{
	Table:            "tenants",
	SlugColumn:       "tenant_slug",
	SoftDeleteColumn: "tenant_deleted_at",
	MaxLen:           80,
	DefaultBase:      "tenant",
}

/* =======================================================
   OWNER-ONLY: create / suspend tenants
======================================================= */

// POST /tenants
func (h *Handler) CreateTenant(c *fiber.Ctx) error {
	var in dto.TenantCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	base := in.TenantName
	if in.TenantSlug != nil && strings.TrimSpace(*in.TenantSlug) != "" {
		base = *in.TenantSlug
	}
	slug, err := helper.GenerateUniqueSlug(h.DB, tenantSlugOpts, base)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	m := dto.TenantCreateDTOToModel(in, slug)
	if m.TenantStateCode != nil {
		up := strings.ToUpper(strings.TrimSpace(*m.TenantStateCode))
		m.TenantStateCode = &up
	}
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "tenant created", dto.ToTenantResponse(m))
}

// GET /tenants
func (h *Handler) ListTenants(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 200)

	q := h.DB.Model(&model.TenantModel{})
	if tt := strings.TrimSpace(c.Query("type")); tt != "" {
		q = q.Where("tenant_type = ?", strings.ToUpper(tt))
	}
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		q = q.Where("tenant_status = ?", strings.ToUpper(st))
	}
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		q = q.Where("tenant_name ILIKE ?", "%"+s+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var list []model.TenantModel
	if err := q.Order("tenant_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "tenants",
		dto.ToTenantResponses(list),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// PATCH /tenants/:id — owner, or admin of the tenant itself
func (h *Handler) UpdateTenant(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	if err := helperAuth.EnsureTenantStaff(c, id); err != nil {
		return err
	}

	var in dto.TenantUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// status changes are an owner decision
	if in.TenantStatus != nil && !helperAuth.IsOwnerGlobal(c) {
		return helper.JsonError(c, http.StatusForbidden, "only the platform owner may change tenant status")
	}

	var m model.TenantModel
	if err := h.DB.First(&m, "tenant_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "tenant not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	dto.ApplyTenantUpdate(&m, in)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "tenant updated", dto.ToTenantResponse(m))
}

/* =======================================================
   MEMBER: own tenant detail; PUBLIC: by slug
======================================================= */

// GET /tenants/:id
func (h *Handler) GetTenant(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	if err := helperAuth.EnsureTenantStaff(c, id); err != nil {
		return err
	}

	var m model.TenantModel
	if err := h.DB.First(&m, "tenant_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "tenant not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "tenant", dto.ToTenantResponse(m))
}

// GET /tenants/slug/:slug — public storefront lookup, config redacted
func (h *Handler) GetTenantBySlug(c *fiber.Ctx) error {
	slug := strings.ToLower(strings.TrimSpace(c.Params("slug")))
	if slug == "" {
		return helper.JsonError(c, http.StatusBadRequest, "slug is required")
	}

	var m model.TenantModel
	if err := h.DB.First(&m,
		"lower(tenant_slug) = ? AND tenant_status = ?",
		slug, model.TenantStatusActive).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "tenant not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	out := dto.ToTenantResponse(m)
	out.TenantConfig = nil // schemes & routing stay private
	return helper.JsonOK(c, "tenant", out)
}
