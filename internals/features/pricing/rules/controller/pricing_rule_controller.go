// file: internals/features/pricing/rules/controller/pricing_rule_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"vahanhub_backend/internals/features/pricing/rules/dto"
	"vahanhub_backend/internals/features/pricing/rules/model"
	helper "vahanhub_backend/internals/helpers"
	helperAuth "vahanhub_backend/internals/helpers/auth"
)

type Handler struct {
	DB *gorm.DB
}

var validate = validator.New()

func parseUUID(c *fiber.Ctx, param string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(param))
}

func mustTenantID(c *fiber.Ctx) (uuid.UUID, error) {
	midStr := strings.TrimSpace(c.Params("tenant_id"))
	if midStr == "" {
		return uuid.Nil, errors.New("tenant_id missing in path")
	}
	return uuid.Parse(midStr)
}

/* =======================================================
   REGISTRATION RULES (AUTHORIZED + TENANT-SCOPED)
======================================================= */

// POST /:tenant_id/pricing/registration-rules
func (h *Handler) CreateRegistrationRule(c *fiber.Ctx) error {
	tenantID, err := mustTenantID(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid tenant_id")
	}
	if err := helperAuth.EnsureTenantStaff(c, tenantID); err != nil {
		return err
	}

	var in dto.RegistrationRuleCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	in.RegistrationRuleStateCode = strings.ToUpper(strings.TrimSpace(in.RegistrationRuleStateCode))

	m := dto.RegistrationRuleCreateDTOToModel(in, &tenantID)
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "registration rule created", dto.ToRegistrationRuleResponse(m))
}

// GET /:tenant_id/pricing/registration-rules
func (h *Handler) ListRegistrationRules(c *fiber.Ctx) error {
	tenantID, err := mustTenantID(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid tenant_id")
	}
	if err := helperAuth.EnsureTenantStaff(c, tenantID); err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 200)

	q := h.DB.Model(&model.RegistrationRule{}).
		Where("registration_rule_tenant_id = ? OR registration_rule_tenant_id IS NULL", tenantID)

	if sc := strings.TrimSpace(c.Query("state_code")); sc != "" {
		q = q.Where("registration_rule_state_code = ?", strings.ToUpper(sc))
	}
	if c.Query("active") == "true" {
		q = q.Where("registration_rule_is_active = TRUE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var list []model.RegistrationRule
	if err := q.Order("registration_rule_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "registration rules",
		dto.ToRegistrationRuleResponses(list),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /:tenant_id/pricing/registration-rules/:id
func (h *Handler) GetRegistrationRule(c *fiber.Ctx) error {
	tenantID, err := mustTenantID(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid tenant_id")
	}
	if err := helperAuth.EnsureTenantStaff(c, tenantID); err != nil {
		return err
	}
	id, err := parseUUID(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var m model.RegistrationRule
	if err := h.DB.First(&m,
		"registration_rule_id = ? AND (registration_rule_tenant_id = ? OR registration_rule_tenant_id IS NULL)",
		id, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "registration rule not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "registration rule", dto.ToRegistrationRuleResponse(m))
}

// PATCH /:tenant_id/pricing/registration-rules/:id
func (h *Handler) UpdateRegistrationRule(c *fiber.Ctx) error {
	tenantID, err := mustTenantID(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid tenant_id")
	}
	if err := helperAuth.EnsureTenantStaff(c, tenantID); err != nil {
		return err
	}
	id, err := parseUUID(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var in dto.RegistrationRuleUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// platform defaults are not editable through the tenant endpoint
	var m model.RegistrationRule
	if err := h.DB.First(&m,
		"registration_rule_id = ? AND registration_rule_tenant_id = ?",
		id, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "registration rule not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	dto.ApplyRegistrationRuleUpdate(&m, in)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "registration rule updated", dto.ToRegistrationRuleResponse(m))
}

// DELETE /:tenant_id/pricing/registration-rules/:id
func (h *Handler) DeleteRegistrationRule(c *fiber.Ctx) error {
	tenantID, err := mustTenantID(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid tenant_id")
	}
	if err := helperAuth.EnsureTenantStaff(c, tenantID); err != nil {
		return err
	}
	id, err := parseUUID(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	res := h.DB.Where(
		"registration_rule_id = ? AND registration_rule_tenant_id = ?",
		id, tenantID).Delete(&model.RegistrationRule{})
	if res.Error != nil {
		return helper.JsonError(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "registration rule not found")
	}
	return helper.JsonDeleted(c, "registration rule deleted", fiber.Map{"registration_rule_id": id})
}

/* =======================================================
   INSURANCE RULES (AUTHORIZED + TENANT-SCOPED)
======================================================= */

// POST /:tenant_id/pricing/insurance-rules
func (h *Handler) CreateInsuranceRule(c *fiber.Ctx) error {
	tenantID, err := mustTenantID(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid tenant_id")
	}
	if err := helperAuth.EnsureTenantStaff(c, tenantID); err != nil {
		return err
	}

	var in dto.InsuranceRuleCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	in.InsuranceRuleStateCode = strings.ToUpper(strings.TrimSpace(in.InsuranceRuleStateCode))

	m := dto.InsuranceRuleCreateDTOToModel(in, &tenantID)
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "insurance rule created", dto.ToInsuranceRuleResponse(m))
}

// GET /:tenant_id/pricing/insurance-rules
func (h *Handler) ListInsuranceRules(c *fiber.Ctx) error {
	tenantID, err := mustTenantID(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid tenant_id")
	}
	if err := helperAuth.EnsureTenantStaff(c, tenantID); err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 200)

	q := h.DB.Model(&model.InsuranceRule{}).
		Where("insurance_rule_tenant_id = ? OR insurance_rule_tenant_id IS NULL", tenantID)

	if sc := strings.TrimSpace(c.Query("state_code")); sc != "" {
		q = q.Where("insurance_rule_state_code = ?", strings.ToUpper(sc))
	}
	if c.Query("active") == "true" {
		q = q.Where("insurance_rule_is_active = TRUE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var list []model.InsuranceRule
	if err := q.Order("insurance_rule_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "insurance rules",
		dto.ToInsuranceRuleResponses(list),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /:tenant_id/pricing/insurance-rules/:id
func (h *Handler) GetInsuranceRule(c *fiber.Ctx) error {
	tenantID, err := mustTenantID(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid tenant_id")
	}
	if err := helperAuth.EnsureTenantStaff(c, tenantID); err != nil {
		return err
	}
	id, err := parseUUID(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var m model.InsuranceRule
	if err := h.DB.First(&m,
		"insurance_rule_id = ? AND (insurance_rule_tenant_id = ? OR insurance_rule_tenant_id IS NULL)",
		id, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "insurance rule not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "insurance rule", dto.ToInsuranceRuleResponse(m))
}

// PATCH /:tenant_id/pricing/insurance-rules/:id
func (h *Handler) UpdateInsuranceRule(c *fiber.Ctx) error {
	tenantID, err := mustTenantID(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid tenant_id")
	}
	if err := helperAuth.EnsureTenantStaff(c, tenantID); err != nil {
		return err
	}
	id, err := parseUUID(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var in dto.InsuranceRuleUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.InsuranceRule
	if err := h.DB.First(&m,
		"insurance_rule_id = ? AND insurance_rule_tenant_id = ?",
		id, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "insurance rule not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	dto.ApplyInsuranceRuleUpdate(&m, in)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "insurance rule updated", dto.ToInsuranceRuleResponse(m))
}

// DELETE /:tenant_id/pricing/insurance-rules/:id
func (h *Handler) DeleteInsuranceRule(c *fiber.Ctx) error {
	tenantID, err := mustTenantID(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid tenant_id")
	}
	if err := helperAuth.EnsureTenantStaff(c, tenantID); err != nil {
		return err
	}
	id, err := parseUUID(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	res := h.DB.Where(
		"insurance_rule_id = ? AND insurance_rule_tenant_id = ?",
		id, tenantID).Delete(&model.InsuranceRule{})
	if res.Error != nil {
		return helper.JsonError(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "insurance rule not found")
	}
	return helper.JsonDeleted(c, "insurance rule deleted", fiber.Map{"insurance_rule_id": id})
}
