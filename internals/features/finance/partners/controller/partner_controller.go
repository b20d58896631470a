// file: internals/features/finance/partners/controller/partner_controller.go
package controller

import (
	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"vahanhub_backend/internals/features/finance/partners/dto"
	"vahanhub_backend/internals/features/finance/partners/model"
	"vahanhub_backend/internals/features/finance/partners/service"
	tenantModel "vahanhub_backend/internals/features/tenants/model"
	helper "vahanhub_backend/internals/helpers"
	helperAuth "vahanhub_backend/internals/helpers/auth"
)

type Handler struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Handler { return &Handler{DB: db} }

var validate = validator.New()

/* =======================================================
   Bank tenants: scheme management
======================================================= */

// GetSchemes returns the caller's bank scheme list.
func (h *Handler) GetSchemes(c *fiber.Ctx) error {
	tenant, err := h.loadTenant(c, tenantModel.TenantTypeBank)
	if err != nil {
		return err
	}
	var cfg model.BankConfig
	_ = sonic.Unmarshal(tenant.TenantConfig, &cfg)
	return helper.JsonOK(c, "OK", fiber.Map{"schemes": cfg.Schemes})
}

// ReplaceSchemes swaps the bank's scheme list wholesale. Scheme ids must
// be unique within the list.
func (h *Handler) ReplaceSchemes(c *fiber.Ctx) error {
	tenant, err := h.loadTenant(c, tenantModel.TenantTypeBank)
	if err != nil {
		return err
	}

	var in dto.SchemesReplaceDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&in); err != nil {
		return helper.JsonValidationError(c, err)
	}
	seen := map[string]bool{}
	for _, s := range in.Schemes {
		if s.ID == "" || s.Name == "" {
			return helper.JsonError(c, fiber.StatusBadRequest, "Every scheme needs an id and a name")
		}
		if seen[s.ID] {
			return helper.JsonError(c, fiber.StatusBadRequest, "Duplicate scheme id: "+s.ID)
		}
		seen[s.ID] = true
	}

	if err := h.patchTenantConfig(tenant, map[string]any{"schemes": in.Schemes}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save schemes")
	}
	return helper.JsonUpdated(c, "Schemes updated successfully", fiber.Map{"schemes": in.Schemes})
}

/* =======================================================
   Dealer tenants: routing management
======================================================= */

func (h *Handler) GetRouting(c *fiber.Ctx) error {
	tenant, err := h.loadTenant(c, tenantModel.TenantTypeDealer)
	if err != nil {
		return err
	}
	var cfg model.DealerConfig
	_ = sonic.Unmarshal(tenant.TenantConfig, &cfg)
	return helper.JsonOK(c, "OK", fiber.Map{
		"routing_strategy": cfg.RoutingStrategy,
		"finance_routing":  cfg.FinanceRouting,
	})
}

func (h *Handler) ReplaceRouting(c *fiber.Ctx) error {
	tenant, err := h.loadTenant(c, tenantModel.TenantTypeDealer)
	if err != nil {
		return err
	}

	var in dto.RoutingReplaceDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&in); err != nil {
		return helper.JsonValidationError(c, err)
	}
	for day := range in.FinanceRouting {
		if !validWeekday(day) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Unknown weekday in routing table: "+day)
		}
	}

	strategy := in.RoutingStrategy
	if strategy == "" {
		strategy = model.StrategyManual
	}

	patch := map[string]any{
		"routingStrategy": strategy,
		"financeRouting":  in.FinanceRouting,
	}
	if err := h.patchTenantConfig(tenant, patch); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save routing")
	}
	return helper.JsonUpdated(c, "Routing updated successfully", fiber.Map{
		"routing_strategy": strategy,
		"finance_routing":  in.FinanceRouting,
	})
}

/* =======================================================
   Resolution
======================================================= */

// ResolveScheme runs the routing cascade for the caller's dealership and
// the given vehicle. A no-match is a 200 with matched=false.
func (h *Handler) ResolveScheme(c *fiber.Ctx) error {
	tenantID, err := helperAuth.GetTenantID(c)
	if err != nil {
		return err
	}

	var in dto.ResolveRequestDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	res, err := service.ResolveForDealer(h.DB, tenantID, in.VehicleMake, in.VehicleModel, in.LeadID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve finance scheme")
	}
	return helper.JsonOK(c, "OK", dto.ToResolveResponse(res))
}

/* ===== shared ===== */

func (h *Handler) loadTenant(c *fiber.Ctx, wantType tenantModel.TenantType) (*tenantModel.TenantModel, error) {
	tenantID, err := helperAuth.GetTenantID(c)
	if err != nil {
		return nil, err
	}
	var tenant tenantModel.TenantModel
	if err := h.DB.First(&tenant, "tenant_id = ?", tenantID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Tenant not found")
	}
	if tenant.TenantType != wantType {
		return nil, fiber.NewError(fiber.StatusForbidden, "This endpoint is for "+string(wantType)+" tenants")
	}
	return &tenant, nil
}

// patchTenantConfig merges keys into tenant_config without clobbering
// unrelated keys other features keep in the same blob.
func (h *Handler) patchTenantConfig(tenant *tenantModel.TenantModel, patch map[string]any) error {
	existing := map[string]any{}
	if len(tenant.TenantConfig) > 0 {
		_ = sonic.Unmarshal(tenant.TenantConfig, &existing)
	}
	for k, v := range patch {
		existing[k] = v
	}
	raw, err := sonic.Marshal(existing)
	if err != nil {
		return err
	}
	return h.DB.Model(&tenantModel.TenantModel{}).
		Where("tenant_id = ?", tenant.TenantID).
		Update("tenant_config", raw).Error
}

func validWeekday(day string) bool {
	switch day {
	case "Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday":
		return true
	}
	return false
}
