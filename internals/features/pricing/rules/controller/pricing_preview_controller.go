// file: internals/features/pricing/rules/controller/pricing_preview_controller.go
package controller

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"vahanhub_backend/internals/features/pricing/engine"
	"vahanhub_backend/internals/features/pricing/rules/dto"
	"vahanhub_backend/internals/features/pricing/rules/service"
	helper "vahanhub_backend/internals/helpers"
	helperAuth "vahanhub_backend/internals/helpers/auth"
)

/* =======================================================
   PREVIEW — run the engine on an unsaved config
   (rule-builder live preview, nothing persisted)
======================================================= */

// POST /:tenant_id/pricing/preview/registration
func (h *Handler) PreviewRegistration(c *fiber.Ctx) error {
	tenantID, err := mustTenantID(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid tenant_id")
	}
	if err := helperAuth.EnsureTenantStaff(c, tenantID); err != nil {
		return err
	}

	var in dto.RegistrationPreviewRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	ctx := engine.CalculationContext{
		ExShowroom: in.ExShowroom,
		EngineCC:   in.EngineCC,
		FuelType:   in.FuelType,
	}

	out := dto.RegistrationPreviewResponse{
		StateIndividual: engine.CalculateRegistrationCharges(in.RegistrationRuleConfig, ctx, engine.RegStateIndividual),
		BhSeries:        engine.CalculateRegistrationCharges(in.RegistrationRuleConfig, ctx, engine.RegBHSeries),
		Company:         engine.CalculateRegistrationCharges(in.RegistrationRuleConfig, ctx, engine.RegCompany),
	}
	return helper.JsonOK(c, "registration preview", out)
}

// POST /:tenant_id/pricing/preview/insurance
func (h *Handler) PreviewInsurance(c *fiber.Ctx) error {
	tenantID, err := mustTenantID(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid tenant_id")
	}
	if err := helperAuth.EnsureTenantStaff(c, tenantID); err != nil {
		return err
	}

	var in dto.InsurancePreviewRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	ctx := engine.InsuranceCalculationContext{
		ExShowroom:   in.ExShowroom,
		EngineCC:     in.EngineCC,
		IsNewVehicle: in.IsNewVehicle,
		CustomIDV:    in.CustomIDV,
	}
	if in.ODTenure != nil {
		ctx.ODTenure = float64(*in.ODTenure)
	}
	if in.TPTenure != nil {
		ctx.TPTenure = float64(*in.TPTenure)
	}
	if in.NCBPercentage != nil {
		ctx.NCBPercentage = *in.NCBPercentage
	}

	res := engine.CalculateInsurance(in.InsuranceRuleConfig, ctx)
	return helper.JsonOK(c, "insurance preview", fiber.Map{
		"result": res,
		"items":  engine.InsuranceItems(res, in.InsuranceRuleConfig.GSTPercentage),
	})
}

/* =======================================================
   ON-ROAD — stored rules for a state, ad-hoc vehicle
======================================================= */

type onRoadPreviewRequest struct {
	StateCode  string                  `json:"stateCode" validate:"required,max=8"`
	ExShowroom float64                 `json:"exShowroom" validate:"required,min=0"`
	EngineCC   string                  `json:"engineCc"`
	Override   *engine.PricingOverride `json:"override,omitempty"`
}

// POST /:tenant_id/pricing/preview/on-road
func (h *Handler) PreviewOnRoad(c *fiber.Ctx) error {
	tenantID, err := mustTenantID(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid tenant_id")
	}
	if err := helperAuth.EnsureTenantStaff(c, tenantID); err != nil {
		return err
	}

	var in onRoadPreviewRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	res, err := service.ComputeOnRoad(h.DB, tenantID,
		strings.ToUpper(strings.TrimSpace(in.StateCode)),
		in.ExShowroom, in.EngineCC, in.Override)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "on-road preview", res)
}
