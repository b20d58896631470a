// file: internals/features/catalog/products/controller/product_public_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"vahanhub_backend/internals/features/catalog/products/dto"
	"vahanhub_backend/internals/features/catalog/products/model"
	"vahanhub_backend/internals/features/catalog/products/service"
	helper "vahanhub_backend/internals/helpers"
)

/* =======================================================
   Public catalog
======================================================= */

// ListCatalog is the public model listing: active models with brand,
// filterable by brand slug and category.
func (h *Handler) ListCatalog(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 60)

	q := h.DB.Model(&model.VehicleModel{}).
		Preload("Brand").
		Where("model_is_active = TRUE")
	if brand := strings.TrimSpace(c.Query("brand")); brand != "" {
		q = q.Joins("JOIN brands ON brands.brand_id = vehicle_models.model_brand_id").
			Where("brands.brand_slug = ? AND brands.brand_deleted_at IS NULL", brand)
	}
	if cat := strings.ToUpper(strings.TrimSpace(c.Query("category"))); cat != "" {
		q = q.Where("model_category = ?", cat)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("LOWER(model_name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count catalog")
	}
	var models []model.VehicleModel
	if err := q.Order("model_name ASC").Offset(p.Offset).Limit(p.Limit).Find(&models).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch catalog")
	}

	out := make([]dto.VehicleModelResponse, 0, len(models))
	for i := range models {
		out = append(out, *dto.ToVehicleModelResponse(&models[i]))
	}
	return helper.JsonList(c, "OK", out, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GetModelBySlug returns one model with its active SKUs and state prices.
func (h *Handler) GetModelBySlug(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))

	var vm model.VehicleModel
	if err := h.DB.Preload("Brand").
		First(&vm, "model_slug = ? AND model_is_active = TRUE", slug).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Vehicle model not found")
	}

	var skus []model.VehicleSKUModel
	if err := h.DB.Preload("StatePrices").
		Where("sku_model_id = ? AND sku_is_active = TRUE", vm.ModelID).
		Order("sku_name ASC").
		Find(&skus).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch SKUs")
	}

	skuOut := make([]dto.VehicleSKUResponse, 0, len(skus))
	for i := range skus {
		resp := dto.ToVehicleSKUResponse(&skus[i])
		resp.PricingOverride = nil // admin knobs stay private
		skuOut = append(skuOut, *resp)
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"model": dto.ToVehicleModelResponse(&vm),
		"skus":  skuOut,
	})
}

// GetSKUOnRoad computes the public on-road quote for a SKU in a state.
// Optional dealer_id applies that dealer's rule overrides.
func (h *Handler) GetSKUOnRoad(c *fiber.Ctx) error {
	skuID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid SKU id")
	}
	stateCode := strings.ToUpper(strings.TrimSpace(c.Query("state_code")))
	if stateCode == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "state_code query is required")
	}

	dealerID := uuid.Nil
	if raw := strings.TrimSpace(c.Query("dealer_id")); raw != "" {
		dealerID, err = uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid dealer_id")
		}
	}

	sku, res, err := service.QuoteOnRoad(h.DB, dealerID, skuID, stateCode)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNoStatePrice):
			return helper.JsonError(c, fiber.StatusNotFound, "No price available for this state")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute on-road price")
		}
	}

	skuResp := dto.ToVehicleSKUResponse(sku)
	skuResp.PricingOverride = nil

	return helper.JsonOK(c, "OK", fiber.Map{
		"sku":        skuResp,
		"state_code": stateCode,
		"on_road":    res,
	})
}
