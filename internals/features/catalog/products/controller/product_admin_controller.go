// file: internals/features/catalog/products/controller/product_admin_controller.go
package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"vahanhub_backend/internals/constants"
	"vahanhub_backend/internals/features/catalog/products/dto"
	"vahanhub_backend/internals/features/catalog/products/model"
	helper "vahanhub_backend/internals/helpers"
)

var modelSlugOpts = helper.SlugOptions{
	Table:            "vehicle_models",
	SlugColumn:       "model_slug",
	SoftDeleteColumn: "model_deleted_at",
	MaxLen:           140,
	DefaultBase:      "model",
}

var skuSlugOpts = helper.SlugOptions{
	Table:            "vehicle_skus",
	SlugColumn:       "sku_slug",
	SoftDeleteColumn: "sku_deleted_at",
	MaxLen:           180,
	DefaultBase:      "sku",
}

/* =======================================================
   VEHICLE MODELS
======================================================= */

func (h *Handler) CreateVehicleModel(c *fiber.Ctx) error {
	var in dto.VehicleModelCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var brand model.BrandModel
	if err := h.DB.First(&brand, "brand_id = ?", in.ModelBrandID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Brand not found")
	}

	base := brand.BrandName + " " + in.ModelName
	if in.ModelSlug != nil && strings.TrimSpace(*in.ModelSlug) != "" {
		base = *in.ModelSlug
	}
	slug, err := helper.GenerateUniqueSlug(h.DB, modelSlugOpts, base)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate slug")
	}

	category := in.ModelCategory
	if category == "" {
		category = "MOTORCYCLE"
	}

	vm := model.VehicleModel{
		ModelBrandID:  in.ModelBrandID,
		ModelName:     strings.TrimSpace(in.ModelName),
		ModelSlug:     slug,
		ModelCategory: category,
		ModelImage:    in.ModelImage,
		ModelIsActive: true,
	}
	if err := h.DB.Create(&vm).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create vehicle model")
	}
	vm.Brand = &brand
	return helper.JsonCreated(c, "Vehicle model created successfully", dto.ToVehicleModelResponse(&vm))
}

func (h *Handler) UpdateVehicleModel(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid model id")
	}
	var in dto.VehicleModelUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var vm model.VehicleModel
	if err := h.DB.First(&vm, "model_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Vehicle model not found")
	}

	if in.ModelName != nil {
		vm.ModelName = strings.TrimSpace(*in.ModelName)
	}
	if in.ModelCategory != nil {
		vm.ModelCategory = *in.ModelCategory
	}
	if in.ModelImage != nil {
		vm.ModelImage = in.ModelImage
	}
	if in.ModelIsActive != nil {
		vm.ModelIsActive = *in.ModelIsActive
	}
	if err := h.DB.Save(&vm).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update vehicle model")
	}
	return helper.JsonUpdated(c, "Vehicle model updated successfully", dto.ToVehicleModelResponse(&vm))
}

func (h *Handler) DeleteVehicleModel(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid model id")
	}
	res := h.DB.Delete(&model.VehicleModel{}, "model_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete vehicle model")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Vehicle model not found")
	}
	return helper.JsonDeleted(c, "Vehicle model deleted successfully", fiber.Map{"model_id": id})
}

/* =======================================================
   SKUs
======================================================= */

func (h *Handler) CreateSKU(c *fiber.Ctx) error {
	var in dto.VehicleSKUCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var vm model.VehicleModel
	if err := h.DB.Preload("Brand").First(&vm, "model_id = ?", in.SKUModelID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Vehicle model not found")
	}

	base := vm.ModelName + " " + in.SKUName
	if in.SKUSlug != nil && strings.TrimSpace(*in.SKUSlug) != "" {
		base = *in.SKUSlug
	}
	slug, err := helper.GenerateUniqueSlug(h.DB, skuSlugOpts, base)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate slug")
	}

	fuel := in.SKUFuelType
	if fuel == "" {
		fuel = "PETROL"
	}
	attrs := datatypes.JSON([]byte(`{}`))
	if in.Attributes != nil {
		attrs = *in.Attributes
	}

	sku := model.VehicleSKUModel{
		SKUModelID:    in.SKUModelID,
		SKUName:       strings.TrimSpace(in.SKUName),
		SKUSlug:       slug,
		SKUEngineCC:   strings.TrimSpace(in.SKUEngineCC),
		SKUFuelType:   fuel,
		SKUColor:      in.SKUColor,
		SKUAttributes: attrs,
		SKUIsActive:   true,
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&sku).Error; err != nil {
			return err
		}
		return upsertStatePrices(tx, sku.SKUID, in.StatePrices)
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create SKU")
	}

	sku.Model = &vm
	return helper.JsonCreated(c, "SKU created successfully", dto.ToVehicleSKUResponse(&sku))
}

func (h *Handler) UpdateSKU(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid SKU id")
	}
	var in dto.VehicleSKUUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var sku model.VehicleSKUModel
	if err := h.DB.First(&sku, "sku_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "SKU not found")
	}

	if in.SKUName != nil {
		sku.SKUName = strings.TrimSpace(*in.SKUName)
	}
	if in.SKUEngineCC != nil {
		sku.SKUEngineCC = strings.TrimSpace(*in.SKUEngineCC)
	}
	if in.SKUFuelType != nil {
		sku.SKUFuelType = *in.SKUFuelType
	}
	if in.SKUColor != nil {
		sku.SKUColor = in.SKUColor
	}
	if in.Attributes != nil {
		sku.SKUAttributes = *in.Attributes
	}
	if in.PricingOverride != nil {
		raw, encErr := dto.EncodePricingOverride(in.PricingOverride)
		if encErr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid pricing override")
		}
		sku.SKUPricingOverride = raw
	}
	if in.SKUIsActive != nil {
		sku.SKUIsActive = *in.SKUIsActive
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&sku).Error; err != nil {
			return err
		}
		return upsertStatePrices(tx, sku.SKUID, in.StatePrices)
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update SKU")
	}
	return helper.JsonUpdated(c, "SKU updated successfully", dto.ToVehicleSKUResponse(&sku))
}

func (h *Handler) DeleteSKU(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid SKU id")
	}
	res := h.DB.Delete(&model.VehicleSKUModel{}, "sku_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete SKU")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "SKU not found")
	}
	return helper.JsonDeleted(c, "SKU deleted successfully", fiber.Map{"sku_id": id})
}

// UploadSKUImage accepts a multipart "image" file, converts it to webp and
// stores the public URL on the SKU.
func (h *Handler) UploadSKUImage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid SKU id")
	}

	var sku model.VehicleSKUModel
	if err := h.DB.First(&sku, "sku_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "SKU not found")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Image file missing")
	}
	if !constants.IsImageExt(fileHeader.Filename) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Unsupported image format")
	}

	url, err := helper.UploadVehicleImage("skus", fileHeader)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to upload image")
	}

	if sku.SKUImage != nil && *sku.SKUImage != url {
		if delErr := helper.DeleteVehicleImageByURL(*sku.SKUImage); delErr != nil {
			log.Printf("[CATALOG] failed to delete old SKU image: %v", delErr)
		}
	}

	sku.SKUImage = &url
	if err := h.DB.Save(&sku).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save image URL")
	}
	return helper.JsonUpdated(c, "SKU image uploaded successfully", fiber.Map{"sku_id": id, "url": url})
}

func upsertStatePrices(tx *gorm.DB, skuID uuid.UUID, prices []dto.StatePriceDTO) error {
	for _, sp := range prices {
		state := strings.ToUpper(strings.TrimSpace(sp.StateCode))
		row := model.SKUStatePriceModel{
			PriceSKUID:      skuID,
			PriceStateCode:  state,
			PriceExShowroom: sp.ExShowroom,
		}
		err := tx.Exec(`
			INSERT INTO sku_state_prices (price_id, price_sku_id, price_state_code, price_ex_showroom, price_created_at, price_updated_at)
			VALUES (gen_random_uuid(), ?, ?, ?, NOW(), NOW())
			ON CONFLICT (price_sku_id, price_state_code)
			DO UPDATE SET price_ex_showroom = EXCLUDED.price_ex_showroom, price_updated_at = NOW()
		`, row.PriceSKUID, row.PriceStateCode, row.PriceExShowroom).Error
		if err != nil {
			return err
		}
	}
	return nil
}
