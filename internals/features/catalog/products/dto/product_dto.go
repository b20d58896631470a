// file: internals/features/catalog/products/dto/product_dto.go
package dto

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"vahanhub_backend/internals/features/catalog/products/model"
	"vahanhub_backend/internals/features/pricing/engine"
)

/* ==========================
   Brand
========================== */

type BrandCreateDTO struct {
	BrandName string  `json:"brand_name" validate:"required,min=2,max=100"`
	BrandSlug *string `json:"brand_slug" validate:"omitempty,min=2,max=120"`
	BrandLogo *string `json:"brand_logo"`
}

type BrandUpdateDTO struct {
	BrandName     *string `json:"brand_name" validate:"omitempty,min=2,max=100"`
	BrandLogo     *string `json:"brand_logo"`
	BrandIsActive *bool   `json:"brand_is_active"`
}

type BrandResponse struct {
	BrandID       uuid.UUID `json:"brand_id"`
	BrandName     string    `json:"brand_name"`
	BrandSlug     string    `json:"brand_slug"`
	BrandLogo     *string   `json:"brand_logo,omitempty"`
	BrandIsActive bool      `json:"brand_is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

func ToBrandResponse(m *model.BrandModel) *BrandResponse {
	return &BrandResponse{
		BrandID:       m.BrandID,
		BrandName:     m.BrandName,
		BrandSlug:     m.BrandSlug,
		BrandLogo:     m.BrandLogo,
		BrandIsActive: m.BrandIsActive,
		CreatedAt:     m.BrandCreatedAt,
	}
}

/* ==========================
   Vehicle model
========================== */

type VehicleModelCreateDTO struct {
	ModelBrandID  uuid.UUID `json:"model_brand_id" validate:"required"`
	ModelName     string    `json:"model_name" validate:"required,min=2,max=120"`
	ModelSlug     *string   `json:"model_slug" validate:"omitempty,min=2,max=140"`
	ModelCategory string    `json:"model_category" validate:"omitempty,oneof=SCOOTER MOTORCYCLE MOPED EV"`
	ModelImage    *string   `json:"model_image"`
}

type VehicleModelUpdateDTO struct {
	ModelName     *string `json:"model_name" validate:"omitempty,min=2,max=120"`
	ModelCategory *string `json:"model_category" validate:"omitempty,oneof=SCOOTER MOTORCYCLE MOPED EV"`
	ModelImage    *string `json:"model_image"`
	ModelIsActive *bool   `json:"model_is_active"`
}

type VehicleModelResponse struct {
	ModelID       uuid.UUID      `json:"model_id"`
	ModelBrandID  uuid.UUID      `json:"model_brand_id"`
	ModelName     string         `json:"model_name"`
	ModelSlug     string         `json:"model_slug"`
	ModelCategory string         `json:"model_category"`
	ModelImage    *string        `json:"model_image,omitempty"`
	ModelIsActive bool           `json:"model_is_active"`
	Brand         *BrandResponse `json:"brand,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

func ToVehicleModelResponse(m *model.VehicleModel) *VehicleModelResponse {
	out := &VehicleModelResponse{
		ModelID:       m.ModelID,
		ModelBrandID:  m.ModelBrandID,
		ModelName:     m.ModelName,
		ModelSlug:     m.ModelSlug,
		ModelCategory: m.ModelCategory,
		ModelImage:    m.ModelImage,
		ModelIsActive: m.ModelIsActive,
		CreatedAt:     m.ModelCreatedAt,
	}
	if m.Brand != nil {
		out.Brand = ToBrandResponse(m.Brand)
	}
	return out
}

/* ==========================
   SKU
========================== */

type StatePriceDTO struct {
	StateCode  string  `json:"state_code" validate:"required,min=2,max=8"`
	ExShowroom float64 `json:"ex_showroom" validate:"required,gt=0"`
}

type VehicleSKUCreateDTO struct {
	SKUModelID  uuid.UUID       `json:"sku_model_id" validate:"required"`
	SKUName     string          `json:"sku_name" validate:"required,min=2,max=160"`
	SKUSlug     *string         `json:"sku_slug" validate:"omitempty,min=2,max=180"`
	SKUEngineCC string          `json:"sku_engine_cc" validate:"omitempty,max=30"`
	SKUFuelType string          `json:"sku_fuel_type" validate:"omitempty,oneof=PETROL EV"`
	SKUColor    *string         `json:"sku_color" validate:"omitempty,max=60"`
	Attributes  *datatypes.JSON `json:"attributes"`
	StatePrices []StatePriceDTO `json:"state_prices" validate:"omitempty,dive"`
}

type VehicleSKUUpdateDTO struct {
	SKUName         *string                 `json:"sku_name" validate:"omitempty,min=2,max=160"`
	SKUEngineCC     *string                 `json:"sku_engine_cc" validate:"omitempty,max=30"`
	SKUFuelType     *string                 `json:"sku_fuel_type" validate:"omitempty,oneof=PETROL EV"`
	SKUColor        *string                 `json:"sku_color" validate:"omitempty,max=60"`
	Attributes      *datatypes.JSON         `json:"attributes"`
	PricingOverride *engine.PricingOverride `json:"pricing_override"`
	SKUIsActive     *bool                   `json:"sku_is_active"`
	StatePrices     []StatePriceDTO         `json:"state_prices" validate:"omitempty,dive"`
}

type VehicleSKUResponse struct {
	SKUID           uuid.UUID               `json:"sku_id"`
	SKUModelID      uuid.UUID               `json:"sku_model_id"`
	SKUName         string                  `json:"sku_name"`
	SKUSlug         string                  `json:"sku_slug"`
	SKUEngineCC     string                  `json:"sku_engine_cc"`
	SKUFuelType     string                  `json:"sku_fuel_type"`
	SKUColor        *string                 `json:"sku_color,omitempty"`
	Attributes      datatypes.JSON          `json:"attributes"`
	PricingOverride *engine.PricingOverride `json:"pricing_override,omitempty"`
	SKUImage        *string                 `json:"sku_image,omitempty"`
	SKUIsActive     bool                    `json:"sku_is_active"`
	Model           *VehicleModelResponse   `json:"model,omitempty"`
	StatePrices     []StatePriceDTO         `json:"state_prices,omitempty"`
	CreatedAt       time.Time               `json:"created_at"`
}

func ToVehicleSKUResponse(m *model.VehicleSKUModel) *VehicleSKUResponse {
	out := &VehicleSKUResponse{
		SKUID:       m.SKUID,
		SKUModelID:  m.SKUModelID,
		SKUName:     m.SKUName,
		SKUSlug:     m.SKUSlug,
		SKUEngineCC: m.SKUEngineCC,
		SKUFuelType: m.SKUFuelType,
		SKUColor:    m.SKUColor,
		Attributes:  m.SKUAttributes,
		SKUImage:    m.SKUImage,
		SKUIsActive: m.SKUIsActive,
		CreatedAt:   m.SKUCreatedAt,
	}
	if ov := DecodePricingOverride(m); ov != nil {
		out.PricingOverride = ov
	}
	if m.Model != nil {
		out.Model = ToVehicleModelResponse(m.Model)
	}
	for _, sp := range m.StatePrices {
		out.StatePrices = append(out.StatePrices, StatePriceDTO{
			StateCode:  sp.PriceStateCode,
			ExShowroom: sp.PriceExShowroom,
		})
	}
	return out
}

// DecodePricingOverride unmarshals the SKU's override column; nil when
// absent or unreadable.
func DecodePricingOverride(m *model.VehicleSKUModel) *engine.PricingOverride {
	if len(m.SKUPricingOverride) == 0 {
		return nil
	}
	var ov engine.PricingOverride
	if err := sonic.Unmarshal(m.SKUPricingOverride, &ov); err != nil {
		return nil
	}
	if ov.ExShowroom == nil && ov.Discount == nil && ov.DealerOffer == nil && ov.OnRoadOverride == nil {
		return nil
	}
	return &ov
}

func EncodePricingOverride(ov *engine.PricingOverride) (datatypes.JSON, error) {
	raw, err := sonic.Marshal(ov)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
