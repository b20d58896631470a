// file: internals/features/catalog/products/model/product_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =======================================================
   BRAND
======================================================= */

type BrandModel struct {
	BrandID   uuid.UUID `gorm:"column:brand_id;type:uuid;default:gen_random_uuid();primaryKey" json:"brand_id"`
	BrandName string    `gorm:"column:brand_name;size:100;not null" json:"brand_name"`
	BrandSlug string    `gorm:"column:brand_slug;size:120;not null;uniqueIndex" json:"brand_slug"`
	BrandLogo *string   `gorm:"column:brand_logo" json:"brand_logo,omitempty"`

	BrandIsActive bool `gorm:"column:brand_is_active;not null;default:true" json:"brand_is_active"`

	BrandCreatedAt time.Time      `gorm:"column:brand_created_at;autoCreateTime" json:"brand_created_at"`
	BrandUpdatedAt time.Time      `gorm:"column:brand_updated_at;autoUpdateTime" json:"brand_updated_at"`
	BrandDeletedAt gorm.DeletedAt `gorm:"column:brand_deleted_at;index" json:"-"`
}

func (BrandModel) TableName() string { return "brands" }

/* =======================================================
   VEHICLE MODEL (brand → model)
======================================================= */

type VehicleModel struct {
	ModelID      uuid.UUID `gorm:"column:model_id;type:uuid;default:gen_random_uuid();primaryKey" json:"model_id"`
	ModelBrandID uuid.UUID `gorm:"column:model_brand_id;type:uuid;not null;index" json:"model_brand_id"`
	ModelName    string    `gorm:"column:model_name;size:120;not null" json:"model_name"`
	ModelSlug    string    `gorm:"column:model_slug;size:140;not null;uniqueIndex" json:"model_slug"`

	// SCOOTER | MOTORCYCLE | MOPED | EV
	ModelCategory string  `gorm:"column:model_category;type:varchar(20);not null;default:'MOTORCYCLE'" json:"model_category"`
	ModelImage    *string `gorm:"column:model_image" json:"model_image,omitempty"`

	ModelIsActive bool `gorm:"column:model_is_active;not null;default:true" json:"model_is_active"`

	ModelCreatedAt time.Time      `gorm:"column:model_created_at;autoCreateTime" json:"model_created_at"`
	ModelUpdatedAt time.Time      `gorm:"column:model_updated_at;autoUpdateTime" json:"model_updated_at"`
	ModelDeletedAt gorm.DeletedAt `gorm:"column:model_deleted_at;index" json:"-"`

	Brand *BrandModel `gorm:"foreignKey:ModelBrandID;references:BrandID" json:"brand,omitempty"`
}

func (VehicleModel) TableName() string { return "vehicle_models" }

/* =======================================================
   SKU (model → variant/colour trim)
======================================================= */

type VehicleSKUModel struct {
	SKUID      uuid.UUID `gorm:"column:sku_id;type:uuid;default:gen_random_uuid();primaryKey" json:"sku_id"`
	SKUModelID uuid.UUID `gorm:"column:sku_model_id;type:uuid;not null;index" json:"sku_model_id"`
	SKUName    string    `gorm:"column:sku_name;size:160;not null" json:"sku_name"`
	SKUSlug    string    `gorm:"column:sku_slug;size:180;not null;uniqueIndex" json:"sku_slug"`

	// raw OEM feed value ("249.07 cc", "∼250"); sanitised at compute time
	SKUEngineCC string  `gorm:"column:sku_engine_cc;size:30;not null;default:''" json:"sku_engine_cc"`
	SKUFuelType string  `gorm:"column:sku_fuel_type;type:varchar(20);not null;default:'PETROL'" json:"sku_fuel_type"`
	SKUColor    *string `gorm:"column:sku_color;size:60" json:"sku_color,omitempty"`

	SKUAttributes datatypes.JSON `gorm:"column:sku_attributes;type:jsonb;not null;default:'{}'" json:"sku_attributes"`

	// admin price knobs per SKU; shape owned by the pricing engine
	SKUPricingOverride datatypes.JSON `gorm:"column:sku_pricing_override;type:jsonb" json:"sku_pricing_override,omitempty"`

	SKUImage    *string `gorm:"column:sku_image" json:"sku_image,omitempty"`
	SKUIsActive bool    `gorm:"column:sku_is_active;not null;default:true" json:"sku_is_active"`

	SKUCreatedAt time.Time      `gorm:"column:sku_created_at;autoCreateTime" json:"sku_created_at"`
	SKUUpdatedAt time.Time      `gorm:"column:sku_updated_at;autoUpdateTime" json:"sku_updated_at"`
	SKUDeletedAt gorm.DeletedAt `gorm:"column:sku_deleted_at;index" json:"-"`

	Model       *VehicleModel        `gorm:"foreignKey:SKUModelID;references:ModelID" json:"model,omitempty"`
	StatePrices []SKUStatePriceModel `gorm:"foreignKey:PriceSKUID;references:SKUID" json:"state_prices,omitempty"`
}

func (VehicleSKUModel) TableName() string { return "vehicle_skus" }

/* =======================================================
   STATE PRICE (ex-showroom per state)
======================================================= */

type SKUStatePriceModel struct {
	PriceID        uuid.UUID `gorm:"column:price_id;type:uuid;default:gen_random_uuid();primaryKey" json:"price_id"`
	PriceSKUID     uuid.UUID `gorm:"column:price_sku_id;type:uuid;not null;uniqueIndex:uq_sku_state" json:"price_sku_id"`
	PriceStateCode string    `gorm:"column:price_state_code;type:varchar(8);not null;uniqueIndex:uq_sku_state" json:"price_state_code"`

	PriceExShowroom float64 `gorm:"column:price_ex_showroom;type:numeric(12,2);not null" json:"price_ex_showroom"`

	PriceCreatedAt time.Time `gorm:"column:price_created_at;autoCreateTime" json:"price_created_at"`
	PriceUpdatedAt time.Time `gorm:"column:price_updated_at;autoUpdateTime" json:"price_updated_at"`
}

func (SKUStatePriceModel) TableName() string { return "sku_state_prices" }
