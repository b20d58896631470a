// file: internals/features/catalog/products/service/price_lookup.go
package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vahanhub_backend/internals/features/catalog/products/dto"
	"vahanhub_backend/internals/features/catalog/products/model"
	"vahanhub_backend/internals/features/pricing/engine"
	pricingService "vahanhub_backend/internals/features/pricing/rules/service"
)

var (
	ErrProductNotFound = errors.New("master product not found")
	ErrNoStatePrice    = errors.New("no ex-showroom price for state")
)

// LoadSKUForQuote fetches an active SKU with its state price row for the
// given state. The override's exShowroom, when set, wins over the state row.
func LoadSKUForQuote(db *gorm.DB, skuID uuid.UUID, stateCode string) (*model.VehicleSKUModel, float64, error) {
	stateCode = strings.ToUpper(strings.TrimSpace(stateCode))

	var sku model.VehicleSKUModel
	err := db.
		Preload("Model").
		Preload("Model.Brand").
		First(&sku, "sku_id = ? AND sku_is_active = TRUE", skuID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrProductNotFound
		}
		return nil, 0, err
	}

	ex := 0.0
	var price model.SKUStatePriceModel
	err = db.First(&price, "price_sku_id = ? AND price_state_code = ?", sku.SKUID, stateCode).Error
	switch {
	case err == nil:
		ex = price.PriceExShowroom
	case errors.Is(err, gorm.ErrRecordNotFound):
		// override may still carry the price
	default:
		return nil, 0, err
	}

	if ov := dto.DecodePricingOverride(&sku); ov != nil && ov.ExShowroom != nil {
		ex = *ov.ExShowroom
	}
	if ex <= 0 {
		return nil, 0, ErrNoStatePrice
	}
	return &sku, ex, nil
}

// QuoteOnRoad computes the full on-road result for a SKU in a state under
// a dealer's rule set (uuid.Nil dealer → platform defaults only).
func QuoteOnRoad(db *gorm.DB, dealerID, skuID uuid.UUID, stateCode string) (*model.VehicleSKUModel, engine.OnRoadResult, error) {
	stateCode = strings.ToUpper(strings.TrimSpace(stateCode))

	sku, ex, err := LoadSKUForQuote(db, skuID, stateCode)
	if err != nil {
		return nil, engine.OnRoadResult{}, err
	}

	res, err := pricingService.ComputeOnRoad(db, dealerID, stateCode, ex, sku.SKUEngineCC, dto.DecodePricingOverride(sku))
	if err != nil {
		return nil, engine.OnRoadResult{}, err
	}
	return sku, res, nil
}
