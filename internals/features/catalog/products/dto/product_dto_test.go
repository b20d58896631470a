// file: internals/features/catalog/products/dto/product_dto_test.go
package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"vahanhub_backend/internals/features/catalog/products/model"
	"vahanhub_backend/internals/features/pricing/engine"
)

func TestDecodePricingOverride(t *testing.T) {
	sku := model.VehicleSKUModel{
		SKUPricingOverride: datatypes.JSON([]byte(`{"discount": 2000, "onRoadOverride": 115000}`)),
	}
	ov := DecodePricingOverride(&sku)
	require.NotNil(t, ov)
	assert.Equal(t, 2000.0, *ov.Discount)
	assert.Equal(t, 115000.0, *ov.OnRoadOverride)
	assert.Nil(t, ov.ExShowroom)
}

func TestDecodePricingOverrideAbsentColumn(t *testing.T) {
	assert.Nil(t, DecodePricingOverride(&model.VehicleSKUModel{}))
}

func TestDecodePricingOverrideEmptyObjectIsNil(t *testing.T) {
	sku := model.VehicleSKUModel{SKUPricingOverride: datatypes.JSON([]byte(`{}`))}
	assert.Nil(t, DecodePricingOverride(&sku))
}

func TestDecodePricingOverrideGarbageIsNil(t *testing.T) {
	sku := model.VehicleSKUModel{SKUPricingOverride: datatypes.JSON([]byte(`not json`))}
	assert.Nil(t, DecodePricingOverride(&sku))
}

func TestEncodeDecodeOverrideRoundTrip(t *testing.T) {
	ex := 98000.0
	raw, err := EncodePricingOverride(&engine.PricingOverride{ExShowroom: &ex})
	require.NoError(t, err)

	sku := model.VehicleSKUModel{SKUPricingOverride: raw}
	ov := DecodePricingOverride(&sku)
	require.NotNil(t, ov)
	assert.Equal(t, ex, *ov.ExShowroom)
}
