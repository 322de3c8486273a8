package validator_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agro-inventario-api/pkg/validator"
)

type nested struct {
	Name string `json:"name" validate:"required"`
}

type sample struct {
	ID    string          `json:"id" validate:"required,uuid"`
	Qty   int             `json:"quantity" validate:"gt=0"`
	Price decimal.Decimal `json:"entryPrice" validate:"dgt0"`
	Inner *nested         `json:"inner" validate:"omitempty"`
}

func TestValidateStruct_Valido(t *testing.T) {
	errs := validator.ValidateStruct(sample{
		ID:    "8f1c2a4e-0b7d-4c61-9a36-1d2e3f405a01",
		Qty:   3,
		Price: decimal.RequireFromString("12.50"),
	})
	assert.Nil(t, errs)
}

func TestValidateStruct_ReportaNombresJSON(t *testing.T) {
	errs := validator.ValidateStruct(sample{
		ID:    "no-uuid",
		Qty:   0,
		Price: decimal.Zero,
		Inner: &nested{},
	})
	require.Len(t, errs, 4)

	byField := map[string]string{}
	for _, e := range errs {
		byField[e.Field] = e.Tag
	}
	assert.Equal(t, "uuid", byField["id"])
	assert.Equal(t, "gt", byField["quantity"])
	assert.Equal(t, "dgt0", byField["entryPrice"])
	assert.Equal(t, "required", byField["inner.name"])
}

type priced struct {
	Price *decimal.Decimal `json:"entryPrice" validate:"omitempty,dgt0"`
}

func TestValidateStruct_DecimalPositivoSinRedondeo(t *testing.T) {
	tiny := decimal.New(1, -400) // 1e-400: como float64 sería 0.
	assert.Nil(t, validator.ValidateStruct(sample{
		ID:    "8f1c2a4e-0b7d-4c61-9a36-1d2e3f405a01",
		Qty:   1,
		Price: tiny,
	}))

	neg := decimal.RequireFromString("-0.01")
	errs := validator.ValidateStruct(priced{Price: &neg})
	require.Len(t, errs, 1)
	assert.Equal(t, "entryPrice", errs[0].Field)
	assert.Equal(t, "dgt0", errs[0].Tag)

	zero := decimal.Zero
	assert.Len(t, validator.ValidateStruct(priced{Price: &zero}), 1)
	assert.Nil(t, validator.ValidateStruct(priced{}))
}
