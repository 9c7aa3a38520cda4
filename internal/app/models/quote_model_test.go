package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeTotal(t *testing.T) {
	t.Parallel()

	quote := Quote{
		Subtotal: decimal.NewFromFloat(1000),
		Discount: decimal.NewFromFloat(150),
		Tax:      decimal.NewFromFloat(85.50),
	}

	assert.True(t, decimal.NewFromFloat(935.50).Equal(quote.ComputeTotal()))
}

func TestComputeTotal_ZeroDiscountAndTax(t *testing.T) {
	t.Parallel()

	quote := Quote{Subtotal: decimal.NewFromFloat(250.25)}

	assert.True(t, decimal.NewFromFloat(250.25).Equal(quote.ComputeTotal()))
}

func TestComputeTotal_OverridesClientSuppliedTotal(t *testing.T) {
	t.Parallel()

	quote := Quote{
		Subtotal: decimal.NewFromFloat(100),
		Discount: decimal.NewFromFloat(20),
		Total:    decimal.NewFromFloat(999999),
	}

	assert.True(t, decimal.NewFromFloat(80).Equal(quote.ComputeTotal()))
}
