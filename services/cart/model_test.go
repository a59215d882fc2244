package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MarcGrol/shopfront/services/commerceapi"
)

func TestComputeTotals(t *testing.T) {
	t.Run("Empty cart", func(t *testing.T) {
		totals := ComputeTotals([]commerceapi.CartLine{})

		assert.Equal(t, 0, totals.SubTotalInCents)
		assert.Equal(t, 0, totals.TaxInCents)
		assert.Equal(t, 999, totals.ShippingFeeInCents)
		assert.Equal(t, 999, totals.TotalInCents)
	})

	t.Run("Quantities multiply into the subtotal", func(t *testing.T) {
		totals := ComputeTotals([]commerceapi.CartLine{
			{UID: "1", PriceInCents: 18999, Quantity: 2},
			{UID: "2", PriceInCents: 2000, Quantity: 1},
		})

		assert.Equal(t, 39998, totals.SubTotalInCents)
		assert.Equal(t, 3199, totals.TaxInCents)
		assert.Equal(t, 999, totals.ShippingFeeInCents)
		assert.Equal(t, 44196, totals.TotalInCents)
	})

	t.Run("Total is always subtotal plus tax plus shipping", func(t *testing.T) {
		lines := []commerceapi.CartLine{
			{UID: "1", PriceInCents: 123, Quantity: 3},
			{UID: "2", PriceInCents: 4999, Quantity: 7},
			{UID: "3", PriceInCents: 1, Quantity: 1},
		}
		totals := ComputeTotals(lines)

		assert.Equal(t, totals.SubTotalInCents+totals.TaxInCents+totals.ShippingFeeInCents, totals.TotalInCents)
	})
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "$0.00", formatCents(0))
	assert.Equal(t, "$0.09", formatCents(9))
	assert.Equal(t, "$9.99", formatCents(999))
	assert.Equal(t, "$189.99", formatCents(18999))
}
