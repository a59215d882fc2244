package cart

import (
	"fmt"

	"github.com/MarcGrol/shopfront/services/commerceapi"
)

const (
	// Basis points, 800 = 8%
	taxRateBasisPoints = 800

	// Flat fee, charged on every order
	shippingFeeInCents = 999
)

type Totals struct {
	SubTotalInCents    int
	ShippingFeeInCents int
	TaxInCents         int
	TotalInCents       int
}

// ComputeTotals derives the order totals from the current line set.
// Totals are never cached: every caller recomputes on the lines it has.
func ComputeTotals(lines []commerceapi.CartLine) Totals {
	subTotal := 0
	for _, line := range lines {
		subTotal += line.PriceInCents * line.Quantity
	}

	tax := subTotal * taxRateBasisPoints / 10000

	return Totals{
		SubTotalInCents:    subTotal,
		ShippingFeeInCents: shippingFeeInCents,
		TaxInCents:         tax,
		TotalInCents:       subTotal + tax + shippingFeeInCents,
	}
}

func formatCents(amountInCents int) string {
	return fmt.Sprintf("$%d.%02d", amountInCents/100, amountInCents%100)
}

// CartPageInfo feeds the cart template.
type CartPageInfo struct {
	Lines  []commerceapi.CartLine
	Totals Totals
}

func (i CartPageInfo) SubTotal() string {
	return formatCents(i.Totals.SubTotalInCents)
}

func (i CartPageInfo) ShippingFee() string {
	return formatCents(i.Totals.ShippingFeeInCents)
}

func (i CartPageInfo) Tax() string {
	return formatCents(i.Totals.TaxInCents)
}

func (i CartPageInfo) Total() string {
	return formatCents(i.Totals.TotalInCents)
}

func (i CartPageInfo) FormatPrice(amountInCents int) string {
	return formatCents(amountInCents)
}
