package catalog

import (
	"fmt"

	"github.com/MarcGrol/shopfront/services/commerceapi"
)

func formatCents(amountInCents int) string {
	return fmt.Sprintf("$%d.%02d", amountInCents/100, amountInCents%100)
}

// ProductListPageInfo feeds the product-overview template.
type ProductListPageInfo struct {
	DisplayName  string
	Products     []commerceapi.Product
	ErrorMessage string
}

func (i ProductListPageInfo) FormatPrice(amountInCents int) string {
	return formatCents(amountInCents)
}

// ProductDetailPageInfo feeds the product-detail template.
type ProductDetailPageInfo struct {
	Product      commerceapi.Product
	Variants     []commerceapi.ProductVariant
	ErrorMessage string
}

func (i ProductDetailPageInfo) Price() string {
	return formatCents(i.Product.PriceInCents)
}
