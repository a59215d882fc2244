package commerceapi

import (
	"context"
	"time"
)

// Product is the read-only catalog projection served by the commerce API.
type Product struct {
	UID          string `json:"id"`
	Name         string `json:"name"`
	Brand        string `json:"brand"`
	Category     string `json:"category"`
	Description  string `json:"description"`
	PriceInCents int    `json:"price"`
	ImageURL     string `json:"imageUrl"`
}

type ProductVariant struct {
	UID       string   `json:"id"`
	ProductID string   `json:"productId"`
	Color     string   `json:"color"`
	Size      string   `json:"size"`
	Quantity  int      `json:"quantity"`
	ImageURLs []string `json:"imageUrls"`
}

// CartLine is one product-variant-quantity entry as the server knows it.
// The server owns pricing and stock; we only mirror.
type CartLine struct {
	UID          string `json:"id"`
	ProductUID   string `json:"productId"`
	VariantUID   string `json:"variantId"`
	Name         string `json:"name"`
	PriceInCents int    `json:"price"`
	Quantity     int    `json:"quantity"`
	Size         string `json:"size"`
	Color        string `json:"color"`
	ImageURL     string `json:"imageUrl"`
}

type CartAddition struct {
	ProductUID string `json:"productId"`
	VariantUID string `json:"variantId"`
	Quantity   int    `json:"quantity"`
}

type ShippingProfile struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
}

type Order struct {
	UID          string    `json:"id"`
	CreatedAt    time.Time `json:"createdAt"`
	Status       string    `json:"status"`
	TotalInCents int       `json:"total"`
}

// PaymentSetup is the server-issued handle for one payment attempt.
type PaymentSetup struct {
	ClientSecret string `json:"clientSecret"`
}

//go:generate mockgen -source=api.go -package commerceapi -destination client_mock.go Client
type Client interface {
	ListProducts(c context.Context, accessToken string) ([]Product, error)
	GetProduct(c context.Context, accessToken string, productUID string) (Product, error)
	ListProductVariants(c context.Context, accessToken string, productUID string) ([]ProductVariant, error)

	GetCart(c context.Context, accessToken string) ([]CartLine, error)
	AddCartLine(c context.Context, accessToken string, addition CartAddition) error
	UpdateCartLine(c context.Context, accessToken string, lineUID string, quantity int) (CartLine, error)
	RemoveCartLine(c context.Context, accessToken string, lineUID string) error

	GetShippingInfo(c context.Context, accessToken string) (ShippingProfile, bool, error)
	CreateShippingInfo(c context.Context, accessToken string, profile ShippingProfile) error
	UpdateShippingInfo(c context.Context, accessToken string, profile ShippingProfile) error

	ListOrders(c context.Context, accessToken string) ([]Order, error)
	InitPayment(c context.Context, accessToken string, amountInCents int) (PaymentSetup, error)
}
