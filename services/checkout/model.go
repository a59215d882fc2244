package checkout

import (
	"fmt"
	"time"

	"github.com/MarcGrol/shopfront/services/cart"
	"github.com/MarcGrol/shopfront/services/commerceapi"
)

type Step string

const (
	StepShipping Step = "shipping"
	StepPayment  Step = "payment"
	StepReview   Step = "review"
)

// ShippingForm carries the address fields of the shipping step.
type ShippingForm struct {
	FirstName string `form:"firstName"`
	LastName  string `form:"lastName"`
	Email     string `form:"email"`
	Phone     string `form:"phone"`
	Address   string `form:"address"`
	City      string `form:"city"`
	State     string `form:"state"`
	ZipCode   string `form:"zipCode"`
	Country   string `form:"country"`
}

func (f ShippingForm) toProfile() commerceapi.ShippingProfile {
	return commerceapi.ShippingProfile{
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Email:     f.Email,
		Phone:     f.Phone,
		Address:   f.Address,
		City:      f.City,
		State:     f.State,
		ZipCode:   f.ZipCode,
		Country:   f.Country,
	}
}

func shippingFormFromProfile(p commerceapi.ShippingProfile) ShippingForm {
	return ShippingForm{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Phone:     p.Phone,
		Address:   p.Address,
		City:      p.City,
		State:     p.State,
		ZipCode:   p.ZipCode,
		Country:   p.Country,
	}
}

// PaymentForm carries the card fields of the payment step. These live
// in the checkout context for the duration of the attempt only and are
// never sent to the commerce API.
type PaymentForm struct {
	CardNumber     string `form:"cardNumber"`
	ExpiryDate     string `form:"expiryDate"`
	CVV            string `form:"cvv"`
	CardholderName string `form:"cardholderName"`
}

// CheckoutContext is the per-session state of one checkout flow.
type CheckoutContext struct {
	UID             string
	SessionUID      string
	Step            Step
	Shipping        ShippingForm
	ShippingOnFile  bool
	Payment         PaymentForm
	CreatedAt       time.Time
	LastModified    time.Time
	PaymentErrorMsg string
}

func formatCents(amountInCents int) string {
	return fmt.Sprintf("$%d.%02d", amountInCents/100, amountInCents%100)
}

// checkoutPageInfo feeds all three step templates.
type checkoutPageInfo struct {
	Checkout     CheckoutContext
	Lines        []commerceapi.CartLine
	Totals       cart.Totals
	FieldErrors  map[string]string
	ErrorMessage string
}

func (i checkoutPageInfo) SubTotal() string {
	return formatCents(i.Totals.SubTotalInCents)
}

func (i checkoutPageInfo) ShippingFee() string {
	return formatCents(i.Totals.ShippingFeeInCents)
}

func (i checkoutPageInfo) Tax() string {
	return formatCents(i.Totals.TaxInCents)
}

func (i checkoutPageInfo) Total() string {
	return formatCents(i.Totals.TotalInCents)
}

func (i checkoutPageInfo) FormatPrice(amountInCents int) string {
	return formatCents(amountInCents)
}

func (i checkoutPageInfo) FieldError(field string) string {
	return i.FieldErrors[field]
}

// MaskedCardNumber shows only the last four digits on the review step.
func (i checkoutPageInfo) MaskedCardNumber() string {
	digits := i.Checkout.Payment.CardNumber
	if len(digits) < 4 {
		return ""
	}
	return "**** **** **** " + digits[len(digits)-4:]
}
