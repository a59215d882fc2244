package checkout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validShippingForm() ShippingForm {
	return ShippingForm{
		FirstName: "Marc",
		LastName:  "Grol",
		Email:     "marc@example.com",
		Phone:     "+31 (0)6 1234-5678",
		Address:   "Main street 1",
		City:      "Amsterdam",
		State:     "NH",
		ZipCode:   "12345",
		Country:   "NL",
	}
}

func TestValidateShipping(t *testing.T) {
	t.Run("Valid form has no errors", func(t *testing.T) {
		form := validShippingForm()
		assert.Empty(t, validateShipping(&form))
	})

	t.Run("Missing country defaults to US without an error", func(t *testing.T) {
		form := validShippingForm()
		form.Country = ""

		errors := validateShipping(&form)

		assert.Empty(t, errors)
		assert.Equal(t, "US", form.Country)
	})

	t.Run("Every other field is required", func(t *testing.T) {
		form := ShippingForm{}

		errors := validateShipping(&form)

		for _, field := range []string{"firstName", "lastName", "email", "phone", "address", "city", "state", "zipCode"} {
			assert.Equal(t, "This field is required", errors[field], field)
		}
	})

	t.Run("Email must look like local@domain.tld", func(t *testing.T) {
		form := validShippingForm()
		form.Email = "marc@example"

		errors := validateShipping(&form)

		assert.Contains(t, errors, "email")
	})

	t.Run("Phone allows digits and punctuation only", func(t *testing.T) {
		form := validShippingForm()
		form.Phone = "call me"

		errors := validateShipping(&form)

		assert.Contains(t, errors, "phone")
	})

	t.Run("Zip code is digits only", func(t *testing.T) {
		form := validShippingForm()
		form.ZipCode = "12a45"

		errors := validateShipping(&form)

		assert.Contains(t, errors, "zipCode")
	})
}

func validPaymentForm() PaymentForm {
	return PaymentForm{
		CardNumber:     "4111 1111 1111 1111",
		ExpiryDate:     "12/27",
		CVV:            "123",
		CardholderName: "M Grol",
	}
}

func TestValidatePayment(t *testing.T) {
	now := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Valid form normalizes the card number", func(t *testing.T) {
		form := validPaymentForm()

		errors := validatePayment(&form, now)

		assert.Empty(t, errors)
		assert.Equal(t, "4111111111111111", form.CardNumber)
	})

	t.Run("Card number must be 16 digits", func(t *testing.T) {
		form := validPaymentForm()
		form.CardNumber = "4111 1111"

		errors := validatePayment(&form, now)

		assert.Contains(t, errors, "cardNumber")
	})

	t.Run("Expiry in the past is rejected", func(t *testing.T) {
		form := validPaymentForm()
		form.ExpiryDate = "02/25"

		errors := validatePayment(&form, now)

		assert.Contains(t, errors, "expiryDate")
	})

	t.Run("Expiry in the current month is accepted", func(t *testing.T) {
		form := validPaymentForm()
		form.ExpiryDate = "03/25"

		errors := validatePayment(&form, now)

		assert.Empty(t, errors)
	})

	t.Run("Month 13 is rejected", func(t *testing.T) {
		form := validPaymentForm()
		form.ExpiryDate = "13/27"

		errors := validatePayment(&form, now)

		assert.Contains(t, errors, "expiryDate")
	})

	t.Run("Malformed expiry is rejected", func(t *testing.T) {
		form := validPaymentForm()
		form.ExpiryDate = "2027-12"

		errors := validatePayment(&form, now)

		assert.Contains(t, errors, "expiryDate")
	})

	t.Run("CVV must be exactly 3 digits", func(t *testing.T) {
		for _, cvv := range []string{"", "12", "1234", "12a"} {
			form := validPaymentForm()
			form.CVV = cvv

			errors := validatePayment(&form, now)

			assert.Contains(t, errors, "cvv", cvv)
		}
	})

	t.Run("Cardholder name is required", func(t *testing.T) {
		form := validPaymentForm()
		form.CardholderName = "   "

		errors := validatePayment(&form, now)

		assert.Contains(t, errors, "cardholderName")
	})
}
