package checkout

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/MarcGrol/shopfront/services/checkout/cardinput"
)

var (
	emailPattern  = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern  = regexp.MustCompile(`^[0-9()+\-. ]+$`)
	zipPattern    = regexp.MustCompile(`^[0-9]+$`)
	expiryPattern = regexp.MustCompile(`^(\d{2})/(\d{2})$`)
	cvvPattern    = regexp.MustCompile(`^[0-9]{3}$`)
)

// validateShipping checks the shipping form and returns field-keyed
// error messages. An empty map means the form is valid. Country is the
// only optional field, it defaults to US.
func validateShipping(form *ShippingForm) map[string]string {
	errors := map[string]string{}

	if strings.TrimSpace(form.Country) == "" {
		form.Country = "US"
	}

	required := map[string]string{
		"firstName": form.FirstName,
		"lastName":  form.LastName,
		"email":     form.Email,
		"phone":     form.Phone,
		"address":   form.Address,
		"city":      form.City,
		"state":     form.State,
		"zipCode":   form.ZipCode,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			errors[field] = "This field is required"
		}
	}

	if form.Email != "" && !emailPattern.MatchString(form.Email) {
		errors["email"] = "Please enter a valid email address"
	}
	if form.Phone != "" && !phonePattern.MatchString(form.Phone) {
		errors["phone"] = "Please enter a valid phone number"
	}
	if form.ZipCode != "" && !zipPattern.MatchString(form.ZipCode) {
		errors["zipCode"] = "Please enter a valid zip code"
	}

	return errors
}

// validatePayment checks the card form against the current moment and
// returns field-keyed error messages. The card number is normalized to
// its bare digits as a side effect.
func validatePayment(form *PaymentForm, now time.Time) map[string]string {
	errors := map[string]string{}

	form.CardNumber = cardinput.Digits(form.CardNumber)
	if len(form.CardNumber) != 16 {
		errors["cardNumber"] = "Card number must be 16 digits"
	}

	if !validExpiry(form.ExpiryDate, now) {
		errors["expiryDate"] = "Please enter a valid expiry date (MM/YY)"
	}

	if !cvvPattern.MatchString(form.CVV) {
		errors["cvv"] = "CVV must be 3 digits"
	}

	if strings.TrimSpace(form.CardholderName) == "" {
		errors["cardholderName"] = "Cardholder name is required"
	}

	return errors
}

// validExpiry accepts MM/YY with a real month that is not before the
// current month. A card expiring this month is still valid.
func validExpiry(expiry string, now time.Time) bool {
	match := expiryPattern.FindStringSubmatch(expiry)
	if match == nil {
		return false
	}

	month, _ := strconv.Atoi(match[1])
	year, _ := strconv.Atoi(match[2])
	if month < 1 || month > 12 {
		return false
	}

	fullYear := 2000 + year
	if fullYear > now.Year() {
		return true
	}
	if fullYear < now.Year() {
		return false
	}
	return month >= int(now.Month())
}
