package checkout

import "context"

// Card carries the details of one payment attempt.
type Card struct {
	Number         string
	ExpiryMonth    int
	ExpiryYear     int
	CVV            string
	CardholderName string
}

// Payer confirms an initialized payment with the payment processor.
//
//go:generate mockgen -source=payer.go -package checkout -destination payer_mock.go Payer
type Payer interface {
	// Confirm charges the card against the payment identified by the
	// client secret. On success it returns the processor's payment
	// UID. On failure the error message is suitable to show the
	// shopper as-is.
	Confirm(c context.Context, clientSecret string, card Card) (string, error)
}
