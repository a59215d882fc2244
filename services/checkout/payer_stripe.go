package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/paymentintent"
	"github.com/stripe/stripe-go/v74/paymentmethod"
)

type stripePayer struct {
}

func NewStripePayer(apiKey string) Payer {
	stripe.Key = apiKey
	return &stripePayer{}
}

func (p *stripePayer) Confirm(c context.Context, clientSecret string, card Card) (string, error) {
	intentUID, err := intentUIDFromClientSecret(clientSecret)
	if err != nil {
		return "", err
	}

	method, err := paymentmethod.New(&stripe.PaymentMethodParams{
		Type: stripe.String("card"),
		Card: &stripe.PaymentMethodCardParams{
			Number:   stripe.String(card.Number),
			ExpMonth: stripe.Int64(int64(card.ExpiryMonth)),
			ExpYear:  stripe.Int64(int64(card.ExpiryYear)),
			CVC:      stripe.String(card.CVV),
		},
		BillingDetails: &stripe.PaymentMethodBillingDetailsParams{
			Name: stripe.String(card.CardholderName),
		},
	})
	if err != nil {
		return "", toShopperError(err)
	}

	intent, err := paymentintent.Confirm(intentUID, &stripe.PaymentIntentConfirmParams{
		PaymentMethod: stripe.String(method.ID),
	})
	if err != nil {
		return "", toShopperError(err)
	}

	if intent.Status != stripe.PaymentIntentStatusSucceeded {
		return "", fmt.Errorf("payment was not completed (status %s)", intent.Status)
	}

	return intent.ID, nil
}

// intentUIDFromClientSecret extracts "pi_123" out of "pi_123_secret_456".
func intentUIDFromClientSecret(clientSecret string) (string, error) {
	uid, _, found := strings.Cut(clientSecret, "_secret_")
	if !found || uid == "" {
		return "", fmt.Errorf("malformed payment client secret")
	}
	return uid, nil
}

// toShopperError keeps the processor's own message, bare: it is shown
// to the shopper on the review step exactly as returned here.
func toShopperError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
		return errors.New(stripeErr.Msg)
	}
	return errors.New("payment could not be processed, please try again")
}
