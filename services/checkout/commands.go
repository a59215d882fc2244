package checkout

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MarcGrol/shopfront/lib/myerrors"
	"github.com/MarcGrol/shopfront/lib/mylog"
	"github.com/MarcGrol/shopfront/services/cart"
	"github.com/MarcGrol/shopfront/services/checkout/checkoutevents"
	"github.com/MarcGrol/shopfront/services/commerceapi"
	"github.com/MarcGrol/shopfront/services/session"
)

// getOrStartCheckout resumes the session's flow or starts a fresh one
// at the shipping step. A fresh flow preloads the shopper's shipping
// profile when the commerce API has one on file.
func (s *service) getOrStartCheckout(c context.Context, sess session.Session, lines []commerceapi.CartLine) (CheckoutContext, error) {
	var checkout CheckoutContext

	err := s.store.RunInTransaction(c, func(c context.Context) error {
		existing, found, err := s.store.Get(c, sess.UID)
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error fetching checkout: %s", err))
		}
		if found {
			checkout = existing
			return nil
		}

		now := s.nower.Now()
		checkout = CheckoutContext{
			UID:          s.uuider.Create(),
			SessionUID:   sess.UID,
			Step:         StepShipping,
			CreatedAt:    now,
			LastModified: now,
		}

		profile, onFile, err := s.client.GetShippingInfo(c, sess.AccessToken)
		if err != nil {
			if myerrors.IsUnauthorized(err) {
				return err
			}
			// Preload is best effort, the shopper can still type
			s.logger.Log(c, sess.UID, mylog.SeverityWarn, "Error preloading shipping profile: %s", err)
		} else if onFile {
			checkout.Shipping = shippingFormFromProfile(profile)
			checkout.ShippingOnFile = true
		}

		err = s.store.Put(c, sess.UID, checkout)
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error storing checkout: %s", err))
		}

		return s.publisher.Publish(c, checkoutevents.TopicName, checkoutevents.CheckoutStarted{
			CheckoutUID:  checkout.UID,
			SessionUID:   sess.UID,
			TotalInCents: cart.ComputeTotals(lines).TotalInCents,
		})
	})
	if err != nil {
		return CheckoutContext{}, err
	}

	return checkout, nil
}

// submitShipping validates the address form and, when valid, persists
// it at the commerce API before the flow advances to the payment step.
// A remote persistence failure keeps the flow at shipping, there is no
// automatic retry. A submission that arrives while the flow is at a
// different step is ignored: the step only moves forward on validation
// of the current step, and only retreats via the explicit Back action.
func (s *service) submitShipping(c context.Context, sess session.Session, form ShippingForm) (CheckoutContext, map[string]string, error) {
	fieldErrors := validateShipping(&form)

	var checkout CheckoutContext
	err := s.store.RunInTransaction(c, func(c context.Context) error {
		existing, found, err := s.store.Get(c, sess.UID)
		if err != nil || !found {
			return myerrors.NewNotFoundError(fmt.Errorf("no active checkout for this session"))
		}
		checkout = existing
		if checkout.Step != StepShipping {
			fieldErrors = nil
			return nil
		}
		checkout.Shipping = form

		if len(fieldErrors) > 0 {
			return nil
		}

		if checkout.ShippingOnFile {
			err = s.client.UpdateShippingInfo(c, sess.AccessToken, form.toProfile())
		} else {
			err = s.client.CreateShippingInfo(c, sess.AccessToken, form.toProfile())
		}
		if err != nil {
			if myerrors.IsUnauthorized(err) {
				return err
			}
			s.logger.Log(c, sess.UID, mylog.SeverityWarn, "Error persisting shipping profile, staying at shipping step: %s", err)
			return myerrors.NewUnavailableError(fmt.Errorf("could not save your shipping details, please try again"))
		}
		checkout.ShippingOnFile = true

		checkout.Step = StepPayment
		checkout.LastModified = s.nower.Now()
		return s.store.Put(c, sess.UID, checkout)
	})

	return checkout, fieldErrors, err
}

// submitPayment validates the card form and, when valid, advances to
// review. The card details live in the checkout context only. Like
// submitShipping, a post that arrives while the flow is at a different
// step is ignored, so shipping validation cannot be skipped over.
func (s *service) submitPayment(c context.Context, sess session.Session, form PaymentForm) (CheckoutContext, map[string]string, error) {
	fieldErrors := validatePayment(&form, s.nower.Now())

	var checkout CheckoutContext
	err := s.store.RunInTransaction(c, func(c context.Context) error {
		existing, found, err := s.store.Get(c, sess.UID)
		if err != nil || !found {
			return myerrors.NewNotFoundError(fmt.Errorf("no active checkout for this session"))
		}
		checkout = existing
		if checkout.Step != StepPayment {
			fieldErrors = nil
			return nil
		}
		checkout.Payment = form

		if len(fieldErrors) > 0 {
			return nil
		}

		checkout.Step = StepReview
		checkout.LastModified = s.nower.Now()
		return s.store.Put(c, sess.UID, checkout)
	})

	return checkout, fieldErrors, err
}

// back steps the flow one step towards shipping. Nothing is validated
// and nothing is persisted remotely.
func (s *service) back(c context.Context, sess session.Session) (CheckoutContext, error) {
	var checkout CheckoutContext
	err := s.store.RunInTransaction(c, func(c context.Context) error {
		existing, found, err := s.store.Get(c, sess.UID)
		if err != nil || !found {
			return myerrors.NewNotFoundError(fmt.Errorf("no active checkout for this session"))
		}
		checkout = existing

		switch checkout.Step {
		case StepReview:
			checkout.Step = StepPayment
		case StepPayment:
			checkout.Step = StepShipping
		}
		checkout.LastModified = s.nower.Now()
		return s.store.Put(c, sess.UID, checkout)
	})

	return checkout, err
}

// confirm is the terminal action of the review step: initialize the
// payment for the current total, confirm it with the processor, and on
// success finish the flow and clear the local cart. On failure the
// flow stays at review and the processor's message is kept for the
// shopper.
func (s *service) confirm(c context.Context, sess session.Session, lines []commerceapi.CartLine) (CheckoutContext, string, error) {
	var checkout CheckoutContext
	var paymentUID string
	var failureMsg string

	err := s.store.RunInTransaction(c, func(c context.Context) error {
		existing, found, err := s.store.Get(c, sess.UID)
		if err != nil || !found {
			return myerrors.NewNotFoundError(fmt.Errorf("no active checkout for this session"))
		}
		checkout = existing

		if checkout.Step != StepReview {
			return myerrors.NewInvalidInputError(fmt.Errorf("checkout is not ready for confirmation"))
		}

		totals := cart.ComputeTotals(lines)

		setup, err := s.client.InitPayment(c, sess.AccessToken, totals.TotalInCents)
		if err != nil {
			if myerrors.IsUnauthorized(err) {
				return err
			}
			failureMsg = "could not start the payment, please try again"
			return s.keepFailure(c, sess, &checkout, failureMsg)
		}

		paymentUID, err = s.payer.Confirm(c, setup.ClientSecret, cardFromForm(checkout.Payment))
		if err != nil {
			// Show the processor's message as-is, without status wrapping
			failureMsg = myerrors.GetUserMessage(err)
			return s.keepFailure(c, sess, &checkout, failureMsg)
		}

		s.logger.Log(c, sess.UID, mylog.SeverityInfo, "Checkout %s paid as %s", checkout.UID, paymentUID)

		err = s.store.Delete(c, sess.UID)
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error completing checkout: %s", err))
		}

		return s.publisher.Publish(c, checkoutevents.TopicName, checkoutevents.CheckoutCompleted{
			CheckoutUID:  checkout.UID,
			SessionUID:   sess.UID,
			TotalInCents: totals.TotalInCents,
			PaymentUID:   paymentUID,
		})
	})
	if err != nil {
		return checkout, "", err
	}
	if failureMsg != "" {
		// The failed attempt was committed, the flow stays at review
		return checkout, "", myerrors.NewUnavailableError(fmt.Errorf("%s", failureMsg))
	}

	s.cartMirror.ClearCart(c, sess)

	return checkout, paymentUID, nil
}

// keepFailure records the failed attempt on the review step. It is
// deliberately not an error path of the surrounding transaction: the
// stored message and the failure event must survive the rollback that
// a returned error would cause.
func (s *service) keepFailure(c context.Context, sess session.Session, checkout *CheckoutContext, message string) error {
	s.logger.Log(c, sess.UID, mylog.SeverityWarn, "Payment for checkout %s failed: %s", checkout.UID, message)

	checkout.PaymentErrorMsg = message
	checkout.LastModified = s.nower.Now()
	err := s.store.Put(c, sess.UID, *checkout)
	if err != nil {
		return myerrors.NewInternalError(fmt.Errorf("error storing checkout: %s", err))
	}

	return s.publisher.Publish(c, checkoutevents.TopicName, checkoutevents.CheckoutFailed{
		CheckoutUID: checkout.UID,
		SessionUID:  sess.UID,
		Reason:      message,
	})
}

func cardFromForm(form PaymentForm) Card {
	monthPart, yearPart, _ := strings.Cut(form.ExpiryDate, "/")
	month, _ := strconv.Atoi(monthPart)
	year, _ := strconv.Atoi(yearPart)

	return Card{
		Number:         form.CardNumber,
		ExpiryMonth:    month,
		ExpiryYear:     2000 + year,
		CVV:            form.CVV,
		CardholderName: form.CardholderName,
	}
}
