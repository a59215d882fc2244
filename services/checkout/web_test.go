package checkout

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/shopfront/lib/myerrors"
	"github.com/MarcGrol/shopfront/lib/mypublisher"
	"github.com/MarcGrol/shopfront/lib/mystore"
	"github.com/MarcGrol/shopfront/lib/mytime"
	"github.com/MarcGrol/shopfront/lib/myuuid"
	"github.com/MarcGrol/shopfront/services/cart"
	"github.com/MarcGrol/shopfront/services/checkout/checkoutevents"
	"github.com/MarcGrol/shopfront/services/commerceapi"
	"github.com/MarcGrol/shopfront/services/session"
)

var (
	testSession = session.Session{
		UID:         "session-123",
		DisplayName: "Marc",
		AccessToken: "my-token",
	}
	testLines = []commerceapi.CartLine{
		{UID: "line-1", ProductUID: "prod-1", Name: "Denim jacket", PriceInCents: 18999, Quantity: 2, Size: "M", Color: "Blue"},
		{UID: "line-2", ProductUID: "prod-2", Name: "Plain tee", PriceInCents: 2000, Quantity: 1, Size: "L", Color: "White"},
	}
)

func validShippingValues() url.Values {
	return url.Values{
		"firstName": {"Marc"},
		"lastName":  {"Grol"},
		"email":     {"marc@example.com"},
		"phone":     {"+31612345678"},
		"address":   {"Main street 1"},
		"city":      {"Amsterdam"},
		"state":     {"NH"},
		"zipCode":   {"12345"},
		"country":   {"NL"},
	}
}

func validPaymentValues() url.Values {
	return url.Values{
		"cardNumber":     {"4111 1111 1111 1111"},
		"expiryDate":     {"12/27"},
		"cvv":            {"123"},
		"cardholderName": {"M Grol"},
	}
}

func TestCheckoutEntry(t *testing.T) {
	t.Run("Empty cart redirects back to the cart page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := setup(t, ctrl)

		// given
		f.sessions.EXPECT().FromRequest(gomock.Any(), gomock.Any()).Return(testSession, true, nil)
		f.cartMirror.EXPECT().FetchCart(gomock.Any(), testSession).Return([]commerceapi.CartLine{}, nil)

		// when
		response := get(f.router, "/checkout")

		// then
		assert.Equal(t, http.StatusSeeOther, response.Code)
		assert.Equal(t, "/cart", response.Header().Get("Location"))
	})

	t.Run("Entry starts at shipping and preloads the stored profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := setup(t, ctrl)

		// given
		f.sessions.EXPECT().FromRequest(gomock.Any(), gomock.Any()).Return(testSession, true, nil)
		f.cartMirror.EXPECT().FetchCart(gomock.Any(), testSession).Return(testLines, nil)
		f.uuider.EXPECT().Create().Return("checkout-1")
		f.nower.EXPECT().Now().Return(mytime.ExampleTime)
		f.client.EXPECT().GetShippingInfo(gomock.Any(), "my-token").Return(commerceapi.ShippingProfile{
			FirstName: "Marc", LastName: "Grol", Email: "marc@example.com", Phone: "+31612345678",
			Address: "Main street 1", City: "Amsterdam", State: "NH", ZipCode: "12345", Country: "NL",
		}, true, nil)
		f.publisher.EXPECT().Publish(gomock.Any(), checkoutevents.TopicName, checkoutevents.CheckoutStarted{
			CheckoutUID:  "checkout-1",
			SessionUID:   "session-123",
			TotalInCents: 44196,
		})

		// when
		response := get(f.router, "/checkout")

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.Contains(t, response.Body.String(), "Step 1 of 3")
		assert.Contains(t, response.Body.String(), `value="Marc"`)
	})

	t.Run("Missing session redirects to login", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := setup(t, ctrl)

		// given
		f.sessions.EXPECT().FromRequest(gomock.Any(), gomock.Any()).Return(session.Session{}, false, nil)

		// when
		response := get(f.router, "/checkout")

		// then
		assert.Equal(t, http.StatusSeeOther, response.Code)
		assert.Contains(t, response.Header().Get("Location"), "/login")
	})
}

func TestShippingStep(t *testing.T) {
	t.Run("Incomplete form stays at shipping with field errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := setup(t, ctrl)
		f.startCheckoutAtStep(t, StepShipping)

		// given
		f.sessions.EXPECT().FromRequest(gomock.Any(), gomock.Any()).Return(testSession, true, nil)
		f.cartMirror.EXPECT().FetchCart(gomock.Any(), testSession).Return(testLines, nil)

		// when: only a first name is supplied
		response := postForm(f.router, "/checkout/shipping", url.Values{
			"firstName": {"Marc"},
		})

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.Contains(t, response.Body.String(), "Step 1 of 3")
		assert.Contains(t, response.Body.String(), "This field is required")
	})

	t.Run("Valid form persists remotely and advances to payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := setup(t, ctrl)
		f.startCheckoutAtStep(t, StepShipping)

		// given
		f.sessions.EXPECT().FromRequest(gomock.Any(), gomock.Any()).Return(testSession, true, nil)
		f.cartMirror.EXPECT().FetchCart(gomock.Any(), testSession).Return(testLines, nil)
		f.client.EXPECT().CreateShippingInfo(gomock.Any(), "my-token", gomock.Any()).Return(nil)
		f.nower.EXPECT().Now().Return(mytime.ExampleTime)

		// when
		response := postForm(f.router, "/checkout/shipping", validShippingValues())

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.Contains(t, response.Body.String(), "Step 2 of 3")

		stored, found, _ := f.store.Get(context.TODO(), testSession.UID)
		assert.True(t, found)
		assert.Equal(t, StepPayment, stored.Step)
		assert.True(t, stored.ShippingOnFile)
	})

	t.Run("Remote persistence failure keeps the flow at shipping", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := setup(t, ctrl)
		f.startCheckoutAtStep(t, StepShipping)

		// given
		f.sessions.EXPECT().FromRequest(gomock.Any(), gomock.Any()).Return(testSession, true, nil)
		f.cartMirror.EXPECT().FetchCart(gomock.Any(), testSession).Return(testLines, nil)
		f.client.EXPECT().CreateShippingInfo(gomock.Any(), "my-token", gomock.Any()).
			Return(myerrors.NewUnavailableError(fmt.Errorf("api down")))

		// when
		response := postForm(f.router, "/checkout/shipping", validShippingValues())

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.Contains(t, response.Body.String(), "Step 1 of 3")
		assert.Contains(t, response.Body.String(), "could not save your shipping details")
		assert.NotContains(t, response.Body.String(), "status:")

		stored, found, _ := f.store.Get(context.TODO(), testSession.UID)
		assert.True(t, found)
		assert.Equal(t, StepShipping, stored.Step)
	})

	t.Run("Shipping post while at review does not retreat the flow", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := setup(t, ctrl)
		f.storeCheckout(t, CheckoutContext{
			UID: "checkout-1", SessionUID: testSession.UID, Step: StepReview,
			Payment: PaymentForm{CardNumber: "4111111111111111", CardholderName: "M Grol"},
		})

		// given: no remote persistence is expected
		f.sessions.EXPECT().FromRequest(gomock.Any(), gomock.Any()).Return(testSession, true, nil)
		f.cartMirror.EXPECT().FetchCart(gomock.Any(), testSession).Return(testLines, nil)

		// when
		response := postForm(f.router, "/checkout/shipping", validShippingValues())

		// then: the flow stays where it was
		assert.Equal(t, http.StatusOK, response.Code)
		assert.Contains(t, response.Body.String(), "Step 3 of 3")

		stored, found, _ := f.store.Get(context.TODO(), testSession.UID)
		assert.True(t, found)
		assert.Equal(t, StepReview, stored.Step)
	})

	t.Run("Preloaded profile is updated, not recreated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := setup(t, ctrl)
		f.storeCheckout(t, CheckoutContext{
			UID: "checkout-1", SessionUID: testSession.UID, Step: StepShipping, ShippingOnFile: true,
		})

		// given
		f.sessions.EXPECT().FromRequest(gomock.Any(), gomock.Any()).Return(testSession, true, nil)
		f.cartMirror.EXPECT().FetchCart(gomock.Any(), testSession).Return(testLines, nil)
		f.client.EXPECT().UpdateShippingInfo(gomock.Any(), "my-token", gomock.Any()).Return(nil)
		f.nower.EXPECT().Now().Return(mytime.ExampleTime)

		// when
		response := postForm(f.router, "/checkout/shipping", validShippingValues())

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.Contains(t, response.Body.String(), "Step 2 of 3")
	})
}

func TestPaymentStep(t *testing.T) {
	t.Run("Past expiry stays at payment with a field error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := setup(t, ctrl)
		f.startCheckoutAtStep(t, StepPayment)

		// given
		f.sessions.EXPECT().FromRequest(gomock.Any(), gomock.Any()).Return(testSession, true, nil)
		f.cartMirror.EXPECT().FetchCart(gomock.Any(), testSession).Return(testLines, nil)
		f.nower.EXPECT().Now().Return(mytime.ExampleTime)

		// when: expiry before March 2025
		values := validPaymentValues()
		values.Set("expiryDate", "02/25")
		response := postForm(f.router, "/checkout/payment", values)

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.Contains(t, response.Body.String(), "Step 2 of 3")
		assert.Contains(t, response.Body.String(), "valid expiry date")
	})

	t.Run("Payment post while still at shipping is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := setup(t, ctrl)
		f.startCheckoutAtStep(t, StepShipping)

		// given
		f.sessions.EXPECT().FromRequest(gomock.Any(), gomock.Any()).Return(testSession, true, nil)
		f.cartMirror.EXPECT().FetchCart(gomock.Any(), testSession).Return(testLines, nil)
		f.nower.EXPECT().Now().Return(mytime.ExampleTime)

		// when: a valid card is posted before shipping was completed
		response := postForm(f.router, "/checkout/payment", validPaymentValues())

		// then: the shipping step cannot be skipped over
		assert.Equal(t, http.StatusOK, response.Code)
		assert.Contains(t, response.Body.String(), "Step 1 of 3")

		stored, found, _ := f.store.Get(context.TODO(), testSession.UID)
		assert.True(t, found)
		assert.Equal(t, StepShipping, stored.Step)
		assert.Empty(t, stored.Payment.CardNumber)
	})

	t.Run("Valid card advances to review with a masked number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := setup(t, ctrl)
		f.startCheckoutAtStep(t, StepPayment)

		// given
		f.sessions.EXPECT().FromRequest(gomock.Any(), gomock.Any()).Return(testSession, true, nil)
		f.cartMirror.EXPECT().FetchCart(gomock.Any(), testSession).Return(testLines, nil)
		f.nower.EXPECT().Now().Return(mytime.ExampleTime).Times(2)

		// when
		response := postForm(f.router, "/checkout/payment", validPaymentValues())

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.Contains(t, response.Body.String(), "Step 3 of 3")
		assert.Contains(t, response.Body.String(), "**** **** **** 1111")
		assert.NotContains(t, response.Body.String(), "4111111111111111")
	})

	t.Run("Back to shipping skips validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := setup(t, ctrl)
		f.startCheckoutAtStep(t, StepPayment)

		// given
		f.sessions.EXPECT().FromRequest(gomock.Any(), gomock.Any()).Return(testSession, true, nil)
		f.cartMirror.EXPECT().FetchCart(gomock.Any(), testSession).Return(testLines, nil)
		f.nower.EXPECT().Now().Return(mytime.ExampleTime)

		// when
		response := postForm(f.router, "/checkout/back", url.Values{})

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.Contains(t, response.Body.String(), "Step 1 of 3")
	})
}

func TestConfirm(t *testing.T) {
	reviewCheckout := CheckoutContext{
		UID:        "checkout-1",
		SessionUID: testSession.UID,
		Step:       StepReview,
		Shipping:   ShippingForm{FirstName: "Marc", LastName: "Grol"},
		Payment:    PaymentForm{CardNumber: "4111111111111111", ExpiryDate: "12/27", CVV: "123", CardholderName: "M Grol"},
	}

	t.Run("Successful payment completes the flow and clears the cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := setup(t, ctrl)
		f.storeCheckout(t, reviewCheckout)

		// given
		f.sessions.EXPECT().FromRequest(gomock.Any(), gomock.Any()).Return(testSession, true, nil)
		f.cartMirror.EXPECT().FetchCart(gomock.Any(), testSession).Return(testLines, nil)
		f.client.EXPECT().InitPayment(gomock.Any(), "my-token", 44196).Return(commerceapi.PaymentSetup{
			ClientSecret: "pi_123_secret_456",
		}, nil)
		f.payer.EXPECT().Confirm(gomock.Any(), "pi_123_secret_456", Card{
			Number: "4111111111111111", ExpiryMonth: 12, ExpiryYear: 2027, CVV: "123", CardholderName: "M Grol",
		}).Return("pi_123", nil)
		f.publisher.EXPECT().Publish(gomock.Any(), checkoutevents.TopicName, checkoutevents.CheckoutCompleted{
			CheckoutUID:  "checkout-1",
			SessionUID:   "session-123",
			TotalInCents: 44196,
			PaymentUID:   "pi_123",
		})
		f.cartMirror.EXPECT().ClearCart(gomock.Any(), testSession)

		// when
		response := postForm(f.router, "/checkout/confirm", url.Values{})

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.Contains(t, response.Body.String(), "Thank you for your order")
		assert.Contains(t, response.Body.String(), "pi_123")

		_, found, _ := f.store.Get(context.TODO(), testSession.UID)
		assert.False(t, found)
	})

	t.Run("Declined payment stays at review with the processor's message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := setup(t, ctrl)
		f.storeCheckout(t, reviewCheckout)

		// given
		f.sessions.EXPECT().FromRequest(gomock.Any(), gomock.Any()).Return(testSession, true, nil)
		f.cartMirror.EXPECT().FetchCart(gomock.Any(), testSession).Return(testLines, nil)
		f.client.EXPECT().InitPayment(gomock.Any(), "my-token", 44196).Return(commerceapi.PaymentSetup{
			ClientSecret: "pi_123_secret_456",
		}, nil)
		f.payer.EXPECT().Confirm(gomock.Any(), "pi_123_secret_456", gomock.Any()).
			Return("", myerrors.NewInvalidInputError(fmt.Errorf("Your card was declined.")))
		f.nower.EXPECT().Now().Return(mytime.ExampleTime)
		f.publisher.EXPECT().Publish(gomock.Any(), checkoutevents.TopicName, checkoutevents.CheckoutFailed{
			CheckoutUID: "checkout-1",
			SessionUID:  "session-123",
			Reason:      "Your card was declined.",
		})

		// when
		response := postForm(f.router, "/checkout/confirm", url.Values{})

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.Contains(t, response.Body.String(), "Step 3 of 3")
		assert.Contains(t, response.Body.String(), "Your card was declined.")
		assert.NotContains(t, response.Body.String(), "status:")

		stored, found, _ := f.store.Get(context.TODO(), testSession.UID)
		assert.True(t, found)
		assert.Equal(t, StepReview, stored.Step)
		assert.Equal(t, "Your card was declined.", stored.PaymentErrorMsg)
	})
}

type fixture struct {
	router     *mux.Router
	store      mystore.Store[CheckoutContext]
	client     *commerceapi.MockClient
	cartMirror *cart.MockCartMirror
	payer      *MockPayer
	sessions   *session.MockSessions
	nower      *mytime.MockNower
	uuider     *myuuid.MockUUIDer
	publisher  *mypublisher.MockPublisher
}

func setup(t *testing.T, ctrl *gomock.Controller) *fixture {
	c := context.TODO()

	store, _, err := mystore.NewInMemoryStore[CheckoutContext](c)
	assert.NoError(t, err)

	f := &fixture{
		router:     mux.NewRouter(),
		store:      store,
		client:     commerceapi.NewMockClient(ctrl),
		cartMirror: cart.NewMockCartMirror(ctrl),
		payer:      NewMockPayer(ctrl),
		sessions:   session.NewMockSessions(ctrl),
		nower:      mytime.NewMockNower(ctrl),
		uuider:     myuuid.NewMockUUIDer(ctrl),
		publisher:  mypublisher.NewMockPublisher(ctrl),
	}

	f.publisher.EXPECT().CreateTopic(gomock.Any(), checkoutevents.TopicName).Return(nil)

	ws := NewWebService(f.store, f.client, f.cartMirror, f.payer, f.sessions, f.nower, f.uuider, f.publisher)
	err = ws.RegisterEndpoints(c, f.router)
	assert.NoError(t, err)

	return f
}

func (f *fixture) storeCheckout(t *testing.T, checkout CheckoutContext) {
	err := f.store.Put(context.TODO(), checkout.SessionUID, checkout)
	assert.NoError(t, err)
}

func (f *fixture) startCheckoutAtStep(t *testing.T, step Step) {
	f.storeCheckout(t, CheckoutContext{
		UID:        "checkout-1",
		SessionUID: testSession.UID,
		Step:       step,
	})
}

func get(router *mux.Router, path string) *httptest.ResponseRecorder {
	request, _ := http.NewRequest(http.MethodGet, path, nil)
	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)
	return response
}

func postForm(router *mux.Router, path string, values url.Values) *httptest.ResponseRecorder {
	request, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)
	return response
}
