package commerceapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MarcGrol/shopfront/lib/myerrors"
	"github.com/MarcGrol/shopfront/lib/myhttpclient"
)

type client struct {
	baseURL string
	sender  myhttpclient.HTTPSender
}

func NewClient(baseURL string, sender myhttpclient.HTTPSender) Client {
	return &client{
		baseURL: baseURL,
		sender:  sender,
	}
}

func (cl *client) ListProducts(c context.Context, accessToken string) ([]Product, error) {
	products := []Product{}
	err := cl.call(c, http.MethodGet, "/v1/products", accessToken, nil, &products)
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (cl *client) GetProduct(c context.Context, accessToken string, productUID string) (Product, error) {
	product := Product{}
	err := cl.call(c, http.MethodGet, "/v1/products/"+productUID, accessToken, nil, &product)
	if err != nil {
		return Product{}, err
	}
	return product, nil
}

func (cl *client) ListProductVariants(c context.Context, accessToken string, productUID string) ([]ProductVariant, error) {
	variants := []ProductVariant{}
	err := cl.call(c, http.MethodGet, "/v1/products/"+productUID+"/variants", accessToken, nil, &variants)
	if err != nil {
		return nil, err
	}
	return variants, nil
}

func (cl *client) GetCart(c context.Context, accessToken string) ([]CartLine, error) {
	lines := []CartLine{}
	err := cl.call(c, http.MethodGet, "/v1/cart", accessToken, nil, &lines)
	if err != nil {
		return nil, err
	}
	return lines, nil
}

func (cl *client) AddCartLine(c context.Context, accessToken string, addition CartAddition) error {
	return cl.call(c, http.MethodPost, "/v1/cart/add", accessToken, addition, nil)
}

func (cl *client) UpdateCartLine(c context.Context, accessToken string, lineUID string, quantity int) (CartLine, error) {
	line := CartLine{}
	err := cl.call(c, http.MethodPut, "/v1/cart/"+lineUID, accessToken,
		struct {
			Quantity int `json:"quantity"`
		}{Quantity: quantity}, &line)
	if err != nil {
		return CartLine{}, err
	}
	return line, nil
}

func (cl *client) RemoveCartLine(c context.Context, accessToken string, lineUID string) error {
	return cl.call(c, http.MethodDelete, "/v1/cart/"+lineUID, accessToken, nil, nil)
}

func (cl *client) GetShippingInfo(c context.Context, accessToken string) (ShippingProfile, bool, error) {
	profile := ShippingProfile{}
	err := cl.call(c, http.MethodGet, "/v1/shipping-info", accessToken, nil, &profile)
	if err != nil {
		if myerrors.GetHttpStatus(err) == http.StatusNotFound {
			return ShippingProfile{}, false, nil
		}
		return ShippingProfile{}, false, err
	}
	return profile, true, nil
}

func (cl *client) CreateShippingInfo(c context.Context, accessToken string, profile ShippingProfile) error {
	return cl.call(c, http.MethodPost, "/v1/shipping-info", accessToken, profile, nil)
}

func (cl *client) UpdateShippingInfo(c context.Context, accessToken string, profile ShippingProfile) error {
	return cl.call(c, http.MethodPut, "/v1/shipping-info", accessToken, profile, nil)
}

func (cl *client) ListOrders(c context.Context, accessToken string) ([]Order, error) {
	orders := []Order{}
	err := cl.call(c, http.MethodGet, "/v1/orders", accessToken, nil, &orders)
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (cl *client) InitPayment(c context.Context, accessToken string, amountInCents int) (PaymentSetup, error) {
	setup := PaymentSetup{}
	err := cl.call(c, http.MethodPost, "/v1/payment/init", accessToken,
		struct {
			Amount int `json:"amount"`
		}{Amount: amountInCents}, &setup)
	if err != nil {
		return PaymentSetup{}, err
	}
	return setup, nil
}

func (cl *client) call(c context.Context, method string, path string, accessToken string, reqBody any, respBody any) error {
	var payload []byte
	if reqBody != nil {
		var err error
		payload, err = json.Marshal(reqBody)
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error marshalling request for %s %s: %s", method, path, err))
		}
	}

	status, respPayload, err := cl.sender.Send(c, method, cl.baseURL+path, payload, accessToken)
	if err != nil {
		return myerrors.NewUnavailableError(fmt.Errorf("error calling %s %s: %s", method, path, err))
	}

	switch {
	case status == http.StatusUnauthorized:
		return myerrors.NewUnauthorizedError(fmt.Errorf("credential rejected on %s %s", method, path))
	case status == http.StatusNotFound:
		return myerrors.NewNotFoundError(fmt.Errorf("%s %s not found", method, path))
	case status >= http.StatusBadRequest:
		return myerrors.NewInternalError(fmt.Errorf("error response %d on %s %s", status, method, path))
	}

	if respBody != nil {
		err = json.Unmarshal(respPayload, respBody)
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error unmarshalling response of %s %s: %s", method, path, err))
		}
	}

	return nil
}
