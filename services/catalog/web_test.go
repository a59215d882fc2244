package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/shopfront/lib/myerrors"
	"github.com/MarcGrol/shopfront/services/commerceapi"
	"github.com/MarcGrol/shopfront/services/session"
)

var (
	testSession = session.Session{
		UID:         "session-123",
		DisplayName: "Marc",
		AccessToken: "my-token",
	}
	testProducts = []commerceapi.Product{
		{UID: "prod-1", Name: "Denim jacket", Brand: "Levi's", Category: "Jackets", PriceInCents: 18999},
		{UID: "prod-2", Name: "Plain tee", Brand: "Hanes", Category: "Shirts", PriceInCents: 2000},
	}
)

func TestProductListPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("List shows products with prices", func(t *testing.T) {
		c, router, client, sessions := setup(t, ctrl)

		// given
		sessions.EXPECT().FromRequest(gomock.Any(), gomock.Any()).Return(testSession, true, nil)
		client.EXPECT().ListProducts(gomock.Any(), "my-token").Return(testProducts, nil)

		// when
		response := get(c, router, "/")

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.Contains(t, response.Body.String(), "Welcome, Marc")
		assert.Contains(t, response.Body.String(), "Denim jacket")
		assert.Contains(t, response.Body.String(), "$189.99")
	})

	t.Run("Read error degrades to a banner", func(t *testing.T) {
		c, router, client, sessions := setup(t, ctrl)

		// given
		sessions.EXPECT().FromRequest(gomock.Any(), gomock.Any()).Return(testSession, true, nil)
		client.EXPECT().ListProducts(gomock.Any(), "my-token").Return(nil, myerrors.NewUnavailableError(fmt.Errorf("api down")))

		// when
		response := get(c, router, "/")

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.Contains(t, response.Body.String(), "temporarily unavailable")
	})

	t.Run("Missing session redirects to login", func(t *testing.T) {
		c, router, _, sessions := setup(t, ctrl)

		// given
		sessions.EXPECT().FromRequest(gomock.Any(), gomock.Any()).Return(session.Session{}, false, nil)

		// when
		response := get(c, router, "/")

		// then
		assert.Equal(t, http.StatusSeeOther, response.Code)
		assert.Contains(t, response.Header().Get("Location"), "/login")
	})
}

func TestProductDetailPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Detail shows product and variants", func(t *testing.T) {
		c, router, client, sessions := setup(t, ctrl)

		// given
		sessions.EXPECT().FromRequest(gomock.Any(), gomock.Any()).Return(testSession, true, nil)
		client.EXPECT().GetProduct(gomock.Any(), "my-token", "prod-1").Return(testProducts[0], nil)
		client.EXPECT().ListProductVariants(gomock.Any(), "my-token", "prod-1").Return([]commerceapi.ProductVariant{
			{UID: "var-1", ProductID: "prod-1", Color: "Blue", Size: "M", Quantity: 4},
		}, nil)

		// when
		response := get(c, router, "/products/prod-1")

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.Contains(t, response.Body.String(), "Denim jacket")
		assert.Contains(t, response.Body.String(), "Blue / M")
	})

	t.Run("Unknown product reports not found", func(t *testing.T) {
		c, router, client, sessions := setup(t, ctrl)

		// given
		sessions.EXPECT().FromRequest(gomock.Any(), gomock.Any()).Return(testSession, true, nil)
		client.EXPECT().GetProduct(gomock.Any(), "my-token", "nope").Return(commerceapi.Product{}, myerrors.NewNotFoundError(fmt.Errorf("product nope not found")))

		// when
		response := get(c, router, "/products/nope")

		// then
		assert.Equal(t, http.StatusNotFound, response.Code)
	})

	t.Run("Variant read error still renders the product", func(t *testing.T) {
		c, router, client, sessions := setup(t, ctrl)

		// given
		sessions.EXPECT().FromRequest(gomock.Any(), gomock.Any()).Return(testSession, true, nil)
		client.EXPECT().GetProduct(gomock.Any(), "my-token", "prod-1").Return(testProducts[0], nil)
		client.EXPECT().ListProductVariants(gomock.Any(), "my-token", "prod-1").Return(nil, myerrors.NewUnavailableError(fmt.Errorf("api down")))

		// when
		response := get(c, router, "/products/prod-1")

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.Contains(t, response.Body.String(), "Denim jacket")
		assert.Contains(t, response.Body.String(), "temporarily unavailable")
	})
}

func setup(t *testing.T, ctrl *gomock.Controller) (context.Context, *mux.Router, *commerceapi.MockClient, *session.MockSessions) {
	c := context.TODO()
	router := mux.NewRouter()
	client := commerceapi.NewMockClient(ctrl)
	sessions := session.NewMockSessions(ctrl)

	ws := NewWebService(client, sessions)
	ws.RegisterEndpoints(c, router)

	return c, router, client, sessions
}

func get(c context.Context, router *mux.Router, path string) *httptest.ResponseRecorder {
	request, _ := http.NewRequestWithContext(c, http.MethodGet, path, nil)
	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)
	return response
}
