package orders

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/shopfront/lib/myerrors"
	"github.com/MarcGrol/shopfront/services/commerceapi"
	"github.com/MarcGrol/shopfront/services/session"
)

var testSession = session.Session{
	UID:         "session-123",
	DisplayName: "Marc",
	AccessToken: "my-token",
}

func TestOrderListPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("List shows orders", func(t *testing.T) {
		c, router, client, sessions := setup(t, ctrl)

		// given
		sessions.EXPECT().FromRequest(gomock.Any(), gomock.Any()).Return(testSession, true, nil)
		client.EXPECT().ListOrders(gomock.Any(), "my-token").Return([]commerceapi.Order{
			{UID: "order-1", CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), Status: "shipped", TotalInCents: 44196},
		}, nil)

		// when
		response := get(c, router, "/orders")

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.Contains(t, response.Body.String(), "order-1")
		assert.Contains(t, response.Body.String(), "Mar 1, 2025")
		assert.Contains(t, response.Body.String(), "$441.96")
	})

	t.Run("Read error degrades to a banner", func(t *testing.T) {
		c, router, client, sessions := setup(t, ctrl)

		// given
		sessions.EXPECT().FromRequest(gomock.Any(), gomock.Any()).Return(testSession, true, nil)
		client.EXPECT().ListOrders(gomock.Any(), "my-token").Return(nil, myerrors.NewUnavailableError(fmt.Errorf("api down")))

		// when
		response := get(c, router, "/orders")

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.Contains(t, response.Body.String(), "temporarily unavailable")
	})

	t.Run("Rejected credential redirects to login", func(t *testing.T) {
		c, router, client, sessions := setup(t, ctrl)

		// given
		sessions.EXPECT().FromRequest(gomock.Any(), gomock.Any()).Return(testSession, true, nil)
		client.EXPECT().ListOrders(gomock.Any(), "my-token").Return(nil, myerrors.NewUnauthorizedError(fmt.Errorf("token expired")))

		// when
		response := get(c, router, "/orders")

		// then
		assert.Equal(t, http.StatusSeeOther, response.Code)
		assert.Contains(t, response.Header().Get("Location"), "/login")
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
