package orders

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/shopfront/lib/mycontext"
	"github.com/MarcGrol/shopfront/lib/myerrors"
	"github.com/MarcGrol/shopfront/lib/myhttp"
	"github.com/MarcGrol/shopfront/lib/mylog"
	"github.com/MarcGrol/shopfront/services/commerceapi"
	"github.com/MarcGrol/shopfront/services/session"
)

const readErrorMessage = "Your orders are temporarily unavailable. Please try again later."

type webService struct {
	logger   mylog.Logger
	client   commerceapi.Client
	sessions session.Sessions
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(client commerceapi.Client, sessions session.Sessions) *webService {
	return &webService{
		logger:   mylog.New("orders"),
		client:   client,
		sessions: sessions,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/orders", s.orderListPage()).Methods("GET")
}

//go:embed templates
var templateFolder embed.FS
var (
	orderListPageTemplate *template.Template
)

func init() {
	orderListPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/orders.html"))
}

// OrderListPageInfo feeds the order-history template.
type OrderListPageInfo struct {
	Orders       []commerceapi.Order
	ErrorMessage string
}

func (i OrderListPageInfo) FormatPrice(amountInCents int) string {
	return fmt.Sprintf("$%d.%02d", amountInCents/100, amountInCents%100)
}

func (i OrderListPageInfo) FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

func (s *webService) orderListPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		sess, found, err := s.sessions.FromRequest(c, r)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}
		if !found {
			myhttp.RedirectToLogin(w, r)
			return
		}

		pageInfo := OrderListPageInfo{}

		orders, err := s.client.ListOrders(c, sess.AccessToken)
		if err != nil {
			if myerrors.IsUnauthorized(err) {
				myhttp.RedirectToLogin(w, r)
				return
			}
			// Read errors degrade to a banner, the page itself survives
			s.logger.Log(c, sess.UID, mylog.SeverityWarn, "Error listing orders: %s", err)
			pageInfo.ErrorMessage = readErrorMessage
		} else {
			pageInfo.Orders = orders
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err = orderListPageTemplate.Execute(w, pageInfo)
		if err != nil {
			errorWriter.WriteError(c, w, 2, myerrors.NewInternalError(err))
			return
		}
	}
}
