package cart

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/shopfront/lib/mycontext"
	"github.com/MarcGrol/shopfront/lib/myerrors"
	"github.com/MarcGrol/shopfront/lib/myhttp"
	"github.com/MarcGrol/shopfront/lib/mylog"
	"github.com/MarcGrol/shopfront/services/commerceapi"
	"github.com/MarcGrol/shopfront/services/session"
)

type webService struct {
	logger   mylog.Logger
	service  *service
	sessions session.Sessions
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(client commerceapi.Client, sessions session.Sessions) *webService {
	logger := mylog.New("cart")
	return &webService{
		logger:   logger,
		service:  newService(client, logger),
		sessions: sessions,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/cart", s.cartPage()).Methods("GET")
	router.HandleFunc("/cart/add", s.addToCart()).Methods("POST")
	router.HandleFunc("/cart/{lineUID}/quantity", s.updateQuantity()).Methods("POST")
	router.HandleFunc("/cart/{lineUID}/remove", s.removeFromCart()).Methods("POST")
}

// Mirror exposes the cart-context interface that the checkout service
// gets injected.
func (s *webService) Mirror() CartMirror {
	return s.service
}

//go:embed templates
var templateFolder embed.FS
var (
	cartPageTemplate *template.Template
)

func init() {
	cartPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/cart.html"))
}

func (s *webService) cartPage() http.HandlerFunc {
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

		lines, err := s.service.FetchCart(c, sess)
		if err != nil {
			if myerrors.IsUnauthorized(err) {
				myhttp.RedirectToLogin(w, r)
				return
			}
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err = cartPageTemplate.Execute(w, CartPageInfo{
			Lines:  lines,
			Totals: ComputeTotals(lines),
		})
		if err != nil {
			errorWriter.WriteError(c, w, 3, myerrors.NewInternalError(err))
			return
		}
	}
}

func (s *webService) addToCart() http.HandlerFunc {
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

		err = r.ParseForm()
		if err != nil {
			errorWriter.WriteError(c, w, 2, myerrors.NewInvalidInputError(err))
			return
		}

		quantity, err := strconv.Atoi(r.Form.Get("quantity"))
		if err != nil {
			quantity = 1
		}

		err = s.service.AddToCart(c, sess, r.Form.Get("productUid"), r.Form.Get("variantUid"), quantity)
		if err != nil {
			if myerrors.IsUnauthorized(err) {
				myhttp.RedirectToLogin(w, r)
				return
			}
			errorWriter.WriteError(c, w, 3, err)
			return
		}

		http.Redirect(w, r, "/cart", http.StatusSeeOther)
	}
}

func (s *webService) updateQuantity() http.HandlerFunc {
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

		err = r.ParseForm()
		if err != nil {
			errorWriter.WriteError(c, w, 2, myerrors.NewInvalidInputError(err))
			return
		}

		quantity, err := strconv.Atoi(r.Form.Get("quantity"))
		if err != nil {
			errorWriter.WriteError(c, w, 3, myerrors.NewInvalidInputErrorf("invalid quantity '%s'", r.Form.Get("quantity")))
			return
		}

		err = s.service.UpdateQuantity(c, sess, mux.Vars(r)["lineUID"], quantity)
		if err != nil {
			if myerrors.IsUnauthorized(err) {
				myhttp.RedirectToLogin(w, r)
				return
			}
			errorWriter.WriteError(c, w, 4, err)
			return
		}

		http.Redirect(w, r, "/cart", http.StatusSeeOther)
	}
}

func (s *webService) removeFromCart() http.HandlerFunc {
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

		err = s.service.RemoveFromCart(c, sess, mux.Vars(r)["lineUID"])
		if err != nil {
			if myerrors.IsUnauthorized(err) {
				myhttp.RedirectToLogin(w, r)
				return
			}
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		http.Redirect(w, r, "/cart", http.StatusSeeOther)
	}
}
