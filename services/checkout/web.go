package checkout

import (
	"context"
	"embed"
	"html/template"
	"net/http"

	"github.com/go-playground/form/v4"
	"github.com/gorilla/mux"

	"github.com/MarcGrol/shopfront/lib/mycontext"
	"github.com/MarcGrol/shopfront/lib/myerrors"
	"github.com/MarcGrol/shopfront/lib/myhttp"
	"github.com/MarcGrol/shopfront/lib/mylog"
	"github.com/MarcGrol/shopfront/lib/mypublisher"
	"github.com/MarcGrol/shopfront/lib/mystore"
	"github.com/MarcGrol/shopfront/lib/mytime"
	"github.com/MarcGrol/shopfront/lib/myuuid"
	"github.com/MarcGrol/shopfront/services/cart"
	"github.com/MarcGrol/shopfront/services/commerceapi"
	"github.com/MarcGrol/shopfront/services/session"
)

type webService struct {
	logger      mylog.Logger
	service     *service
	sessions    session.Sessions
	formDecoder *form.Decoder
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(store mystore.Store[CheckoutContext], client commerceapi.Client, cartMirror cart.CartMirror,
	payer Payer, sessions session.Sessions, nower mytime.Nower, uuider myuuid.UUIDer, pub mypublisher.Publisher) *webService {
	logger := mylog.New("checkout")
	return &webService{
		logger:      logger,
		service:     newService(store, client, cartMirror, payer, nower, uuider, logger, pub),
		sessions:    sessions,
		formDecoder: form.NewDecoder(),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/checkout", s.checkoutPage()).Methods("GET")
	router.HandleFunc("/checkout/shipping", s.submitShipping()).Methods("POST")
	router.HandleFunc("/checkout/payment", s.submitPayment()).Methods("POST")
	router.HandleFunc("/checkout/back", s.back()).Methods("POST")
	router.HandleFunc("/checkout/confirm", s.confirm()).Methods("POST")

	return s.service.CreateTopics(c)
}

//go:embed templates
var templateFolder embed.FS
var (
	shippingPageTemplate     *template.Template
	paymentPageTemplate      *template.Template
	reviewPageTemplate       *template.Template
	confirmationPageTemplate *template.Template
)

func init() {
	shippingPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/shipping.html"))
	paymentPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/payment.html"))
	reviewPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/review.html"))
	confirmationPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/confirmation.html"))
}

// resolve gives every checkout handler its common preconditions: an
// authenticated session and a non-empty cart. An empty cart redirects
// back to the cart page, on every step.
func (s *webService) resolve(c context.Context, w http.ResponseWriter, r *http.Request) (session.Session, []commerceapi.CartLine, bool) {
	errorWriter := myhttp.NewWriter(s.logger)

	sess, found, err := s.sessions.FromRequest(c, r)
	if err != nil {
		errorWriter.WriteError(c, w, 1, err)
		return session.Session{}, nil, false
	}
	if !found {
		myhttp.RedirectToLogin(w, r)
		return session.Session{}, nil, false
	}

	lines, err := s.service.cartMirror.FetchCart(c, sess)
	if err != nil {
		if myerrors.IsUnauthorized(err) {
			myhttp.RedirectToLogin(w, r)
			return session.Session{}, nil, false
		}
		errorWriter.WriteError(c, w, 2, err)
		return session.Session{}, nil, false
	}
	if len(lines) == 0 {
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return session.Session{}, nil, false
	}

	return sess, lines, true
}

func (s *webService) checkoutPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		sess, lines, ok := s.resolve(c, w, r)
		if !ok {
			return
		}

		checkout, err := s.service.getOrStartCheckout(c, sess, lines)
		if err != nil {
			if myerrors.IsUnauthorized(err) {
				myhttp.RedirectToLogin(w, r)
				return
			}
			errorWriter.WriteError(c, w, 3, err)
			return
		}

		s.renderStep(c, w, checkoutPageInfo{
			Checkout: checkout,
			Lines:    lines,
			Totals:   cart.ComputeTotals(lines),
		})
	}
}

func (s *webService) submitShipping() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		sess, lines, ok := s.resolve(c, w, r)
		if !ok {
			return
		}

		var shippingForm ShippingForm
		err := s.parseInto(&shippingForm, r)
		if err != nil {
			errorWriter.WriteError(c, w, 3, myerrors.NewInvalidInputError(err))
			return
		}

		checkout, fieldErrors, err := s.service.submitShipping(c, sess, shippingForm)
		if err != nil {
			if myerrors.IsUnauthorized(err) {
				myhttp.RedirectToLogin(w, r)
				return
			}
			// Stays at shipping with a banner, no automatic retry
			s.renderStep(c, w, checkoutPageInfo{
				Checkout:     checkout,
				Lines:        lines,
				Totals:       cart.ComputeTotals(lines),
				ErrorMessage: myerrors.GetUserMessage(err),
			})
			return
		}

		s.renderStep(c, w, checkoutPageInfo{
			Checkout:    checkout,
			Lines:       lines,
			Totals:      cart.ComputeTotals(lines),
			FieldErrors: fieldErrors,
		})
	}
}

func (s *webService) submitPayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		sess, lines, ok := s.resolve(c, w, r)
		if !ok {
			return
		}

		var paymentForm PaymentForm
		err := s.parseInto(&paymentForm, r)
		if err != nil {
			errorWriter.WriteError(c, w, 3, myerrors.NewInvalidInputError(err))
			return
		}

		checkout, fieldErrors, err := s.service.submitPayment(c, sess, paymentForm)
		if err != nil {
			errorWriter.WriteError(c, w, 4, err)
			return
		}

		s.renderStep(c, w, checkoutPageInfo{
			Checkout:    checkout,
			Lines:       lines,
			Totals:      cart.ComputeTotals(lines),
			FieldErrors: fieldErrors,
		})
	}
}

func (s *webService) back() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		sess, lines, ok := s.resolve(c, w, r)
		if !ok {
			return
		}

		checkout, err := s.service.back(c, sess)
		if err != nil {
			errorWriter.WriteError(c, w, 3, err)
			return
		}

		s.renderStep(c, w, checkoutPageInfo{
			Checkout: checkout,
			Lines:    lines,
			Totals:   cart.ComputeTotals(lines),
		})
	}
}

func (s *webService) confirm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		sess, lines, ok := s.resolve(c, w, r)
		if !ok {
			return
		}

		checkout, paymentUID, err := s.service.confirm(c, sess, lines)
		if err != nil {
			if myerrors.IsUnauthorized(err) {
				myhttp.RedirectToLogin(w, r)
				return
			}
			if myerrors.GetHttpStatus(err) == http.StatusServiceUnavailable {
				// Failed attempt: back to review with the processor's
				// own message
				s.renderStep(c, w, checkoutPageInfo{
					Checkout: checkout,
					Lines:    lines,
					Totals:   cart.ComputeTotals(lines),
				})
				return
			}
			errorWriter.WriteError(c, w, 3, err)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err = confirmationPageTemplate.Execute(w, struct {
			CheckoutUID string
			PaymentUID  string
		}{
			CheckoutUID: checkout.UID,
			PaymentUID:  paymentUID,
		})
		if err != nil {
			errorWriter.WriteError(c, w, 4, myerrors.NewInternalError(err))
			return
		}
	}
}

func (s *webService) parseInto(target interface{}, r *http.Request) error {
	err := r.ParseForm()
	if err != nil {
		return err
	}
	return s.formDecoder.Decode(target, r.PostForm)
}

func (s *webService) renderStep(c context.Context, w http.ResponseWriter, pageInfo checkoutPageInfo) {
	var stepTemplate *template.Template
	switch pageInfo.Checkout.Step {
	case StepPayment:
		stepTemplate = paymentPageTemplate
	case StepReview:
		stepTemplate = reviewPageTemplate
	default:
		stepTemplate = shippingPageTemplate
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := stepTemplate.Execute(w, pageInfo)
	if err != nil {
		myhttp.NewWriter(s.logger).WriteError(c, w, 1, myerrors.NewInternalError(err))
	}
}
