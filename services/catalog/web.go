package catalog

import (
	"context"
	"embed"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/shopfront/lib/mycontext"
	"github.com/MarcGrol/shopfront/lib/myerrors"
	"github.com/MarcGrol/shopfront/lib/myhttp"
	"github.com/MarcGrol/shopfront/lib/mylog"
	"github.com/MarcGrol/shopfront/services/commerceapi"
	"github.com/MarcGrol/shopfront/services/session"
)

const readErrorMessage = "Products are temporarily unavailable. Please try again later."

type webService struct {
	logger   mylog.Logger
	client   commerceapi.Client
	sessions session.Sessions
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(client commerceapi.Client, sessions session.Sessions) *webService {
	return &webService{
		logger:   mylog.New("catalog"),
		client:   client,
		sessions: sessions,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/", s.productListPage()).Methods("GET")
	router.HandleFunc("/products/{productUID}", s.productDetailPage()).Methods("GET")
}

//go:embed templates
var templateFolder embed.FS
var (
	productListPageTemplate   *template.Template
	productDetailPageTemplate *template.Template
)

func init() {
	productListPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/products.html"))
	productDetailPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/product.html"))
}

func (s *webService) productListPage() http.HandlerFunc {
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

		pageInfo := ProductListPageInfo{
			DisplayName: sess.DisplayName,
		}

		products, err := s.client.ListProducts(c, sess.AccessToken)
		if err != nil {
			if myerrors.IsUnauthorized(err) {
				myhttp.RedirectToLogin(w, r)
				return
			}
			// Read errors degrade to a banner, the page itself survives
			s.logger.Log(c, sess.UID, mylog.SeverityWarn, "Error listing products: %s", err)
			pageInfo.ErrorMessage = readErrorMessage
		} else {
			pageInfo.Products = products
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err = productListPageTemplate.Execute(w, pageInfo)
		if err != nil {
			errorWriter.WriteError(c, w, 2, myerrors.NewInternalError(err))
			return
		}
	}
}

func (s *webService) productDetailPage() http.HandlerFunc {
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

		productUID := mux.Vars(r)["productUID"]

		product, err := s.client.GetProduct(c, sess.AccessToken, productUID)
		if err != nil {
			if myerrors.IsUnauthorized(err) {
				myhttp.RedirectToLogin(w, r)
				return
			}
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		pageInfo := ProductDetailPageInfo{
			Product: product,
		}

		variants, err := s.client.ListProductVariants(c, sess.AccessToken, productUID)
		if err != nil {
			if myerrors.IsUnauthorized(err) {
				myhttp.RedirectToLogin(w, r)
				return
			}
			// Variants are optional detail, the product itself still renders
			s.logger.Log(c, sess.UID, mylog.SeverityWarn, "Error listing variants of product %s: %s", productUID, err)
			pageInfo.ErrorMessage = readErrorMessage
		} else {
			pageInfo.Variants = variants
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err = productDetailPageTemplate.Execute(w, pageInfo)
		if err != nil {
			errorWriter.WriteError(c, w, 3, myerrors.NewInternalError(err))
			return
		}
	}
}
