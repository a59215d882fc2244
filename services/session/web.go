package session

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
	"github.com/MarcGrol/shopfront/lib/mypublisher"
	"github.com/MarcGrol/shopfront/lib/mytime"
	"github.com/MarcGrol/shopfront/lib/myuuid"
	"github.com/MarcGrol/shopfront/lib/myvault"
)

const (
	failedLoginMessage = "Invalid username or password. Please try again."
)

type webService struct {
	logger  mylog.Logger
	service *service
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(vault myvault.Vault, issuer TokenIssuer, nower mytime.Nower, uuider myuuid.UUIDer, pub mypublisher.Publisher) *webService {
	logger := mylog.New("session")
	return &webService{
		logger:  logger,
		service: newService(vault, issuer, nower, uuider, logger, pub),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/login", s.loginPage()).Methods("GET")
	router.HandleFunc("/login", s.handleLogin()).Methods("POST")
	router.HandleFunc("/logout", s.handleLogout()).Methods("POST")

	return s.service.CreateTopics(c)
}

// Sessions exposes the session-context interface that the other services
// get injected.
func (s *webService) Sessions() Sessions {
	return s.service
}

//go:embed templates
var templateFolder embed.FS
var (
	loginPageTemplate *template.Template
)

func init() {
	loginPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/login.html"))
}

type loginPageData struct {
	ErrorMessage string
	RedirectTo   string
}

func (s *webService) loginPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err := loginPageTemplate.Execute(w, loginPageData{
			RedirectTo: r.URL.Query().Get("redirect"),
		})
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInternalError(err))
			return
		}
	}
}

func (s *webService) handleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		err := r.ParseForm()
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(err))
			return
		}

		redirectTo := r.Form.Get("redirect")
		if redirectTo == "" {
			redirectTo = "/"
		}

		newSession, err := s.service.login(c, r.Form.Get("username"), r.Form.Get("password"))
		if err != nil {
			if myerrors.GetHttpStatus(err) == http.StatusForbidden {
				// Fixed message, re-rendered inline on the sign-in page
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				w.WriteHeader(http.StatusForbidden)
				templateErr := loginPageTemplate.Execute(w, loginPageData{
					ErrorMessage: failedLoginMessage,
					RedirectTo:   redirectTo,
				})
				if templateErr != nil {
					errorWriter.WriteError(c, w, 2, myerrors.NewInternalError(templateErr))
				}
				return
			}

			errorWriter.WriteError(c, w, 3, err)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     CookieName,
			Value:    newSession.UID,
			Path:     "/",
			HttpOnly: true,
		})

		http.Redirect(w, r, redirectTo, http.StatusSeeOther)
	}
}

func (s *webService) handleLogout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		cookie, err := r.Cookie(CookieName)
		if err == nil {
			err = s.service.logout(c, cookie.Value)
			if err != nil {
				errorWriter.WriteError(c, w, 1, err)
				return
			}
		}

		http.SetCookie(w, &http.Cookie{
			Name:   CookieName,
			Value:  "",
			Path:   "/",
			MaxAge: -1,
		})

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
