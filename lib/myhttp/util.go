package myhttp

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
)

func HostnameWithScheme(r *http.Request) string {
	scheme := "https"
	if r.TLS == nil {
		scheme = "http"
	}

	return fmt.Sprintf("%s://%s", scheme, r.Host)
}

func GuessHostnameWithScheme() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return fmt.Sprintf("http://localhost:%s", port)
}

// RedirectToLogin sends the user to the sign-in page, remembering where
// they came from. Used whenever a downstream call signals that the bearer
// credential is no longer valid.
func RedirectToLogin(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/login?redirect="+url.QueryEscape(r.URL.RequestURI()), http.StatusSeeOther)
}
