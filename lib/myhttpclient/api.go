package myhttpclient

import "context"

//go:generate mockgen -source=api.go -package myhttpclient -destination httpclient_mock.go HTTPSender
type HTTPSender interface {
	// Send performs a JSON request. An empty bearerToken leaves the
	// Authorization header unset.
	Send(c context.Context, method string, url string, body []byte, bearerToken string) (int, []byte, error)
}

func New() HTTPSender {
	return newJSONHTTPClient()
}
