package session

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MarcGrol/shopfront/lib/myerrors"
)

const (
	issuerTimeout = 5 * time.Second
)

type TokenResponse struct {
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	AccessToken string `json:"access_token"`
}

//go:generate mockgen -source=tokenissuer.go -package session -destination tokenissuer_mock.go TokenIssuer
type TokenIssuer interface {
	ExchangeCredentials(c context.Context, username string, password string) (TokenResponse, error)
}

type httpTokenIssuer struct {
	tokenURL string
	clientID string
	client   *http.Client
}

func NewTokenIssuer(tokenURL string, clientID string) TokenIssuer {
	return &httpTokenIssuer{
		tokenURL: tokenURL,
		clientID: clientID,
		client: &http.Client{
			Timeout: issuerTimeout,
		},
	}
}

func (i httpTokenIssuer) ExchangeCredentials(c context.Context, username string, password string) (TokenResponse, error) {
	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("client_id", i.clientID)
	form.Set("username", username)
	form.Set("password", password)

	httpReq, err := http.NewRequestWithContext(c, http.MethodPost, i.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return TokenResponse{}, myerrors.NewInternalError(fmt.Errorf("error creating token request: %s", err))
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Accept", "application/json")

	httpResp, err := i.client.Do(httpReq)
	if err != nil {
		return TokenResponse{}, myerrors.NewUnavailableError(fmt.Errorf("error calling token endpoint: %s", err))
	}
	defer httpResp.Body.Close()

	respPayload, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return TokenResponse{}, myerrors.NewInternalError(fmt.Errorf("error reading token response: %s", err))
	}

	if httpResp.StatusCode != http.StatusOK {
		return TokenResponse{}, myerrors.NewAuthenticationError(fmt.Errorf("token endpoint returned %d", httpResp.StatusCode))
	}

	resp := TokenResponse{}
	err = json.Unmarshal(respPayload, &resp)
	if err != nil {
		return TokenResponse{}, myerrors.NewInternalError(fmt.Errorf("error unmarshalling token response: %s", err))
	}

	return resp, nil
}
