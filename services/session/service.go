package session

import (
	"context"
	"fmt"
	"net/http"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MarcGrol/shopfront/lib/myerrors"
	"github.com/MarcGrol/shopfront/lib/mylog"
	"github.com/MarcGrol/shopfront/lib/mypublisher"
	"github.com/MarcGrol/shopfront/lib/mytime"
	"github.com/MarcGrol/shopfront/lib/myuuid"
	"github.com/MarcGrol/shopfront/lib/myvault"
	"github.com/MarcGrol/shopfront/services/session/sessionevents"
)

const (
	anonymousDisplayName = "Shopper"
)

type service struct {
	vault     myvault.Vault
	issuer    TokenIssuer
	nower     mytime.Nower
	uuider    myuuid.UUIDer
	logger    mylog.Logger
	publisher mypublisher.Publisher
}

// Use dependency injection to isolate the infrastructure and easy testing
func newService(vault myvault.Vault, issuer TokenIssuer, nower mytime.Nower, uuider myuuid.UUIDer, logger mylog.Logger, pub mypublisher.Publisher) *service {
	return &service{
		vault:     vault,
		issuer:    issuer,
		nower:     nower,
		uuider:    uuider,
		logger:    logger,
		publisher: pub,
	}
}

func (s *service) CreateTopics(c context.Context) error {
	err := s.publisher.CreateTopic(c, sessionevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", sessionevents.TopicName, err)
	}

	return nil
}

func (s *service) login(c context.Context, username string, password string) (Session, error) {
	tokenResp, err := s.issuer.ExchangeCredentials(c, username, password)
	if err != nil {
		s.logger.Log(c, "", mylog.SeverityWarn, "Credential exchange failed for %s: %s", username, err)
		return Session{}, myerrors.NewAuthenticationError(fmt.Errorf("invalid credentials"))
	}

	sessionUID := s.uuider.Create()
	displayName := displayNameFromToken(tokenResp.AccessToken)

	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Signed in %s as session %s", displayName, sessionUID)

	err = s.vault.Put(c, sessionUID, myvault.Token{
		SessionUID:  sessionUID,
		AccessToken: tokenResp.AccessToken,
		DisplayName: displayName,
		CreatedAt:   s.nower.Now(),
		ExpiresIn:   tokenResp.ExpiresIn,
	})
	if err != nil {
		return Session{}, myerrors.NewInternalError(fmt.Errorf("error storing session token: %s", err))
	}

	err = s.publisher.Publish(c, sessionevents.TopicName, sessionevents.UserLoggedIn{
		SessionUID:  sessionUID,
		DisplayName: displayName,
	})
	if err != nil {
		return Session{}, myerrors.NewInternalError(fmt.Errorf("error publishing event: %s", err))
	}

	return Session{
		UID:         sessionUID,
		DisplayName: displayName,
		AccessToken: tokenResp.AccessToken,
	}, nil
}

func (s *service) logout(c context.Context, sessionUID string) error {
	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Signing out session %s", sessionUID)

	err := s.vault.Delete(c, sessionUID)
	if err != nil {
		return myerrors.NewInternalError(fmt.Errorf("error deleting session token: %s", err))
	}

	err = s.publisher.Publish(c, sessionevents.TopicName, sessionevents.UserLoggedOut{
		SessionUID: sessionUID,
	})
	if err != nil {
		return myerrors.NewInternalError(fmt.Errorf("error publishing event: %s", err))
	}

	return nil
}

// FromRequest resolves the caller's session out of the session cookie.
// An absent cookie or unknown session yields an anonymous session, not
// an error.
func (s *service) FromRequest(c context.Context, r *http.Request) (Session, bool, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return Session{}, false, nil
	}

	token, found, err := s.vault.Get(c, cookie.Value)
	if err != nil {
		return Session{}, false, myerrors.NewInternalError(fmt.Errorf("error fetching session token: %s", err))
	}
	if !found {
		return Session{}, false, nil
	}

	return Session{
		UID:         token.SessionUID,
		DisplayName: token.DisplayName,
		AccessToken: token.AccessToken,
	}, true, nil
}

// displayNameFromToken decodes the non-cryptographic payload segment of
// the bearer token. Best-effort: any failure yields a placeholder, never
// an error.
func displayNameFromToken(accessToken string) string {
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(accessToken, claims)
	if err != nil {
		return anonymousDisplayName
	}

	for _, claimName := range []string{"name", "preferred_username", "email"} {
		if value, ok := claims[claimName].(string); ok && value != "" {
			return value
		}
	}

	return anonymousDisplayName
}
