package myvault

import (
	"context"
	"os"
	"time"
)

// Token is the bearer credential of one signed-in browser session,
// together with the identity we derived from it at sign-in time.
type Token struct {
	SessionUID  string
	AccessToken string
	DisplayName string
	CreatedAt   time.Time
	ExpiresIn   int // seconds, 0 means unknown
}

//go:generate mockgen -source=api.go -package myvault -destination vault_mock.go Vault
type Vault interface {
	Put(c context.Context, uid string, token Token) error
	Get(c context.Context, uid string) (Token, bool, error)
	Delete(c context.Context, uid string) error
}

func New(c context.Context) (Vault, func(), error) {
	if os.Getenv("REDIS_ADDR") != "" {
		return newRedisVault(os.Getenv("REDIS_ADDR"))
	}

	return newStoreVault(c)
}
