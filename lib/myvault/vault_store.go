package myvault

import (
	"context"

	"github.com/MarcGrol/shopfront/lib/mystore"
)

type storeVault struct {
	tokens mystore.Store[Token]
}

func newStoreVault(c context.Context) (Vault, func(), error) {
	tokens, cleanup, err := mystore.New[Token](c)
	if err != nil {
		return nil, nil, err
	}

	return &storeVault{
		tokens: tokens,
	}, cleanup, nil
}

func (v *storeVault) Put(c context.Context, uid string, token Token) error {
	return v.tokens.Put(c, uid, token)
}

func (v *storeVault) Get(c context.Context, uid string) (Token, bool, error) {
	return v.tokens.Get(c, uid)
}

func (v *storeVault) Delete(c context.Context, uid string) error {
	return v.tokens.Delete(c, uid)
}
