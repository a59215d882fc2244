package cart

import (
	"context"

	"github.com/MarcGrol/shopfront/services/commerceapi"
	"github.com/MarcGrol/shopfront/services/session"
)

// CartMirror is the explicit cart-context that consuming services get
// injected. It keeps a local copy of the remote cart per session and
// offers the mutations of the storefront.
//
//go:generate mockgen -source=api.go -package cart -destination cart_mock.go CartMirror
type CartMirror interface {
	// FetchCart replaces the local mirror with the server's current
	// line set. A failing read degrades to an empty list; only a
	// rejected credential is reported back.
	FetchCart(c context.Context, sess session.Session) ([]commerceapi.CartLine, error)
	AddToCart(c context.Context, sess session.Session, productUID string, variantUID string, quantity int) error
	RemoveFromCart(c context.Context, sess session.Session, lineUID string) error
	UpdateQuantity(c context.Context, sess session.Session, lineUID string, quantity int) error
	// ClearCart resets the local mirror only. The remote store is
	// left untouched.
	ClearCart(c context.Context, sess session.Session)
}
