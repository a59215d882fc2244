package cart

import (
	"context"
	"fmt"

	"github.com/MarcGrol/shopfront/lib/myerrors"
	"github.com/MarcGrol/shopfront/lib/mylog"
	"github.com/MarcGrol/shopfront/services/commerceapi"
	"github.com/MarcGrol/shopfront/services/session"
)

func (s *service) FetchCart(c context.Context, sess session.Session) ([]commerceapi.CartLine, error) {
	lock := s.lockFor(sess.UID)
	lock.Lock()
	defer lock.Unlock()

	lines, err := s.client.GetCart(c, sess.AccessToken)
	if err != nil {
		if myerrors.IsUnauthorized(err) {
			return nil, err
		}

		// A failing read degrades to an empty cart rather than
		// blocking the page
		s.logger.Log(c, sess.UID, mylog.SeverityWarn, "Error fetching cart, showing empty cart: %s", err)
		s.setMirror(sess.UID, []commerceapi.CartLine{})
		return []commerceapi.CartLine{}, nil
	}

	s.setMirror(sess.UID, lines)

	return lines, nil
}

// AddToCart posts the addition and then re-fetches the full cart: the
// mirror must reflect server-computed pricing and stock.
func (s *service) AddToCart(c context.Context, sess session.Session, productUID string, variantUID string, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	lock := s.lockFor(sess.UID)
	lock.Lock()
	defer lock.Unlock()

	s.logger.Log(c, sess.UID, mylog.SeverityInfo, "Adding product %s variant %s (x%d) to cart", productUID, variantUID, quantity)

	err := s.client.AddCartLine(c, sess.AccessToken, commerceapi.CartAddition{
		ProductUID: productUID,
		VariantUID: variantUID,
		Quantity:   quantity,
	})
	if err != nil {
		return err
	}

	lines, err := s.client.GetCart(c, sess.AccessToken)
	if err != nil {
		return err
	}
	s.setMirror(sess.UID, lines)

	return nil
}

// RemoveFromCart deletes remotely and then drops the line from the local
// mirror directly, without a re-fetch.
func (s *service) RemoveFromCart(c context.Context, sess session.Session, lineUID string) error {
	lock := s.lockFor(sess.UID)
	lock.Lock()
	defer lock.Unlock()

	s.logger.Log(c, sess.UID, mylog.SeverityInfo, "Removing line %s from cart", lineUID)

	err := s.client.RemoveCartLine(c, sess.AccessToken, lineUID)
	if err != nil {
		return err
	}

	lines := s.getMirror(sess.UID)
	remaining := make([]commerceapi.CartLine, 0, len(lines))
	for _, line := range lines {
		if line.UID != lineUID {
			remaining = append(remaining, line)
		}
	}
	s.setMirror(sess.UID, remaining)

	return nil
}

// UpdateQuantity puts the new quantity remotely and then patches only
// that line in the mirror, using the quantity the server returned. The
// server stays authoritative even on this path.
func (s *service) UpdateQuantity(c context.Context, sess session.Session, lineUID string, quantity int) error {
	if quantity < 1 {
		return myerrors.NewInvalidInputError(fmt.Errorf("quantity must be at least 1, got %d", quantity))
	}

	lock := s.lockFor(sess.UID)
	lock.Lock()
	defer lock.Unlock()

	s.logger.Log(c, sess.UID, mylog.SeverityInfo, "Updating line %s to quantity %d", lineUID, quantity)

	updated, err := s.client.UpdateCartLine(c, sess.AccessToken, lineUID, quantity)
	if err != nil {
		return err
	}

	lines := s.getMirror(sess.UID)
	patched := make([]commerceapi.CartLine, 0, len(lines))
	for _, line := range lines {
		if line.UID == lineUID {
			line.Quantity = updated.Quantity
		}
		patched = append(patched, line)
	}
	s.setMirror(sess.UID, patched)

	return nil
}

func (s *service) ClearCart(c context.Context, sess session.Session) {
	lock := s.lockFor(sess.UID)
	lock.Lock()
	defer lock.Unlock()

	s.logger.Log(c, sess.UID, mylog.SeverityInfo, "Clearing local cart")

	s.evict(sess.UID)
}
