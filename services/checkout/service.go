package checkout

import (
	"context"
	"fmt"

	"github.com/MarcGrol/shopfront/lib/mylog"
	"github.com/MarcGrol/shopfront/lib/mypublisher"
	"github.com/MarcGrol/shopfront/lib/mystore"
	"github.com/MarcGrol/shopfront/lib/mytime"
	"github.com/MarcGrol/shopfront/lib/myuuid"
	"github.com/MarcGrol/shopfront/services/cart"
	"github.com/MarcGrol/shopfront/services/checkout/checkoutevents"
	"github.com/MarcGrol/shopfront/services/commerceapi"
)

type service struct {
	store      mystore.Store[CheckoutContext]
	client     commerceapi.Client
	cartMirror cart.CartMirror
	payer      Payer
	nower      mytime.Nower
	uuider     myuuid.UUIDer
	logger     mylog.Logger
	publisher  mypublisher.Publisher
}

// Use dependency injection to isolate the infrastructure and easy testing
func newService(store mystore.Store[CheckoutContext], client commerceapi.Client, cartMirror cart.CartMirror,
	payer Payer, nower mytime.Nower, uuider myuuid.UUIDer, logger mylog.Logger, pub mypublisher.Publisher) *service {
	return &service{
		store:      store,
		client:     client,
		cartMirror: cartMirror,
		payer:      payer,
		nower:      nower,
		uuider:     uuider,
		logger:     logger,
		publisher:  pub,
	}
}

func (s *service) CreateTopics(c context.Context) error {
	err := s.publisher.CreateTopic(c, checkoutevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", checkoutevents.TopicName, err)
	}

	return nil
}
