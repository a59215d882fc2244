package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/caarlos0/env/v11"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/MarcGrol/shopfront/lib/myhttpclient"
	"github.com/MarcGrol/shopfront/lib/mypublisher"
	"github.com/MarcGrol/shopfront/lib/mypubsub"
	"github.com/MarcGrol/shopfront/lib/myqueue"
	"github.com/MarcGrol/shopfront/lib/mystore"
	"github.com/MarcGrol/shopfront/lib/mytime"
	"github.com/MarcGrol/shopfront/lib/myuuid"
	"github.com/MarcGrol/shopfront/lib/myvault"
	"github.com/MarcGrol/shopfront/services/cart"
	"github.com/MarcGrol/shopfront/services/catalog"
	"github.com/MarcGrol/shopfront/services/checkout"
	"github.com/MarcGrol/shopfront/services/commerceapi"
	"github.com/MarcGrol/shopfront/services/orders"
	"github.com/MarcGrol/shopfront/services/session"
)

type config struct {
	Port           string `env:"PORT" envDefault:"8080"`
	CommerceAPIURL string `env:"COMMERCE_API_URL" envDefault:"http://localhost:9090"`
	TokenURL       string `env:"TOKEN_URL,required"`
	ClientID       string `env:"CLIENT_ID" envDefault:"shopfront"`
	StripeAPIKey   string `env:"STRIPE_API_KEY,required"`
}

func main() {
	c := context.Background()

	// A local .env is a convenience, not a requirement
	_ = godotenv.Load()

	var cfg config
	err := env.Parse(&cfg)
	if err != nil {
		log.Fatalf("Error parsing configuration: %s", err)
	}

	router := mux.NewRouter()
	nower := mytime.RealNower{}
	uuider := myuuid.RealUUIDer{}

	publisher, publisherCleanup, err := createPublisher(c, nower)
	if err != nil {
		log.Fatalf("Error creating event publisher: %s", err)
	}
	defer publisherCleanup()
	publisher.RegisterEndpoints(c, router)

	vault, vaultCleanup, err := myvault.New(c)
	if err != nil {
		log.Fatalf("Error creating session vault: %s", err)
	}
	defer vaultCleanup()

	apiClient := commerceapi.NewClient(cfg.CommerceAPIURL, myhttpclient.New())
	tokenIssuer := session.NewTokenIssuer(cfg.TokenURL, cfg.ClientID)

	sessionService := session.NewWebService(vault, tokenIssuer, nower, uuider, publisher)
	err = sessionService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error starting session service: %s", err)
	}
	sessions := sessionService.Sessions()

	cartService := cart.NewWebService(apiClient, sessions)
	cartService.RegisterEndpoints(c, router)

	catalogService := catalog.NewWebService(apiClient, sessions)
	catalogService.RegisterEndpoints(c, router)

	orderService := orders.NewWebService(apiClient, sessions)
	orderService.RegisterEndpoints(c, router)

	checkoutStore, storeCleanup, err := mystore.New[checkout.CheckoutContext](c)
	if err != nil {
		log.Fatalf("Error creating checkout store: %s", err)
	}
	defer storeCleanup()

	checkoutService := checkout.NewWebService(checkoutStore, apiClient, cartService.Mirror(),
		checkout.NewStripePayer(cfg.StripeAPIKey), sessions, nower, uuider, publisher)
	err = checkoutService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error starting checkout service: %s", err)
	}

	startWebServerBlocking(router, cfg.Port)
}

func createPublisher(c context.Context, nower mytime.Nower) (*mypublisher.TransactionalPublisher, func(), error) {
	pubsub, pubsubCleanup, err := mypubsub.New(c)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating pubsub: %s", err)
	}

	queue, queueCleanup, err := myqueue.New(c)
	if err != nil {
		pubsubCleanup()
		return nil, nil, fmt.Errorf("error creating task queue: %s", err)
	}

	publisher, publisherCleanup, err := mypublisher.New(c, pubsub, queue, nower)
	if err != nil {
		queueCleanup()
		pubsubCleanup()
		return nil, nil, fmt.Errorf("error creating publisher: %s", err)
	}

	return publisher, func() {
		publisherCleanup()
		queueCleanup()
		pubsubCleanup()
	}, nil
}

func startWebServerBlocking(router *mux.Router, port string) {
	log.Printf("Starting webserver on port %s (try http://localhost:%s)", port, port)
	err := http.ListenAndServe(fmt.Sprintf(":%s", port), router)
	if err != nil {
		log.Fatalf("Error starting webserver on port %s: %s", port, err)
	}
}
