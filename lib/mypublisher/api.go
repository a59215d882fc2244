package mypublisher

import (
	"context"

	"github.com/MarcGrol/shopfront/lib/myevents"
)

//go:generate mockgen -source=api.go -package mypublisher -destination publisher_mock.go Publisher
type Publisher interface {
	CreateTopic(c context.Context, topicName string) error
	Publish(c context.Context, topic string, event myevents.Event) error
}
