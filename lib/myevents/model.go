package myevents

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

type EventEnvelope struct {
	UID           string
	CreatedAt     time.Time
	Topic         string
	AggregateUID  string
	EventTypeName string
	EventPayload  string `datastore:",noindex"`
	Published     bool
}

func (e EventEnvelope) String() string {
	return e.Topic + "." + e.EventTypeName + "." + e.AggregateUID
}

type Event interface {
	GetEventTypeName() string
	GetAggregateName() string
}

// PushRequest is the json body that the pubsub push-subscription delivers.
type PushRequest struct {
	Message      PushMessage `json:"message"`
	Subscription string      `json:"subscription"`
}

type PushMessage struct {
	Data []byte `json:"data,omitempty"`
	ID   string `json:"id"`
}

func ParseEventEnvelope(reader io.Reader) (EventEnvelope, error) {
	req := PushRequest{}
	err := json.NewDecoder(reader).Decode(&req)
	if err != nil {
		return EventEnvelope{}, fmt.Errorf("error parsing push request: %s", err)
	}

	envelope := EventEnvelope{}
	err = json.Unmarshal(req.Message.Data, &envelope)
	if err != nil {
		return EventEnvelope{}, fmt.Errorf("error parsing event envelope: %s", err)
	}

	return envelope, nil
}
