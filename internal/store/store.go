// Package store keeps the messages the demo skill reads out. Users are
// identified by the Alexa userId carried in the request envelope.
package store

import (
	"context"
	"time"
)

type Store interface {
	ListMessages(ctx context.Context, userID string) ([]Message, error)
	SaveMessage(ctx context.Context, userID string, msg Message) error
}

type Message struct {
	ID      int64
	Sender  string
	Time    time.Time
	Payload string
}
