// File: internal/events/kafka/nop.go
package kafka

import (
	"context"

	"github.com/Daniell17/football-app/internal/domain/service"
)

type nopPublisher struct{}

// NewNopPublisher returns a publisher that drops every event. Used when the
// broker is disabled in configuration.
func NewNopPublisher() service.EventPublisher {
	return nopPublisher{}
}

func (nopPublisher) Publish(context.Context, string, string, string, interface{}) error {
	return nil
}
