// Package logsink collects fire-and-forget events from the services
// and persists them asynchronously.
package logsink

import (
	"context"

	"github.com/costtrack/backend/internal/models"
	"github.com/rs/zerolog/log"
)

// Store persists collected events.
type Store interface {
	Append(event *models.LogEvent) error
}

// Sink buffers events and writes them to the store in the background.
//
// Emit never blocks and never returns an error: when the buffer is
// full, the event is dropped. Event emission must not be able to fail
// or delay the caller's primary operation.
type Sink struct {
	store  Store
	origin string
	events chan models.LogEvent
}

func New(store Store, origin string, buffer int) *Sink {
	return &Sink{
		store:  store,
		origin: origin,
		events: make(chan models.LogEvent, buffer),
	}
}

// Emit queues an event for persistence.
func (s *Sink) Emit(level, message string) {
	event := models.LogEvent{
		Level:   level,
		Origin:  s.origin,
		Message: message,
	}

	select {
	case s.events <- event:
	default:
		log.Debug().Str("origin", s.origin).Msg("event buffer full, dropping event")
	}
}

// Run writes queued events until the context is cancelled. Events
// still queued at cancellation are flushed.
func (s *Sink) Run(ctx context.Context) error {
	for {
		select {
		case event := <-s.events:
			s.write(event)
		case <-ctx.Done():
			for {
				select {
				case event := <-s.events:
					s.write(event)
				default:
					return nil
				}
			}
		}
	}
}

func (s *Sink) write(event models.LogEvent) {
	err := s.store.Append(&event)
	if err != nil {
		log.Error().Err(err).Msg("could not persist event")
	}
}
