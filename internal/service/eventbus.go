package service

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/nats-io/nats.go"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"

	"mergington.edu/activities-backend/internal/constant"
	"mergington.edu/activities-backend/internal/model"
	"mergington.edu/activities-backend/internal/pkg/observability"
)

type EventBus struct {
	JS nats.JetStreamContext
}

func NewEventBus(js nats.JetStreamContext) *EventBus {
	return &EventBus{
		JS: js,
	}
}

// PublishRosterChange emits a roster event onto the bus. A nil JetStream
// context (event bus disabled) makes this a no-op. Publish failures are
// logged and swallowed: the roster mutation already committed and event
// delivery is best-effort.
func (s *EventBus) PublishRosterChange(ctx context.Context, action, activityName, email string) {
	if s.JS == nil {
		return
	}

	evt := &model.RosterEvent{
		EventID:   ulid.Make().String(),
		Action:    action,
		Activity:  activityName,
		Email:     email,
		EmittedAt: time.Now(),
	}

	body, err := json.Marshal(evt)
	if err != nil {
		log.Error().Err(err).Str("evt.name", "eventbus.marshal").Msg("failed to marshal roster event")
		return
	}

	subject := constant.RosterSubjectSignup
	if action == constant.RosterActionLeave {
		subject = constant.RosterSubjectLeave
	}

	start := time.Now()
	if _, err := s.JS.Publish(subject, body, nats.Context(ctx)); err != nil {
		log.Error().
			Err(err).
			Str("evt.name", "eventbus.publish").
			Str("subject", subject).
			Str("event_id", evt.EventID).
			Msg("failed to publish roster event")
		return
	}
	observability.EventPublishDuration.WithLabelValues(subject).Observe(time.Since(start).Seconds())
}
