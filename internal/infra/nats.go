package infra

import (
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"mergington.edu/activities-backend/internal/app/appconfig"
	"mergington.edu/activities-backend/internal/constant"
)

// NATS connects to the roster event bus. When the event bus is disabled both
// returned values are nil and publishing degrades to a no-op.
func NATS(conf *appconfig.Config) (*nats.Conn, nats.JetStreamContext, error) {
	if !conf.EventBusEnabled {
		log.Warn().Msg("infra: nats: event bus is disabled; roster events will not be published")
		return nil, nil, nil
	}

	errorHandler := func(conn *nats.Conn, sub *nats.Subscription, err error) {
		e := log.Error().
			Str("evt.name", "nats.error").
			Err(err).
			Str("conn.url", conn.ConnectedUrlRedacted())
		if sub != nil {
			e = e.Str("sub.subject", sub.Subject)
		}
		e.Msg("nats error")
	}

	nc, err := retry.DoWithData(func() (*nats.Conn, error) {
		return nats.Connect(conf.NatsURL, nats.PingInterval(time.Second*20), nats.ErrorHandler(errorHandler))
	}, retry.Attempts(5), retry.Delay(time.Second), retry.OnRetry(func(n uint, err error) {
		log.Warn().Err(err).Uint("attempt", n).Msg("infra: nats: retrying connection")
	}))
	if err != nil {
		log.Error().Err(err).Msg("infra: nats: failed to connect to NATS")
		return nil, nil, err
	}

	js, err := nc.JetStream(nats.PublishAsyncMaxPending(128))
	if err != nil {
		log.Error().Err(err).Msg("infra: nats: failed to initialize NATS JetStream")
		return nil, nil, err
	}

	_, err = js.AddStream(&nats.StreamConfig{
		Name: constant.RosterStreamName,
		Subjects: []string{
			constant.RosterSubjectAll,
		},
		Retention:  nats.LimitsPolicy,
		Discard:    nats.DiscardOld,
		Storage:    nats.FileStorage,
		Replicas:   1,
		MaxAge:     time.Hour * 24,
		Duplicates: time.Minute * 10,
	})
	if err != nil {
		log.Warn().Err(err).Msg("infra: nats: failed to create jetstream stream: is it already created?")
	}

	return nc, js, nil
}
