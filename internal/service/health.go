package service

import (
	"context"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"

	"mergington.edu/activities-backend/internal/repo"
)

var (
	ErrRegistryNotSeeded = errors.New("activity registry not seeded")
	ErrNATSNotReachable  = errors.New("nats not reachable")
)

type Health struct {
	ActivityRepo *repo.Activity
	NC           *nats.Conn
}

func NewHealth(activityRepo *repo.Activity, nc *nats.Conn) *Health {
	return &Health{
		ActivityRepo: activityRepo,
		NC:           nc,
	}
}

func (s *Health) Ping(ctx context.Context) error {
	activities, err := s.ActivityRepo.GetActivities(ctx)
	if err != nil {
		return errors.Wrap(ErrRegistryNotSeeded, err.Error())
	}
	if len(activities) == 0 {
		return ErrRegistryNotSeeded
	}

	// nats does automatic ping for 20 seconds interval (configurated at infra/nats.go);
	// a nil conn means the event bus is disabled and is healthy by definition
	if s.NC != nil {
		status := s.NC.Status()
		if status != nats.CONNECTED && status != nats.DRAINING_PUBS && status != nats.DRAINING_SUBS {
			return errors.Wrap(ErrNATSNotReachable, status.String())
		}
	}

	return nil
}
