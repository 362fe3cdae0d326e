package service

import (
	"context"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/sjson"

	"mergington.edu/activities-backend/internal/constant"
	"mergington.edu/activities-backend/internal/model"
	"mergington.edu/activities-backend/internal/model/cache"
	"mergington.edu/activities-backend/internal/pkg/mherr"
	"mergington.edu/activities-backend/internal/pkg/observability"
	"mergington.edu/activities-backend/internal/repo"
)

type Activity struct {
	ActivityRepo *repo.Activity
	EventBus     *EventBus
}

func NewActivity(activityRepo *repo.Activity, eventBus *EventBus) *Activity {
	return &Activity{
		ActivityRepo: activityRepo,
		EventBus:     eventBus,
	}
}

// GetActivities returns all activities in registry order.
func (s *Activity) GetActivities(ctx context.Context) ([]*model.Activity, error) {
	return s.ActivityRepo.GetActivities(ctx)
}

// Cache: (singular) activitiesJSON; flushed synchronously on every roster mutation
func (s *Activity) GetActivitiesJSON(ctx context.Context) ([]byte, error) {
	var body []byte
	err := cache.ActivitiesJSON.MutexGetSet(&body, func() ([]byte, error) {
		activities, err := s.ActivityRepo.GetActivities(ctx)
		if err != nil {
			return nil, err
		}
		return RenderActivities(activities)
	}, time.Hour)
	if err != nil {
		return nil, err
	}
	return body, nil
}

// Signup registers email for the named activity.
func (s *Activity) Signup(ctx context.Context, name, email string) (*model.Activity, error) {
	activity, err := s.ActivityRepo.AddParticipant(ctx, name, email)
	if err != nil {
		observability.RosterMutations.WithLabelValues(constant.RosterActionSignup, outcomeOf(err)).Inc()
		return nil, err
	}

	s.afterMutation(ctx, constant.RosterActionSignup, name, email)
	return activity, nil
}

// Unregister removes email from the named activity's roster.
func (s *Activity) Unregister(ctx context.Context, name, email string) (*model.Activity, error) {
	activity, err := s.ActivityRepo.RemoveParticipant(ctx, name, email)
	if err != nil {
		observability.RosterMutations.WithLabelValues(constant.RosterActionLeave, outcomeOf(err)).Inc()
		return nil, err
	}

	s.afterMutation(ctx, constant.RosterActionLeave, name, email)
	return activity, nil
}

// afterMutation runs the post-commit effects of a successful roster change.
// The cache flush is synchronous so the next listing reflects the mutation.
func (s *Activity) afterMutation(ctx context.Context, action, name, email string) {
	cache.Flush()
	observability.RosterMutations.WithLabelValues(action, "ok").Inc()
	s.EventBus.PublishRosterChange(ctx, action, name, email)

	log.Ctx(ctx).Info().
		Str("evt.name", "roster.changed").
		Str("action", action).
		Str("activity", name).
		Str("email", email).
		Msg("roster changed")
}

func outcomeOf(err error) string {
	e := &mherr.SchoolError{}
	if errors.As(err, &e) {
		switch e.ErrorCode {
		case mherr.CodeNotFound:
			return "not_found"
		case mherr.CodeConflict:
			return "conflict"
		}
	}
	return "error"
}

// RenderActivities marshals activities into a JSON object keyed by activity
// name. Keys are inserted one by one because encoding a Go map would sort
// them, while the wire format promises registry order.
func RenderActivities(activities []*model.Activity) ([]byte, error) {
	body := []byte("{}")
	for _, activity := range activities {
		record, err := json.Marshal(activity)
		if err != nil {
			return nil, err
		}
		body, err = sjson.SetRawBytes(body, escapeKey(activity.Name), record)
		if err != nil {
			return nil, err
		}
	}
	return body, nil
}

// escapeKey escapes path syntax so an activity name is addressed as one
// literal object key.
func escapeKey(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch r {
		case '.', '*', '?', '|', '#', '@', ':', '\\':
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
