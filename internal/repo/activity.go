package repo

import (
	"context"
	"sync"

	"github.com/jinzhu/copier"

	"mergington.edu/activities-backend/internal/app/appconfig"
	"mergington.edu/activities-backend/internal/model"
	"mergington.edu/activities-backend/internal/pkg/mherr"
)

// Activity is the in-memory activity registry and the single owner of all
// roster state. Rosters only live for the lifetime of the process: the
// registry is seeded once at construction and never persisted.
//
// Every mutation runs its existence, duplicate and capacity checks together
// with the write inside one critical section, so concurrent requests can
// neither lose updates nor register the same student twice.
type Activity struct {
	mu sync.RWMutex

	byName map[string]*model.Activity

	// order keeps seed insertion order so listings render the way the
	// registry was declared.
	order []string

	enforceCapacity bool
}

func NewActivity(conf *appconfig.Config) *Activity {
	r := &Activity{
		byName:          make(map[string]*model.Activity),
		enforceCapacity: conf.EnforceCapacity,
	}
	r.seed(SeedActivities())
	return r
}

func (c *Activity) seed(activities []*model.Activity) {
	for _, activity := range activities {
		if _, ok := c.byName[activity.Name]; ok {
			continue
		}
		c.byName[activity.Name] = activity
		c.order = append(c.order, activity.Name)
	}
}

// GetActivities returns a deep copy of every activity, in registry order.
func (c *Activity) GetActivities(ctx context.Context) ([]*model.Activity, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	activities := make([]*model.Activity, 0, len(c.order))
	for _, name := range c.order {
		snapshot, err := snapshot(c.byName[name])
		if err != nil {
			return nil, err
		}
		activities = append(activities, snapshot)
	}

	return activities, nil
}

func (c *Activity) GetActivityByName(ctx context.Context, name string) (*model.Activity, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	activity, ok := c.byName[name]
	if !ok {
		return nil, mherr.ErrActivityNotFound
	}

	return snapshot(activity)
}

// AddParticipant registers email for the named activity and returns the
// updated roster.
func (c *Activity) AddParticipant(ctx context.Context, name, email string) (*model.Activity, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	activity, ok := c.byName[name]
	if !ok {
		return nil, mherr.ErrActivityNotFound
	}
	if activity.Registered(email) {
		return nil, mherr.ErrConflict.Msg("%s is already signed up for this activity", email)
	}
	if c.enforceCapacity && activity.Full() {
		return nil, mherr.ErrConflict.Msg("%s is already full", name)
	}

	activity.Participants = append(activity.Participants, email)

	return snapshot(activity)
}

// RemoveParticipant removes email from the named activity's roster and
// returns the updated roster.
func (c *Activity) RemoveParticipant(ctx context.Context, name, email string) (*model.Activity, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	activity, ok := c.byName[name]
	if !ok {
		return nil, mherr.ErrActivityNotFound
	}

	idx := -1
	for i, participant := range activity.Participants {
		if participant == email {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, mherr.ErrConflict.Msg("%s is not signed up for this activity", email)
	}

	activity.Participants = append(activity.Participants[:idx], activity.Participants[idx+1:]...)

	return snapshot(activity)
}

// snapshot deep-copies an activity so callers never alias registry-owned
// slices. Callers hold at least the read lock.
func snapshot(activity *model.Activity) (*model.Activity, error) {
	var copied model.Activity
	if err := copier.CopyWithOption(&copied, activity, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}

	return &copied, nil
}
