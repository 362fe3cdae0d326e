package repo

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mergington.edu/activities-backend/internal/app/appconfig"
	"mergington.edu/activities-backend/internal/pkg/mherr"
)

func newTestRegistry(enforceCapacity bool) *Activity {
	conf := &appconfig.Config{}
	conf.EnforceCapacity = enforceCapacity
	return NewActivity(conf)
}

func TestRegistryKeepsSeedOrder(t *testing.T) {
	r := newTestRegistry(false)

	activities, err := r.GetActivities(context.Background())
	require.NoError(t, err)

	var names []string
	for _, activity := range activities {
		names = append(names, activity.Name)
	}
	assert.Equal(t, []string{
		"Chess Club",
		"Programming Class",
		"Gym Class",
		"Basketball Team",
		"Soccer Club",
		"Art Studio",
		"Music Band",
		"Debate Society",
	}, names)
}

func TestAddParticipant(t *testing.T) {
	r := newTestRegistry(false)
	ctx := context.Background()

	activity, err := r.AddParticipant(ctx, "Chess Club", "newstudent@mergington.edu")
	require.NoError(t, err)
	assert.Contains(t, activity.Participants, "newstudent@mergington.edu")

	_, err = r.AddParticipant(ctx, "Chess Club", "newstudent@mergington.edu")
	require.Error(t, err)
	e := &mherr.SchoolError{}
	require.ErrorAs(t, err, &e)
	assert.Equal(t, mherr.CodeConflict, e.ErrorCode)
	assert.Contains(t, e.Detail, "already signed up")

	_, err = r.AddParticipant(ctx, "Fake Activity", "student@mergington.edu")
	assert.ErrorIs(t, err, mherr.ErrActivityNotFound)
}

func TestRemoveParticipant(t *testing.T) {
	r := newTestRegistry(false)
	ctx := context.Background()

	_, err := r.RemoveParticipant(ctx, "Music Band", "notsignup@mergington.edu")
	require.Error(t, err)
	e := &mherr.SchoolError{}
	require.ErrorAs(t, err, &e)
	assert.Equal(t, mherr.CodeConflict, e.ErrorCode)
	assert.Contains(t, e.Detail, "not signed up")

	activity, err := r.RemoveParticipant(ctx, "Music Band", "ethan@mergington.edu")
	require.NoError(t, err)
	assert.NotContains(t, activity.Participants, "ethan@mergington.edu")

	_, err = r.RemoveParticipant(ctx, "Fake Activity", "ethan@mergington.edu")
	assert.ErrorIs(t, err, mherr.ErrActivityNotFound)
}

func TestSnapshotsAreDetached(t *testing.T) {
	r := newTestRegistry(false)
	ctx := context.Background()

	activities, err := r.GetActivities(ctx)
	require.NoError(t, err)

	before := len(activities[0].Participants)
	activities[0].Participants = append(activities[0].Participants, "intruder@mergington.edu")

	again, err := r.GetActivityByName(ctx, activities[0].Name)
	require.NoError(t, err)
	assert.Len(t, again.Participants, before)
}

func TestCapacityEnforcement(t *testing.T) {
	ctx := context.Background()

	t.Run("enforced", func(t *testing.T) {
		r := newTestRegistry(true)

		chess, err := r.GetActivityByName(ctx, "Chess Club")
		require.NoError(t, err)

		for i := len(chess.Participants); i < chess.MaxParticipants; i++ {
			_, err := r.AddParticipant(ctx, "Chess Club", fmt.Sprintf("filler%d@mergington.edu", i))
			require.NoError(t, err)
		}

		_, err = r.AddParticipant(ctx, "Chess Club", "overflow@mergington.edu")
		require.Error(t, err)
		e := &mherr.SchoolError{}
		require.ErrorAs(t, err, &e)
		assert.Contains(t, e.Detail, "already full")
	})

	t.Run("observed", func(t *testing.T) {
		r := newTestRegistry(false)

		chess, err := r.GetActivityByName(ctx, "Chess Club")
		require.NoError(t, err)

		for i := len(chess.Participants); i < chess.MaxParticipants+3; i++ {
			_, err := r.AddParticipant(ctx, "Chess Club", fmt.Sprintf("filler%d@mergington.edu", i))
			require.NoError(t, err)
		}
	})
}

func TestConcurrentSignupIsAtomic(t *testing.T) {
	r := newTestRegistry(false)
	ctx := context.Background()

	const attempts = 64

	var wg sync.WaitGroup
	successes := make(chan struct{}, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := r.AddParticipant(ctx, "Debate Society", "racer@mergington.edu"); err == nil {
				successes <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(successes)

	count := 0
	for range successes {
		count++
	}
	assert.Equal(t, 1, count, "exactly one concurrent signup shall win")

	activity, err := r.GetActivityByName(ctx, "Debate Society")
	require.NoError(t, err)

	seen := 0
	for _, participant := range activity.Participants {
		if participant == "racer@mergington.edu" {
			seen++
		}
	}
	assert.Equal(t, 1, seen)
}
