package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"mergington.edu/activities-backend/internal/app/appconfig"
	"mergington.edu/activities-backend/internal/model"
	"mergington.edu/activities-backend/internal/model/cache"
	"mergington.edu/activities-backend/internal/repo"
)

func newTestActivity() *Activity {
	cache.Initialize()
	cache.Flush()
	return NewActivity(repo.NewActivity(&appconfig.Config{}), NewEventBus(nil))
}

func TestRenderActivitiesKeepsRegistryOrder(t *testing.T) {
	body, err := RenderActivities(repo.SeedActivities())
	require.NoError(t, err)

	var keys []string
	gjson.ParseBytes(body).ForEach(func(key, value gjson.Result) bool {
		keys = append(keys, key.String())

		assert.True(t, value.Get("description").Exists())
		assert.True(t, value.Get("schedule").Exists())
		assert.True(t, value.Get("max_participants").Exists())
		assert.True(t, value.Get("participants").Exists())
		return true
	})

	assert.Equal(t, []string{
		"Chess Club",
		"Programming Class",
		"Gym Class",
		"Basketball Team",
		"Soccer Club",
		"Art Studio",
		"Music Band",
		"Debate Society",
	}, keys)
}

func TestRenderActivitiesEscapesKeySyntax(t *testing.T) {
	body, err := RenderActivities([]*model.Activity{{
		Name:            "Robotics 2.0 Club",
		Description:     "Build and program robots",
		Schedule:        "Saturdays, 10:00 AM - 12:00 PM",
		MaxParticipants: 10,
		Participants:    []string{},
	}})
	require.NoError(t, err)

	record, ok := gjson.ParseBytes(body).Map()["Robotics 2.0 Club"]
	require.True(t, ok, "name with path syntax shall stay one literal key")
	assert.Equal(t, "Build and program robots", record.Get("description").String())
}

func TestSignupFlushesRenderedList(t *testing.T) {
	s := newTestActivity()
	ctx := context.Background()

	before, err := s.GetActivitiesJSON(ctx)
	require.NoError(t, err)
	assert.NotContains(t, gjson.GetBytes(before, "Chess Club.participants").Raw, "fresh@mergington.edu")

	_, err = s.Signup(ctx, "Chess Club", "fresh@mergington.edu")
	require.NoError(t, err)

	after, err := s.GetActivitiesJSON(ctx)
	require.NoError(t, err)
	assert.Contains(t, gjson.GetBytes(after, "Chess Club.participants").Raw, "fresh@mergington.edu")
}

func TestUnregisterFlushesRenderedList(t *testing.T) {
	s := newTestActivity()
	ctx := context.Background()

	_, err := s.GetActivitiesJSON(ctx)
	require.NoError(t, err)

	_, err = s.Unregister(ctx, "Chess Club", "michael@mergington.edu")
	require.NoError(t, err)

	after, err := s.GetActivitiesJSON(ctx)
	require.NoError(t, err)
	assert.NotContains(t, gjson.GetBytes(after, "Chess Club.participants").Raw, "michael@mergington.edu")
}
