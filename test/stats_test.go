package test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPISiteStats(t *testing.T) {
	startup(t)
	t.Parallel()

	resp := request(t, httptest.NewRequest(http.MethodGet, "/stats", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := bodyJSON(resp)
	assert.EqualValues(t, 8, body.Get("total_activities").Int())
	assert.Positive(t, body.Get("total_capacity").Int())
	assert.Positive(t, body.Get("total_registrations").Int())

	// stats come from a single atomic snapshot, so they must agree with each
	// other even while other tests are mutating rosters
	assert.Equal(t,
		body.Get("total_capacity").Int()-body.Get("total_registrations").Int(),
		body.Get("spots_left").Int())
	assert.LessOrEqual(t, body.Get("unique_students").Int(), body.Get("total_registrations").Int())
}
