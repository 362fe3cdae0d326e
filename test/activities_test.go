package test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/dchest/uniuri"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestAPIActivities(t *testing.T) {
	startup(t)
	t.Parallel()

	// helpers
	list := func() *gjson.Result {
		t.Helper()

		resp := request(t, httptest.NewRequest(http.MethodGet, "/activities", nil))
		require.Equal(t, http.StatusOK, resp.StatusCode, "listing activities shall always succeed")

		return bodyJSON(resp)
	}

	participants := func(activity string) []gjson.Result {
		t.Helper()

		return list().Get(activity + ".participants").Array()
	}

	roster := func(action, activity, email string) (*http.Response, *gjson.Result) {
		t.Helper()

		target := fmt.Sprintf("/activities/%s/%s?email=%s",
			url.PathEscape(activity), action, url.QueryEscape(email))
		resp := request(t, httptest.NewRequest(http.MethodPost, target, nil))

		return resp, bodyJSON(resp)
	}

	freshEmail := func() string {
		return "e2e_" + uniuri.NewLen(8) + "@" + SchoolEmailDomain
	}

	// tests
	t.Run("list", func(t *testing.T) {
		body := list()

		var names []string
		body.ForEach(func(key, value gjson.Result) bool {
			names = append(names, key.String())

			for _, field := range []string{"description", "schedule", "max_participants", "participants"} {
				assert.Truef(t, value.Get(field).Exists(), "activity %s shall carry field %s", key.String(), field)
			}
			assert.Positive(t, value.Get("max_participants").Int(), "capacity of %s shall be positive", key.String())

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
		}, names, "listing shall preserve registry order")

		assert.Contains(t, body.Get("Chess Club.participants").Raw, "michael@"+SchoolEmailDomain)
		assert.Contains(t, body.Get("Programming Class.participants").Raw, "emma@"+SchoolEmailDomain)
	})

	t.Run("signup", func(t *testing.T) {
		t.Run("valid email", func(t *testing.T) {
			email := freshEmail()

			h, j := roster("signup", "Soccer Club", email)
			assert.Equal(t, http.StatusOK, h.StatusCode, "status code should be 200 but got unexpected value. body: %s", j.String())
			assert.Equal(t, fmt.Sprintf("Signed up %s for Soccer Club", email), j.Get("message").String())

			assert.Contains(t, list().Get("Soccer Club.participants").Raw, email, "roster shall reflect the signup immediately")
		})

		t.Run("roster grows by one", func(t *testing.T) {
			before := len(participants("Soccer Club"))

			h, j := roster("signup", "Soccer Club", freshEmail())
			require.Equal(t, http.StatusOK, h.StatusCode, "body: %s", j.String())

			assert.Len(t, participants("Soccer Club"), before+1)
		})

		t.Run("duplicate of seeded participant", func(t *testing.T) {
			h, j := roster("signup", "Chess Club", "daniel@"+SchoolEmailDomain)
			assert.Equal(t, http.StatusBadRequest, h.StatusCode, "body: %s", j.String())
			assert.Contains(t, j.Get("detail").String(), "already signed up")
		})

		t.Run("signup twice", func(t *testing.T) {
			email := freshEmail()

			h, j := roster("signup", "Chess Club", email)
			require.Equal(t, http.StatusOK, h.StatusCode, "body: %s", j.String())
			assert.Contains(t, j.Get("message").String(), "Chess Club")

			h, j = roster("signup", "Chess Club", email)
			assert.Equal(t, http.StatusBadRequest, h.StatusCode, "body: %s", j.String())
			assert.Contains(t, j.Get("detail").String(), "already signed up")
		})

		t.Run("unknown activity", func(t *testing.T) {
			h, j := roster("signup", "Fake Activity", "student@"+SchoolEmailDomain)
			assert.Equal(t, http.StatusNotFound, h.StatusCode, "body: %s", j.String())
			assert.Equal(t, DetailActivityNotFound, j.Get("detail").String())
		})

		t.Run("missing email", func(t *testing.T) {
			resp := request(t, httptest.NewRequest(http.MethodPost, "/activities/Chess%20Club/signup", nil))
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.NotEmpty(t, bodyJSON(resp).Get("detail").String(), "error detail should not be empty")
		})
	})

	t.Run("unregister", func(t *testing.T) {
		t.Run("signed up participant", func(t *testing.T) {
			email := freshEmail()

			h, j := roster("signup", "Art Studio", email)
			require.Equal(t, http.StatusOK, h.StatusCode, "body: %s", j.String())

			h, j = roster("unregister", "Art Studio", email)
			assert.Equal(t, http.StatusOK, h.StatusCode, "status code should be 200 but got unexpected value. body: %s", j.String())
			assert.Equal(t, fmt.Sprintf("Unregistered %s from Art Studio", email), j.Get("message").String())

			assert.NotContains(t, list().Get("Art Studio.participants").Raw, email, "roster shall reflect the removal immediately")
		})

		t.Run("roster shrinks by one", func(t *testing.T) {
			email := freshEmail()

			h, j := roster("signup", "Debate Society", email)
			require.Equal(t, http.StatusOK, h.StatusCode, "body: %s", j.String())
			before := len(participants("Debate Society"))

			h, j = roster("unregister", "Debate Society", email)
			require.Equal(t, http.StatusOK, h.StatusCode, "body: %s", j.String())

			assert.Len(t, participants("Debate Society"), before-1)
		})

		t.Run("not signed up", func(t *testing.T) {
			h, j := roster("unregister", "Music Band", "notsignup@"+SchoolEmailDomain)
			assert.Equal(t, http.StatusBadRequest, h.StatusCode, "body: %s", j.String())
			assert.Contains(t, j.Get("detail").String(), "not signed up")
		})

		t.Run("unknown activity", func(t *testing.T) {
			h, j := roster("unregister", "Fake Activity", "student@"+SchoolEmailDomain)
			assert.Equal(t, http.StatusNotFound, h.StatusCode, "body: %s", j.String())
			assert.Equal(t, DetailActivityNotFound, j.Get("detail").String())
		})

		t.Run("missing email", func(t *testing.T) {
			resp := request(t, httptest.NewRequest(http.MethodPost, "/activities/Music%20Band/unregister", nil))
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.NotEmpty(t, bodyJSON(resp).Get("detail").String(), "error detail should not be empty")
		})
	})

	t.Run("lifecycle", func(t *testing.T) {
		email := freshEmail()

		h, j := roster("signup", "Gym Class", email)
		assert.Equal(t, http.StatusOK, h.StatusCode, "initial signup. body: %s", j.String())

		h, j = roster("signup", "Gym Class", email)
		assert.Equal(t, http.StatusBadRequest, h.StatusCode, "repeated signup. body: %s", j.String())

		h, j = roster("unregister", "Gym Class", email)
		assert.Equal(t, http.StatusOK, h.StatusCode, "unregister after signup. body: %s", j.String())

		h, j = roster("unregister", "Gym Class", email)
		assert.Equal(t, http.StatusBadRequest, h.StatusCode, "repeated unregister. body: %s", j.String())

		h, j = roster("signup", "Gym Class", email)
		assert.Equal(t, http.StatusOK, h.StatusCode, "signup after unregister. body: %s", j.String())
	})
}
