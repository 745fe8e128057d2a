package routing

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shenikar/guard_dispatch_system/internal/config"
	"github.com/shenikar/guard_dispatch_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJSONServer(t *testing.T, status int, body string, inspect func(r *http.Request)) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if inspect != nil {
			inspect(r)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func requireKind(t *testing.T, err error, kind ErrorKind) *ProviderError {
	t.Helper()
	var perr *ProviderError
	require.True(t, errors.As(err, &perr), "expected ProviderError, got %v", err)
	assert.Equal(t, kind, perr.Kind)
	return perr
}

const osrmOK = `{
  "code": "Ok",
  "routes": [{
    "distance": 1820.4,
    "duration": 1302.1,
    "geometry": "abc~xyz",
    "legs": [{"steps": [
      {"distance": 1000, "duration": 700, "name": "Main St", "maneuver": {"type": "depart", "modifier": ""}},
      {"distance": 820.4, "duration": 602.1, "name": "", "maneuver": {"type": "turn", "modifier": "left"}}
    ]}]
  }]
}`

func TestOSRMProvider_Success(t *testing.T) {
	var path, query string
	server := newJSONServer(t, http.StatusOK, osrmOK, func(r *http.Request) {
		path = r.URL.Path
		query = r.URL.RawQuery
	})

	provider := NewOSRMProvider(server.URL+"/", server.Client())
	result, err := provider.ComputeRoute(context.Background(), origin, destination, models.TravelModeWalking)

	require.NoError(t, err)
	assert.Equal(t, "/route/v1/foot/-118.250000,34.050000;-118.240000,34.060000", path)
	assert.Contains(t, query, "steps=true")
	assert.Equal(t, "osrm", result.Provider)
	assert.Equal(t, 1820.4, result.DistanceMeters)
	assert.Equal(t, 1302.1, result.DurationSeconds)
	assert.Equal(t, []byte("abc~xyz"), result.Polyline)
	require.Len(t, result.Steps, 2)
	assert.Equal(t, "depart onto Main St", result.Steps[0].Instruction)
	assert.Equal(t, "turn left", result.Steps[1].Instruction)
	assert.False(t, result.IsFallback)
}

func TestOSRMProvider_DrivingProfile(t *testing.T) {
	var path string
	server := newJSONServer(t, http.StatusOK, osrmOK, func(r *http.Request) { path = r.URL.Path })

	_, err := NewOSRMProvider(server.URL, server.Client()).ComputeRoute(context.Background(), origin, destination, models.TravelModeDriving)

	require.NoError(t, err)
	assert.Contains(t, path, "/route/v1/driving/")
}

func TestOSRMProvider_Errors(t *testing.T) {
	cases := []struct {
		name      string
		status    int
		body      string
		kind      ErrorKind
		retryable bool
	}{
		{name: "no route", status: http.StatusBadRequest, body: `{"code":"NoRoute","message":"Impossible route"}`, kind: KindNoRoute},
		{name: "no segment", status: http.StatusOK, body: `{"code":"NoSegment","message":"Could not find segment"}`, kind: KindNoRoute},
		{name: "server error", status: http.StatusInternalServerError, body: `oops`, kind: KindUpstream, retryable: true},
		{name: "bad request", status: http.StatusBadRequest, body: `{"code":"InvalidQuery"}`, kind: KindUpstream},
		{name: "rate limited", status: http.StatusTooManyRequests, body: `{}`, kind: KindRateLimited, retryable: true},
		{name: "forbidden", status: http.StatusForbidden, body: `{}`, kind: KindAuth},
		{name: "not json", status: http.StatusOK, body: `<html>`, kind: KindMalformed},
		{name: "empty routes", status: http.StatusOK, body: `{"code":"Ok","routes":[]}`, kind: KindNoRoute},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := newJSONServer(t, tc.status, tc.body, nil)

			_, err := NewOSRMProvider(server.URL, server.Client()).ComputeRoute(context.Background(), origin, destination, models.TravelModeWalking)

			perr := requireKind(t, err, tc.kind)
			assert.Equal(t, tc.retryable, perr.Retryable)
		})
	}
}

func TestOSRMProvider_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := NewOSRMProvider(url, NewHTTPClient(time.Second)).ComputeRoute(context.Background(), origin, destination, models.TravelModeWalking)

	perr := requireKind(t, err, KindNetwork)
	assert.True(t, perr.Retryable)
}

func TestMapboxProvider_Success(t *testing.T) {
	var path, token string
	body := `{"code":"Ok","routes":[{"distance":1700,"duration":1250,"geometry":"poly",
		"legs":[{"steps":[{"distance":1700,"duration":1250,"maneuver":{"instruction":"Walk north on Main St"}}]}]}]}`
	server := newJSONServer(t, http.StatusOK, body, func(r *http.Request) {
		path = r.URL.Path
		token = r.URL.Query().Get("access_token")
	})

	result, err := NewMapboxProvider(server.URL, "pk.test", server.Client()).ComputeRoute(context.Background(), origin, destination, models.TravelModeWalking)

	require.NoError(t, err)
	assert.Equal(t, "/directions/v5/mapbox/walking/-118.250000,34.050000;-118.240000,34.060000", path)
	assert.Equal(t, "pk.test", token)
	assert.Equal(t, "mapbox", result.Provider)
	assert.Equal(t, 1700.0, result.DistanceMeters)
	require.Len(t, result.Steps, 1)
	assert.Equal(t, "Walk north on Main St", result.Steps[0].Instruction)
}

func TestMapboxProvider_MissingToken(t *testing.T) {
	_, err := NewMapboxProvider("http://127.0.0.1:1", "", http.DefaultClient).ComputeRoute(context.Background(), origin, destination, models.TravelModeWalking)

	requireKind(t, err, KindAuth)
}

func TestMapboxProvider_Unauthorized(t *testing.T) {
	server := newJSONServer(t, http.StatusUnauthorized, `{"message":"Not Authorized - Invalid Token"}`, nil)

	_, err := NewMapboxProvider(server.URL, "bad", server.Client()).ComputeRoute(context.Background(), origin, destination, models.TravelModeWalking)

	requireKind(t, err, KindAuth)
}

func TestGoogleProvider_Success(t *testing.T) {
	var query map[string][]string
	body := `{"status":"OK","routes":[{"overview_polyline":{"points":"gpoly"},"warnings":["Walking directions are in beta."],
		"legs":[
			{"distance":{"value":900},"duration":{"value":650},"steps":[{"html_instructions":"Head <b>north</b> on Main St &amp; 1st","distance":{"value":900},"duration":{"value":650}}]},
			{"distance":{"value":800},"duration":{"value":600},"steps":[]}
		]}]}`
	server := newJSONServer(t, http.StatusOK, body, func(r *http.Request) { query = r.URL.Query() })

	result, err := NewGoogleProvider(server.URL, "key-1", server.Client()).ComputeRoute(context.Background(), origin, destination, models.TravelModeWalking)

	require.NoError(t, err)
	assert.Equal(t, []string{"34.050000,-118.250000"}, query["origin"])
	assert.Equal(t, []string{"walking"}, query["mode"])
	assert.Equal(t, []string{"key-1"}, query["key"])
	assert.Equal(t, "google", result.Provider)
	assert.Equal(t, 1700.0, result.DistanceMeters)
	assert.Equal(t, 1250.0, result.DurationSeconds)
	assert.Equal(t, []string{"Walking directions are in beta."}, result.Warnings)
	require.Len(t, result.Steps, 1)
	assert.Equal(t, "Head north on Main St & 1st", result.Steps[0].Instruction)
}

func TestGoogleProvider_StatusMapping(t *testing.T) {
	cases := map[string]ErrorKind{
		"ZERO_RESULTS":     KindNoRoute,
		"NOT_FOUND":        KindNoRoute,
		"OVER_QUERY_LIMIT": KindRateLimited,
		"REQUEST_DENIED":   KindAuth,
		"UNKNOWN_ERROR":    KindUpstream,
		"INVALID_REQUEST":  KindMalformed,
	}
	for status, kind := range cases {
		t.Run(status, func(t *testing.T) {
			server := newJSONServer(t, http.StatusOK, `{"status":"`+status+`","routes":[]}`, nil)

			_, err := NewGoogleProvider(server.URL, "key", server.Client()).ComputeRoute(context.Background(), origin, destination, models.TravelModeDriving)

			requireKind(t, err, kind)
		})
	}
}

func TestGoogleProvider_MissingKey(t *testing.T) {
	_, err := NewGoogleProvider("http://127.0.0.1:1", "", http.DefaultClient).ComputeRoute(context.Background(), origin, destination, models.TravelModeWalking)

	requireKind(t, err, KindAuth)
}

func TestNewProvidersFromConfig(t *testing.T) {
	cfg := &config.Config{
		RouteProviders: []string{"google", "osrm", "mapbox"},
		OSRMURL:        "http://osrm",
		MapboxURL:      "http://mapbox",
		GoogleMapsURL:  "http://google",
	}

	providers, err := NewProvidersFromConfig(cfg, http.DefaultClient)

	require.NoError(t, err)
	require.Len(t, providers, 3)
	assert.Equal(t, "google", providers[0].Name())
	assert.Equal(t, "osrm", providers[1].Name())
	assert.Equal(t, "mapbox", providers[2].Name())

	cfg.RouteProviders = []string{"here"}
	_, err = NewProvidersFromConfig(cfg, http.DefaultClient)
	assert.Error(t, err)
}
