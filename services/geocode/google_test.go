package geocode

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"carhive/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGeocoder(t *testing.T, handler http.HandlerFunc) Geocoder {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	prevKey := config.AppConfig.GoogleAPIKey
	config.AppConfig.GoogleAPIKey = "test-key"
	t.Cleanup(func() { config.AppConfig.GoogleAPIKey = prevKey })

	return &GoogleGeocoder{Client: srv.Client(), BaseURL: srv.URL}
}

func TestResolve(t *testing.T) {
	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "100 Main St, Austin", r.URL.Query().Get("address"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		fmt.Fprint(w, `{"status":"OK","results":[{"geometry":{"location":{"lat":30.27,"lng":-97.74}}}]}`)
	})

	coords, err := g.Resolve(context.Background(), "100 Main St, Austin")
	require.NoError(t, err)
	assert.Equal(t, 30.27, coords.Latitude)
	assert.Equal(t, -97.74, coords.Longitude)
}

func TestResolveZeroResults(t *testing.T) {
	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"ZERO_RESULTS","results":[]}`)
	})

	_, err := g.Resolve(context.Background(), "nowhere at all")
	assert.ErrorIs(t, err, ErrUnresolvable)
}

func TestResolveUnexpectedStatus(t *testing.T) {
	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"OVER_QUERY_LIMIT","results":[{"geometry":{"location":{"lat":1,"lng":2}}}]}`)
	})

	_, err := g.Resolve(context.Background(), "100 Main St, Austin")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnresolvable)
}

func TestResolveMissingAPIKey(t *testing.T) {
	prevKey := config.AppConfig.GoogleAPIKey
	config.AppConfig.GoogleAPIKey = ""
	t.Cleanup(func() { config.AppConfig.GoogleAPIKey = prevKey })

	g := &GoogleGeocoder{Client: http.DefaultClient}
	_, err := g.Resolve(context.Background(), "anywhere")
	assert.Error(t, err)
}
