package mapbox_test

import (
	"context"
	"io"
	"journal/pkg/domain"
	"journal/pkg/geocoder/mapbox"
	"journal/pkg/serrors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *mapbox.Client {
	return mapbox.New(&http.Client{Transport: fn}, "pk.test")
}

func jsonResp(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": {"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestClient_Reverse(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "api.mapbox.com", r.URL.Host)
		require.Equal(t, "/geocoding/v5/mapbox.places/2.35,48.85.json", r.URL.Path)
		require.Equal(t, "pk.test", r.URL.Query().Get("access_token"))
		require.Equal(t, "1", r.URL.Query().Get("limit"))

		return jsonResp(http.StatusOK, `{"features":[{"place_name":"Paris, France","center":[2.35,48.85]}]}`), nil
	})

	name, err := c.Reverse(context.Background(), domain.Point{Lat: 48.85, Lon: 2.35})
	require.NoError(t, err)
	require.Equal(t, "Paris, France", name)
}

func TestClient_Reverse_noMatch(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		return jsonResp(http.StatusOK, `{"features":[]}`), nil
	})

	name, err := c.Reverse(context.Background(), domain.Point{Lat: 0, Lon: 0})
	require.NoError(t, err)
	require.Empty(t, name)
}

func TestClient_Reverse_invalidPoint(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		t.Fatal("unexpected request")

		return nil, nil
	})

	_, err := c.Reverse(context.Background(), domain.Point{Lat: 91})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestClient_Forward(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "/geocoding/v5/mapbox.places/La Paz.json", r.URL.Path)
		require.Equal(t, "2", r.URL.Query().Get("limit"))

		return jsonResp(http.StatusOK, `{"features":[
			{"place_name":"La Paz, Bolivia","center":[-68.15,-16.5]},
			{"place_name":"broken"},
			{"place_name":"La Paz, Mexico","center":[-110.3,24.1]}
		]}`), nil
	})

	places, err := c.Forward(context.Background(), " La Paz ", 2)
	require.NoError(t, err)
	require.Len(t, places, 2)
	require.Equal(t, "La Paz, Bolivia", places[0].Name)
	require.InDelta(t, -16.5, places[0].Point.Lat, 1e-9)
	require.InDelta(t, -68.15, places[0].Point.Lon, 1e-9)
}

func TestClient_errors(t *testing.T) {
	t.Run("rate limited", func(t *testing.T) {
		c := newTestClient(func(*http.Request) (*http.Response, error) {
			return jsonResp(http.StatusTooManyRequests, `{"message":"slow down"}`), nil
		})
		_, err := c.Forward(context.Background(), "x", 1)
		require.ErrorIs(t, err, serrors.ErrRateLimited)
	})

	t.Run("unauthorized", func(t *testing.T) {
		c := newTestClient(func(*http.Request) (*http.Response, error) {
			return jsonResp(http.StatusUnauthorized, `{"message":"Not Authorized - Invalid Token"}`), nil
		})
		_, err := c.Reverse(context.Background(), domain.Point{})
		require.Error(t, err)
		require.Contains(t, err.Error(), "Invalid Token")
	})
}
