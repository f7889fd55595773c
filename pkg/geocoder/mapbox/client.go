// Package mapbox provides a geocoder.Geocoder backed by the Mapbox
// geocoding v5 API.
package mapbox

import (
	"context"
	"io"
	"journal/pkg/domain"
	"journal/pkg/geocoder"
	"journal/pkg/serrors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	"github.com/tidwall/gjson"
)

const defaultBaseURL = "https://api.mapbox.com/geocoding/v5/mapbox.places/"

// Client is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	token      string
	baseURL    string
}

func (c *Client) get(ctx context.Context, search string, params url.Values) ([]byte, error) {
	params.Set("access_token", c.token)
	u := c.baseURL + url.PathEscape(search) + ".json?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read response body")
	}
	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, serrors.With(serrors.ErrRateLimited, "mapbox rate limited")
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, errors.Errorf("geocoding failed (%d): %s", resp.StatusCode, gjson.GetBytes(b, "message").String())
	}
	if !gjson.ValidBytes(b) {
		return nil, errors.New("invalid geocoding response")
	}

	return b, nil
}

func (c *Client) Reverse(ctx context.Context, p domain.Point) (string, error) {
	if err := p.Validate(); err != nil {
		return "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid point")
	}
	search := strconv.FormatFloat(p.Lon, 'f', -1, 64) + "," + strconv.FormatFloat(p.Lat, 'f', -1, 64)
	b, err := c.get(ctx, search, url.Values{"limit": {"1"}})
	if err != nil {
		return "", err
	}

	return gjson.GetBytes(b, "features.0.place_name").String(), nil
}

func (c *Client) Forward(ctx context.Context, query string, limit int) ([]geocoder.Place, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	if limit <= 0 || limit > 10 {
		limit = 5
	}
	b, err := c.get(ctx, query, url.Values{"limit": {strconv.Itoa(limit)}})
	if err != nil {
		return nil, err
	}

	var out []geocoder.Place
	gjson.GetBytes(b, "features").ForEach(func(_, f gjson.Result) bool {
		center := f.Get("center").Array()
		if len(center) != 2 {
			return true
		}
		out = append(out, geocoder.Place{
			Name:  f.Get("place_name").String(),
			Point: domain.Point{Lon: center[0].Float(), Lat: center[1].Float()},
		})

		return true
	})

	return out, nil
}

var _ geocoder.Geocoder = (*Client)(nil)

// New constructs a Client with the given access token.
func New(httpClient *http.Client, token string) *Client {
	return &Client{
		httpClient: httpClient,
		token:      token,
		baseURL:    defaultBaseURL,
	}
}
