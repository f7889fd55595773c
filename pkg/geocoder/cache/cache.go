// Package cache decorates a geocoder.Geocoder with a Redis backed cache of
// reverse lookups.
package cache

import (
	"context"
	"errors"
	"fmt"
	"journal/pkg/domain"
	"journal/pkg/geocoder"
	"journal/pkg/logger"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "geo:rev:"

// Geocoder caches Reverse results, empty names included. Forward searches
// are passed through. Cache failures degrade to a direct lookup.
type Geocoder struct {
	next   geocoder.Geocoder
	client redis.Cmdable
	ttl    time.Duration
}

// key rounds coordinates to four decimals, roughly 11 meters.
func key(p domain.Point) string {
	return fmt.Sprintf("%s%.4f,%.4f", keyPrefix, p.Lat, p.Lon)
}

func (g *Geocoder) Reverse(ctx context.Context, p domain.Point) (string, error) {
	k := key(p)
	name, err := g.client.Get(ctx, k).Result()
	switch {
	case err == nil:
		return name, nil
	case !errors.Is(err, redis.Nil):
		logger.Warn(ctx, "could not read geocode cache", zap.Error(err))
	}

	name, err = g.next.Reverse(ctx, p)
	if err != nil {
		return "", err //nolint: wrapcheck
	}
	if err := g.client.Set(ctx, k, name, g.ttl).Err(); err != nil {
		logger.Warn(ctx, "could not write geocode cache", zap.Error(err))
	}

	return name, nil
}

func (g *Geocoder) Forward(ctx context.Context, query string, limit int) ([]geocoder.Place, error) {
	return g.next.Forward(ctx, query, limit) //nolint: wrapcheck
}

var _ geocoder.Geocoder = (*Geocoder)(nil)

// New wraps next. A non-positive ttl keeps entries for a week.
func New(next geocoder.Geocoder, client redis.Cmdable, ttl time.Duration) *Geocoder {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}

	return &Geocoder{next: next, client: client, ttl: ttl}
}
