// Package geocoder resolves coordinates to place names and back.
package geocoder

import (
	"context"
	"journal/pkg/domain"
)

// Place is a named location returned by forward geocoding.
type Place struct {
	Name  string
	Point domain.Point
}

// Geocoder is implemented by geocoding providers. A lookup without match
// returns an empty result and a nil error.
//
//go:generate mockgen -package mockgeocoder -source=interface.go -destination=mock/mockgeocoder.go *
type Geocoder interface {
	// Reverse returns the full place name at p.
	Reverse(ctx context.Context, p domain.Point) (string, error)
	// Forward searches places matching query, best match first.
	Forward(ctx context.Context, query string, limit int) ([]Place, error)
}
