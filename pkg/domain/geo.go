package domain

import (
	"errors"
	"math"
)

var (
	ErrInvalidLatitude  = errors.New("latitude must be within [-90, 90]")
	ErrInvalidLongitude = errors.New("longitude must be within [-180, 180]")
	ErrInvalidBounds    = errors.New("south must not be greater than north")
)

// Point is a WGS84 coordinate.
type Point struct {
	Lat float64
	Lon float64
}

func (p Point) Validate() error {
	if math.IsNaN(p.Lat) || p.Lat < -90 || p.Lat > 90 {
		return ErrInvalidLatitude
	}
	if math.IsNaN(p.Lon) || p.Lon < -180 || p.Lon > 180 {
		return ErrInvalidLongitude
	}

	return nil
}

// BoundingBox is a map viewport. West may be greater than East when the box
// crosses the antimeridian.
type BoundingBox struct {
	West  float64
	South float64
	East  float64
	North float64
}

func (b BoundingBox) Validate() error {
	if err := (Point{Lat: b.South, Lon: b.West}).Validate(); err != nil {
		return err
	}
	if err := (Point{Lat: b.North, Lon: b.East}).Validate(); err != nil {
		return err
	}
	if b.South > b.North {
		return ErrInvalidBounds
	}

	return nil
}

// CrossesAntimeridian reports whether the box wraps around longitude 180.
func (b BoundingBox) CrossesAntimeridian() bool {
	return b.West > b.East
}

// Contains reports whether p lies inside the box, edges included.
func (b BoundingBox) Contains(p Point) bool {
	if p.Lat < b.South || p.Lat > b.North {
		return false
	}
	if b.CrossesAntimeridian() {
		return p.Lon >= b.West || p.Lon <= b.East
	}

	return p.Lon >= b.West && p.Lon <= b.East
}
