package geocode

import (
	"context"
	"errors"
)

// ErrUnresolvable indicates the address did not map to any location.
var ErrUnresolvable = errors.New("address could not be resolved to coordinates")

// Coordinates is a resolved geographic point.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Geocoder resolves a freeform address to coordinates.
type Geocoder interface {
	Resolve(ctx context.Context, address string) (Coordinates, error)
}
