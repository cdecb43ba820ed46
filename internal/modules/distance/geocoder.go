package distance

import (
	"context"
	"errors"
	"fmt"

	"transfer/internal/modules/location"
	"transfer/internal/types"
)

var ErrUnknownAddress = errors.New("address could not be located")

// GeocodeAPI resolves free text to coordinates.
type GeocodeAPI interface {
	Geocode(ctx context.Context, address string) (types.Point, error)
}

// Geocoder locates an address from the session's selections first, then the
// landmark table, then the external geocoder if one is configured.
type Geocoder struct {
	selections location.AddressCache
	api        GeocodeAPI
}

func NewGeocoder(selections location.AddressCache, api GeocodeAPI) *Geocoder {
	return &Geocoder{selections: selections, api: api}
}

func (g *Geocoder) Locate(ctx context.Context, address string) (types.Point, error) {
	if g.selections != nil {
		if e, ok, err := g.selections.Get(ctx, address); err == nil && ok && e.Point.Valid() {
			return e.Point, nil
		}
	}
	if lm, ok := location.LookupLandmark(address); ok {
		return lm.Point, nil
	}
	if g.api == nil {
		return types.Point{}, ErrUnknownAddress
	}
	p, err := g.api.Geocode(ctx, address)
	if err != nil {
		return types.Point{}, fmt.Errorf("geocode %q: %w", address, err)
	}
	if !p.Valid() {
		return types.Point{}, ErrUnknownAddress
	}
	return p, nil
}

func (g *Geocoder) locatePair(ctx context.Context, origin, destination string) (types.Point, types.Point, error) {
	o, err := g.Locate(ctx, origin)
	if err != nil {
		return types.Point{}, types.Point{}, err
	}
	d, err := g.Locate(ctx, destination)
	if err != nil {
		return types.Point{}, types.Point{}, err
	}
	return o, d, nil
}
