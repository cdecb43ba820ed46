// README: Google Maps client initialization shared by routing, geocoding and places.
package infra

import (
	"fmt"

	"googlemaps.github.io/maps"
)

// NewMaps returns nil without error when no API key is configured; the distance
// chain then relies on OSRM and the straight-line estimate.
func NewMaps(apiKey string) (*maps.Client, error) {
	if apiKey == "" {
		return nil, nil
	}
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return client, nil
}
