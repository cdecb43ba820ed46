package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"transfer/internal/modules/location"
	"transfer/internal/types"
)

// maxSuggestions limits the dropdown to a handful of predictions.
const maxSuggestions = 5

// PlacesService handles interactions with Google Places API.
type PlacesService struct {
	client *maps.Client
}

func NewPlacesService(client *maps.Client) *PlacesService {
	return &PlacesService{client: client}
}

// Autocomplete returns predictions restricted to Brazil.
func (s *PlacesService) Autocomplete(ctx context.Context, input string) ([]location.Suggestion, error) {
	r := &maps.PlaceAutocompleteRequest{
		Input:    input,
		Language: "pt-BR",
		Components: map[maps.Component][]string{
			maps.ComponentCountry: {"br"},
		},
	}

	resp, err := s.client.PlaceAutocomplete(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	out := make([]location.Suggestion, 0, len(resp.Predictions))
	for _, p := range resp.Predictions {
		out = append(out, location.Suggestion{Description: p.Description, PlaceID: p.PlaceID})
		if len(out) >= maxSuggestions {
			break
		}
	}
	return out, nil
}

// Details resolves the coordinates of placeID.
func (s *PlacesService) Details(ctx context.Context, placeID string) (types.Point, error) {
	res, err := s.client.PlaceDetails(ctx, &maps.PlaceDetailsRequest{
		PlaceID:  placeID,
		Language: "pt-BR",
	})
	if err != nil {
		return types.Point{}, fmt.Errorf("place details error: %w", err)
	}
	loc := res.Geometry.Location
	p := types.Point{Lat: loc.Lat, Lng: loc.Lng}
	if !p.Valid() {
		return types.Point{}, location.ErrNotFound
	}
	return p, nil
}
