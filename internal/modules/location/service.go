// README: Location service; region identification and explicit address selections.
package location

import (
	"context"
	"errors"
	"strings"
	"time"

	"transfer/internal/types"
)

var (
	ErrBadRequest        = errors.New("bad request")
	ErrPlacesUnavailable = errors.New("places lookup unavailable")
	ErrNotFound          = errors.New("place not found")
)

// Places is the autocomplete backend (Google Places in production).
type Places interface {
	Autocomplete(ctx context.Context, input string) ([]Suggestion, error)
	Details(ctx context.Context, placeID string) (types.Point, error)
}

type Service struct {
	cache      AddressCache
	places     Places
	identifier *Identifier
	now        func() time.Time
}

// NewService wires the selection cache and optional places backend (nil disables
// autocomplete).
func NewService(cache AddressCache, places Places, identifier *Identifier) *Service {
	if identifier == nil {
		identifier = DefaultIdentifier()
	}
	return &Service{cache: cache, places: places, identifier: identifier, now: time.Now}
}

func (s *Service) Identify(addressOrPostalCode string) (Region, bool) {
	return s.identifier.Identify(addressOrPostalCode)
}

// Select records coordinates the user picked for address in the session cache.
func (s *Service) Select(ctx context.Context, address string, p types.Point) (Entry, error) {
	address = strings.TrimSpace(address)
	if address == "" || !p.Valid() {
		return Entry{}, ErrBadRequest
	}
	if SessionFromContext(ctx) == "" {
		return Entry{}, ErrNoSession
	}
	e := Entry{Address: address, Point: p, Geohash: Geohash(p), SelectedAt: s.now()}
	if err := s.cache.Put(ctx, e); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// SelectPlace resolves a picked autocomplete suggestion and caches it.
func (s *Service) SelectPlace(ctx context.Context, placeID, description string) (Entry, error) {
	if strings.TrimSpace(placeID) == "" || strings.TrimSpace(description) == "" {
		return Entry{}, ErrBadRequest
	}
	if s.places == nil {
		return Entry{}, ErrPlacesUnavailable
	}
	p, err := s.places.Details(ctx, placeID)
	if err != nil {
		return Entry{}, err
	}
	return s.Select(ctx, description, p)
}

func (s *Service) Autocomplete(ctx context.Context, input string) ([]Suggestion, error) {
	input = strings.TrimSpace(input)
	if len([]rune(input)) < 3 {
		return nil, ErrBadRequest
	}
	if s.places == nil {
		return nil, ErrPlacesUnavailable
	}
	return s.places.Autocomplete(ctx, input)
}

// Selected returns the session's picked coordinates for address, if any.
func (s *Service) Selected(ctx context.Context, address string) (Entry, bool, error) {
	return s.cache.Get(ctx, address)
}
