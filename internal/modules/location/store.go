// README: Address selection store backed by Redis GEO sets, one set per session.
package location

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"transfer/internal/types"
)

const (
	selectionKeyPrefix = "geo:selections:%s"
	// A session's selections live as long as a typical booking visit.
	selectionTTL = 24 * time.Hour
)

type Store struct {
	redis *redis.Client
}

func NewStore(redis *redis.Client) *Store {
	return &Store{redis: redis}
}

func (s *Store) Put(ctx context.Context, e Entry) error {
	session := SessionFromContext(ctx)
	if session == "" {
		return ErrNoSession
	}
	key := selectionKey(session)
	pipe := s.redis.TxPipeline()
	pipe.GeoAdd(ctx, key, &redis.GeoLocation{
		Name:      NormalizeAddress(e.Address),
		Longitude: e.Point.Lng,
		Latitude:  e.Point.Lat,
	})
	pipe.Expire(ctx, key, selectionTTL)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Store) Get(ctx context.Context, address string) (Entry, bool, error) {
	session := SessionFromContext(ctx)
	if session == "" {
		return Entry{}, false, nil
	}
	pos, err := s.redis.GeoPos(ctx, selectionKey(session), NormalizeAddress(address)).Result()
	if err != nil {
		return Entry{}, false, err
	}
	if len(pos) == 0 || pos[0] == nil {
		return Entry{}, false, nil
	}
	p := types.Point{Lat: pos[0].Latitude, Lng: pos[0].Longitude}
	return Entry{Address: address, Point: p, Geohash: Geohash(p)}, true, nil
}

func selectionKey(session string) string {
	return fmt.Sprintf(selectionKeyPrefix, session)
}
