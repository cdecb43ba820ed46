// README: Geographic helpers; great-circle distance and geohash encoding.
package location

import (
	"math"

	"github.com/mmcloughlin/geohash"

	"transfer/internal/types"
)

const earthRadiusKm = 6371.0

// geohashPrecision of 9 characters is roughly a 5 m cell.
const geohashPrecision = 9

// HaversineKm returns the great-circle distance in kilometres between two points.
func HaversineKm(a, b types.Point) float64 {
	return haversineKm(a.Lat, a.Lng, b.Lat, b.Lng)
}

func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLng := degreesToRadians(lng2 - lng1)

	rLat1 := degreesToRadians(lat1)
	rLat2 := degreesToRadians(lat2)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Geohash encodes p at cache precision.
func Geohash(p types.Point) string {
	return geohash.EncodeWithPrecision(p.Lat, p.Lng, geohashPrecision)
}
