package utils

import (
	"math"

	"github.com/openrelief/relief-api/schema"
)

// earthRadiusKM is the mean earth radius used for haversine distance.
const earthRadiusKM = 6371.0

// Distance returns the great-circle distance between two locations in
// kilometers.
func Distance(a, b schema.Location) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLng := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusKM * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
