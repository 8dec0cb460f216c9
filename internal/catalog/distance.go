package catalog

import "math"

// earthRadiusKm is the mean Earth radius used by the haversine formula.
// Spherical approximation, accurate to about 0.5%.
const earthRadiusKm = 6371.0

// Distance computes the great-circle distance between two points given in
// degrees, in kilometers rounded to two decimals.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lon1Rad := lon1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lon2Rad := lon2 * math.Pi / 180

	dLat := lat2Rad - lat1Rad
	dLon := lon2Rad - lon1Rad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Asin(math.Sqrt(a))

	return round2(earthRadiusKm * c)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
