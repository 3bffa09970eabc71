package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// Coord is a node location, kept as a plain [lon, lat] pair so it can be
// stored inline in Node without pointer chasing. It is freely convertible
// to orb.Point wherever the broader geometry ecosystem is needed.
type Coord [2]float32

func (self Coord) Point() orb.Point {
	return orb.Point{float64(self[0]), float64(self[1])}
}

func FromPoint(p orb.Point) Coord {
	return Coord{float32(p[0]), float32(p[1])}
}

// Haversine distance in meters.
func (self Coord) Distance(other Coord) float64 {
	const r = 6371000.0
	lat1 := float64(self[1]) * math.Pi / 180
	lat2 := float64(other[1]) * math.Pi / 180
	dlat := lat2 - lat1
	dlon := (float64(other[0]) - float64(self[0])) * math.Pi / 180
	a := math.Sin(dlat/2)*math.Sin(dlat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return r * c
}
