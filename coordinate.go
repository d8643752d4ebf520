package geowords

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	geohash "github.com/TomiHiltunen/geohash-golang"
	"github.com/golang/geo/s2"
)

// Coordinate is an immutable latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Lat float64
	Lon float64
}

// earthRadiusMeters is the mean Earth radius used by DistanceTo.
const earthRadiusMeters = 6371010.0

// validate rejects non-finite values and coordinates outside the valid
// latitude/longitude ranges. Exact boundary values (90, -90, 180, -180)
// are valid; they quantize into the last cell of their axis.
func (c Coordinate) validate() error {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lon) ||
		math.IsInf(c.Lat, 0) || math.IsInf(c.Lon, 0) {
		return fmt.Errorf("%w: coordinate values must be finite", ErrOutOfRange)
	}
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("%w: latitude %v not in [-90, 90]", ErrOutOfRange, c.Lat)
	}
	if c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("%w: longitude %v not in [-180, 180]", ErrOutOfRange, c.Lon)
	}
	return nil
}

// String renders the coordinate as "lat, lon" with shortest exact decimals.
func (c Coordinate) String() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + ", " +
		strconv.FormatFloat(c.Lon, 'f', -1, 64)
}

// DistanceTo returns the great-circle distance to o in meters.
func (c Coordinate) DistanceTo(o Coordinate) float64 {
	a := s2.LatLngFromDegrees(c.Lat, c.Lon)
	b := s2.LatLngFromDegrees(o.Lat, o.Lon)
	return float64(a.Distance(b)) * earthRadiusMeters
}

// Geohash returns the standard base-32 geohash of the coordinate at the
// given character precision. Provided as a convenience for callers migrating
// from geohash-based addressing; the word codec does not depend on it.
func (c Coordinate) Geohash(precision int) string {
	return geohash.EncodeWithPrecision(c.Lat, c.Lon, precision)
}

// ParseCoordinate parses coordinate text in any of the accepted forms:
//
//	"-33.8674 151.2070"
//	"-33.8674,151.2070"
//	"-33.8674, 151.2070"
//
// Range validation happens at encode time, not here, so text like "91 0"
// parses but later fails with ErrOutOfRange.
func ParseCoordinate(s string) (Coordinate, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Coordinate{}, fmt.Errorf("%w: empty input", ErrMalformedCoordinate)
	}

	var parts []string
	if strings.Contains(trimmed, ",") {
		parts = strings.Split(trimmed, ",")
	} else {
		parts = strings.Fields(trimmed)
	}

	fields := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			fields = append(fields, p)
		}
	}
	if len(fields) != 2 {
		return Coordinate{}, fmt.Errorf("%w: %q must contain exactly two numbers", ErrMalformedCoordinate, s)
	}

	lat, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: bad latitude %q", ErrMalformedCoordinate, fields[0])
	}
	lon, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: bad longitude %q", ErrMalformedCoordinate, fields[1])
	}
	return Coordinate{Lat: lat, Lon: lon}, nil
}
