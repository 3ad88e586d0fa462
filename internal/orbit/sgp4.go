package orbit

import (
	"fmt"
	"math"
	"strings"
	"time"

	satellite "github.com/joshuaferrara/go-satellite"
)

// SGP4 library choice: github.com/joshuaferrara/go-satellite
//
// Pure Go (no CGO), explicit TEME output, widely adopted. Propagate() takes
// Satellite by value so SGP4 error codes are not visible to the caller; we
// detect propagation failures by checking output for NaN/Inf and
// unreasonable position magnitudes.

// GeodeticPoint is a propagated sub-satellite point.
type GeodeticPoint struct {
	AltitudeKm   float64
	LatitudeDeg  float64
	LongitudeDeg float64
}

// PropagateGeodetic runs SGP4 on a TLE at the given instant and returns the
// geodetic position. The Kepler-derived altitude in this package is a mean
// figure; this is the instantaneous one.
//
// Pre-validates TLE format before passing to the library, because
// go-satellite calls log.Fatal on malformed input (which would kill the
// process).
func PropagateGeodetic(line1, line2 string, at time.Time) (GeodeticPoint, error) {
	if err := validateTLELines(line1, line2); err != nil {
		return GeodeticPoint{}, fmt.Errorf("invalid TLE: %w", err)
	}

	sat := satellite.TLEToSat(line1, line2, satellite.GravityWGS84)
	if sat.Error != 0 {
		return GeodeticPoint{}, fmt.Errorf("sgp4 init failed: code=%d %s", sat.Error, sat.ErrorStr)
	}

	t := at.UTC()
	year, month, day := t.Date()
	hour, min, sec := t.Clock()

	pos, _ := satellite.Propagate(sat, year, int(month), day, hour, min, sec)

	if math.IsNaN(pos.X) || math.IsNaN(pos.Y) || math.IsNaN(pos.Z) ||
		math.IsInf(pos.X, 0) || math.IsInf(pos.Y, 0) || math.IsInf(pos.Z, 0) {
		return GeodeticPoint{}, fmt.Errorf("sgp4 propagation failed: output is NaN/Inf")
	}

	// Sanity check: position magnitude should be between ~6200km and ~50000km.
	mag := math.Sqrt(pos.X*pos.X + pos.Y*pos.Y + pos.Z*pos.Z)
	if mag < 6200.0 || mag > 50000.0 {
		return GeodeticPoint{}, fmt.Errorf("sgp4 propagation failed: unreasonable position magnitude %.1f km", mag)
	}

	gmst := satellite.GSTimeFromDate(year, int(month), day, hour, min, sec)
	alt, _, ll := satellite.ECIToLLA(pos, gmst)
	llDeg := satellite.LatLongDeg(ll)

	return GeodeticPoint{
		AltitudeKm:   alt,
		LatitudeDeg:  llDeg.Latitude,
		LongitudeDeg: llDeg.Longitude,
	}, nil
}

// validateTLELines performs basic format validation on TLE lines.
func validateTLELines(line1, line2 string) error {
	line1 = strings.TrimSpace(line1)
	line2 = strings.TrimSpace(line2)

	if len(line1) != 69 {
		return fmt.Errorf("line1 length %d, expected 69", len(line1))
	}
	if len(line2) != 69 {
		return fmt.Errorf("line2 length %d, expected 69", len(line2))
	}
	if line1[0] != '1' {
		return fmt.Errorf("line1 must start with '1', got '%c'", line1[0])
	}
	if line2[0] != '2' {
		return fmt.Errorf("line2 must start with '2', got '%c'", line2[0])
	}
	return nil
}
