// Package orbit derives physical quantities from parsed orbital elements.
package orbit

import (
	"fmt"
	"math"
)

const (
	// EarthRadiusKm is the WGS-84 equatorial radius.
	EarthRadiusKm = 6378.137
	// MuEarth is the standard gravitational parameter of Earth, km^3/s^2.
	MuEarth = 398600.4418

	minutesPerDay = 1440.0
)

// Derived holds quantities computed from mean motion via Kepler's third law.
type Derived struct {
	PeriodMinutes   float64
	SemiMajorAxisKm float64
	AltitudeKm      float64
}

// Derive computes orbital period, semi-major axis, and altitude above the
// equatorial radius from mean motion in revolutions per day.
func Derive(meanMotion float64) (Derived, error) {
	if meanMotion <= 0 {
		return Derived{}, fmt.Errorf("mean motion must be positive, got %g", meanMotion)
	}

	periodMinutes := minutesPerDay / meanMotion
	periodSeconds := periodMinutes * 60

	// T^2 = (4*pi^2 / mu) * a^3
	aCubed := periodSeconds * periodSeconds * MuEarth / (4 * math.Pi * math.Pi)
	semiMajorAxis := math.Cbrt(aCubed)

	return Derived{
		PeriodMinutes:   periodMinutes,
		SemiMajorAxisKm: semiMajorAxis,
		AltitudeKm:      semiMajorAxis - EarthRadiusKm,
	}, nil
}
