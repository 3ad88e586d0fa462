package analysis

import (
	"fmt"
	"math"
	"sort"
)

// KnownInclinations are the nominal orbital-plane inclinations of the
// constellations under study, in degrees.
var KnownInclinations = []float64{43, 53, 70, 97}

// BandTolerance is how far an inclination may sit from a nominal value and
// still belong to that band. Wide enough that 53.0±0.5 always lands on 53.
const BandTolerance = 1.0

// MatchBand returns the nominal inclination whose band contains incl.
func MatchBand(incl float64) (nominal float64, ok bool) {
	for _, known := range KnownInclinations {
		if math.Abs(incl-known) <= BandTolerance {
			return known, true
		}
	}
	return 0, false
}

// BandLabel names the band an inclination belongs to: the nominal degree
// value for known bands, the inclination to one decimal otherwise.
func BandLabel(incl float64) string {
	if nominal, ok := MatchBand(incl); ok {
		return fmt.Sprintf("%.0f°", nominal)
	}
	return fmt.Sprintf("%.1f°", incl)
}

// RoundInclination rounds for distribution tables: to the nearest integer
// when within tolerance of it, to one decimal otherwise.
func RoundInclination(incl, tolerance float64) float64 {
	rounded := math.Round(incl)
	if math.Abs(incl-rounded) <= tolerance {
		return rounded
	}
	return math.Round(incl*10) / 10
}

// Band is a group of records sharing an inclination band.
type Band struct {
	Label   string
	Nominal float64 // 0 when the band is not one of the known inclinations
	Records []Record
}

// GroupByBand partitions records into inclination bands. Known bands come
// first in nominal order (empty ones included so every panel renders),
// remaining bands follow sorted by label.
func GroupByBand(records []Record) []Band {
	byLabel := make(map[string][]Record)
	for _, r := range records {
		label := BandLabel(r.Satellite.Inclination)
		byLabel[label] = append(byLabel[label], r)
	}

	var bands []Band
	for _, nominal := range KnownInclinations {
		label := fmt.Sprintf("%.0f°", nominal)
		bands = append(bands, Band{
			Label:   label,
			Nominal: nominal,
			Records: byLabel[label],
		})
		delete(byLabel, label)
	}

	rest := make([]string, 0, len(byLabel))
	for label := range byLabel {
		rest = append(rest, label)
	}
	sort.Strings(rest)
	for _, label := range rest {
		bands = append(bands, Band{Label: label, Records: byLabel[label]})
	}

	return bands
}
