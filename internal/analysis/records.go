// Package analysis partitions orbital records into inclination bands and
// computes summary statistics and altitude histograms over them.
package analysis

import (
	"log/slog"

	"github.com/muojp/dtcorbit/internal/orbit"
	"github.com/muojp/dtcorbit/internal/tle"
)

// Record is one satellite with its Kepler-derived quantities attached.
// Immutable once built; rebuilt from the raw dataset on every run.
type Record struct {
	Satellite     tle.Satellite
	AltitudeKm    float64
	PeriodMinutes float64
}

// BuildRecords derives altitude and period for each satellite. Satellites
// whose elements cannot be derived (zero mean motion) are skipped with a
// warning.
func BuildRecords(sats []tle.Satellite, logger *slog.Logger) []Record {
	records := make([]Record, 0, len(sats))
	for _, s := range sats {
		d, err := orbit.Derive(s.MeanMotion)
		if err != nil {
			logger.Warn("skipping satellite with underivable elements",
				"norad_id", s.NORADID, "name", s.Name, "error", err)
			continue
		}
		records = append(records, Record{
			Satellite:     s,
			AltitudeKm:    d.AltitudeKm,
			PeriodMinutes: d.PeriodMinutes,
		})
	}
	return records
}

// SplitDTC separates main-constellation records from [DTC]-marked ones.
func SplitDTC(records []Record) (main, dtc []Record) {
	for _, r := range records {
		if r.Satellite.IsDTC() {
			dtc = append(dtc, r)
		} else {
			main = append(main, r)
		}
	}
	return main, dtc
}

// Altitudes extracts the altitude series from a record set.
func Altitudes(records []Record) []float64 {
	vals := make([]float64, len(records))
	for i, r := range records {
		vals[i] = r.AltitudeKm
	}
	return vals
}

// Inclinations extracts the inclination series from a record set.
func Inclinations(records []Record) []float64 {
	vals := make([]float64, len(records))
	for i, r := range records {
		vals[i] = r.Satellite.Inclination
	}
	return vals
}
