package analysis

import "math"

// DefaultBins is the histogram bin count used by the altitude report.
const DefaultBins = 9

// Bucket is one fixed-width histogram bin.
type Bucket struct {
	Low   float64
	High  float64
	Count int
}

// Histogram holds fixed-width buckets spanning the observed value range.
// Empty buckets are present with a zero count, never omitted, and bucket
// counts always sum to Total.
type Histogram struct {
	Buckets []Bucket
	Total   int
}

// NewHistogram buckets values into bins fixed-width bins spanning the
// observed min-max range. The first bin is closed at the minimum; later
// bins are half-open (lo, hi], so a value sitting exactly on a boundary
// goes to the lower bin. A degenerate range (all values equal) puts
// everything in bin 0.
func NewHistogram(values []float64, bins int) Histogram {
	if bins <= 0 {
		bins = DefaultBins
	}
	if len(values) == 0 {
		return Histogram{}
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	width := (max - min) / float64(bins)
	buckets := make([]Bucket, bins)
	for i := range buckets {
		buckets[i].Low = min + float64(i)*width
		buckets[i].High = min + float64(i+1)*width
	}
	buckets[bins-1].High = max

	for _, v := range values {
		idx := 0
		if width > 0 {
			idx = int(math.Ceil((v-min)/width)) - 1
		}
		if idx < 0 {
			idx = 0
		}
		if idx >= bins {
			idx = bins - 1
		}
		buckets[idx].Count++
	}

	return Histogram{Buckets: buckets, Total: len(values)}
}

// RangeCount is the number of main and DTC satellites inside one fixed
// altitude range [Low, High) km.
type RangeCount struct {
	Low  float64
	High float64
	Main int
	DTC  int
}

// altitudeRanges is the fixed rollup table for the altitude report.
var altitudeRanges = [][2]float64{
	{0, 400},
	{400, 450},
	{450, 500},
	{500, 550},
	{550, 600},
	{600, 1000},
	{1000, 2000},
}

// AltitudeRollup counts records per fixed altitude range, split by DTC
// classification.
func AltitudeRollup(records []Record) []RangeCount {
	counts := make([]RangeCount, len(altitudeRanges))
	for i, r := range altitudeRanges {
		counts[i].Low = r[0]
		counts[i].High = r[1]
	}

	for _, rec := range records {
		for i := range counts {
			if rec.AltitudeKm >= counts[i].Low && rec.AltitudeKm < counts[i].High {
				if rec.Satellite.IsDTC() {
					counts[i].DTC++
				} else {
					counts[i].Main++
				}
				break
			}
		}
	}

	return counts
}
