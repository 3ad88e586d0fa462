// Package report writes analysis results as console text and as a rendered
// histogram chart.
package report

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/muojp/dtcorbit/internal/analysis"
)

// Reporter writes formatted analysis output.
type Reporter struct {
	w io.Writer
}

// New creates a Reporter writing to w.
func New(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Section prints a section header.
func (r *Reporter) Section(title string) {
	fmt.Fprintf(r.w, "\n=== %s ===\n", title)
}

// Line prints one formatted line.
func (r *Reporter) Line(format string, args ...any) {
	fmt.Fprintf(r.w, format+"\n", args...)
}

// Distribution prints counts and percentages per rounded inclination,
// ascending.
func (r *Reporter) Distribution(inclinations []float64) {
	counts := make(map[float64]int)
	for _, incl := range inclinations {
		counts[analysis.RoundInclination(incl, 0.5)]++
	}

	keys := make([]float64, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Float64s(keys)

	total := len(inclinations)
	for _, k := range keys {
		n := counts[k]
		fmt.Fprintf(r.w, "%g°: %d satellites (%.1f%%)\n", k, n, float64(n)/float64(total)*100)
	}
}

// Summary prints one descriptive-statistics block with a unit suffix.
func (r *Reporter) Summary(label string, s analysis.Summary, unit string) {
	if s.Count == 0 {
		fmt.Fprintf(r.w, "%s: no data\n", label)
		return
	}
	fmt.Fprintf(r.w, "%s (%d satellites):\n", label, s.Count)
	fmt.Fprintf(r.w, "  min:    %.2f %s\n", s.Min, unit)
	fmt.Fprintf(r.w, "  max:    %.2f %s\n", s.Max, unit)
	fmt.Fprintf(r.w, "  mean:   %.2f %s\n", s.Mean, unit)
	fmt.Fprintf(r.w, "  median: %.2f %s\n", s.Median, unit)
	fmt.Fprintf(r.w, "  stddev: %.2f %s\n", s.StdDev, unit)
}

// Histogram prints the bucket table. Empty buckets print a zero count.
func (r *Reporter) Histogram(h analysis.Histogram) {
	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "range (km)\tcount")
	for _, b := range h.Buckets {
		fmt.Fprintf(tw, "%.2f - %.2f\t%d\n", b.Low, b.High, b.Count)
	}
	fmt.Fprintf(tw, "total\t%d\n", h.Total)
	tw.Flush()
}

// Rollup prints the fixed altitude-range table, skipping empty ranges the
// way the console report always has.
func (r *Reporter) Rollup(rows []analysis.RangeCount) {
	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "range (km)\tmain\tdtc\ttotal")
	for _, row := range rows {
		total := row.Main + row.DTC
		if total == 0 {
			continue
		}
		fmt.Fprintf(tw, "%.0f - %.0f\t%d\t%d\t%d\n", row.Low, row.High, row.Main, row.DTC, total)
	}
	tw.Flush()
}
