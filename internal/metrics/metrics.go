package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

var (
	fetchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dtcorbit_tle_fetch_total",
			Help: "TLE load attempts by outcome (network, cache-hit, stale-fallback, error).",
		},
		[]string{"group", "result"},
	)

	entriesSkipped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dtcorbit_tle_entries_skipped_total",
			Help: "Malformed TLE entries skipped during parsing.",
		},
	)

	satellitesParsed = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dtcorbit_satellites_parsed",
			Help: "Satellites parsed from the most recent dataset load.",
		},
		[]string{"group"},
	)

	runDuration = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "dtcorbit_run_duration_seconds",
			Help: "Wall-clock duration of the last completed run.",
		},
	)
)

// registry is private so one-shot runs never inherit ambient collectors.
var registry = prometheus.NewRegistry()

func init() {
	registry.MustRegister(fetchTotal)
	registry.MustRegister(entriesSkipped)
	registry.MustRegister(satellitesParsed)
	registry.MustRegister(runDuration)
}

// RecordFetch counts one TLE load attempt for a group by outcome.
func RecordFetch(group, result string) {
	fetchTotal.WithLabelValues(group, result).Inc()
}

// AddEntriesSkipped counts malformed TLE entries skipped by the parser.
func AddEntriesSkipped(n int) {
	entriesSkipped.Add(float64(n))
}

// SetSatellitesParsed records the dataset size for a group.
func SetSatellitesParsed(group string, n int) {
	satellitesParsed.WithLabelValues(group).Set(float64(n))
}

// SetRunDuration records the run's wall-clock duration in seconds.
func SetRunDuration(seconds float64) {
	runDuration.Set(seconds)
}

// Push delivers the registry to a Pushgateway. Short-lived tools cannot
// serve a scrape endpoint, so the batch-job push pattern applies.
func Push(gatewayURL, job string) error {
	return push.New(gatewayURL, job).Gatherer(registry).Push()
}
