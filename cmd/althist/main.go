// Command althist analyzes the altitude distribution of a constellation
// group (default: starlink): per-inclination-band statistics, a fixed-bin
// altitude histogram, and a multi-panel histogram PNG.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/muojp/dtcorbit/internal/analysis"
	"github.com/muojp/dtcorbit/internal/config"
	"github.com/muojp/dtcorbit/internal/metrics"
	"github.com/muojp/dtcorbit/internal/orbit"
	"github.com/muojp/dtcorbit/internal/report"
	"github.com/muojp/dtcorbit/internal/tle"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("DTCORBIT_CONFIG"))
	if err != nil {
		slog.Error("loading config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Logging)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	group := cfg.Groups.Altitude

	source := tle.NewSource(
		tle.NewFetcher(cfg.Source.BaseURL, cfg.Source.Timeout),
		tle.NewCache(cfg.Cache.Dir),
		cfg.Cache.MaxAge,
		logger,
	)

	ds, err := source.Load(ctx, group)
	if err != nil {
		logger.Error("loading TLE data", "group", group, "error", err)
		os.Exit(1)
	}
	if len(ds.Satellites) == 0 {
		logger.Error("no satellite data", "group", group, "origin", ds.Origin)
		os.Exit(1)
	}

	records := analysis.BuildRecords(ds.Satellites, logger)
	mainSats, dtc := analysis.SplitDTC(records)

	r := report.New(os.Stdout)
	r.Section("Altitude distribution: " + group)
	r.Line("data origin: %s (fetched %s)", ds.Origin, ds.FetchedAt.Format(time.RFC3339))
	r.Line("main satellites: %d", len(mainSats))
	r.Line("dtc satellites:  %d", len(dtc))

	r.Section("Main satellite altitude by inclination band")
	bands := analysis.GroupByBand(mainSats)
	for _, band := range bands {
		if len(band.Records) == 0 && band.Nominal == 0 {
			continue
		}
		r.Summary(band.Label+" band", analysis.Summarize(analysis.Altitudes(band.Records)), "km")
	}

	r.Section("Overall altitude statistics")
	r.Summary("main", analysis.Summarize(analysis.Altitudes(mainSats)), "km")
	r.Summary("dtc", analysis.Summarize(analysis.Altitudes(dtc)), "km")

	allAltitudes := analysis.Altitudes(records)
	hist := analysis.NewHistogram(allAltitudes, cfg.Histogram.Bins)
	r.Section("Altitude histogram (all satellites)")
	r.Histogram(hist)

	r.Section("Altitude range rollup")
	r.Rollup(analysis.AltitudeRollup(records))

	if len(dtc) > 0 {
		r.Section("DTC satellites, propagated position")
		now := time.Now().UTC()
		for _, rec := range dtc {
			pt, err := orbit.PropagateGeodetic(rec.Satellite.Line1, rec.Satellite.Line2, now)
			if err != nil {
				logger.Warn("sgp4 propagation failed",
					"norad_id", rec.Satellite.NORADID, "name", rec.Satellite.Name, "error", err)
				continue
			}
			r.Line("%-24s alt %.2f km (kepler %.2f km)  lat %+.2f°  lon %+.2f°",
				rec.Satellite.Name, pt.AltitudeKm, rec.AltitudeKm, pt.LatitudeDeg, pt.LongitudeDeg)
		}
	}

	allStats := analysis.Summarize(allAltitudes)
	panels := []report.Panel{
		{Title: "All Satellites", Values: allAltitudes},
		{Title: "Main Satellites", Values: analysis.Altitudes(mainSats)},
		{Title: "DTC Satellites", Values: analysis.Altitudes(dtc)},
	}
	for _, band := range bands {
		if band.Nominal == 0 {
			continue
		}
		panels = append(panels, report.Panel{
			Title:  "Main " + band.Label,
			Values: analysis.Altitudes(band.Records),
		})
	}

	if err := report.RenderHistogramPNG(cfg.Chart.OutputPath, panels, cfg.Histogram.Bins, allStats.Min, allStats.Max); err != nil {
		logger.Error("rendering histogram chart", "path", cfg.Chart.OutputPath, "error", err)
		os.Exit(1)
	}
	logger.Info("wrote histogram chart", "path", cfg.Chart.OutputPath, "panels", len(panels))

	metrics.SetRunDuration(time.Since(start).Seconds())
	if cfg.Metrics.PushgatewayURL != "" {
		if err := metrics.Push(cfg.Metrics.PushgatewayURL, cfg.Metrics.Job); err != nil {
			logger.Warn("metrics push failed", "gateway", cfg.Metrics.PushgatewayURL, "error", err)
		}
	}
}

func newLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}
