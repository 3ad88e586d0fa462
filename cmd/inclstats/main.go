// Command inclstats prints the inclination distribution of a constellation
// group (default: iridium-next), split into main and direct-to-cell
// satellites.
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
	group := cfg.Groups.Inclination

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
	r.Section("Inclination distribution: " + group)
	r.Line("data origin: %s (fetched %s)", ds.Origin, ds.FetchedAt.Format(time.RFC3339))
	r.Line("main satellites: %d", len(mainSats))
	r.Line("dtc satellites:  %d", len(dtc))

	r.Section("Main satellite inclinations")
	r.Distribution(analysis.Inclinations(mainSats))

	if len(dtc) > 0 {
		r.Section("DTC satellite inclinations")
		r.Distribution(analysis.Inclinations(dtc))
	}

	r.Section("Statistics")
	r.Summary("main inclination", analysis.Summarize(analysis.Inclinations(mainSats)), "deg")
	if len(dtc) > 0 {
		r.Summary("dtc inclination", analysis.Summarize(analysis.Inclinations(dtc)), "deg")
	}

	r.Section("Orbital parameters (main)")
	eccs := make([]float64, len(mainSats))
	mms := make([]float64, len(mainSats))
	for i, rec := range mainSats {
		eccs[i] = rec.Satellite.Eccentricity
		mms[i] = rec.Satellite.MeanMotion
	}
	eccStats := analysis.Summarize(eccs)
	mmStats := analysis.Summarize(mms)
	r.Line("eccentricity: %.6f - %.6f (mean %.6f)", eccStats.Min, eccStats.Max, eccStats.Mean)
	r.Line("mean motion:  %.4f - %.4f revs/day (mean %.4f)", mmStats.Min, mmStats.Max, mmStats.Mean)
	if mmStats.Mean > 0 {
		r.Line("mean orbital period: %.2f minutes", 24*60/mmStats.Mean)
	}

	metrics.SetRunDuration(time.Since(start).Seconds())
	pushMetrics(cfg, logger)
}

func pushMetrics(cfg *config.Config, logger *slog.Logger) {
	if cfg.Metrics.PushgatewayURL == "" {
		return
	}
	if err := metrics.Push(cfg.Metrics.PushgatewayURL, cfg.Metrics.Job); err != nil {
		logger.Warn("metrics push failed", "gateway", cfg.Metrics.PushgatewayURL, "error", err)
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
