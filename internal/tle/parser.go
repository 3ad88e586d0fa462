package tle

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/muojp/dtcorbit/internal/metrics"
)

// Fixed column offsets of the NORAD TLE format (0-indexed, half-open).
const (
	line1NORADStart = 2
	line1NORADEnd   = 7
	line1EpochStart = 18
	line1EpochEnd   = 32

	line2InclStart = 8
	line2InclEnd   = 16
	line2EccStart  = 26
	line2EccEnd    = 33
	line2MMStart   = 52
	line2MMEnd     = 63
)

// Parse reads 3-line NORAD TLE format from r and returns parsed satellites.
// Malformed entries are skipped with a warning log; a bad entry never aborts
// the rest of the parse.
func Parse(r io.Reader, logger *slog.Logger) ([]Satellite, error) {
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading TLE data: %w", err)
	}

	var sats []Satellite
	for i := 0; i+2 < len(lines); {
		name := lines[i]
		line1 := lines[i+1]
		line2 := lines[i+2]

		// Validate line prefixes.
		if !strings.HasPrefix(line1, "1 ") || !strings.HasPrefix(line2, "2 ") {
			// Try to find the next valid triplet.
			logger.Warn("skipping malformed TLE entry", "line_index", i, "name", name)
			metrics.AddEntriesSkipped(1)
			i++
			continue
		}

		sat, err := parseEntry(name, line1, line2)
		if err != nil {
			logger.Warn("skipping TLE entry", "name", name, "error", err)
			metrics.AddEntriesSkipped(1)
			i += 3
			continue
		}

		sats = append(sats, sat)
		i += 3
	}

	return sats, nil
}

// parseEntry extracts the numeric fields from one name/line1/line2 triplet.
func parseEntry(name, line1, line2 string) (Satellite, error) {
	if len(line1) < line1EpochEnd {
		return Satellite{}, fmt.Errorf("line1 too short: %d chars", len(line1))
	}
	if len(line2) < line2MMEnd {
		return Satellite{}, fmt.Errorf("line2 too short: %d chars", len(line2))
	}

	noradStr := strings.TrimSpace(line1[line1NORADStart:line1NORADEnd])
	noradID, err := strconv.Atoi(noradStr)
	if err != nil {
		return Satellite{}, fmt.Errorf("invalid NORAD ID %q", noradStr)
	}

	epochStr := strings.TrimSpace(line1[line1EpochStart:line1EpochEnd])
	epoch, err := parseEpoch(epochStr)
	if err != nil {
		return Satellite{}, fmt.Errorf("invalid epoch %q: %w", epochStr, err)
	}

	inclStr := strings.TrimSpace(line2[line2InclStart:line2InclEnd])
	incl, err := strconv.ParseFloat(inclStr, 64)
	if err != nil {
		return Satellite{}, fmt.Errorf("invalid inclination %q", inclStr)
	}

	// Eccentricity is printed with the leading "0." omitted.
	eccStr := strings.TrimSpace(line2[line2EccStart:line2EccEnd])
	ecc, err := strconv.ParseFloat("0."+eccStr, 64)
	if err != nil {
		return Satellite{}, fmt.Errorf("invalid eccentricity %q", eccStr)
	}

	mmStr := strings.TrimSpace(line2[line2MMStart:line2MMEnd])
	mm, err := strconv.ParseFloat(mmStr, 64)
	if err != nil {
		return Satellite{}, fmt.Errorf("invalid mean motion %q", mmStr)
	}

	return Satellite{
		NORADID:      noradID,
		Name:         strings.TrimSpace(name),
		Epoch:        epoch,
		Inclination:  incl,
		Eccentricity: ecc,
		MeanMotion:   mm,
		Line1:        line1,
		Line2:        line2,
	}, nil
}

// parseEpoch converts a TLE epoch string in YYDDD.DDDDDDDD format to time.Time.
// Year 00-56 → 2000s, 57-99 → 1900s.
func parseEpoch(s string) (time.Time, error) {
	if len(s) < 5 {
		return time.Time{}, fmt.Errorf("epoch string too short: %q", s)
	}

	yearStr := s[:2]
	dayStr := s[2:]

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid epoch year %q: %w", yearStr, err)
	}

	if year >= 57 {
		year += 1900
	} else {
		year += 2000
	}

	dayOfYear, err := strconv.ParseFloat(dayStr, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid epoch day %q: %w", dayStr, err)
	}

	// Start of the year, then add fractional days. dayOfYear is 1-based.
	t := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	t = t.Add(time.Duration((dayOfYear - 1) * float64(24*time.Hour)))

	return t, nil
}
