package tle

import (
	"io"
	"log/slog"
	"math"
	"strings"
	"testing"
	"time"
)

var testLogger = slog.New(slog.NewJSONHandler(io.Discard, nil))

const (
	issName  = "ISS (ZARYA)"
	issLine1 = "1 25544U 98067A   24100.50000000  .00016717  00000-0  10270-3 0  9005"
	issLine2 = "2 25544  51.6400 100.0000 0001000   0.0000   0.0000 15.50000000    09"

	starlinkName  = "STARLINK-1007"
	starlinkLine1 = "1 44713U 19074A   24100.50000000  .00001000  00000-0  10000-4 0  9995"
	starlinkLine2 = "2 44713  53.0000 200.0000 0001500  90.0000 270.0000 15.06000000    05"
)

func tleText(triplets ...[3]string) string {
	var b strings.Builder
	for _, t := range triplets {
		b.WriteString(t[0] + "\n" + t[1] + "\n" + t[2] + "\n")
	}
	return b.String()
}

func TestParseFields(t *testing.T) {
	sats, err := Parse(strings.NewReader(tleText([3]string{issName, issLine1, issLine2})), testLogger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sats) != 1 {
		t.Fatalf("expected 1 satellite, got %d", len(sats))
	}

	sat := sats[0]
	if sat.NORADID != 25544 {
		t.Errorf("NORAD ID = %d, want 25544", sat.NORADID)
	}
	if sat.Name != issName {
		t.Errorf("Name = %q, want %q", sat.Name, issName)
	}
	if math.Abs(sat.Inclination-51.64) > 1e-9 {
		t.Errorf("Inclination = %g, want 51.64", sat.Inclination)
	}
	if math.Abs(sat.Eccentricity-0.0001) > 1e-12 {
		t.Errorf("Eccentricity = %g, want 0.0001", sat.Eccentricity)
	}
	if math.Abs(sat.MeanMotion-15.5) > 1e-9 {
		t.Errorf("MeanMotion = %g, want 15.5", sat.MeanMotion)
	}

	// Epoch 24100.5 = 2024, day 100 at noon UTC.
	wantEpoch := time.Date(2024, 4, 9, 12, 0, 0, 0, time.UTC)
	if sat.Epoch.Sub(wantEpoch).Abs() > time.Second {
		t.Errorf("Epoch = %v, want %v", sat.Epoch, wantEpoch)
	}
}

func TestParseRoundTripWithinTolerance(t *testing.T) {
	// Numeric fields re-read from the raw lines kept on the record must
	// match the parsed values.
	sats, err := Parse(strings.NewReader(tleText([3]string{starlinkName, starlinkLine1, starlinkLine2})), testLogger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sats) != 1 {
		t.Fatalf("expected 1 satellite, got %d", len(sats))
	}

	reparsed, err := parseEntry(sats[0].Name, sats[0].Line1, sats[0].Line2)
	if err != nil {
		t.Fatalf("re-parse failed: %v", err)
	}
	if math.Abs(reparsed.Inclination-sats[0].Inclination) > 1e-9 ||
		math.Abs(reparsed.Eccentricity-sats[0].Eccentricity) > 1e-12 ||
		math.Abs(reparsed.MeanMotion-sats[0].MeanMotion) > 1e-9 {
		t.Errorf("round-trip mismatch: %+v vs %+v", reparsed, sats[0])
	}
}

func TestParseSkipsMalformedEntry(t *testing.T) {
	// Middle entry has a non-numeric inclination field; same line length.
	badLine2 := starlinkLine2[:8] + "AB.CDEFG" + starlinkLine2[16:]

	text := tleText(
		[3]string{issName, issLine1, issLine2},
		[3]string{"BROKEN-1", starlinkLine1, badLine2},
		[3]string{starlinkName, starlinkLine1, starlinkLine2},
	)

	sats, err := Parse(strings.NewReader(text), testLogger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sats) != 2 {
		t.Fatalf("expected 2 satellites after skipping malformed entry, got %d", len(sats))
	}
	if sats[0].NORADID != 25544 || sats[1].NORADID != 44713 {
		t.Errorf("unexpected NORAD IDs: %d, %d", sats[0].NORADID, sats[1].NORADID)
	}
}

func TestParseSkipsWrongPrefixes(t *testing.T) {
	text := "GARBAGE\nnot a tle line\nanother bad line\n" +
		tleText([3]string{issName, issLine1, issLine2})

	sats, err := Parse(strings.NewReader(text), testLogger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sats) != 1 {
		t.Fatalf("expected 1 satellite, got %d", len(sats))
	}
	if sats[0].NORADID != 25544 {
		t.Errorf("NORAD ID = %d, want 25544", sats[0].NORADID)
	}
}

func TestParseEpochCentury(t *testing.T) {
	// Year 98 is 1998, year 24 is 2024.
	old, err := parseEpoch("98001.00000000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if old.Year() != 1998 {
		t.Errorf("year = %d, want 1998", old.Year())
	}

	recent, err := parseEpoch("24001.00000000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if recent.Year() != 2024 {
		t.Errorf("year = %d, want 2024", recent.Year())
	}
}

func TestIsDTC(t *testing.T) {
	dtc := Satellite{Name: "STARLINK-11500 [DTC]"}
	if !dtc.IsDTC() {
		t.Error("expected [DTC] name to classify as DTC")
	}
	plain := Satellite{Name: "STARLINK-1007"}
	if plain.IsDTC() {
		t.Error("expected plain name to classify as main")
	}
}
