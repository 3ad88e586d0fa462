package tle

import (
	"strings"
	"time"
)

// DTCMarker is the substring CelesTrak puts in the catalog name of
// direct-to-cell satellites.
const DTCMarker = "[DTC]"

// Satellite is one parsed two-line element set.
type Satellite struct {
	NORADID      int
	Name         string
	Epoch        time.Time
	Inclination  float64 // degrees
	Eccentricity float64
	MeanMotion   float64 // revolutions per day
	Line1        string
	Line2        string
}

// IsDTC reports whether the satellite carries the direct-to-cell marker.
func (s Satellite) IsDTC() bool {
	return strings.Contains(s.Name, DTCMarker)
}

// Origin records where a dataset came from.
type Origin string

const (
	OriginNetwork    Origin = "network"
	OriginCache      Origin = "cache"
	OriginStaleCache Origin = "stale-cache"
)

// Dataset is the result of loading a constellation group, with provenance.
type Dataset struct {
	Group      string
	Origin     Origin
	FetchedAt  time.Time
	Satellites []Satellite
}
