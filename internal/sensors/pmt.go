package sensors

import (
	"encoding/binary"
	"fmt"
)

// Intel PMT telemetry blob layout for this GPU model. The blob is a flat
// byte array of little-endian registers; these offsets hold the edge and
// hotspot temperatures in whole degrees Celsius.
const (
	pmtOffsetEdge    = 0xa4
	pmtOffsetHotspot = 0xa8

	// Readings outside this window are register noise, not temperatures.
	pmtTempMax = 120
)

// PMTTemps reads the GPU edge and hotspot temperatures from a PMT telemetry
// blob. The blob usually requires root; a permission failure surfaces as
// ErrNoAccess like any other sensor. Both values must be plausible or the
// pair is rejected as not present, since a half-sane blob means the offsets
// do not match this hardware.
func PMTTemps(path string) (edge, hotspot float64, err error) {
	data, err := readFile(path)
	if err != nil {
		return 0, 0, err
	}
	if len(data) < pmtOffsetHotspot+4 {
		return 0, 0, fmt.Errorf("pmt blob %s too short: %w", path, ErrNotPresent)
	}

	t1 := binary.LittleEndian.Uint32(data[pmtOffsetEdge:])
	t2 := binary.LittleEndian.Uint32(data[pmtOffsetHotspot:])
	if !plausibleTemp(t1) || !plausibleTemp(t2) {
		return 0, 0, fmt.Errorf("pmt blob %s: implausible readings: %w", path, ErrNotPresent)
	}
	return float64(t1), float64(t2), nil
}

func plausibleTemp(t uint32) bool {
	return t > 0 && t < pmtTempMax
}
