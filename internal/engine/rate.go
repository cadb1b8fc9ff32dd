package engine

import (
	"time"

	"github.com/mthorne/vitals/internal/sensors"
)

// CounterSample holds a cumulative byte counter at a point in time.
type CounterSample struct {
	Bytes     uint64
	Timestamp time.Time
}

// Rate computes bytes per second between two cumulative counter samples.
// A counter that moved backwards (device reset or hot-plug) yields 0 rather
// than a negative rate; so does a non-positive elapsed time. Each tick is an
// independent attempt, so one bad delta costs a single zero sample and the
// next tick recovers on its own.
func Rate(prev, curr CounterSample) float64 {
	elapsed := curr.Timestamp.Sub(prev.Timestamp).Seconds()
	if elapsed <= 0 {
		return 0
	}
	if curr.Bytes < prev.Bytes {
		return 0
	}
	return float64(curr.Bytes-prev.Bytes) / elapsed
}

// Utilization computes the busy percentage between two cumulative jiffy
// samples, clamped to [0,100]. A zero or backwards total delta yields 0.
// The first tick after start has no previous sample; the Collector reports
// 0 for it without calling this.
func Utilization(prev, curr sensors.CoreTimes) float64 {
	if curr.Total <= prev.Total || curr.Idle < prev.Idle {
		return 0
	}
	deltaTotal := curr.Total - prev.Total
	deltaIdle := curr.Idle - prev.Idle

	pct := 100 * (1 - float64(deltaIdle)/float64(deltaTotal))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
