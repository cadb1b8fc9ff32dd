package engine

// Status is a metric's classification against its threshold policy.
type Status int

const (
	StatusNominal Status = iota
	StatusWarning
	StatusCritical
	StatusUnavailable
)

// String returns the display label for a status.
func (s Status) String() string {
	switch s {
	case StatusNominal:
		return "NOMINAL"
	case StatusWarning:
		return "WARNING"
	case StatusCritical:
		return "CRITICAL"
	default:
		return "OFFLINE"
	}
}

// Policy is the warning/critical boundary pair for one metric. A value
// exactly at a boundary lands in that boundary's bucket, so classification
// is inclusive toward the more severe side. The zero Policy has no
// boundaries and classifies every value as nominal; metrics without
// thresholds (clock speeds, fan RPM) use it.
type Policy struct {
	Warning  float64
	Critical float64
}

// Classify buckets a value against the policy.
func (p Policy) Classify(v float64) Status {
	if p == (Policy{}) {
		return StatusNominal
	}
	switch {
	case v >= p.Critical:
		return StatusCritical
	case v >= p.Warning:
		return StatusWarning
	}
	return StatusNominal
}
