package engine

import "testing"

func TestClassify(t *testing.T) {
	p := Policy{Warning: 55, Critical: 75}
	cases := []struct {
		value float64
		want  Status
	}{
		{30, StatusNominal},
		{54.9, StatusNominal},
		{55, StatusWarning},
		{74, StatusWarning},
		{75, StatusCritical},
		{76, StatusCritical},
		{120, StatusCritical},
	}
	for _, tc := range cases {
		if got := p.Classify(tc.value); got != tc.want {
			t.Errorf("Classify(%v) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestClassifyZeroPolicy(t *testing.T) {
	var p Policy
	for _, v := range []float64{0, 50, 99999} {
		if got := p.Classify(v); got != StatusNominal {
			t.Errorf("zero policy should classify %v as nominal, got %v", v, got)
		}
	}
}

func TestStatusString(t *testing.T) {
	cases := []struct {
		status Status
		want   string
	}{
		{StatusNominal, "NOMINAL"},
		{StatusWarning, "WARNING"},
		{StatusCritical, "CRITICAL"},
		{StatusUnavailable, "OFFLINE"},
	}
	for _, tc := range cases {
		if got := tc.status.String(); got != tc.want {
			t.Errorf("Status(%d).String() = %q, want %q", tc.status, got, tc.want)
		}
	}
}
