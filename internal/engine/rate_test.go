package engine

import (
	"testing"
	"time"

	"github.com/mthorne/vitals/internal/sensors"
)

func TestRate(t *testing.T) {
	now := time.Now()
	prev := CounterSample{Bytes: 1000, Timestamp: now.Add(-1 * time.Second)}
	curr := CounterSample{Bytes: 2000, Timestamp: now}
	rate := Rate(prev, curr)
	if rate < 990 || rate > 1010 {
		t.Errorf("expected ~1000 B/s, got %f", rate)
	}
}

func TestRateCounterReset(t *testing.T) {
	now := time.Now()
	prev := CounterSample{Bytes: 100, Timestamp: now.Add(-1 * time.Second)}
	curr := CounterSample{Bytes: 50, Timestamp: now}
	if rate := Rate(prev, curr); rate != 0 {
		t.Errorf("expected 0 after counter reset, got %f", rate)
	}
}

func TestRateNoElapsedTime(t *testing.T) {
	now := time.Now()
	prev := CounterSample{Bytes: 100, Timestamp: now}
	curr := CounterSample{Bytes: 200, Timestamp: now}
	if rate := Rate(prev, curr); rate != 0 {
		t.Errorf("expected 0 for zero elapsed time, got %f", rate)
	}
	curr.Timestamp = now.Add(-1 * time.Second)
	if rate := Rate(prev, curr); rate != 0 {
		t.Errorf("expected 0 for negative elapsed time, got %f", rate)
	}
}

func TestUtilization(t *testing.T) {
	prev := sensors.CoreTimes{Total: 100, Idle: 80}
	curr := sensors.CoreTimes{Total: 300, Idle: 180}
	util := Utilization(prev, curr)
	if util < 49.9 || util > 50.1 {
		t.Errorf("expected ~50%%, got %f", util)
	}
}

func TestUtilizationFullyIdle(t *testing.T) {
	prev := sensors.CoreTimes{Total: 100, Idle: 50}
	curr := sensors.CoreTimes{Total: 200, Idle: 150}
	if util := Utilization(prev, curr); util != 0 {
		t.Errorf("expected 0%% for all-idle interval, got %f", util)
	}
}

func TestUtilizationNoProgress(t *testing.T) {
	sample := sensors.CoreTimes{Total: 100, Idle: 80}
	if util := Utilization(sample, sample); util != 0 {
		t.Errorf("expected 0%% when counters did not advance, got %f", util)
	}
}

func TestUtilizationIdleWentBackwards(t *testing.T) {
	prev := sensors.CoreTimes{Total: 100, Idle: 80}
	curr := sensors.CoreTimes{Total: 200, Idle: 70}
	if util := Utilization(prev, curr); util != 0 {
		t.Errorf("expected 0%% for idle counter reset, got %f", util)
	}
}
