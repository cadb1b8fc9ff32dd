package sensors

import (
	"errors"
	"testing"
)

func TestNetDev(t *testing.T) {
	r, _, sys := fixtureReader(t)
	writeFixture(t, sys, "class/net/eth0/statistics/rx_bytes", "1000\n")
	writeFixture(t, sys, "class/net/eth0/statistics/tx_bytes", "500\n")
	writeFixture(t, sys, "class/net/wlp4s0/statistics/rx_bytes", "2000\n")
	writeFixture(t, sys, "class/net/wlp4s0/statistics/tx_bytes", "700\n")
	writeFixture(t, sys, "class/net/lo/statistics/rx_bytes", "999999\n")
	writeFixture(t, sys, "class/net/lo/statistics/tx_bytes", "999999\n")
	writeFixture(t, sys, "class/net/docker0/statistics/rx_bytes", "12345\n")
	writeFixture(t, sys, "class/net/docker0/statistics/tx_bytes", "12345\n")
	writeFixture(t, sys, "class/net/veth42ab/statistics/rx_bytes", "777\n")
	writeFixture(t, sys, "class/net/veth42ab/statistics/tx_bytes", "777\n")

	sample, err := r.NetDev()
	if err != nil {
		t.Fatalf("NetDev() error: %v", err)
	}
	if sample.RxBytes != 3000 {
		t.Errorf("expected rx 3000, got %d", sample.RxBytes)
	}
	if sample.TxBytes != 1200 {
		t.Errorf("expected tx 1200, got %d", sample.TxBytes)
	}
}

func TestNetDevOnlyVirtual(t *testing.T) {
	r, _, sys := fixtureReader(t)
	writeFixture(t, sys, "class/net/lo/statistics/rx_bytes", "1\n")
	writeFixture(t, sys, "class/net/lo/statistics/tx_bytes", "1\n")

	_, err := r.NetDev()
	if !errors.Is(err, ErrNotPresent) {
		t.Errorf("expected ErrNotPresent, got %v", err)
	}
}

func TestIsVirtualIface(t *testing.T) {
	tests := []struct {
		name    string
		virtual bool
	}{
		{"lo", true},
		{"docker0", true},
		{"veth42ab", true},
		{"br-f00", true},
		{"virbr0", true},
		{"eth0", false},
		{"enp5s0", false},
		{"wlp4s0", false},
		{"lom1", false},
	}
	for _, tt := range tests {
		if got := isVirtualIface(tt.name); got != tt.virtual {
			t.Errorf("isVirtualIface(%q) = %v, want %v", tt.name, got, tt.virtual)
		}
	}
}
