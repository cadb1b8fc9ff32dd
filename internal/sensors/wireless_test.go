package sensors

import (
	"errors"
	"testing"
)

const wirelessHeader = `Inter-| sta-|   Quality        |   Discarded packets               | Missed | WE
 face | tus | link level noise |  nwid  crypt   frag  retry   misc | beacon | 22
`

func TestWireless(t *testing.T) {
	r, proc, _ := fixtureReader(t)
	writeFixture(t, proc, "net/wireless",
		wirelessHeader+" wlp4s0: 0000   58.  -55.  -256        0      0      0      0      0        0\n")

	w, err := r.Wireless()
	if err != nil {
		t.Fatalf("Wireless() error: %v", err)
	}
	if w.Interface != "wlp4s0" {
		t.Errorf("expected wlp4s0, got %q", w.Interface)
	}
	if w.SignalDBm != -55 {
		t.Errorf("expected -55 dBm, got %d", w.SignalDBm)
	}
	if w.Quality != 90 {
		t.Errorf("expected quality 90, got %d", w.Quality)
	}
}

func TestWirelessQualityClamped(t *testing.T) {
	tests := []struct {
		signal  string
		quality int
	}{
		{"-30.", 100},
		{"-100.", 0},
		{"-120.", 0},
	}
	for _, tt := range tests {
		r, proc, _ := fixtureReader(t)
		writeFixture(t, proc, "net/wireless",
			wirelessHeader+" wlan0: 0000   50.  "+tt.signal+"  -256        0      0      0      0      0        0\n")
		w, err := r.Wireless()
		if err != nil {
			t.Fatalf("Wireless() error: %v", err)
		}
		if w.Quality != tt.quality {
			t.Errorf("signal %s: expected quality %d, got %d", tt.signal, tt.quality, w.Quality)
		}
	}
}

func TestWirelessNoInterface(t *testing.T) {
	r, proc, _ := fixtureReader(t)
	writeFixture(t, proc, "net/wireless", wirelessHeader)

	_, err := r.Wireless()
	if !errors.Is(err, ErrNotPresent) {
		t.Errorf("expected ErrNotPresent, got %v", err)
	}
}
