package sensors

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeFixture writes a file under dir, creating parent directories.
func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// fixtureReader builds a Reader pointed at fixture proc and sys trees.
func fixtureReader(t *testing.T) (*Reader, string, string) {
	t.Helper()
	tmp := t.TempDir()
	proc := filepath.Join(tmp, "proc")
	sys := filepath.Join(tmp, "sys")
	for _, dir := range []string{proc, sys} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	return &Reader{Proc: proc, Sys: sys}, proc, sys
}

func TestReadInt(t *testing.T) {
	tmp := t.TempDir()
	path := writeFixture(t, tmp, "temp1_input", "54000\n")

	v, err := readInt(path)
	if err != nil {
		t.Fatalf("readInt() error: %v", err)
	}
	if v != 54000 {
		t.Errorf("expected 54000, got %d", v)
	}
}

func TestReadIntMissing(t *testing.T) {
	_, err := readInt(filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, ErrNotPresent) {
		t.Errorf("expected ErrNotPresent, got %v", err)
	}
}

func TestReadIntGarbage(t *testing.T) {
	tmp := t.TempDir()
	path := writeFixture(t, tmp, "temp1_input", "not a number\n")

	_, err := readInt(path)
	if !errors.Is(err, ErrNotPresent) {
		t.Errorf("expected ErrNotPresent for unparsable content, got %v", err)
	}
}

func TestReadIntNoAccess(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits do not apply to root")
	}
	tmp := t.TempDir()
	path := writeFixture(t, tmp, "secret", "42\n")
	if err := os.Chmod(path, 0o000); err != nil {
		t.Fatalf("chmod: %v", err)
	}

	_, err := readInt(path)
	if !errors.Is(err, ErrNoAccess) {
		t.Errorf("expected ErrNoAccess, got %v", err)
	}
}

func TestReadUint(t *testing.T) {
	tmp := t.TempDir()
	path := writeFixture(t, tmp, "rx_bytes", "123456789\n")

	v, err := readUint(path)
	if err != nil {
		t.Fatalf("readUint() error: %v", err)
	}
	if v != 123456789 {
		t.Errorf("expected 123456789, got %d", v)
	}
}
