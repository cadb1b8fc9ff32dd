package engine

import "testing"

func TestRingBufferAdd(t *testing.T) {
	rb := NewRingBuffer[float64](5)
	for i := 0; i < 3; i++ {
		rb.Add(float64(i))
	}
	if rb.Len() != 3 {
		t.Errorf("expected len 3, got %d", rb.Len())
	}
}

func TestRingBufferWrap(t *testing.T) {
	rb := NewRingBuffer[float64](3)
	for i := 0; i < 5; i++ {
		rb.Add(float64(i))
	}
	if rb.Len() != 3 {
		t.Errorf("expected len 3, got %d", rb.Len())
	}
	items := rb.All()
	if items[0] != 2 {
		t.Errorf("expected oldest item 2, got %f", items[0])
	}
	if items[2] != 4 {
		t.Errorf("expected newest item 4, got %f", items[2])
	}
}

func TestRingBufferEmpty(t *testing.T) {
	rb := NewRingBuffer[float64](10)
	if rb.Len() != 0 {
		t.Error("new ring buffer should be empty")
	}
	if items := rb.All(); len(items) != 0 {
		t.Error("All() on empty buffer should return empty slice")
	}
	if _, ok := rb.Last(); ok {
		t.Error("Last() on empty buffer should return false")
	}
}

func TestRingBufferLast(t *testing.T) {
	rb := NewRingBuffer[float64](5)
	rb.Add(1)
	rb.Add(2)
	rb.Add(3)
	last, ok := rb.Last()
	if !ok {
		t.Fatal("Last() should return true for non-empty buffer")
	}
	if last != 3 {
		t.Errorf("expected last item 3, got %f", last)
	}
}

func TestRingBufferMinCapacity(t *testing.T) {
	rb := NewRingBuffer[int](0)
	if rb.Cap() != 1 {
		t.Errorf("expected capacity raised to 1, got %d", rb.Cap())
	}
	rb.Add(7)
	rb.Add(8)
	if last, _ := rb.Last(); last != 8 {
		t.Errorf("expected last item 8, got %d", last)
	}
}
