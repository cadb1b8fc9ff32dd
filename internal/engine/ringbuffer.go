package engine

// RingBuffer is a generic fixed-capacity circular buffer backing each graph
// widget's scrolling window. Buffers are owned by the render loop and only
// ever touched from it, so there is no locking.
type RingBuffer[T any] struct {
	items []T
	head  int
	count int
	cap   int
}

// NewRingBuffer creates a RingBuffer with the given capacity. Capacities
// below 1 are raised to 1 so Add always has somewhere to go.
func NewRingBuffer[T any](capacity int) *RingBuffer[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &RingBuffer[T]{
		items: make([]T, capacity),
		cap:   capacity,
	}
}

// Add inserts an item, overwriting the oldest if full.
func (r *RingBuffer[T]) Add(item T) {
	r.items[r.head] = item
	r.head = (r.head + 1) % r.cap
	if r.count < r.cap {
		r.count++
	}
}

// Len returns the number of items currently buffered.
func (r *RingBuffer[T]) Len() int { return r.count }

// Cap returns the buffer capacity.
func (r *RingBuffer[T]) Cap() int { return r.cap }

// All returns the buffered items in order from oldest to newest.
func (r *RingBuffer[T]) All() []T {
	result := make([]T, r.count)
	start := 0
	if r.count == r.cap {
		start = r.head
	}
	for i := 0; i < r.count; i++ {
		result[i] = r.items[(start+i)%r.cap]
	}
	return result
}

// Last returns the most recently added item.
func (r *RingBuffer[T]) Last() (T, bool) {
	var zero T
	if r.count == 0 {
		return zero, false
	}
	return r.items[(r.head-1+r.cap)%r.cap], true
}
