package engine

import "time"

// TimeSupplier provides a monotonic clock in nanoseconds.
type TimeSupplier interface {
	NanoTime() int64
}

// SystemTime is the TimeSupplier backed by the runtime's monotonic clock.
type SystemTime struct {
	start time.Time
}

func NewSystemTime() *SystemTime {
	return &SystemTime{start: time.Now()}
}

func (s *SystemTime) NanoTime() int64 {
	return int64(time.Since(s.start))
}

// Timer turns a TimeSupplier into per-frame delta times.
type Timer struct {
	supplier TimeSupplier
	last     int64
	delta    float64
	elapsed  float64
	frames   int64
}

// NewTimer creates a timer whose first delta is measured from now.
func NewTimer(supplier TimeSupplier) *Timer {
	return &Timer{
		supplier: supplier,
		last:     supplier.NanoTime(),
	}
}

// Tick marks the start of a new frame and returns the seconds since the previous tick.
func (t *Timer) Tick() float64 {
	now := t.supplier.NanoTime()
	t.delta = float64(now-t.last) / float64(time.Second)
	t.last = now
	t.elapsed += t.delta
	t.frames++
	return t.delta
}

// Delta returns the delta computed by the last Tick.
func (t *Timer) Delta() float64 {
	return t.delta
}

// Elapsed returns the sum of all deltas.
func (t *Timer) Elapsed() float64 {
	return t.elapsed
}

// Frames returns the number of ticks so far.
func (t *Timer) Frames() int64 {
	return t.frames
}
