package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat is a float64 stored as its IEEE bits; the zero value reads 0
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Add returns the new value
func (f *AtomicFloat) Add(delta float64) float64 {
	return f.update(func(v float64) (float64, bool) { return v + delta, true })
}

// Max raises the value to val and reports whether it changed
// Used for high-water marks such as top ball speed
func (f *AtomicFloat) Max(val float64) bool {
	changed := false
	f.update(func(v float64) (float64, bool) {
		changed = val > v
		return val, changed
	})
	return changed
}

// update applies fn in a CAS loop; fn returning false leaves the value untouched
func (f *AtomicFloat) update(fn func(float64) (float64, bool)) float64 {
	for {
		old := f.bits.Load()
		next, ok := fn(math.Float64frombits(old))
		if !ok {
			return math.Float64frombits(old)
		}
		if f.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}

// MaxStringLen bounds label metrics such as the phase name
const MaxStringLen = 24

// AtomicString holds a short label; the zero value reads ""
type AtomicString struct {
	v atomic.Value
}

// Store truncates to MaxStringLen
func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		val = val[:MaxStringLen]
	}
	s.v.Store(val)
}

func (s *AtomicString) Load() string {
	v, _ := s.v.Load().(string)
	return v
}
