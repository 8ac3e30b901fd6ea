package status

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// Registry is the central metrics facade
// Systems cache pointers during init; the tick path writes directly to atomics
// Readers on other goroutines (HUD, spectators) load without locking
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Entry is one formatted metric
type Entry struct {
	Key   string
	Value string
}

// Entries formats every metric, sorted by key
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, r.TotalCount())
	r.Bools.Range(func(k string, v *atomic.Bool) {
		out = append(out, Entry{k, strconv.FormatBool(v.Load())})
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		out = append(out, Entry{k, strconv.FormatInt(v.Load(), 10)})
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		out = append(out, Entry{k, strconv.FormatFloat(v.Get(), 'f', 2, 64)})
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		out = append(out, Entry{k, v.Load()})
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Map returns Entries keyed by metric name
func (r *Registry) Map() map[string]string {
	entries := r.Entries()
	m := make(map[string]string, len(entries))
	for _, e := range entries {
		m[e.Key] = e.Value
	}
	return m
}
