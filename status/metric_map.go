package status

import (
	"sort"
	"sync"
	"sync/atomic"
)

// MetricMap hands out one stable *T per key
// Systems fetch pointers once at construction and write through them on the tick path
type MetricMap[T any] struct {
	items sync.Map // string -> *T
	count atomic.Int64
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{}
}

// Get returns the metric for key, registering a zero value on first use
func (m *MetricMap[T]) Get(key string) *T {
	if v, ok := m.items.Load(key); ok {
		return v.(*T)
	}
	v, loaded := m.items.LoadOrStore(key, new(T))
	if !loaded {
		m.count.Add(1)
	}
	return v.(*T)
}

func (m *MetricMap[T]) Has(key string) bool {
	_, ok := m.items.Load(key)
	return ok
}

// Keys returns registered keys in sorted order
func (m *MetricMap[T]) Keys() []string {
	var keys []string
	m.items.Range(func(k, _ any) bool {
		keys = append(keys, k.(string))
		return true
	})
	sort.Strings(keys)
	return keys
}

// Range visits metrics in key order
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	for _, k := range m.Keys() {
		if v, ok := m.items.Load(k); ok {
			fn(k, v.(*T))
		}
	}
}

func (m *MetricMap[T]) Count() int {
	return int(m.count.Load())
}
