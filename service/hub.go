package service

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
)

var (
	ErrDuplicateService = errors.New("service already registered")
	ErrUnknownService   = errors.New("unregistered service")
	ErrCircularDeps     = errors.New("circular dependency detected in services")
)

// Hub is the runtime container for service instances
// Manages lifecycle and provides type-safe access
type Hub struct {
	mu       sync.RWMutex
	services map[string]Service
	args     map[string][]any
	sorted   []string // Topological order, computed on InitAll
	started  []string // Services that completed Start(), for rollback
	log      *zap.Logger
}

// NewHub creates an empty service hub, log nil discards
func NewHub(log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{
		services: make(map[string]Service),
		args:     make(map[string][]any),
		log:      log.Named("services"),
	}
}

// Register adds a service instance with its Init args
// Clears cached sort order to force recomputation
func (h *Hub) Register(svc Service, args ...any) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	name := svc.Name()
	if _, exists := h.services[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateService, name)
	}

	h.services[name] = svc
	h.args[name] = args
	h.sorted = nil
	return nil
}

// Get retrieves a service by name
func (h *Hub) Get(name string) (Service, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	svc, ok := h.services[name]
	return svc, ok
}

// MustGet retrieves a service and casts to type T
// Panics if service not found or type mismatch
func MustGet[T any](h *Hub, name string) T {
	h.mu.RLock()
	svc, ok := h.services[name]
	h.mu.RUnlock()

	if !ok {
		panic(fmt.Sprintf("service not found: %s", name))
	}

	typed, ok := svc.(T)
	if !ok {
		panic(fmt.Sprintf("service %s: type mismatch, got %T", name, svc))
	}
	return typed
}

// InitAll resolves dependencies and calls Init on all services
// On failure, calls Stop on already-initialized services in reverse order
func (h *Hub) InitAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.sorted == nil {
		order, err := h.topologicalSort()
		if err != nil {
			return err
		}
		h.sorted = order
	}

	var initialized []string
	for _, name := range h.sorted {
		svc := h.services[name]
		if err := svc.Init(h.args[name]...); err != nil {
			for i := len(initialized) - 1; i >= 0; i-- {
				h.stop(initialized[i])
			}
			return fmt.Errorf("service %s init failed: %w", name, err)
		}
		initialized = append(initialized, name)
	}

	return nil
}

// StartAll calls Start on all services in topological order
// On failure, calls Stop on already-started services in reverse order
func (h *Hub) StartAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.started = nil

	for _, name := range h.sorted {
		svc := h.services[name]
		if err := svc.Start(); err != nil {
			for i := len(h.started) - 1; i >= 0; i-- {
				h.stop(h.started[i])
			}
			h.started = nil
			return fmt.Errorf("service %s start failed: %w", name, err)
		}
		h.started = append(h.started, name)
		h.log.Debug("service started", zap.String("service", name))
	}

	return nil
}

// StopAll calls Stop on all started services in reverse topological order
// Errors are logged so every service gets Stop called
func (h *Hub) StopAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i := len(h.started) - 1; i >= 0; i-- {
		h.stop(h.started[i])
	}
	h.started = nil
}

func (h *Hub) stop(name string) {
	svc, ok := h.services[name]
	if !ok {
		return
	}
	if err := svc.Stop(); err != nil {
		h.log.Warn("service stop failed", zap.String("service", name), zap.Error(err))
	}
}

// topologicalSort computes initialization order using Kahn's algorithm
// Ties are broken by name so the order is stable across runs
func (h *Hub) topologicalSort() ([]string, error) {
	inDegree := make(map[string]int)
	dependents := make(map[string][]string) // dep -> services that depend on it

	for name := range h.services {
		inDegree[name] = 0
	}

	for name, svc := range h.services {
		for _, dep := range svc.Dependencies() {
			if _, exists := h.services[dep]; !exists {
				return nil, fmt.Errorf("%w: %s depends on %s", ErrUnknownService, name, dep)
			}
			inDegree[name]++
			dependents[dep] = append(dependents[dep], name)
		}
	}

	var queue []string
	for name, degree := range inDegree {
		if degree == 0 {
			queue = append(queue, name)
		}
	}
	sort.Strings(queue)

	var result []string
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		result = append(result, name)

		next := dependents[name]
		sort.Strings(next)
		for _, dependent := range next {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				queue = append(queue, dependent)
			}
		}
	}

	if len(result) != len(h.services) {
		return nil, ErrCircularDeps
	}

	return result, nil
}

// Names returns all registered service names, sorted
func (h *Hub) Names() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	names := make([]string, 0, len(h.services))
	for name := range h.services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
