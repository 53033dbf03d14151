package container

import (
	"fmt"
	"reflect"
	"sync"
)

// Lookup is the read contract the container exposes to application code.
//
//	// PSR-11: ContainerInterface::get / ::has
type Lookup interface {
	Get(id string) (any, error)
	Has(id string) bool
}

// store maps an identifier to its single constructed instance.
type store struct {
	mu        sync.RWMutex
	instances map[string]any
}

// Has reports whether an instance is stored under id.
func (s *store) Has(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.instances[id]
	return ok
}

// Get returns the instance stored under id.
func (s *store) Get(id string) (any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	inst, ok := s.instances[id]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	return inst, nil
}

// Count returns the number of stored instances.
func (s *store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.instances)
}

// insert stores inst under id unless the id was taken meanwhile.
func (s *store) insert(id string, inst any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.instances[id]; ok {
		return &DuplicateRegistrationError{ID: id}
	}
	s.instances[id] = inst
	return nil
}

// ── Generics helper ───────────────────────────────────────────────────────────

// Resolve is a generic helper that calls Get and type-asserts the result.
//
//	// Instead of: inst, err := c.Get("config"); cfg := inst.(*config.Config)
//	// Write:      cfg, err := container.Resolve[*config.Config](c, "config")
func Resolve[T any](l Lookup, id string) (T, error) {
	var zero T
	inst, err := l.Get(id)
	if err != nil {
		return zero, err
	}
	typed, ok := inst.(T)
	if !ok {
		return zero, &TypeMismatchError{
			ID:       id,
			Expected: reflect.TypeOf((*T)(nil)).Elem().String(),
			Got:      fmt.Sprintf("%T", inst),
		}
	}
	return typed, nil
}
