package extensions

import (
	"context"
	"errors"
	"fmt"
	"reflect"
)

// ErrDuplicateValue is returned by Set when the map already holds a value of
// the same type. Values are never overwritten silently.
var ErrDuplicateValue = errors.New("value of this type was already added")

// Map stores at most one value per Go type. It is request-scoped: the owning
// request's middleware and extractors are the only readers and writers, so the
// map performs no locking of its own.
//
// The zero value is ready to use.
type Map struct {
	values map[reflect.Type]any
}

// New creates an empty Map.
func New() *Map {
	return &Map{values: make(map[reflect.Type]any)}
}

// Len reports how many values the map holds.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.values)
}

// typeKey returns the identity token for T. Pointer indirection keeps it
// working for interface and pointer types alike.
func typeKey[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Set stores value under the type identity of T. It returns ErrDuplicateValue
// (wrapped with the type name) when a value of T is already present; the
// existing value is left untouched.
func Set[T any](m *Map, value T) error {
	key := typeKey[T]()
	if _, exists := m.values[key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateValue, key)
	}
	if m.values == nil {
		m.values = make(map[reflect.Type]any)
	}
	m.values[key] = value
	return nil
}

// Get retrieves the value stored under the type identity of T. The boolean
// reports whether a value was present and passed the downcast back to T.
func Get[T any](m *Map) (T, bool) {
	var zero T
	if m == nil {
		return zero, false
	}
	stored, ok := m.values[typeKey[T]()]
	if !ok {
		return zero, false
	}
	value, ok := stored.(T)
	if !ok {
		return zero, false
	}
	return value, true
}

// Has reports whether a value of type T is present.
func Has[T any](m *Map) bool {
	if m == nil {
		return false
	}
	_, ok := m.values[typeKey[T]()]
	return ok
}

// Remove deletes the value stored under the type identity of T and reports
// whether one was present.
func Remove[T any](m *Map) bool {
	if m == nil {
		return false
	}
	key := typeKey[T]()
	if _, ok := m.values[key]; !ok {
		return false
	}
	delete(m.values, key)
	return true
}

type contextKey struct{}

// WithContext attaches the map to ctx. The same map pointer is shared by
// everything downstream of the returned context, so later insertions are
// visible without re-attaching.
func WithContext(ctx context.Context, m *Map) context.Context {
	return context.WithValue(ctx, contextKey{}, m)
}

// FromContext returns the map attached to ctx, or nil when none was attached.
func FromContext(ctx context.Context) *Map {
	if ctx == nil {
		return nil
	}
	m, ok := ctx.Value(contextKey{}).(*Map)
	if !ok {
		return nil
	}
	return m
}
