// Package extensions provides a request-scoped store of values keyed by
// their Go type.
//
// Each type identity holds at most one value. Inserting a second value of a
// type that is already present fails with ErrDuplicateValue; existing values
// are never overwritten.
//
// # Usage
//
// Create a map, store typed values, and read them back with the generic
// accessors:
//
//	m := extensions.New()
//	if err := extensions.Set(m, Limits{MaxBody: 1 << 20}); err != nil {
//		return err
//	}
//	limits, ok := extensions.Get[Limits](m)
//
// # Context integration
//
// A map travels with a request through its context:
//
//	ctx = extensions.WithContext(ctx, m)
//	m = extensions.FromContext(ctx)
//
// WithContext stores the map pointer, so values added after attachment are
// visible to everything sharing the context.
//
// # Concurrency
//
// A Map is request-scoped and not safe for concurrent mutation. Populate it
// in middleware before the handler runs; concurrent reads without writers
// are safe.
package extensions
