package binder

import (
	"errors"
	"fmt"

	"github.com/gorilla/schema"
)

// newDecoder builds a gorilla/schema decoder bound to a struct tag. A
// configured decoder caches struct metadata and is safe for concurrent use,
// so each source keeps one package-level instance.
func newDecoder(tag string) *schema.Decoder {
	dec := schema.NewDecoder()
	dec.SetAliasTag(tag)
	dec.IgnoreUnknownKeys(true)
	return dec
}

// translateSchemaError maps gorilla/schema failures onto the package error
// classes. The schema package reports per-field failures through a
// MultiError; anything else means the decoder could not work with the target
// value at all and is passed through untouched.
func translateSchemaError(err error) error {
	var multi schema.MultiError
	if !errors.As(err, &multi) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrDataMismatch, multi)
}
