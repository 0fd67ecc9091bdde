package binder

import "errors"

// Common binding errors. Decode failures wrap one of these so callers can
// classify them with errors.Is while the concrete cause stays reachable
// through the chain for errors.As.
var (
	ErrMissingContentType   = errors.New("missing content type")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrFailedToReadBody     = errors.New("failed to read request body")
	ErrBodyTooLarge         = errors.New("request body exceeds size limit")
	ErrMalformedInput       = errors.New("malformed input")
	ErrDataMismatch         = errors.New("data does not match the target type")
	ErrBinderNotApplicable  = errors.New("binder not applicable to this request")
)
