package bindkit

import (
	"errors"
	"io"
	"net/http"

	"github.com/dmitrymomot/bindkit/pkg/binder"
)

// Rejection describes why decoding a request payload failed. It pairs an HTTP
// status with a fixed human-readable message and, for decode-level failures,
// the concrete cause.
//
// A Rejection is both an error and a Response: returned from an extractor it
// travels the error path, and rendered directly it produces the default
// plain-text error response for its failure kind.
type Rejection struct {
	status  int
	message string
	cause   error
}

// NewRejection creates a rejection with the given status, message, and
// optional cause.
func NewRejection(status int, message string, cause error) *Rejection {
	return &Rejection{status: status, message: message, cause: cause}
}

// Status returns the HTTP status code of the default response.
func (r *Rejection) Status() int {
	return r.status
}

// Message returns the fixed message for the failure kind, without the cause.
func (r *Rejection) Message() string {
	return r.message
}

// Error returns the full rejection text: the message, followed by the cause
// when one is attached.
func (r *Rejection) Error() string {
	if r.cause == nil {
		return r.message
	}
	return r.message + ": " + r.cause.Error()
}

// Unwrap exposes the concrete decode failure for errors.Is and errors.As.
func (r *Rejection) Unwrap() error {
	return r.cause
}

// Render writes the default response: the status code with the full rejection
// text as a plain-text body.
func (r *Rejection) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(r.status)
	_, err := io.WriteString(w, r.Error())
	return err
}

// ResolveRejection returns the rejection itself: a rejection is its own
// minimal response. This makes *Rejection usable as the resolver type of the
// statically configured extractors.
func (r *Rejection) ResolveRejection(rej *Rejection, _ *http.Request) Response {
	return rej
}

// RejectionHandler maps a rejection and the request it was produced from to a
// custom response. Handlers must be deterministic and side-effect free; a nil
// response falls back to the rejection's default rendering.
type RejectionHandler func(rej *Rejection, r *http.Request) Response

// Fixed messages for the default rejection responses, one per failure kind.
const (
	msgJSONContentType = "Expected request with `Content-Type: application/json`"
	msgJSONSyntax      = "Failed to parse the request body as JSON"
	msgJSONData        = "Failed to deserialize the JSON body into the target type"
	msgBufferBody      = "Failed to buffer the request body"
	msgQueryData       = "Failed to deserialize query string"
	msgFormContentType = "Form requests must have `Content-Type: application/x-www-form-urlencoded`"
	msgFormSyntax      = "Failed to parse the request body as form data"
	msgFormData        = "Failed to deserialize the form body into the target type"
)

// rejectJSON classifies a JSON binder failure. Content-type problems map to
// 415 with a fixed body, buffering problems to 400 or 413, malformed JSON to
// 400, and well-formed JSON that does not fit the target type to 422.
func rejectJSON(err error) *Rejection {
	switch {
	case errors.Is(err, binder.ErrMissingContentType),
		errors.Is(err, binder.ErrUnsupportedMediaType):
		return NewRejection(http.StatusUnsupportedMediaType, msgJSONContentType, nil)
	case errors.Is(err, binder.ErrBodyTooLarge):
		return NewRejection(http.StatusRequestEntityTooLarge, msgBufferBody, directCause(err))
	case errors.Is(err, binder.ErrFailedToReadBody):
		return NewRejection(http.StatusBadRequest, msgBufferBody, directCause(err))
	case errors.Is(err, binder.ErrMalformedInput):
		return NewRejection(http.StatusBadRequest, msgJSONSyntax, directCause(err))
	default:
		return NewRejection(http.StatusUnprocessableEntity, msgJSONData, directCause(err))
	}
}

// rejectQuery classifies a query binder failure. Every query failure is a
// 400; only the cause differs.
func rejectQuery(err error) *Rejection {
	return NewRejection(http.StatusBadRequest, msgQueryData, directCause(err))
}

// rejectForm classifies a form binder failure, mirroring the JSON
// classification with form-specific messages.
func rejectForm(err error) *Rejection {
	switch {
	case errors.Is(err, binder.ErrMissingContentType),
		errors.Is(err, binder.ErrUnsupportedMediaType):
		return NewRejection(http.StatusUnsupportedMediaType, msgFormContentType, nil)
	case errors.Is(err, binder.ErrBodyTooLarge):
		return NewRejection(http.StatusRequestEntityTooLarge, msgBufferBody, directCause(err))
	case errors.Is(err, binder.ErrFailedToReadBody):
		return NewRejection(http.StatusBadRequest, msgBufferBody, directCause(err))
	case errors.Is(err, binder.ErrMalformedInput):
		return NewRejection(http.StatusBadRequest, msgFormSyntax, directCause(err))
	default:
		return NewRejection(http.StatusUnprocessableEntity, msgFormData, directCause(err))
	}
}

// directCause strips the binder's classification sentinel from an error
// produced as fmt.Errorf("%w: %w", sentinel, cause), leaving the concrete
// cause for the response body. Errors of any other shape pass through whole.
func directCause(err error) error {
	if multi, ok := err.(interface{ Unwrap() []error }); ok {
		if errs := multi.Unwrap(); len(errs) == 2 {
			return errs[1]
		}
	}
	return err
}
