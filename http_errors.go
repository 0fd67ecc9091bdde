package bindkit

import "net/http"

// HTTPError pairs a status code with a stable machine-readable key. Handlers
// return one to answer with a specific status; the key doubles as a
// translation lookup for clients that localize error messages.
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string {
	return e.Key
}

// Client errors.
var (
	ErrBadRequest            = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrUnauthorized          = HTTPError{Code: http.StatusUnauthorized, Key: "unauthorized"}
	ErrForbidden             = HTTPError{Code: http.StatusForbidden, Key: "forbidden"}
	ErrNotFound              = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrMethodNotAllowed      = HTTPError{Code: http.StatusMethodNotAllowed, Key: "method_not_allowed"}
	ErrNotAcceptable         = HTTPError{Code: http.StatusNotAcceptable, Key: "not_acceptable"}
	ErrRequestTimeout        = HTTPError{Code: http.StatusRequestTimeout, Key: "request_timeout"}
	ErrConflict              = HTTPError{Code: http.StatusConflict, Key: "conflict"}
	ErrGone                  = HTTPError{Code: http.StatusGone, Key: "gone"}
	ErrRequestEntityTooLarge = HTTPError{Code: http.StatusRequestEntityTooLarge, Key: "request_entity_too_large"}
	ErrUnsupportedMediaType  = HTTPError{Code: http.StatusUnsupportedMediaType, Key: "unsupported_media_type"}
	ErrUnprocessableEntity   = HTTPError{Code: http.StatusUnprocessableEntity, Key: "unprocessable_entity"}
	ErrTooManyRequests       = HTTPError{Code: http.StatusTooManyRequests, Key: "too_many_requests"}
)

// Server errors.
var (
	ErrInternalServerError = HTTPError{Code: http.StatusInternalServerError, Key: "internal_server_error"}
	ErrNotImplemented      = HTTPError{Code: http.StatusNotImplemented, Key: "not_implemented"}
	ErrBadGateway          = HTTPError{Code: http.StatusBadGateway, Key: "bad_gateway"}
	ErrServiceUnavailable  = HTTPError{Code: http.StatusServiceUnavailable, Key: "service_unavailable"}
	ErrGatewayTimeout      = HTTPError{Code: http.StatusGatewayTimeout, Key: "gateway_timeout"}
)

// NewHTTPError builds an HTTPError outside the predefined catalog:
//
//	err := bindkit.NewHTTPError(http.StatusForbidden, "insufficient_permissions")
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}
