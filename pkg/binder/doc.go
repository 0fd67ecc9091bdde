// Package binder decodes HTTP request data into Go structs.
//
// It is the low-level decode layer: each binder pulls one source (JSON body,
// query string, or urlencoded form body) into a target struct and classifies
// failures with sentinel errors, leaving response rendering to the caller.
//
// # Basic Usage
//
//	// Define a request struct with binding tags
//	type CreateUserRequest struct {
//	    Name  string `json:"name"`
//	    Email string `json:"email"`
//	    Age   int    `json:"age"`
//	}
//
//	// Use with bindkit handlers
//	handler := bindkit.HandlerFunc[bindkit.Context, CreateUserRequest](
//	    func(ctx bindkit.Context, req CreateUserRequest) bindkit.Response {
//	        // req is populated from request data
//	        return bindkit.JSONWithStatus(http.StatusCreated, user)
//	    },
//	)
//
//	http.HandleFunc("/users", bindkit.Wrap(handler,
//	    bindkit.WithBinder(binder.JSON()),
//	))
//
// # Available Binders
//
//   - JSON(): decodes application/json request bodies
//   - Query(): decodes URL query parameters via the `query` struct tag
//   - Form(): decodes application/x-www-form-urlencoded bodies via the
//     `form` struct tag (query string for GET and HEAD)
//
// # Error Handling
//
// Failures wrap one of the package sentinels so callers can classify them
// with errors.Is:
//
//   - ErrMissingContentType: no Content-Type header on a body-carrying source
//   - ErrUnsupportedMediaType: Content-Type does not match the source
//   - ErrFailedToReadBody: the body could not be buffered
//   - ErrBodyTooLarge: the body exceeds DefaultMaxBodySize
//   - ErrMalformedInput: the payload is not well formed
//   - ErrDataMismatch: well-formed payload that does not fit the target type
//
// The concrete cause (for example a *json.UnmarshalTypeError or a
// schema.MultiError) stays reachable through the chain for errors.As.
//
// Custom binders used with bindkit.WithBinders may return
// ErrBinderNotApplicable to signal that the next binder in the chain should
// be tried instead of failing the request.
package binder
