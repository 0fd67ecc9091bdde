// Package bindkit provides type-safe HTTP request extraction with
// configurable rejection handling.
//
// BindKit parses JSON bodies, query strings, and form data into typed Go
// values and turns every parse failure into a classified rejection with a
// stable status code and message. How rejections are rendered is decided by
// the application, either per route tree with configuration middleware or
// statically in the handler's type signature.
//
// Key Features:
//
//   - Type-safe HTTP handlers using generics
//   - JSON, query, and form extractors with classified rejections
//   - Per-route-tree rejection handlers installed as middleware
//   - Statically typed rejection resolvers as an alternative to middleware
//   - Context management with typed values
//   - Router-agnostic design
//
// Basic Usage:
//
//	// Define your request type
//	type CreateUserRequest struct {
//		Name  string `json:"name"`
//		Email string `json:"email"`
//	}
//
//	// Create a type-safe handler with standard context
//	handler := bindkit.HandlerFunc[bindkit.Context, bindkit.JSON[CreateUserRequest]](
//		func(ctx bindkit.Context, req bindkit.JSON[CreateUserRequest]) bindkit.Response {
//			// req.Value is already parsed and typed
//			user := createUser(req.Value.Name, req.Value.Email)
//			return bindkit.JSONResponse(user)
//		},
//	)
//
//	// Use with any router
//	http.Handle("/users", bindkit.Wrap(handler))
//
// Malformed requests never reach the handler. A request without
// Content-Type: application/json is answered with 415, an unparsable body
// with 400, and a body that does not fit the target type with 422, each as a
// short plain-text response.
//
// Custom Rejection Handling:
//
// To change how a route tree answers extraction failures, install a
// configuration middleware above it:
//
//	cfg := bindkit.NewJSONConfig().WithRejectionHandler(
//		func(rej *bindkit.Rejection, r *http.Request) bindkit.Response {
//			return bindkit.JSONWithStatus(rej.Status(), map[string]string{
//				"error": rej.Error(),
//			})
//		},
//	)
//
//	r := chi.NewRouter()
//	r.Use(cfg.Middleware)
//	r.Post("/users", bindkit.Wrap(handler))
//
// Each configuration type can be installed at most once per request
// pipeline. A duplicate is a wiring error and is answered with a 500 naming
// the duplicated type. QueryConfig and FormConfig work the same way for
// their extractors.
//
// Alternatively, name the rejection format in the handler's type signature
// with the static extractor variants:
//
//	type apiError struct{}
//
//	func (apiError) ResolveRejection(rej *bindkit.Rejection, _ *http.Request) bindkit.Response {
//		return bindkit.JSONWithStatus(rej.Status(), map[string]string{"error": rej.Error()})
//	}
//
//	handler := bindkit.HandlerFunc[bindkit.Context, bindkit.StaticJSON[CreateUserRequest, apiError]](...)
//
// Custom Context Support:
//
// BindKit supports custom context types for direct access to
// application-specific data:
//
//	// Define your custom context interface
//	type AppContext interface {
//		bindkit.Context
//		UserID() string
//	}
//
//	// Implement the interface
//	type appContext struct {
//		bindkit.Context
//		userID string
//	}
//
//	func (c *appContext) UserID() string { return c.userID }
//
//	// Create a factory function
//	func NewAppContext(w http.ResponseWriter, r *http.Request) AppContext {
//		return &appContext{
//			Context: bindkit.NewContext(w, r),
//			userID:  extractUserID(r),
//		}
//	}
//
//	// Use in handlers with direct access to custom methods
//	handler := bindkit.HandlerFunc[AppContext, bindkit.JSON[CreateUserRequest]](
//		func(ctx AppContext, req bindkit.JSON[CreateUserRequest]) bindkit.Response {
//			userID := ctx.UserID() // Direct access, no type assertion!
//			// ... handle request
//		},
//	)
//
//	// Wrap with custom context factory
//	http.Handle("/users", bindkit.Wrap(handler,
//		bindkit.WithContextFactory(NewAppContext),
//	))
//
// Context Management:
//
// BindKit provides a Context interface that embeds context.Context and adds
// HTTP-specific methods:
//
//	// Store typed values in context
//	userKey := bindkit.NewContextKey("user")
//	ctx = context.WithValue(ctx, userKey, &User{ID: 123})
//
//	// Retrieve typed values safely
//	user := bindkit.ContextValue[*User](ctx, userKey)
//	if user != nil {
//		// Use user
//	}
//
// The framework follows these principles:
//   - Parse failures are classified, never swallowed
//   - Rejection rendering belongs to the application, not the extractor
//   - Explicit over implicit
package bindkit
