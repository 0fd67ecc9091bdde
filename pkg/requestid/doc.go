// Package requestid assigns a correlation identifier to every HTTP request.
//
// The middleware reads the X-Request-ID header, validates it, and generates
// a UUID when the client sent nothing usable. The chosen identifier is
// stored in the request context, echoed in the response header, and made
// available to structured logging through LoggerExtractor.
//
// Wire it once around the router:
//
//	mux := http.NewServeMux()
//	mux.HandleFunc("/orders", func(w http.ResponseWriter, r *http.Request) {
//		id := requestid.FromContext(r.Context())
//		_ = id // correlate with upstream services, audit trails, etc.
//	})
//	http.ListenAndServe(":8080", requestid.Middleware(mux))
//
// And feed the identifier into log records automatically:
//
//	log := logger.New(
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//
// Client-supplied identifiers are trusted only when they are short and
// limited to a safe character set; everything else is silently replaced.
package requestid
