// Package environment names the deployment tier an application runs in and
// threads it through request contexts.
//
// Parse turns a configuration string into one of the known tiers, accepting
// the usual short forms:
//
//	env := environment.Parse(os.Getenv("APP_ENV")) // "prod" -> Production
//
// Middleware stamps every request with the tier, and LoggerExtractor feeds
// it into structured log records:
//
//	router.Use(environment.Middleware(env))
//
//	log := logger.New(
//		logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//
// Handlers can branch on the tier through IsProduction, IsStaging, and
// IsDevelopment without carrying configuration around.
package environment
