package environment

import "context"

// Environment identifies the deployment tier an application runs in.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Parse normalizes a configuration string into an Environment. The common
// short forms "prod" and "stage" are recognized; anything else, including an
// empty string, maps to Development.
func Parse(s string) Environment {
	switch s {
	case string(Production), "prod":
		return Production
	case string(Staging), "stage":
		return Staging
	default:
		return Development
	}
}

type ctxKey struct{}

// WithContext returns a context carrying the environment name.
func WithContext(ctx context.Context, env string) context.Context {
	return context.WithValue(ctx, ctxKey{}, env)
}

// FromContext returns the environment name carried by ctx, or an empty
// string when there is none.
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	env, _ := ctx.Value(ctxKey{}).(string)
	return env
}

func is(ctx context.Context, env Environment, short string) bool {
	v := FromContext(ctx)
	return v == string(env) || v == short
}

// IsProduction reports whether the context carries the production tier.
func IsProduction(ctx context.Context) bool { return is(ctx, Production, "prod") }

// IsDevelopment reports whether the context carries the development tier.
func IsDevelopment(ctx context.Context) bool { return is(ctx, Development, "dev") }

// IsStaging reports whether the context carries the staging tier.
func IsStaging(ctx context.Context) bool { return is(ctx, Staging, "stage") }
