package middleware

import (
	"log/slog"
	"net/http"

	"github.com/pavlo-petrychenko/labb/internal/config"
)

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes middleware so that the first one is the outermost.
// Nil entries are skipped.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			if mws[i] != nil {
				final = mws[i](final)
			}
		}
		return final
	}
}

// ServerStack is the middleware the API server runs in front of its router.
type ServerStack struct {
	Logger    *slog.Logger
	CORS      config.CORSConfig
	Limiter   *RateLimiter // nil disables rate limiting
	PerMinute int
}

// Build returns the stack in serving order: panics are recovered outermost,
// then every request gets an id and an access log line before CORS, rate
// limiting and actor resolution run.
func (s ServerStack) Build() Middleware {
	var limit Middleware
	if s.Limiter != nil {
		limit = s.Limiter.Limit(s.PerMinute)
	}
	return Chain(
		Recovery(s.Logger),
		RequestID(),
		Logger(s.Logger),
		CORS(s.CORS),
		limit,
		Actor(),
	)
}
