package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes mws so the first one is the outermost:
// Chain(a, b)(h) serves as a(b(h)).
func Chain(mws ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			h = mws[i](h)
		}
		return h
	}
}

// When returns mw if enabled and a pass-through middleware otherwise.
func When(enabled bool, mw Middleware) Middleware {
	if !enabled {
		return func(h http.Handler) http.Handler { return h }
	}
	return mw
}
