// Package middleware provides composable HTTP middleware for the server.
package middleware

import "net/http"

// Middleware wraps an http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// System collects middleware and applies them to a handler in registration order.
type System interface {
	Use(m Middleware)
	Apply(h http.Handler) http.Handler
}

type chain struct {
	middleware []Middleware
}

// New creates an empty middleware system.
func New() System {
	return &chain{}
}

// Use appends a middleware to the chain.
func (c *chain) Use(m Middleware) {
	c.middleware = append(c.middleware, m)
}

// Apply wraps h with the registered middleware. The first registered
// middleware is the outermost wrapper.
func (c *chain) Apply(h http.Handler) http.Handler {
	for i := len(c.middleware) - 1; i >= 0; i-- {
		h = c.middleware[i](h)
	}
	return h
}
