package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Stage names, outermost first.
const (
	StageRecovery  = "recovery"
	StageCORS      = "cors"
	StageRequestID = "request_id"
	StageAccessLog = "access_log"
	StageTrace     = "trace"
	StageRateLimit = "rate_limit"
	StageAuth      = "auth"
	StageMetrics   = "metrics"
)

// Stage is one named layer of the middleware chain.
type Stage struct {
	Name string
	Wrap func(http.Handler) http.Handler
}

// Chain is an ordered list of stages, outermost first.
type Chain []Stage

// Names returns the stage names in order.
func (c Chain) Names() []string {
	names := make([]string, len(c))
	for i, s := range c {
		names[i] = s.Name
	}
	return names
}

// Then wraps h with every stage so that c[0] sees the request first.
func (c Chain) Then(h http.Handler) http.Handler {
	for i := len(c) - 1; i >= 0; i-- {
		h = c[i].Wrap(h)
	}
	return h
}

// Mount installs the chain on r. chi applies Use middlewares in
// registration order, so the first stage is outermost.
func (c Chain) Mount(r chi.Router) {
	for _, s := range c {
		r.Use(s.Wrap)
	}
}
