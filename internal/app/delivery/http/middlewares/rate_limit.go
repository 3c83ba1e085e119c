package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

func (m *Middlewares) RateLimiter() func(next http.Handler) http.Handler {
	window := time.Duration(m.InternalConfig.App.MaxTimeRequestsPerSeconds) * time.Second
	return httprate.LimitByIP(m.InternalConfig.App.MaxRequests, window)
}
