package controller

import (
	"math"
	"net/http"
	"strconv"

	"autobuilder/pkg/logger"
	"autobuilder/pkg/metrics"
	"autobuilder/pkg/ratelimit"
	"autobuilder/pkg/serrors"

	"go.uber.org/zap"
)

// WithRateLimit counts every request against limiter keyed by client IP.
// Requests for which exempt returns true are not counted. Limiter failures let
// the request through.
func WithRateLimit(limiter ratelimit.Limiter, exempt func(r *http.Request) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if exempt != nil && exempt(r) {
				next.ServeHTTP(w, r)

				return
			}

			res, err := limiter.Allow(r.Context(), GetClientIP(r))
			if err != nil {
				logger.Warn(r.Context(), "could not check rate limit", zap.Error(err))
				next.ServeHTTP(w, r)

				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed {
				metrics.RateLimited.Inc()
				h.Set("Retry-After", strconv.Itoa(int(math.Ceil(res.RetryAfter.Seconds()))))
				WriteError(w, r, serrors.With(serrors.ErrRateLimited, "rate limit exceeded, retry later"))

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
