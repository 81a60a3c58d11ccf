package controller

import (
	"net/http"
	"runtime/debug"

	"autobuilder/pkg/logger"
	"autobuilder/pkg/serrors"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
)

// WithRecover converts handler panics into 500 responses. The panic is logged
// with its stack and reported to Sentry when a client is configured.
func WithRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			if p == http.ErrAbortHandler { //nolint: errorlint
				panic(p)
			}

			logger.Error(r.Context(), "captured panic in http handler",
				zap.Any("panic", p),
				zap.ByteString("stack", debug.Stack()))

			hub := sentry.CurrentHub().Clone()
			hub.Scope().SetRequest(r)
			hub.Scope().SetTag("request_id", RequestID(r.Context()))
			hub.Recover(p)

			WriteError(w, r, serrors.KindOnly(serrors.ErrInternal))
		}()

		next.ServeHTTP(w, r)
	})
}
