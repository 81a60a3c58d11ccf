// Package async runs fire-and-forget work detached from request lifetimes.
package async

import (
	"context"
	"errors"
	"runtime/debug"

	"autobuilder/pkg/logger"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
)

// Dispatch executes handler in a new goroutine. The handler context keeps the
// values of ctx (logger, request id) but is not cancelled with it. Panics are
// recovered, logged with their stack and reported to Sentry when configured.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	newCtx := context.WithoutCancel(ctx)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Error(newCtx, "panic in async handler",
					zap.Any("recover", r),
					zap.ByteString("stack", debug.Stack()))
				sentry.CurrentHub().Recover(r)
			}
		}()

		if err := handler(newCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error(newCtx, "error in async handler", zap.Error(err))
		}
	}()
}
