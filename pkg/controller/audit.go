package controller

import (
	"context"
	"net/http"
	"strings"
	"sync/atomic"

	"autobuilder/pkg/async"
	"autobuilder/pkg/domain"
	"autobuilder/pkg/storage"
)

type auditActorKey struct{}

// SetAuditUser records the authenticated caller for the audit entry of the
// current request. It is a no-op outside WithAudit.
func SetAuditUser(ctx context.Context, id domain.UserID) {
	if actor, ok := ctx.Value(auditActorKey{}).(*atomic.Pointer[domain.UserID]); ok {
		actor.Store(&id)
	}
}

// WithAudit writes an api_request audit entry for every request under /api,
// health checks excepted. Entries are stored asynchronously after the
// response is written. Authentication runs further down the chain, so the
// caller is reported back through SetAuditUser.
func WithAudit(store storage.AuditStorage) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !audited(r.URL.Path) {
				next.ServeHTTP(w, r)

				return
			}

			actor := new(atomic.Pointer[domain.UserID])
			r = r.WithContext(context.WithValue(r.Context(), auditActorKey{}, actor))
			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r)

			entry := domain.AuditLog{
				ActorType:    domain.ActorAPI,
				Action:       domain.AuditAPIRequest,
				ResourceType: "api",
				ResourceID:   r.URL.Path,
				Description:  r.Method + " " + r.URL.Path,
				IPAddress:    GetClientIP(r),
				UserAgent:    r.UserAgent(),
				Success:      rec.status < http.StatusBadRequest,
				Details: map[string]any{
					"method":      r.Method,
					"path":        r.URL.Path,
					"query":       r.URL.RawQuery,
					"status_code": rec.status,
					"request_id":  RequestID(r.Context()),
				},
			}
			if id := actor.Load(); id != nil {
				entry.ActorType = domain.ActorUser
				entry.ActorID = id.String()
			}
			if !entry.Success {
				entry.ErrorMessage = http.StatusText(rec.status)
			}

			async.Dispatch(r.Context(), func(ctx context.Context) error {
				_, err := store.StoreAuditLog(ctx, entry)

				return err //nolint: wrapcheck
			})
		})
	}
}

func audited(path string) bool {
	if path != "/api" && !strings.HasPrefix(path, "/api/") {
		return false
	}

	return path != "/api/health" && !strings.HasPrefix(path, "/api/health/")
}
