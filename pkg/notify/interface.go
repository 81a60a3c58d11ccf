// Package notify sends build and auto-fix notifications to chat channels.
package notify

import (
	"context"

	"autobuilder/pkg/domain"
)

//go:generate mockgen -package mocknotify -source=interface.go -destination=mock/mocknotify.go *
type Notifier interface {
	BuildFailed(ctx context.Context, repo domain.Repository, build domain.Build) error
	FixApplied(ctx context.Context, repo domain.Repository, build domain.Build, attempt domain.FixAttempt) error
}

// Nop discards every notification.
type Nop struct{}

func (Nop) BuildFailed(context.Context, domain.Repository, domain.Build) error { return nil }

func (Nop) FixApplied(context.Context, domain.Repository, domain.Build, domain.FixAttempt) error {
	return nil
}
