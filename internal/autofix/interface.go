// Package autofix recognizes known failures in build logs, records fix
// attempts for them and publishes fixes as pull requests.
package autofix

import (
	"context"

	"autobuilder/pkg/domain"
)

//go:generate mockgen -package mockautofix -source=interface.go -destination=mock/mockautofix.go *
type Service interface {
	// Analyze records a pending fix attempt per newly matched rule of a failed
	// build and schedules the first one when the repository allows it.
	Analyze(ctx context.Context, buildID domain.BuildID) ([]domain.FixAttempt, error)
	// ApplyFirst applies the lowest numbered pending attempt that does not need
	// approval. It returns nil when there is none.
	ApplyFirst(ctx context.Context, buildID domain.BuildID) (*domain.FixAttempt, error)
	Apply(ctx context.Context, id domain.FixAttemptID) (*domain.FixAttempt, error)
	// Approve applies a pending attempt of the build on behalf of a reviewer.
	Approve(ctx context.Context, buildID domain.BuildID, id domain.FixAttemptID) (*domain.FixAttempt, error)
	Suggestions(ctx context.Context, buildID domain.BuildID) ([]string, error)
}
