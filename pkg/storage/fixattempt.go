package storage

import (
	"context"
	"time"

	"autobuilder/pkg/domain"
)

// FixAttemptUpdates lists the fields to change. Nil fields are left untouched.
type FixAttemptUpdates struct {
	Status            *domain.FixStatus
	FilesChanged      []string
	ChangesSummary    *string
	Diff              *string
	BranchName        *string
	CommitSHA         *string
	PullRequestURL    *string
	PullRequestNumber *int
	RequiresApproval  *bool
	Notes             *string
	AppliedAt         *time.Time
	RevertedAt        *time.Time
}

// FixAttemptStorage persists fix attempts.
type FixAttemptStorage interface {
	// StoreFixAttempts inserts attempts. A repeated (build, attempt number)
	// fails with ErrDuplicate.
	StoreFixAttempts(ctx context.Context, attempts ...domain.FixAttempt) ([]domain.FixAttempt, error)
	FixAttemptByID(ctx context.Context, id domain.FixAttemptID) (*domain.FixAttempt, error)
	// FixAttemptsByBuild returns the attempts of a build by attempt number.
	FixAttemptsByBuild(ctx context.Context, buildID domain.BuildID) ([]domain.FixAttempt, error)
	UpdateFixAttempt(ctx context.Context,
		id domain.FixAttemptID,
		updates FixAttemptUpdates) (*domain.FixAttempt, error)
}
