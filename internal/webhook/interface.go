// Package webhook verifies and dispatches GitHub webhook deliveries.
package webhook

import (
	"context"
	"time"

	"autobuilder/pkg/domain"
)

// Delivery is a raw webhook request.
type Delivery struct {
	// Event is the X-GitHub-Event header.
	Event      string
	DeliveryID string
	// Signature is the X-Hub-Signature-256 header.
	Signature string
	Body      []byte
	IPAddress string
	UserAgent string
}

// Receipt acknowledges a handled delivery.
type Receipt struct {
	EventType  string
	Repository string
	Timestamp  time.Time
}

// Events page bounds.
const (
	DefaultEventsLimit = 50
	MaxEventsLimit     = 100
)

//go:generate mockgen -package mockwebhook -source=interface.go -destination=mock/mockwebhook.go *
type Service interface {
	// Handle verifies the delivery signature, audits it and starts the builds it
	// asks for.
	Handle(ctx context.Context, delivery Delivery) (*Receipt, error)
	// Events lists recent webhook audit entries, newest first.
	Events(ctx context.Context, limit uint) ([]domain.AuditLog, error)
}
