// Package health reports the state of the database, Redis and the job queue.
package health

import (
	"context"
	"time"
)

type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
	StatusDegraded  Status = "degraded"
	// StatusDisabled marks a component that is not configured.
	StatusDisabled Status = "disabled"
)

type Component struct {
	Status    Status
	Message   string
	LatencyMS float64
}

// Healthy reports whether the component does not degrade the service.
func (c Component) Healthy() bool { return c.Status == StatusHealthy || c.Status == StatusDisabled }

type Report struct {
	Status     Status
	Components map[string]Component
	Timestamp  time.Time
}

type Runtime struct {
	GoVersion      string
	Goroutines     int
	HeapAllocBytes uint64
	SysBytes       uint64
	NumGC          uint32
}

type Details struct {
	Report
	Version       string
	Environment   string
	UptimeSeconds int64
	Uptime        string
	Runtime       Runtime
	// Jobs counts queue jobs per state. Nil when the queue could not be read.
	Jobs map[string]int64
}

// Component names.
const (
	ComponentDatabase = "database"
	ComponentRedis    = "redis"
)

//go:generate mockgen -package mockhealth -source=interface.go -destination=mock/mockhealth.go *
type Checker interface {
	// Check runs every component check concurrently.
	Check(ctx context.Context) Report
	Database(ctx context.Context) Component
	Redis(ctx context.Context) Component
	Details(ctx context.Context) Details
}
