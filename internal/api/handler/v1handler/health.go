package v1handler

import (
	"net/http"
	"time"

	"autobuilder/internal/health"
)

type HealthDetails struct {
	HealthReport
	Version       string           `json:"version"`
	Environment   string           `json:"environment"`
	UptimeSeconds int64            `json:"uptime_seconds"`
	Uptime        string           `json:"uptime"`
	Runtime       RuntimeStats     `json:"runtime"`
	Jobs          map[string]int64 `json:"jobs,omitempty"`
}

type RuntimeStats struct {
	GoVersion      string `json:"go_version"`
	Goroutines     int    `json:"goroutines"`
	HeapAllocBytes uint64 `json:"heap_alloc_bytes"`
	SysBytes       uint64 `json:"sys_bytes"`
	NumGC          uint32 `json:"num_gc"`
}

// HealthCheck always answers 200; a failing dependency shows as degraded.
func (h *Handler) HealthCheck(r *http.Request) (*Response, error) {
	return ok(HealthReportToV1(h.deps.Health.Check(r.Context()))), nil
}

func (h *Handler) DatabaseHealth(r *http.Request) (*Response, error) {
	return h.component(health.ComponentDatabase, h.deps.Health.Database(r.Context())), nil
}

func (h *Handler) RedisHealth(r *http.Request) (*Response, error) {
	return h.component(health.ComponentRedis, h.deps.Health.Redis(r.Context())), nil
}

// component answers 503 for an unhealthy component.
func (h *Handler) component(name string, c health.Component) *Response {
	status := http.StatusOK
	if !c.Healthy() {
		status = http.StatusServiceUnavailable
	}

	return &Response{Status: status, Body: struct {
		Component
		Name      string    `json:"component"`
		Timestamp time.Time `json:"timestamp"`
	}{Component: ComponentToV1(c), Name: name, Timestamp: h.now().UTC()}}
}

func (h *Handler) HealthDetails(r *http.Request) (*Response, error) {
	d := h.deps.Health.Details(r.Context())

	return ok(HealthDetails{
		HealthReport:  HealthReportToV1(d.Report),
		Version:       d.Version,
		Environment:   d.Environment,
		UptimeSeconds: d.UptimeSeconds,
		Uptime:        d.Uptime,
		Runtime: RuntimeStats{
			GoVersion:      d.Runtime.GoVersion,
			Goroutines:     d.Runtime.Goroutines,
			HeapAllocBytes: d.Runtime.HeapAllocBytes,
			SysBytes:       d.Runtime.SysBytes,
			NumGC:          d.Runtime.NumGC,
		},
		Jobs: d.Jobs,
	}), nil
}
