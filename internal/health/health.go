package health

import (
	"context"
	"runtime"
	"sync"
	"time"

	"autobuilder"
	"autobuilder/pkg/logger"
	"autobuilder/pkg/storage"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultTimeout bounds a single component check.
const DefaultTimeout = 3 * time.Second

type Options struct {
	Environment string
	Timeout     time.Duration
}

type checker struct {
	options Options
	storage storage.Storage
	redis   redis.UniversalClient
	started time.Time
	now     func() time.Time
}

// New creates a Checker. redis may be nil when no Redis is configured.
func New(storage storage.Storage, redis redis.UniversalClient, options Options) Checker {
	if options.Timeout <= 0 {
		options.Timeout = DefaultTimeout
	}

	return &checker{
		options: options,
		storage: storage,
		redis:   redis,
		started: time.Now(),
		now:     time.Now,
	}
}

func (c *checker) component(ctx context.Context, name string, ping func(ctx context.Context) error) Component {
	ctx, cancel := context.WithTimeout(ctx, c.options.Timeout)
	defer cancel()

	start := c.now()
	err := ping(ctx)
	latency := float64(c.now().Sub(start).Microseconds()) / 1000
	if err != nil {
		logger.Warn(ctx, "health check failed", zap.String("component", name), zap.Error(err))

		return Component{Status: StatusUnhealthy, Message: err.Error(), LatencyMS: latency}
	}

	return Component{Status: StatusHealthy, Message: name + " is reachable", LatencyMS: latency}
}

func (c *checker) Database(ctx context.Context) Component {
	return c.component(ctx, ComponentDatabase, c.storage.Ping)
}

func (c *checker) Redis(ctx context.Context) Component {
	if c.redis == nil {
		return Component{Status: StatusDisabled, Message: "redis is not configured"}
	}

	return c.component(ctx, ComponentRedis, func(ctx context.Context) error {
		return c.redis.Ping(ctx).Err()
	})
}

func (c *checker) Check(ctx context.Context) Report {
	checks := map[string]func(context.Context) Component{
		ComponentDatabase: c.Database,
		ComponentRedis:    c.Redis,
	}

	var mu sync.Mutex
	report := Report{Status: StatusHealthy, Components: make(map[string]Component, len(checks))}
	g, gctx := errgroup.WithContext(ctx)
	for name, check := range checks {
		g.Go(func() error {
			component := check(gctx)
			mu.Lock()
			defer mu.Unlock()
			report.Components[name] = component
			if !component.Healthy() {
				report.Status = StatusDegraded
			}

			return nil
		})
	}
	_ = g.Wait()
	report.Timestamp = c.now().UTC()

	return report
}

func (c *checker) Details(ctx context.Context) Details {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	uptime := c.now().Sub(c.started).Truncate(time.Second)
	details := Details{
		Report:        c.Check(ctx),
		Version:       autobuilder.Version,
		Environment:   c.options.Environment,
		UptimeSeconds: int64(uptime / time.Second),
		Uptime:        uptime.String(),
		Runtime: Runtime{
			GoVersion:      runtime.Version(),
			Goroutines:     runtime.NumGoroutine(),
			HeapAllocBytes: mem.HeapAlloc,
			SysBytes:       mem.Sys,
			NumGC:          mem.NumGC,
		},
	}

	jobs, err := c.storage.JobCounts(ctx)
	if err != nil {
		logger.Warn(ctx, "could not count jobs", zap.Error(err))
	} else {
		details.Jobs = jobs
	}

	return details
}
