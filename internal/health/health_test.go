package health_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"autobuilder"
	"autobuilder/internal/health"
	"autobuilder/pkg/logger"
	mockstorage "autobuilder/pkg/storage/mock"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func TestCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("healthy", func(t *testing.T) {
		store := mockstorage.NewMockStorage(gomock.NewController(t))
		store.EXPECT().Ping(gomock.Any()).Return(nil)
		_, client := newRedis(t)

		report := health.New(store, client, health.Options{}).Check(ctx)
		require.Equal(t, health.StatusHealthy, report.Status)
		require.Equal(t, health.StatusHealthy, report.Components[health.ComponentDatabase].Status)
		require.Equal(t, health.StatusHealthy, report.Components[health.ComponentRedis].Status)
		require.False(t, report.Timestamp.IsZero())
	})

	t.Run("redis down degrades", func(t *testing.T) {
		store := mockstorage.NewMockStorage(gomock.NewController(t))
		store.EXPECT().Ping(gomock.Any()).Return(nil)
		mr, client := newRedis(t)
		mr.Close()

		report := health.New(store, client, health.Options{Timeout: time.Second}).Check(ctx)
		require.Equal(t, health.StatusDegraded, report.Status)
		require.Equal(t, health.StatusUnhealthy, report.Components[health.ComponentRedis].Status)
	})

	t.Run("database down degrades", func(t *testing.T) {
		store := mockstorage.NewMockStorage(gomock.NewController(t))
		store.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))

		report := health.New(store, nil, health.Options{}).Check(ctx)
		require.Equal(t, health.StatusDegraded, report.Status)
		require.Equal(t, "connection refused", report.Components[health.ComponentDatabase].Message)
		require.Equal(t, health.StatusDisabled, report.Components[health.ComponentRedis].Status)
	})

	t.Run("check timeout", func(t *testing.T) {
		store := mockstorage.NewMockStorage(gomock.NewController(t))
		store.EXPECT().Ping(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
			<-ctx.Done()

			return ctx.Err()
		})

		c := health.New(store, nil, health.Options{Timeout: 10 * time.Millisecond}).Database(ctx)
		require.Equal(t, health.StatusUnhealthy, c.Status)
	})
}

func TestDetails(t *testing.T) {
	ctx := context.Background()
	store := mockstorage.NewMockStorage(gomock.NewController(t))
	store.EXPECT().Ping(gomock.Any()).Return(nil)
	store.EXPECT().JobCounts(gomock.Any()).Return(map[string]int64{"available": 2}, nil)
	_, client := newRedis(t)

	details := health.New(store, client, health.Options{Environment: "test"}).Details(ctx)
	require.Equal(t, autobuilder.Version, details.Version)
	require.Equal(t, "test", details.Environment)
	require.Equal(t, map[string]int64{"available": 2}, details.Jobs)
	require.Positive(t, details.Runtime.Goroutines)
	require.NotEmpty(t, details.Runtime.GoVersion)
}
