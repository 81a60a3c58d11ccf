package async_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"autobuilder/pkg/async"
	"autobuilder/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

func TestDispatch_Executes(t *testing.T) {
	var wg sync.WaitGroup
	executed := false

	wg.Add(1)
	async.Dispatch(context.Background(), func(context.Context) error {
		defer wg.Done()
		executed = true

		return nil
	})

	wg.Wait()
	require.True(t, executed)
}

func TestDispatch_LogsErrorsAndPanics(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	async.Dispatch(ctx, func(context.Context) error { return errors.New("boom") })
	async.Dispatch(ctx, func(context.Context) error { panic("test panic") })

	require.Eventually(t, func() bool { return logs.Len() == 2 }, time.Second, 10*time.Millisecond)
	require.Equal(t, 1, logs.FilterMessage("error in async handler").Len())
	require.Equal(t, 1, logs.FilterMessage("panic in async handler").Len())
}

func TestDispatch_DetachedFromCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	async.Dispatch(ctx, func(newCtx context.Context) error {
		cancel()
		done <- newCtx.Err()

		return nil
	})

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("handler did not complete within timeout")
	}
}
