package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	root "autobuilder"
	"autobuilder/internal/api"
	"autobuilder/internal/api/handler/v1handler"
	"autobuilder/internal/autofix"
	"autobuilder/internal/builds"
	"autobuilder/internal/catalog"
	"autobuilder/internal/config"
	"autobuilder/internal/health"
	"autobuilder/internal/webhook"
	"autobuilder/internal/worker"
	"autobuilder/pkg/ci"
	"autobuilder/pkg/ci/codemagic"
	"autobuilder/pkg/ci/githubactions"
	"autobuilder/pkg/githubapi"
	"autobuilder/pkg/logger"
	"autobuilder/pkg/metrics"
	"autobuilder/pkg/notify"
	"autobuilder/pkg/ratelimit"
	"autobuilder/pkg/secret"
	"autobuilder/pkg/webshell"

	"github.com/getsentry/sentry-go"
	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/riverqueue/river"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"riverqueue.com/riverui"
)

const (
	upstreamTimeout = 30 * time.Second
	sentryFlush     = 2 * time.Second
)

func setupSentry(ctx context.Context, cfg *config.Config) func() {
	if cfg.Sentry.DSN == "" {
		return func() {}
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.Sentry.DSN,
		Environment: cfg.Environment,
		Release:     "autobuilder@" + root.Version,
	})
	if err != nil {
		logger.Fatal(ctx, "could not initialize sentry", zap.Error(err))
	}

	return func() { sentry.Flush(sentryFlush) }
}

// getRedis returns nil when no Redis address is configured.
func getRedis(ctx context.Context, cfg *config.Config) (*redis.Client, func()) {
	if cfg.Redis.Addr == "" {
		return nil, func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	return client, func() {
		logger.Info(ctx, "closing redis client...")
		if err := client.Close(); err != nil {
			logger.Warn(ctx, "could not close redis connection", zap.Error(err))
		}
	}
}

func getCIRegistry(ctx context.Context, cfg *config.Config, httpClient *http.Client) *ci.Registry {
	actions, err := githubactions.New(httpClient, cfg.GitHub.BaseURL, cfg.GitHub.Token)
	if err != nil {
		logger.Fatal(ctx, "could not create github actions client", zap.Error(err))
	}

	return ci.NewRegistry(
		actions,
		codemagic.New(httpClient, cfg.Codemagic.BaseURL, cfg.Codemagic.Token),
	)
}

// getGitHub returns nil when no token is configured, which limits repository
// sync to webhook secret generation and disables fix pull requests.
func getGitHub(ctx context.Context, cfg *config.Config, httpClient *http.Client) githubapi.Client {
	if cfg.GitHub.Token == "" {
		logger.Warn(ctx, "github token is not configured, repository sync and fix pull requests are disabled")

		return nil
	}

	gh, err := githubapi.New(httpClient, cfg.GitHub.BaseURL, cfg.GitHub.Token)
	if err != nil {
		logger.Fatal(ctx, "could not create github client", zap.Error(err))
	}

	return gh
}

func getNotifier(cfg *config.Config, httpClient *http.Client) notify.Notifier {
	if cfg.Slack.WebhookURL == "" {
		return notify.Nop{}
	}

	return notify.NewSlack(cfg.Slack.WebhookURL, cfg.Slack.Channel, httpClient)
}

func getAPILimiter(cfg *config.Config, client *redis.Client) ratelimit.Limiter {
	if !cfg.RateLimit.Enabled || client == nil {
		return nil
	}

	return ratelimit.NewRedisLimiter(client, []ratelimit.Window{
		{Name: "hour", Limit: cfg.RateLimit.PerHour, Period: time.Hour},
		{Name: "day", Limit: cfg.RateLimit.PerDay, Period: 24 * time.Hour},
	})
}

func setupRiverUI(ctx context.Context, client *river.Client[pgx.Tx]) http.Handler {
	handler, err := riverui.NewHandler(&riverui.HandlerOpts{
		Endpoints: riverui.NewEndpoints(client, nil),
		Logger:    slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
		Prefix:    "/riverui",
	})
	if err != nil {
		logger.Fatal(ctx, "could not create river ui handler", zap.Error(err))
	}
	if err := handler.Start(ctx); err != nil {
		logger.Fatal(ctx, "could not start river ui handler", zap.Error(err))
	}

	return handler
}

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			flushSentry := setupSentry(ctx, cfg)
			defer flushSentry()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			redisClient, closeRedis := getRedis(ctx, cfg)
			defer closeRedis()

			mp, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}

			httpClient := &http.Client{Timeout: upstreamTimeout}
			box := secret.NewBox(cfg.Security.SecretKey)
			registry := getCIRegistry(ctx, cfg, httpClient)
			gh := getGitHub(ctx, cfg, httpClient)
			notifier := getNotifier(cfg, httpClient)

			catalogSvc := catalog.New(strg, box, registry, gh, catalog.NewOptions(cfg))
			buildsSvc := builds.New(strg, registry, box, notifier, builds.NewOptions(cfg),
				builds.WithLimiter(worker.NewRateLimiter()))
			autoFixSvc := autofix.New(strg, gh, notifier, autofix.NewOptions(cfg), nil)
			webhookSvc, err := webhook.New(cfg.GitHub.WebhookSecret, strg, buildsSvc, mp.Meter("autobuilder/webhook"))
			if err != nil {
				logger.Fatal(ctx, "could not create webhook service", zap.Error(err))
			}
			// a nil *redis.Client must not reach the checker as a non-nil interface
			var healthRedis redis.UniversalClient
			if redisClient != nil {
				healthRedis = redisClient
			}
			healthSvc := health.New(strg, healthRedis, health.Options{Environment: cfg.Environment})

			riverClient, err := worker.Start(ctx, strg.Pool, worker.Deps{
				Catalog: catalogSvc,
				Builds:  buildsSvc,
				AutoFix: autoFixSvc,
				Health:  healthSvc,
			}, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Catalog:      catalogSvc,
					Builds:       buildsSvc,
					AutoFix:      autoFixSvc,
					Webhook:      webhookSvc,
					Health:       healthSvc,
					Audit:        strg,
					Cache:        webshell.DefaultConfig(),
					Version:      root.Version,
					Environment:  cfg.Environment,
					MaxBodyBytes: cfg.HTTP.MaxBodyBytes,
				},
				Limiter: getAPILimiter(cfg, redisClient),
				RiverUI: setupRiverUI(ctx, riverClient),
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop workers", zap.Error(err))
			}
			if err := mp.Shutdown(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "could not stop meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}
