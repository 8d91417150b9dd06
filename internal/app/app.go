package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/easi-app/easi-server/internal/adapter/cedar"
	"github.com/easi-app/easi-server/internal/adapter/postgres"
	"github.com/easi-app/easi-server/internal/adapter/postgres/intake"
	linkrepo "github.com/easi-app/easi-server/internal/adapter/postgres/systemlink"
	"github.com/easi-app/easi-server/internal/adapter/postgres/trbrequest"
	"github.com/easi-app/easi-server/internal/auth"
	"github.com/easi-app/easi-server/internal/config"
	"github.com/easi-app/easi-server/internal/i18n"
	"github.com/easi-app/easi-server/internal/service/requesttable"
	"github.com/easi-app/easi-server/internal/service/systemlink"
	"github.com/easi-app/easi-server/internal/service/trbtable"
	"github.com/easi-app/easi-server/internal/transport/dataloader"
	"github.com/easi-app/easi-server/internal/transport/middleware"
	"github.com/easi-app/easi-server/internal/transport/rest"
)

// Run is the API server entry point. It loads configuration, connects to
// PostgreSQL, wires services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if err := prometheus.Register(postgres.NewPoolCollector(pool)); err != nil {
		return fmt.Errorf("register pool metrics: %w", err)
	}

	bundle, err := i18n.NewDefaultBundle(logger)
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}

	verifier, err := auth.NewVerifier(cfg.Auth, logger)
	if err != nil {
		return fmt.Errorf("create token verifier: %w", err)
	}

	columns, err := requesttable.NewColumnCache(cfg.Tables.ColumnCacheSize)
	if err != nil {
		return err
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
		defer limiter.Stop()
	}

	handler := newHandler(cfg, logger, pool, bundle, verifier, columns, cedar.NewClient(cfg.Cedar, logger), limiter)

	return NewServer(cfg.Server, handler, logger).Run(ctx)
}

func newHandler(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	bundle *i18n.Bundle,
	verifier *auth.Verifier,
	columns *requesttable.ColumnCache,
	directory *cedar.Client,
	limiter *middleware.RateLimiter,
) http.Handler {
	intakes := intake.New(pool)
	links := linkrepo.New(pool)
	trbRequests := trbrequest.New(pool)

	loadersFromCtx := func(ctx context.Context) requesttable.IntakeLoaders {
		return dataloader.FromContext(ctx)
	}

	intakeTables := requesttable.NewService(logger, intakes, loadersFromCtx, bundle, columns)
	trbTables := trbtable.NewService(logger, trbRequests, bundle)
	systemLinks := systemlink.NewService(logger, links, intakes, directory, bundle, cfg.Tables.HelpMailbox)

	handlers := rest.Handlers{
		Health: rest.NewHealthHandler(pool, BuildVersion(), map[string]rest.CheckFunc{
			"cedar": func(ctx context.Context) error {
				_, err := directory.ListSystems(ctx)
				return err
			},
		}),
		Tables:  rest.NewTableHandler(intakeTables, trbTables, cfg.Tables.DefaultPageSize, logger),
		Systems: rest.NewSystemLinkHandler(systemLinks, logger),
	}

	global := []func(http.Handler) http.Handler{
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Metrics,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}
	api := []func(http.Handler) http.Handler{
		middleware.Auth(verifier, logger),
		i18n.Middleware,
		dataloader.Middleware(intakes),
	}
	if limiter != nil {
		api = append(api, limiter.Limit)
	}

	return rest.NewRouter(handlers, global, api)
}
