package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xunjianyin/rank-anything-sub000/internal/adapter/postgres"
	entitypg "github.com/xunjianyin/rank-anything-sub000/internal/adapter/postgres/entity"
	historypg "github.com/xunjianyin/rank-anything-sub000/internal/adapter/postgres/history"
	policypg "github.com/xunjianyin/rank-anything-sub000/internal/adapter/postgres/policy"
	proposalpg "github.com/xunjianyin/rank-anything-sub000/internal/adapter/postgres/proposal"
	restrictionpg "github.com/xunjianyin/rank-anything-sub000/internal/adapter/postgres/restriction"
	usagepg "github.com/xunjianyin/rank-anything-sub000/internal/adapter/postgres/usage"
	userpg "github.com/xunjianyin/rank-anything-sub000/internal/adapter/postgres/user"
	userratingpg "github.com/xunjianyin/rank-anything-sub000/internal/adapter/postgres/userrating"
	votepg "github.com/xunjianyin/rank-anything-sub000/internal/adapter/postgres/vote"
	jwtauth "github.com/xunjianyin/rank-anything-sub000/internal/auth"
	"github.com/xunjianyin/rank-anything-sub000/internal/config"
	authsvc "github.com/xunjianyin/rank-anything-sub000/internal/service/auth"
	historysvc "github.com/xunjianyin/rank-anything-sub000/internal/service/history"
	moderationsvc "github.com/xunjianyin/rank-anything-sub000/internal/service/moderation"
	policysvc "github.com/xunjianyin/rank-anything-sub000/internal/service/policy"
	ratelimitsvc "github.com/xunjianyin/rank-anything-sub000/internal/service/ratelimit"
	restrictionsvc "github.com/xunjianyin/rank-anything-sub000/internal/service/restriction"
	"github.com/xunjianyin/rank-anything-sub000/internal/transport/middleware"
	"github.com/xunjianyin/rank-anything-sub000/internal/transport/rest"
)

// Run is the application entry point: config, logger, database pool,
// repositories, services, router, HTTP server with graceful shutdown.
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

	// Repositories.
	users := userpg.New(pool)
	proposals := proposalpg.New(pool)
	votes := votepg.New(pool)
	usage := usagepg.New(pool)
	restrictions := restrictionpg.New(pool)
	userRatings := userratingpg.New(pool)
	historyRepo := historypg.New(pool)
	entities := entitypg.New(pool)
	policyRepo := policypg.New(pool)
	tx := postgres.NewTxManager(pool)

	// Services.
	policy := policysvc.NewService(logger, policyRepo)
	if err := policy.Load(ctx); err != nil {
		return err
	}

	jwt := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	auth := authsvc.NewService(logger, users, jwt, cfg.Auth)
	limiter := ratelimitsvc.NewService(logger, usage, policy)
	restriction := restrictionsvc.NewService(logger, restrictions, userRatings, users, limiter, policy, tx)
	history := historysvc.NewService(logger, historyRepo)
	moderation := moderationsvc.NewService(logger, proposals, votes, entities, historyRepo, policy, tx)

	// Transport.
	httpLimiter := middleware.NewRateLimiter(time.Minute)
	defer httpLimiter.Stop()

	router := rest.NewRouter(rest.Handlers{
		Auth:      rest.NewAuthHandler(auth, logger),
		Proposals: rest.NewProposalHandler(moderation, logger),
		History:   rest.NewHistoryHandler(history, logger),
		Users:     rest.NewUserHandler(restriction, logger),
		Admin:     rest.NewAdminHandler(moderation, policy, logger),
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
	},
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		httpLimiter.Limit(cfg.Server.RequestsPerMin),
		middleware.Auth(auth),
	)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}
