// Command server runs the syndicate membership registry: bootstrap of the
// component set, then the HTTP surface. Business logic lives in the internal
// service packages; main only wires dependencies and owns the lifecycle.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"syndicate/internal/admin"
	"syndicate/internal/audit"
	"syndicate/internal/bootstrap"
	"syndicate/internal/eligibility"
	"syndicate/internal/guard"
	"syndicate/internal/handoff"
	"syndicate/internal/ledger"
	"syndicate/internal/membership"
	"syndicate/internal/platform/auth"
	"syndicate/internal/platform/config"
	"syndicate/internal/platform/httpserver"
	"syndicate/internal/platform/logger"
	"syndicate/internal/platform/middleware"
	"syndicate/internal/platform/postgres"
	platformredis "syndicate/internal/platform/redis"
	"syndicate/internal/roles"
	"syndicate/pkg/domain"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New()
	ctx := context.Background()

	deployer, err := domain.ParseAddress(cfg.Deployer)
	if err != nil {
		log.Error("invalid deployer address", "error", err)
		os.Exit(1)
	}

	db, err := postgres.Open(cfg.PostgresURL)
	if err != nil {
		log.Error("failed to open postgres", "error", err)
		os.Exit(1)
	}
	if db != nil {
		defer db.Close()
	}

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	// Audit events go to Kafka when brokers are configured, otherwise they
	// stay queryable in memory.
	var auditStore audit.Store
	var kafkaSink *audit.KafkaSink
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaSink, err = audit.NewKafkaSink(ctx, cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			log.Error("failed to connect audit sink to kafka", "error", err)
			os.Exit(1)
		}
		defer kafkaSink.Close()
		auditStore = kafkaSink
	} else {
		auditStore = audit.NewInMemoryStore()
	}
	publisher := audit.NewPublisher(auditStore, audit.WithAsyncBuffer(1024), audit.WithLogger(log))
	defer publisher.Close()

	roleMetrics := roles.NewMetrics()
	roleStoreFor := func(component string) roles.Store {
		if db != nil {
			return roles.NewPostgres(db, component)
		}
		return roles.NewInMemory()
	}
	ledgerRoles := roles.NewRegistry("ledger", roleStoreFor("ledger"),
		roles.WithAudit(publisher), roles.WithMetrics(roleMetrics), roles.WithLogger(log))

	res, err := bootstrap.Bootstrap(ctx, deployer, cfg.Membership, cfg.Share, cfg.DAO, ledgerRoles,
		bootstrap.WithRoleStore(roleStoreFor),
		bootstrap.WithAudit(publisher),
		bootstrap.WithMetrics(roleMetrics),
		bootstrap.WithLogger(log),
	)
	if err != nil {
		log.Error("bootstrap failed", "error", err)
		os.Exit(1)
	}

	var guardStore guard.Store = guard.NewInMemory()
	var ledgerStore ledger.Store = ledger.NewInMemory()
	var commitmentStore eligibility.Store = eligibility.NewInMemory()
	var handoffStore handoff.Store = handoff.NewInMemory()
	if db != nil {
		guardStore = guard.NewPostgres(db)
		ledgerStore = ledger.NewPostgres(db)
		commitmentStore = eligibility.NewPostgres(db)
		handoffStore = handoff.NewPostgresStore(db)
	}
	if redisClient != nil {
		commitmentStore = eligibility.NewCachedStore(commitmentStore, redisClient.Client, log)
	}

	guardSvc := guard.NewService(guardStore, ledgerRoles, publisher, log)
	ledgerSvc := ledger.NewService(ledgerStore, ledgerRoles, guardSvc, publisher, log)
	verifier := eligibility.NewVerifier(commitmentStore, ledgerRoles, publisher, log)

	memberOpts := []membership.Option{
		membership.WithAudit(publisher),
		membership.WithMetrics(membership.NewMetrics()),
		membership.WithLogger(log),
	}
	if redisClient != nil {
		memberOpts = append(memberOpts, membership.WithThrottle(
			membership.NewRedisThrottle(redisClient.Client, cfg.Throttle.Limit, cfg.Throttle.Window, log)))
	}
	memberSvc := membership.NewService(ledgerSvc, verifier, guardSvc, ledgerRoles, cfg.Membership.BaseURI, memberOpts...)

	handoffSvc := handoff.NewService(ledgerRoles, guardSvc, res.Components, res.Deployer, res.Settings,
		handoffStore, publisher, log)

	verifierJWT := auth.NewVerifier(cfg.JWTSigningKey)

	r := chi.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.ClientMetadata)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		if db != nil {
			if err := db.PingContext(req.Context()); err != nil {
				http.Error(w, "postgres unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		if redisClient != nil {
			if err := redisClient.Health(req.Context()); err != nil {
				http.Error(w, "redis unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)
		r.Use(middleware.RequireAuth(verifierJWT, log))
		membership.NewHandler(memberSvc, log).Register(r)
		admin.NewHandler(ledgerRoles, handoffSvc, log).Register(r)
	})

	srv := httpserver.New(cfg.Addr, r)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		log.Info("starting membership registry", "addr", cfg.Addr, "deployer", deployer)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		select {
		case <-quit:
		case <-groupCtx.Done():
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
