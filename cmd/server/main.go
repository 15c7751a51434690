package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"lawsearch/internal/amendment"
	amendmentHandler "lawsearch/internal/amendment/handler"
	amendmentMetrics "lawsearch/internal/amendment/metrics"
	"lawsearch/internal/egov"
	"lawsearch/internal/platform/config"
	"lawsearch/internal/platform/httpserver"
	"lawsearch/internal/platform/logger"
	"lawsearch/internal/platform/metrics"
	"lawsearch/internal/platform/middleware"
	httptransport "lawsearch/internal/transport/http"
)

const shutdownTimeout = 10 * time.Second

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal service packages.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Server, log *slog.Logger) error {
	allowlist, err := middleware.ParseIPAllowlist(cfg.Access.AllowedIPs)
	if err != nil {
		return err
	}
	proxies, err := middleware.ParseIPAllowlist(cfg.Access.TrustedProxies)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	registry := egov.New(cfg.Registry.BaseURL, cfg.Registry.Timeout, log)
	svc := amendment.NewService(registry, log, amendmentMetrics.NewWithRegisterer(reg),
		amendment.WithPageSize(cfg.Registry.PageSize),
		amendment.WithMaxPages(cfg.Registry.MaxPages),
	)

	router := httptransport.NewRouter(httptransport.Config{
		Logger:         log,
		Metrics:        metrics.NewWithRegisterer(reg),
		Gatherer:       reg,
		RequestTimeout: cfg.RequestTimeout,
		Allowlist:      allowlist,
		TrustedProxies: proxies,
		Credentials: middleware.BasicCredentials{
			Username:     cfg.Access.BasicAuthUser,
			Password:     cfg.Access.BasicAuthPassword,
			PasswordHash: cfg.Access.BasicAuthBcryptPwd,
		},
		Handlers: []httptransport.Registrar{amendmentHandler.New(svc, log)},
	})
	srv := httpserver.New(cfg.Addr, router, cfg.RequestTimeout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting lawsearch",
			"addr", cfg.Addr,
			"registry", cfg.Registry.BaseURL,
			"ip_allowlist", !allowlist.Empty(),
			"trusted_proxies", !proxies.Empty(),
			"basic_auth", cfg.Access.BasicAuthEnabled(),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
