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

	"event-portal/internal/auth"
	"event-portal/internal/catalog"
	"event-portal/internal/config"
	"event-portal/internal/logger"
	"event-portal/internal/middleware"
	"event-portal/internal/mockapi"
	"event-portal/internal/notification"
	"event-portal/internal/scheduler"
	"event-portal/internal/storage"
	"event-portal/internal/view"
	"event-portal/internal/web"
)

type App struct {
	cfg        *config.Config
	log        *slog.Logger
	kv         storage.KV
	audit      *storage.AuditLog
	notifier   *notification.TelegramNotifier
	handler    http.Handler
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	app.log = logger.New(cfg.Logger.LogLevel(), cfg.Logger.Format, os.Stdout)
	slog.SetDefault(app.log)

	if err := app.initStorage(); err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	if err := app.initServices(); err != nil {
		app.closeStorage()
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initStorage() error {
	kv, err := storage.Open(context.Background(), a.cfg.Storage.Driver, a.cfg.Storage.DSN)
	if err != nil {
		return err
	}
	a.kv = kv

	if path := a.cfg.Storage.AuditLog; path != "" {
		audit, err := storage.OpenAuditLog(path, a.log)
		if err != nil {
			kv.Close()
			return err
		}
		a.audit = audit
	}

	a.log.Info("storage ready",
		"driver", a.cfg.Storage.Driver,
		"dsn", a.cfg.Storage.DSN,
		"audit_log", a.cfg.Storage.AuditLog,
	)
	return nil
}

func (a *App) closeStorage() error {
	err := a.kv.Close()
	if a.audit != nil {
		err = errors.Join(err, a.audit.Close())
	}
	return err
}

func (a *App) initServices() error {
	cat, err := catalog.LoadFile(a.cfg.Catalog.File)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	a.log.Info("catalog loaded", "events", cat.Len())

	authn, err := auth.New(a.cfg.Admin.Mode, a.cfg.Admin.Username, a.cfg.Admin.PasswordHash)
	if err != nil {
		return fmt.Errorf("init admin auth: %w", err)
	}
	if a.cfg.Admin.Mode == auth.ModeOpen {
		a.log.Warn("admin login accepts any credentials", "mode", auth.ModeOpen)
	}

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}
	a.notifier = n

	regs := storage.NewRegistrationStore(a.kv)
	if a.audit != nil {
		regs = regs.WithAuditLog(a.audit)
	}

	sessions := auth.NewSessions([]byte(a.cfg.Session.Secret))
	api := mockapi.New(
		cat,
		regs,
		n,
		authn,
		sessions,
		a.log,
		mockapi.Options{LegacyNotFound: a.cfg.Mock.LegacyNotFound},
	).Handler()

	transport := mockapi.NewTransport(middleware.Recovery(a.log)(api), a.cfg.Mock.Latency)
	tabs := web.NewTabs(sessions.Store(), func() *view.Controller {
		return view.New(transport.Client(), mockapi.BaseURL, a.log)
	}, a.cfg.Tabs.IdleTTL, a.log)

	a.scheduler = scheduler.New(tabs, a.cfg.Tabs.SweepInterval, a.log)

	a.handler = middleware.Chain(
		web.NewServer(tabs, api, a.log).Handler(),
		middleware.RequestID,
		middleware.Logging(a.log),
		middleware.Recovery(a.log),
		middleware.RateLimit(a.cfg.RateLimit.Requests, a.cfg.RateLimit.Window),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      a.handler,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

// Handler is the fully wired HTTP handler.
func (a *App) Handler() http.Handler {
	return a.handler
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("HTTP server starting", "addr", a.httpServer.Addr)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.Info("shutdown signal received")
	case err := <-errCh:
		a.closeStorage()
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.WriteTimeout)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.Info("HTTP server stopped")

	a.notifier.Wait()

	if err := a.closeStorage(); err != nil {
		return fmt.Errorf("close storage: %w", err)
	}
	a.log.Info("storage closed")

	a.log.Info("app stopped")
	return nil
}
