// @title Pet Boarding API
// @version 1.0
// @description Reservas, precios, calendario y reportes de un hotel de mascotas.
// @BasePath /
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-boarding/internal/adapters/auth/jwtauth"
	"pet-boarding/internal/adapters/notify/telegram"
	"pet-boarding/internal/adapters/notify/webhook"
	mem "pet-boarding/internal/adapters/storage/memory"
	pg "pet-boarding/internal/adapters/storage/postgres"
	"pet-boarding/internal/config"
	"pet-boarding/internal/domain/boarding"
	"pet-boarding/internal/domain/registry"
	"pet-boarding/internal/domain/reminders"
	"pet-boarding/internal/platform/httpclient"
	"pet-boarding/internal/platform/logger"
	"pet-boarding/internal/platform/metrics"
	"pet-boarding/internal/ports/auth"
	"pet-boarding/internal/ports/storage"
	"pet-boarding/internal/router"
)

func main() {
	cfgPath := flag.String("config", config.DefaultPath, "ruta al config.toml")
	issue := flag.String("issue-token", "", "emite un token de operador para este id y sale")
	ttl := flag.Duration("token-ttl", 24*time.Hour, "vigencia del token emitido")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log := cfg.Logger()

	if *issue != "" {
		if err := issueToken(cfg, *issue, *ttl); err != nil {
			log.Error("issue token", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
		return
	}

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
}

func run(cfg config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New(cfg.App.Name)

	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	svc := boarding.NewService(registry.New(), store, log)
	svc.OnChange = m.SetEntities
	if err := svc.Reload(ctx); err != nil {
		return fmt.Errorf("initial load: %w", err)
	}

	var verifier auth.AuthVerifier // nil => modo dev
	if cfg.Auth.JWTSecret != "" {
		v, err := jwtauth.NewVerifier(cfg.Auth.JWTSecret, jwtauth.WithIssuer(cfg.Auth.Issuer))
		if err != nil {
			return err
		}
		verifier = v
	} else {
		log.Warn("JWT_SECRET not set: dev mode, X-Debug-User-ID accepted", nil)
	}

	if cfg.Reminders.Enabled {
		runner, err := newRunner(cfg, svc, log)
		if err != nil {
			return err
		}
		runner.OnScan = m.ObserveScan
		go runner.Run(ctx)
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(router.Options{AuthVerifier: verifier, Service: svc, Logger: log, Metrics: m}),
		ReadTimeout:  cfg.HTTP.ReadTimeout.Duration,
		WriteTimeout: cfg.HTTP.WriteTimeout.Duration,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout.Duration)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openStore(ctx context.Context, cfg config.Config, log logger.Logger) (storage.Store, func(), error) {
	if cfg.DB.DSN == "" {
		log.Info("using in-memory store", nil)
		return mem.NewStore(), func() {}, nil
	}

	db, err := pg.Open(cfg.DB.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("open postgres: %w", err)
	}
	closeDB := func() { closeQuietly(db, log) }

	if cfg.DB.Migrate {
		if err := pg.Migrate(ctx, db); err != nil {
			closeDB()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
	}
	log.Info("using postgres store", nil)
	return pg.NewStore(db), closeDB, nil
}

func closeQuietly(db *sql.DB, log logger.Logger) {
	if err := db.Close(); err != nil {
		log.Warn("close db", map[string]any{"err": err.Error()})
	}
}

func newRunner(cfg config.Config, svc *boarding.Service, log logger.Logger) (*reminders.Runner, error) {
	notifiers := []reminders.Notifier{reminders.LogNotifier{Log: log.With(map[string]any{"component": "reminders"})}}

	client, err := httpclient.New(httpclient.Options{UserAgent: cfg.App.Name})
	if err != nil {
		return nil, err
	}

	if cfg.TelegramEnabled() {
		tg, err := telegram.New(telegram.Config{
			Token:  cfg.Reminders.Telegram.Token,
			ChatID: cfg.Reminders.Telegram.ChatID,
		}, client)
		if err != nil {
			// sin Telegram seguimos con el log
			log.Error("telegram disabled", map[string]any{"err": err.Error()})
		} else {
			notifiers = append(notifiers, tg)
		}
	}
	if cfg.Reminders.Webhook.URL != "" {
		wh, err := webhook.New(cfg.Reminders.Webhook.URL, cfg.Reminders.Webhook.Secret, client)
		if err != nil {
			return nil, err
		}
		notifiers = append(notifiers, wh)
	}

	return reminders.NewRunner(svc.Registry(), log, cfg.Reminders.Interval.Duration, notifiers...), nil
}

func issueToken(cfg config.Config, userID string, ttl time.Duration) error {
	v, err := jwtauth.NewVerifier(cfg.Auth.JWTSecret, jwtauth.WithIssuer(cfg.Auth.Issuer))
	if err != nil {
		return err
	}
	tok, err := v.Issue(userID, "", "operator", ttl)
	if err != nil {
		return err
	}
	fmt.Println(tok)
	return nil
}
