package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/ibeloyar/shopfront/internal/config"
	"github.com/ibeloyar/shopfront/internal/notify"
	"github.com/ibeloyar/shopfront/internal/repository/jsonfile"
	"github.com/ibeloyar/shopfront/internal/service"
	"github.com/ibeloyar/shopfront/pgk/logger"
	"go.uber.org/zap"

	httpController "github.com/ibeloyar/shopfront/internal/controller/http"
)

func Run(cfg config.Config, lg *zap.SugaredLogger) error {
	storage, err := jsonfile.New(cfg.DataDir, cfg.StrictStorage, lg)
	if err != nil {
		return err
	}

	router := chi.NewRouter()

	router.Use(logger.LoggingMiddleware(lg))
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.AllowedOrigin},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	s := service.New(storage, newNotifier(cfg), cfg.MerchantVPA, cfg.MerchantName, lg)

	handlers := httpController.New(s, lg)
	router = httpController.InitRoutes(router, handlers)

	srv := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: router,
	}

	signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	lg.Infof("starting server on %s", cfg.RunAddress)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatalf("server ListenAndServe error: %v", err)
		}
	}()

	<-signalCtx.Done()
	lg.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown (server) error: %v", err)
	}

	lg.Info("server shutdown success")
	return nil
}

// newNotifier assembles the configured notification targets. Returns nil when
// nothing is configured; the service skips dispatch entirely in that case.
func newNotifier(cfg config.Config) service.Notifier {
	var notifiers []notify.Notifier

	if cfg.SMTPHost != "" && cfg.AdminEmail != "" {
		notifiers = append(notifiers, notify.NewEmail(notify.EmailConfig{
			Host:       cfg.SMTPHost,
			Port:       cfg.SMTPPort,
			User:       cfg.SMTPUser,
			Password:   cfg.SMTPPass,
			AdminEmail: cfg.AdminEmail,
		}))
	}

	if cfg.OrderWebhookURL != "" {
		notifiers = append(notifiers, notify.NewWebhook(cfg.OrderWebhookURL))
	}

	if len(notifiers) == 0 {
		return nil
	}

	return notify.NewMulti(notifiers...)
}
