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

	"github.com/nsara/website/internal/catalog"
	"github.com/nsara/website/internal/config"
	"github.com/nsara/website/internal/handler"
	"github.com/nsara/website/internal/logging"
	"github.com/nsara/website/internal/notify"
	"github.com/nsara/website/internal/repository"
	"github.com/nsara/website/internal/service"
	"github.com/nsara/website/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("failed to load config", "error", err)
	}
	logging.Setup(logging.Options{
		Level:     cfg.LogLevel,
		File:      cfg.LogFile,
		RedactPII: cfg.RedactPII,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// シンクは ENQUIRY_SINK で切り替える（未使用側は nil のまま渡す）
	var (
		db       repository.DB
		repo     repository.EnquiryRepository
		notifier notify.Notifier
	)
	if cfg.Sink.Persists() {
		pool := repository.NewLazyPool(cfg.DatabaseURL)
		defer pool.Close()
		db = pool
		repo = repository.NewPgEnquiryRepository(pool)
	}
	if cfg.Sink.Notifies() {
		ses := notify.NewSESNotifier(ctx, cfg.Mail)
		if err := ses.Ready(); err != nil {
			// 起動は継続し、各リクエストで設定不備エラーを返す
			slog.Error("enquiry email is not configured", "error", err, "missing", cfg.Mail.Missing())
		}
		notifier = ses
	}
	enquiryService := service.NewEnquiryService(repo, notifier)

	courses, err := catalog.Load()
	if err != nil {
		logging.Fatal("failed to load course catalog", "error", err)
	}
	renderer, err := web.NewRenderer(web.DefaultSite(cfg.SiteName))
	if err != nil {
		logging.Fatal("failed to parse templates", "error", err)
	}

	router := handler.NewRouter(handler.Handlers{
		Site:    handler.New(db, cfg.SiteName, cfg.CORSOrigins),
		Enquiry: handler.NewEnquiryHandler(enquiryService),
		Courses: handler.NewCourseHandler(courses),
		Pages:   handler.NewPageHandler(renderer, courses, enquiryService),
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Addr, "sink", cfg.Sink, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}
