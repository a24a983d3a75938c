package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pribylovaa/oura-scraper/internal/auth"
	"github.com/pribylovaa/oura-scraper/internal/config"
	"github.com/pribylovaa/oura-scraper/internal/oura"
	logctx "github.com/pribylovaa/oura-scraper/internal/pkg/log"
	"github.com/pribylovaa/oura-scraper/internal/pkg/redact"
	"github.com/pribylovaa/oura-scraper/internal/pkg/seal"
	"github.com/pribylovaa/oura-scraper/internal/service"
	"github.com/pribylovaa/oura-scraper/internal/storage/postgres"
)

// Константы для определения окружения.
const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var (
		configPath    string
		once          bool
		authorize     bool
		authorizePort int
	)
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.BoolVar(&once, "once", false, "run a single scrape pass and exit")
	flag.BoolVar(&authorize, "authorize", false, "run interactive OAuth2 authorization and exit")
	flag.IntVar(&authorizePort, "authorize-port", 8080, "local port for the OAuth2 callback")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting oura-scraper",
		"env", cfg.Env,
		"db", redact.URL(cfg.DB.URL),
	)

	// Корневой контекст по сигналам.
	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()
	rootCtx = logctx.Into(rootCtx, log)

	// Шифрование токенов в БД: опционально, но отсутствие ключа — громкое
	// предупреждение, а не тихий fallback.
	var sealer *seal.Sealer
	if cfg.Oura.EncryptionKey != "" {
		var err error
		sealer, err = seal.New(cfg.Oura.EncryptionKey)
		if err != nil {
			log.Error("seal_init_failed", slog.String("err", err.Error()))
			os.Exit(1)
		}
		log.Info("token_encryption_enabled")
	} else {
		log.Warn("token_encryption_disabled: tokens will be stored in plain text")
	}

	// Подключение к БД c таймаутом.
	dbCtx, dbCancel := context.WithTimeout(rootCtx, 10*time.Second)
	str, err := postgres.New(dbCtx, cfg.DB.URL, sealer)
	dbCancel()
	if err != nil {
		log.Error("postgres_connect_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer str.Close()
	log.Info("postgres_connected")

	httpClient := &http.Client{Timeout: cfg.Scraper.HTTPTimeout}

	tokens := auth.New(str, cfg.Oura, httpClient)

	if authorize {
		if _, err := tokens.Authorize(rootCtx, authorizePort); err != nil {
			log.Error("authorize_failed", slog.String("err", err.Error()))
			os.Exit(1)
		}
		log.Info("authorize_ok: tokens stored")
		return
	}

	client := oura.NewClient(cfg.Oura.BaseURL, tokens, httpClient)
	srvc := service.New(str, client, tokens, cfg.Scraper)
	log.Info("service_initialized")

	if once {
		stats, err := srvc.ScrapeOnce(rootCtx)
		if err != nil {
			log.Error("scrape_failed", slog.String("err", err.Error()))
			os.Exit(1)
		}
		if stats.Failed() > 0 {
			log.Warn("scrape_partial", slog.Int("failed_endpoints", stats.Failed()))
			os.Exit(1)
		}
		return
	}

	// Периодический режим: служебный HTTP + цикл выгрузки.
	var ready int32 // 0 — not ready; 1 — ready
	httpAddr := cfg.HTTP.Addr()

	mux := http.NewServeMux()
	mux.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if atomic.LoadInt32(&ready) == 1 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		}
		http.Error(w, "not ready", http.StatusServiceUnavailable)
	})

	mux.Handle("/metrics", promhttp.Handler())

	httpSrv := &http.Server{
		Addr:              httpAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("http_listen_start", "addr", httpAddr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http_serve_failed", slog.String("err", err.Error()))
		}
	}()

	atomic.StoreInt32(&ready, 1)

	runErr := srvc.Run(rootCtx)

	atomic.StoreInt32(&ready, 0)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("http_shutdown_failed", slog.String("err", err.Error()))
	}
	shutdownCancel()

	if runErr != nil {
		log.Error("scraper_failed", slog.String("err", runErr.Error()))
		os.Exit(1)
	}

	log.Info("stopped")
}

// setupLogger настраивает логгер в зависимости от окружения.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}
