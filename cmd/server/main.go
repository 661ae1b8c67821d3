package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/classboard/internal/analysis"
	"github.com/mmynk/classboard/internal/board"
	"github.com/mmynk/classboard/internal/config"
	"github.com/mmynk/classboard/internal/metrics"
	"github.com/mmynk/classboard/internal/middleware"
	"github.com/mmynk/classboard/internal/models"
	"github.com/mmynk/classboard/internal/persist"
	"github.com/mmynk/classboard/internal/service"
	"github.com/mmynk/classboard/internal/storage"
	"github.com/mmynk/classboard/internal/storage/redis"
	"github.com/mmynk/classboard/internal/storage/sqlite"
	"github.com/mmynk/classboard/pkg/api/apiconnect"
	"github.com/mmynk/classboard/pkg/logging"
)

func main() {
	cfg, err := config.Load(os.Getenv("CLASSBOARD_CONFIG"), ".env", "../.env")
	if err != nil {
		logging.Setup()
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logging.SetupWithLevel(cfg.Level())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg.Storage)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "driver", cfg.Storage.Driver)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	runner := analysis.NewRunner(newAnalyzer(cfg.Analysis), analysis.RunnerOptions{
		Timeout:  cfg.Analysis.Timeout,
		Observer: m,
	})

	notices := &board.NoticeLog{}
	b := board.Open(ctx, persist.NewLocal(store), board.Options{
		Limits:       cfg.Limits(),
		HistoryLimit: cfg.Board.HistoryLimit,
		Locale:       cfg.Board.Locale,
		Notifier:     notices,
		Recorder:     m,
		Analysis:     runner,
	})

	if err := os.MkdirAll(cfg.ProjectDir, 0755); err != nil {
		slog.Error("Failed to create project directory", "error", err)
		os.Exit(1)
	}
	limits := b.Limits()
	projects := persist.NewProjects(osfs.New(cfg.ProjectDir), models.Settings{
		CapacityClass: limits.DefaultCapacityClass,
		GroupCount:    limits.DefaultGroups,
	})

	mux := http.NewServeMux()

	// Register Connect service
	boardPath, boardHandler := apiconnect.NewBoardServiceHandler(
		service.NewBoardService(b, notices, projects),
		connect.WithInterceptors(middleware.LoggingInterceptor()),
	)
	mux.Handle(boardPath, boardHandler)
	mux.Handle("/metrics", m.Handler())

	staticDir, err := filepath.Abs(cfg.StaticDir)
	if err != nil {
		slog.Error("Failed to resolve static path", "error", err)
		os.Exit(1)
	}
	slog.Info("Serving static files", "path", staticDir)
	mux.Handle("/", staticHandler(staticDir))

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	handler := h2c.NewHandler(middleware.RequestLogger(middleware.CORS(mux)), &http2.Server{})

	srv := &http.Server{Addr: cfg.Addr, Handler: handler}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Shutdown failed", "error", err)
		}
	}()

	slog.Info("Connect server starting", "address", cfg.Addr, "analysis", cfg.Analysis.Provider)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}

func openStore(ctx context.Context, cfg config.StorageConfig) (storage.Store, error) {
	switch cfg.Driver {
	case "redis":
		return redis.New(ctx, redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.RedisPrefix,
		})
	case "sqlite":
		s, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		if ts, err := s.UpdatedAt(ctx, persist.StorageKey); err == nil {
			slog.Info("Found saved board", "saved_at", time.Unix(ts, 0).Format(time.RFC3339))
		}
		return s, nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}

func newAnalyzer(cfg config.AnalysisConfig) analysis.Analyzer {
	if cfg.APIKey == "" {
		return analysis.Unconfigured{}
	}
	switch cfg.Provider {
	case "openai":
		return analysis.NewOpenAI(cfg.APIKey, cfg.Model, cfg.BaseURL)
	case "gemini":
		return analysis.NewGemini(cfg.APIKey, cfg.Model, cfg.BaseURL, cfg.Timeout)
	}
	return analysis.Unconfigured{}
}

// staticHandler serves the web client, falling back to index.html.
func staticHandler(dir string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/classboard.v1.") {
			http.NotFound(w, r)
			return
		}

		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}

		filePath := filepath.Join(dir, filepath.Clean(urlPath))
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			http.ServeFile(w, r, filepath.Join(dir, "index.html"))
			return
		}
		http.ServeFile(w, r, filePath)
	})
}
