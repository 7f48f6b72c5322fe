// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"kotoba_keep/internal/config"
	"kotoba_keep/internal/handlers"
	"kotoba_keep/internal/middleware"
	"kotoba_keep/internal/repository"
	"kotoba_keep/internal/service"
	"kotoba_keep/internal/session"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	//　設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		// 開発時は色付きの読みやすいログ
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...")

	// データベース接続 (GORM)
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// ゲスト進捗のインメモリストア
	guests := session.NewStore(time.Duration(config.Cfg.Session.TTLHours) * time.Hour)

	// Dependency Injection
	learnerRepo := repository.NewGormLearnerRepository()
	cardRepo := repository.NewGormFlashcardRepository()
	progressRepo := repository.NewGormProgressRepository()
	practiceRepo := repository.NewGormPracticeRepository()

	var mailer service.Mailer
	if config.Cfg.Mailer.Driver == "ses" {
		mailer = service.NewSESMailer(&config.Cfg)
	} else {
		mailer = &service.LogMailer{}
	}

	authService := service.NewAuthService(db, learnerRepo, mailer, &config.Cfg)
	lessonService := service.NewLessonService(db, cardRepo, progressRepo, guests, &config.Cfg)
	reviewService := service.NewReviewService(db, cardRepo, progressRepo, guests, &config.Cfg)
	practiceService := service.NewPracticeService(db, practiceRepo, progressRepo, &config.Cfg)
	syncService := service.NewSyncService(db, learnerRepo, progressRepo, guests)

	authHandler := handlers.NewAuthHandler(authService)
	lessonHandler := handlers.NewLessonHandler(lessonService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	practiceHandler := handlers.NewPracticeHandler(practiceService)
	syncHandler := handlers.NewSyncHandler(syncService)
	sessionHandler := handlers.NewSessionHandler(guests)

	// 期限切れゲストセッションの掃除
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			removed := guests.Sweep()
			if removed > 0 {
				slog.Info("Swept expired guest sessions", slog.Int("removed", removed))
			}
		}
	}()

	// Setup Router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewStructuredLogger(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// API Routes
	r.Route("/api/v1", func(r chi.Router) {
		// --- Public routes ---
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/sessions", sessionHandler.CreateSession)

		// --- Guest-accessible routes (JWTがあれば学習者、無ければ X-Session-ID でゲスト) ---
		r.Group(func(r chi.Router) {
			r.Use(middleware.OptionalAuthMiddleware(&config.Cfg))

			r.Get("/lessons/{lesson}/cards", lessonHandler.GetLessonCards)
			r.Post("/lessons/cards/{flashcard_id}/mark", lessonHandler.MarkFlashcard)

			r.Get("/reviews", reviewHandler.GetReviews)
			r.Post("/reviews/{flashcard_id}/result", reviewHandler.SubmitResult)
			r.Post("/reviews/{flashcard_id}/check", reviewHandler.CheckAnswer)
		})

		// --- Protected routes (JWT必須) ---
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuthMiddleware(&config.Cfg))

			r.Get("/lessons/next", lessonHandler.GetNextLesson)
			r.Get("/counts", lessonHandler.GetCounts)

			r.Get("/practice", practiceHandler.GetPracticeBatch)
			r.Post("/practice/{practice_id}/result", practiceHandler.SubmitResult)

			r.Post("/sync", syncHandler.SyncProgress)
		})
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
