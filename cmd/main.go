// cmd/main.go
package main

import (
	"context"
	"errors"
	"io"
	"log"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"jindam_vocab/internal/config"
	"jindam_vocab/internal/handlers"
	"jindam_vocab/internal/repository"
	"jindam_vocab/internal/service"
	"jindam_vocab/internal/translate"
)

func main() {
	//　設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	if err := config.LoadConfig("../configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}
	cfg := config.Cfg

	logger := newLogger(cfg.Log.Level, tempLogger)
	slog.SetDefault(logger)
	slog.Info("Application starting...", slog.String("version", config.AppVersion))

	// 1. Database (GORM)
	db, err := repository.NewDB(cfg.Database.URL, logger)
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

	// 2. Translation provider
	translator, err := translate.New(context.Background(), translate.Settings{
		CredentialsJSON: cfg.Translate.CredentialsJSON,
		CredentialsFile: cfg.Translate.CredentialsFile,
		Endpoint:        cfg.Translate.Endpoint,
	})
	if err != nil {
		slog.Error("Error initializing translator", slog.Any("error", err))
		os.Exit(1)
	}
	if _, ok := translator.(translate.NopTranslator); ok {
		slog.Warn("Translation credentials not configured; Korean templates will be used")
	}
	if c, ok := translator.(io.Closer); ok {
		defer c.Close()
	}

	// 3. Dependency Injection
	var rng *rand.Rand
	if cfg.App.RandomSeed != 0 {
		rng = rand.New(rand.NewPCG(cfg.App.RandomSeed, cfg.App.RandomSeed))
	}
	kvRepo := repository.NewGormKVRepository()

	wordInfoService := service.NewWordInfoService(logger)
	exampleService := service.NewExampleService(translator, rng, logger)
	loc, err := cfg.Location()
	if err != nil {
		logger.Warn("Unknown timezone, grouping words by UTC date", slog.String("timezone", cfg.App.Timezone), slog.Any("error", err))
		loc = time.UTC
	}
	vocabularyService := service.NewVocabularyService(db, kvRepo, cfg.App.StoreKey, logger, service.WithLocation(loc))

	router := handlers.NewRouter(handlers.RouterDeps{
		Health:     handlers.NewHealthHandler(sqlDB.PingContext, logger),
		Provider:   handlers.NewProviderHandler(wordInfoService, exampleService, logger),
		Vocabulary: handlers.NewVocabularyHandler(vocabularyService, logger),
		CORS: cors.Options{
			AllowedOrigins:   cfg.CORS.AllowedOrigins,
			AllowedMethods:   cfg.CORS.AllowedMethods,
			AllowedHeaders:   cfg.CORS.AllowedHeaders,
			ExposedHeaders:   cfg.CORS.ExposedHeaders,
			AllowCredentials: cfg.CORS.AllowCredentials,
			MaxAge:           cfg.CORS.MaxAge,
		},
		DefaultNamespace: cfg.App.DefaultNamespace,
		RequestTimeout:   cfg.RequestTimeout(),
		Logger:           logger,
	})

	// 4. Start Server
	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.RequestTimeout() + 5*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}

// newLogger は APP_ENV=dev なら tint、それ以外は JSON のロガーを作ります
func newLogger(level string, tempLogger *slog.Logger) *slog.Logger {
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(level) {
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
		tempLogger.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
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
	return slog.New(handler)
}
