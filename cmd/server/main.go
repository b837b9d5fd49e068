package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/ai"
	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/config"
	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/db"
	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/handler"
	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/middleware"
	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/repository"
	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/router"
	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/service"
	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/transcript"
	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/youtube"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration: %v", err)
	}

	middleware.InitLogger(cfg.LogLevel, "bents-blogs")
	logger := middleware.Logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Postgres archive is optional. Without DATABASE_URL the repository
	// runs in no-op mode and posts live only in the cache.
	dbPool, err := db.OptionalPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if dbPool != nil {
		defer dbPool.Close()
	}

	handler.InitMetrics(dbPool)

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()

	ytClient, err := youtube.NewClient(ctx, cfg.YouTubeAPIKey)
	if err != nil {
		log.Fatalf("failed to create YouTube client: %v", err)
	}

	transcripts := transcript.NewFetcher(
		&http.Client{Timeout: cfg.UpstreamTimeout},
		transcript.BackoffPolicy{MaxAttempts: cfg.TranscriptRetries, BaseDelay: cfg.TranscriptBackoff},
	)

	completer := ai.NewClient(ai.Options{
		APIKey:         cfg.OpenAIAPIKey,
		BaseURL:        cfg.OpenAIBaseURL,
		Model:          cfg.CompletionModel,
		EmbeddingModel: cfg.EmbeddingModel,
		MaxTokens:      cfg.MaxTokens,
		Timeout:        cfg.CompletionTimeout,
	})

	repo := repository.NewPostRepo(dbPool)
	posts := service.NewPostService(ytClient, transcripts, completer, cache, repo, service.PostServiceOptions{
		MaxChunkSize: cfg.MaxChunkSize,
		MaxComments:  cfg.MaxComments,
	})

	worker := service.NewChannelWorker(posts, cfg.ChannelBatchSize)
	go worker.Start(ctx)

	app := fiber.New(fiber.Config{
		AppName:      "Bent's Blogs",
		ServerHeader: "BentsBlogs",
	})

	router.Setup(app, &router.Handlers{
		Post:    handler.NewPostHandler(posts, worker),
		Channel: handler.NewChannelHandler(worker),
		Stats:   handler.NewStatsHandler(repo, cache),
		Health:  handler.NewHealthHandler(dbPool, cache.Client()),
	}, cfg.CORSOrigins)

	go func() {
		<-ctx.Done()
		logger.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("shutdown failed")
		}
	}()

	logger.Info().
		Str("port", cfg.Port).
		Str("environment", cfg.Environment).
		Str("model", cfg.CompletionModel).
		Msg("starting server")
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
