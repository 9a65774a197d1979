package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Soruj24/e-Commarce-tsx-server/internal/api"
	"github.com/Soruj24/e-Commarce-tsx-server/internal/infrastructure/config"
	mongodb "github.com/Soruj24/e-Commarce-tsx-server/internal/infrastructure/db/mongo"
	redisdb "github.com/Soruj24/e-Commarce-tsx-server/internal/infrastructure/db/redis"
	s3storage "github.com/Soruj24/e-Commarce-tsx-server/internal/infrastructure/storage/s3"
	"github.com/Soruj24/e-Commarce-tsx-server/pkg/logger"
)

// @title User Account API
// @version 1.0
// @description REST API for user account management: signup with avatar upload, retrieval, update and deletion.
// @BasePath /
func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("mongodb index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	uploader, err := s3storage.New(ctx, s3storage.Config{
		Bucket:       cfg.Upload.Bucket,
		Endpoint:     cfg.Upload.Endpoint,
		Region:       cfg.Upload.Region,
		AccessKey:    cfg.Upload.AccessKey,
		SecretKey:    cfg.Upload.SecretKey,
		Folder:       cfg.Upload.Folder,
		UsePathStyle: cfg.Upload.UsePathStyle,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("object storage setup failed")
	}

	e := api.NewRouter(api.Dependencies{
		DB:       db,
		Redis:    rdb,
		Uploader: uploader,
		Config:   cfg,
		Logger:   log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
