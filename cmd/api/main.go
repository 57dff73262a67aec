package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	gomongo "go.mongodb.org/mongo-driver/mongo"

	"github.com/artisan-works/commission-system/internal/api"
	"github.com/artisan-works/commission-system/internal/core/ports"
	"github.com/artisan-works/commission-system/internal/core/service"
	"github.com/artisan-works/commission-system/internal/infrastructure/db/memory"
	"github.com/artisan-works/commission-system/internal/infrastructure/db/mongo"
	"github.com/artisan-works/commission-system/internal/infrastructure/db/redis"
	"github.com/artisan-works/commission-system/internal/infrastructure/imagegen"
	"github.com/artisan-works/commission-system/internal/infrastructure/queue"
	"github.com/artisan-works/commission-system/internal/pkg/config"
	"github.com/artisan-works/commission-system/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Service: "commission-api",
		Pretty:  cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Repositories ---
	var (
		users    ports.UserRepository
		artworks ports.ArtworkRepository
		jobs     ports.JobRepository
		sink     ports.ActivitySink
		mongoDB  *gomongo.Database
	)

	switch cfg.Store {
	case "mongo":
		client, db, err := mongo.Connect(ctx, mongo.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}()

		userRepo := mongo.NewUserRepository(db)
		artworkRepo := mongo.NewArtworkRepository(db)
		jobRepo := mongo.NewJobRepository(db)
		for _, ensure := range []func(context.Context) error{
			userRepo.EnsureIndexes, artworkRepo.EnsureIndexes, jobRepo.EnsureIndexes,
		} {
			if err := ensure(ctx); err != nil {
				log.Fatal().Err(err).Msg("mongo index creation failed")
			}
		}

		users, artworks, jobs = userRepo, artworkRepo, jobRepo
		sink = mongo.NewActivitySink(db)
		mongoDB = db
		log.Info().Str("database", cfg.Mongo.Database).Msg("using mongo store")
	default:
		users = memory.NewUserRepository()
		artworks = memory.NewArtworkRepository()
		jobs = memory.NewJobRepository()
		sink = memory.NewActivitySink()
		log.Info().Msg("using in-memory store")
	}

	// --- Token revocation ---
	var (
		revoker     ports.TokenRevoker
		redisClient *goredis.Client
	)
	if cfg.Redis.Addr != "" {
		client, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer client.Close()
		revoker = redis.NewTokenRevoker(client)
		redisClient = client
		log.Info().Str("addr", cfg.Redis.Addr).Msg("token revocation backed by redis")
	} else {
		revoker = memory.NewTokenRevoker()
		log.Info().Msg("token revocation kept in process memory")
	}

	// --- Activity audit pipeline ---
	dispatcher := queue.NewDispatcher(cfg.ActivityWorkers, sink, log)
	dispatcher.Start(ctx)

	// --- Services ---
	identitySvc := service.NewIdentityService(users, revoker, cfg.JWTSecret, cfg.TokenTTL, log)
	artworkSvc := service.NewArtworkService(artworks, imagegen.NewClient(cfg.ImageGen.URL), log)
	jobSvc := service.NewJobService(jobs, artworks, dispatcher, log)

	e := api.NewRouter(api.Deps{
		Identity:  identitySvc,
		Artworks:  artworkSvc,
		Jobs:      jobSvc,
		Revoker:   revoker,
		JWTSecret: cfg.JWTSecret,
		Mongo:     mongoDB,
		Redis:     redisClient,
		Log:       log,
	})

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
}
