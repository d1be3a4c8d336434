package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/geobounds-service/internal/adapter/cache"
	"github.com/marcos-nsantos/geobounds-service/internal/adapter/handler"
	"github.com/marcos-nsantos/geobounds-service/internal/adapter/repository/postgres"
	"github.com/marcos-nsantos/geobounds-service/internal/domain/fielddef"
	"github.com/marcos-nsantos/geobounds-service/internal/infrastructure/auth"
	redisInfra "github.com/marcos-nsantos/geobounds-service/internal/infrastructure/cache"
	"github.com/marcos-nsantos/geobounds-service/internal/infrastructure/config"
	"github.com/marcos-nsantos/geobounds-service/internal/infrastructure/database"
	"github.com/marcos-nsantos/geobounds-service/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/geobounds-service/internal/infrastructure/observability"
	"github.com/marcos-nsantos/geobounds-service/internal/infrastructure/server"
	"github.com/marcos-nsantos/geobounds-service/internal/infrastructure/storage"
	"github.com/marcos-nsantos/geobounds-service/internal/usecase/object"
	"github.com/marcos-nsantos/geobounds-service/internal/usecase/transfer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log.Level, cfg.Log.Format,
		zap.String("service", "geobounds"),
		zap.String("environment", cfg.Server.Environment),
	)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	pool, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := database.RunMigrations(ctx, pool, cfg.Database.MigrationsPath, cfg.Field.Name); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redisClient, err := redisInfra.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer func() { _ = redisClient.Close() }()

	field := fielddef.NewGeobounds(cfg.Field.Name, cfg.Field.Title, cfg.Field.Mandatory)

	// Repositories
	objectRepo := postgres.NewObjectRepo(pool, field)
	versionRepo := postgres.NewVersionRepo(pool)
	packedCache := cache.NewPackedCache(redisClient, field.GetName(), cfg.Redis.PackedTTL)

	// Infrastructure services
	jwtSvc := auth.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.Issuer, cfg.JWT.AccessTokenTTL)

	exportStorage := storage.NewS3ExportStorage(cfg.S3)
	if cfg.S3.CreateBucket {
		if err := exportStorage.EnsureBucket(ctx); err != nil {
			logger.Fatal("failed to prepare export bucket", zap.Error(err))
		}
	}

	// Use cases
	objectSvc := object.NewService(objectRepo, versionRepo, packedCache, field, logger.Named("object"))
	transferSvc := transfer.NewService(objectRepo, objectSvc, exportStorage, field, logger.Named("transfer"))

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtSvc)

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit, logger)
	}

	// Router
	router := server.NewRouter(server.RouterConfig{
		ObjectHandler:   handler.NewObjectHandler(objectSvc, field),
		TransferHandler: handler.NewTransferHandler(transferSvc),
		AuthMiddleware:  authMiddleware,
		RateLimiter:     rateLimiter,
		HealthChecks: map[string]server.HealthCheck{
			"postgres": pool.Ping,
			"redis": func(ctx context.Context) error {
				return redisClient.Ping(ctx).Err()
			},
		},
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Logger:         logger,
		Environment:    cfg.Server.Environment,
	})

	// Server
	srv := server.NewServer(server.ServerConfig{
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		Handler:      router.Engine(),
		Logger:       logger,
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped")
}
