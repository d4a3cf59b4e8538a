//go:generate swag init -g cmd/api/main.go -d ../../ -o ../../docs

// @title                       Portfolio API
// @version                     1.0
// @description                 REST API behind the bilingual portfolio site and its admin dashboard.
// @BasePath                    /api/v1
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the token.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/internintelligence/portfolio-api/internal/api"
	"github.com/internintelligence/portfolio-api/internal/api/handler"
	"github.com/internintelligence/portfolio-api/internal/api/middleware"
	"github.com/internintelligence/portfolio-api/internal/core/ports"
	"github.com/internintelligence/portfolio-api/internal/core/service"
	"github.com/internintelligence/portfolio-api/internal/infrastructure/db/mongo"
	"github.com/internintelligence/portfolio-api/internal/infrastructure/db/redis"
	"github.com/internintelligence/portfolio-api/internal/infrastructure/security"
	"github.com/internintelligence/portfolio-api/internal/infrastructure/storage/s3"
	"github.com/internintelligence/portfolio-api/internal/pkg/config"
	"github.com/internintelligence/portfolio-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log := logger.Init(logger.Options{})
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run() error {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "portfolio-api",
	})

	secret, fallback := cfg.SigningSecret()
	if fallback {
		log.Warn().Msg("JWT_SECRET is not set, signing tokens with the legacy default secret")
	}
	codec, err := security.NewJWTCodec(secret)
	if err != nil {
		return err
	}

	store, err := mongo.Open(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			log.Error().Err(err).Msg("mongo disconnect")
		}
	}()
	if err := store.EnsureIndexes(ctx); err != nil {
		return err
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")

	health := map[string]handler.Pinger{"mongodb": store}

	var dedup service.VisitDeduper
	if rcfg := (redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB}); rcfg.Enabled() && cfg.Redis.DedupWindow > 0 {
		client, err := redis.Connect(ctx, rcfg)
		if err != nil {
			return err
		}
		defer client.Close()

		deduper := redis.NewVisitDeduper(client, cfg.Redis.DedupWindow)
		dedup = deduper
		health["redis"] = deduper
		log.Info().Dur("window", cfg.Redis.DedupWindow).Msg("visit dedup enabled")
	}

	var assets ports.AssetStore
	if scfg := s3Config(cfg.S3); scfg.Enabled() {
		assetStore, err := s3.New(ctx, scfg)
		if err != nil {
			return err
		}
		assets = assetStore
		log.Info().Str("bucket", scfg.Bucket).Msg("image uploads enabled")
	} else {
		log.Warn().Msg("S3_BUCKET is not set, image uploads are disabled")
	}

	db := store.Database()
	authService := service.NewAuthService(
		mongo.NewAccountRepository(db),
		security.NewBcryptHasher(cfg.BcryptCost),
		codec,
		cfg.TokenTTL,
		log,
	)

	e := api.NewRouter(api.Dependencies{
		Auth:           authService,
		About:          service.NewAboutService(mongo.NewAboutRepository(db), assets, log),
		Skill:          service.NewSkillService(mongo.NewSkillRepository(db), assets, log),
		Product:        service.NewProductService(mongo.NewProductRepository(db), assets, log),
		Message:        service.NewMessageService(mongo.NewMessageRepository(db), log),
		Analytics:      service.NewAnalyticsService(mongo.NewAnalyticsRepository(db), dedup, log),
		Guard:          middleware.NewGuard(codec),
		Health:         health,
		AllowedOrigins: cfg.AllowedOrigins(),
		Log:            log,
	})

	return serve(ctx, e, ":"+cfg.Port, log)
}

func s3Config(c config.S3Config) s3.Config {
	return s3.Config{
		Bucket:        c.Bucket,
		Region:        c.Region,
		Endpoint:      c.Endpoint,
		AccessKey:     c.AccessKey,
		SecretKey:     c.SecretKey,
		UsePathStyle:  c.UsePathStyle,
		PublicBaseURL: c.PublicBaseURL,
	}
}

type server interface {
	Start(address string) error
	Shutdown(ctx context.Context) error
}

// serve runs the HTTP server until ctx is cancelled, then drains in-flight
// requests.
func serve(ctx context.Context, srv server, addr string, log zerolog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("http server listening")
		if err := srv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
