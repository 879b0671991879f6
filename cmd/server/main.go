package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/andesalud/patient-gateway/internal/api"
	"github.com/andesalud/patient-gateway/internal/core/ports"
	"github.com/andesalud/patient-gateway/internal/infrastructure/config"
	"github.com/andesalud/patient-gateway/internal/infrastructure/db/redis"
	"github.com/andesalud/patient-gateway/internal/infrastructure/supabase"
	"github.com/andesalud/patient-gateway/internal/pkg/fieldcrypt"
	"github.com/andesalud/patient-gateway/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	key, err := cfg.DecodeFieldKey()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid field encryption key")
	}
	cipher, err := fieldcrypt.New(key)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialise field cipher")
	}

	anon := supabase.NewAnonClient(cfg.Supabase.URL, cfg.Supabase.AnonKey)
	service := supabase.NewServiceClient(cfg.Supabase.URL, cfg.Supabase.ServiceKey)

	backend := supabase.NewIdentityBackend(anon, service)
	profiles := supabase.NewProfileStore(service)
	records := supabase.NewMedicalRecordStore(service)

	ctx := context.Background()

	var (
		redisClient  *goredis.Client
		sessionCache ports.SessionCache
	)
	if cfg.Redis.Addr != "" {
		redisClient, err = redis.Connect(ctx, redis.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		sessionCache = redis.NewSessionCache(redisClient, log)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("session cache enabled")
	} else {
		log.Info().Msg("REDIS_ADDR not set; session cache disabled")
	}

	e := api.NewRouter(api.RouterConfig{
		Backend:      backend,
		Profiles:     profiles,
		Records:      records,
		Cipher:       cipher,
		SessionCache: sessionCache,
		CacheTTL:     cfg.SessionCacheTTL,
		HealthClient: anon,
		Redis:        redisClient,
		CORSOrigins:  cfg.CORSOrigins,
		Logger:       log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting patient gateway")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
