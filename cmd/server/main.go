package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/devanshuguptaa/Stylo/internal/auth0"
	"github.com/devanshuguptaa/Stylo/internal/catalog"
	"github.com/devanshuguptaa/Stylo/internal/config"
	"github.com/devanshuguptaa/Stylo/internal/db"
	internalhttp "github.com/devanshuguptaa/Stylo/internal/http"
	"github.com/devanshuguptaa/Stylo/internal/migrations"
	"github.com/devanshuguptaa/Stylo/internal/repository"
	"github.com/devanshuguptaa/Stylo/internal/session"
)

func main() {
	cfg := config.Load()

	if cfg.RedisAddr == "" {
		log.Fatalf("REDIS_ADDR not set: the session store is required at startup")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := migrations.Run(ctx, cfg.DatabaseURL); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connection failed: %v", err)
	}
	defer pool.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		cancel()
		log.Fatalf("redis ping failed: %v", err)
	}
	cancel()
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("redis close error: %v", err)
		}
	}()

	if !cfg.Auth0Configured() {
		log.Printf("auth0 not configured, federated login disabled")
	}

	store := repository.NewStore(pool)
	sessions := session.NewStore(redisClient, cfg.SessionTTL)
	provider := auth0.New(cfg.Auth0Domain, cfg.Auth0ClientID, cfg.Auth0Secret, cfg.Auth0CallbackURL)
	server := internalhttp.NewServer(cfg, store, store, catalog.NewDefault(), sessions, provider)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("stylo listening on %s", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server error: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
