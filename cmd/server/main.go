package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"event-management-api/internal/config"
	"event-management-api/internal/handler"
	"event-management-api/internal/middleware"
	"event-management-api/internal/monitoring"
	"event-management-api/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// database
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()
	if err := pool.Ping(context.Background()); err != nil {
		log.Fatalf("db ping: %v", err)
	}
	log.Println("connected to postgres")

	// run migrations
	if migration, err := os.ReadFile("db/migrations/001_init.sql"); err != nil {
		log.Printf("migration file not found, skipping: %v", err)
	} else if _, err := pool.Exec(context.Background(), string(migration)); err != nil {
		log.Printf("migration warning: %v", err)
	} else {
		log.Println("migration applied")
	}

	st := store.New(pool)
	h := handler.New(st, cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	rl := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler.Routes(h, rl),
	}
	go func() {
		log.Printf("api on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("http: %v", err)
		}
	}()

	var metricsSrv *http.Server
	if cfg.EnableMetrics {
		mux := http.NewServeMux()
		mux.Handle("/metrics", monitoring.Handler())
		metricsSrv = &http.Server{Addr: ":" + cfg.MetricsPort, Handler: mux}
		go func() {
			log.Printf("metrics on :%s", cfg.MetricsPort)
			if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("metrics: %v", err)
			}
		}()
	}

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	log.Println("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	if metricsSrv != nil {
		metricsSrv.Close()
	}
}
