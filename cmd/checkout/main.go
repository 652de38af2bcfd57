package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/raasdandiya/checkout/internal/adapter/backend"
	"github.com/raasdandiya/checkout/internal/adapter/gateway"
	"github.com/raasdandiya/checkout/internal/adapter/handler"
	"github.com/raasdandiya/checkout/internal/adapter/store/memory"
	"github.com/raasdandiya/checkout/internal/adapter/store/redisstore"
	"github.com/raasdandiya/checkout/internal/core/ports"
	"github.com/raasdandiya/checkout/internal/core/services"
	"github.com/raasdandiya/checkout/internal/core/validate"
	"github.com/raasdandiya/checkout/internal/platform/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using OS environment.")
	}

	cfg := config.FromEnv()

	var store ports.SessionStore
	if cfg.RedisAddr != "" {
		log.Printf("Connecting to Redis at %s...", cfg.RedisAddr)

		redisClient := redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
			DB:   0,
		})

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		log.Println("Redis connected successfully!")

		store = redisstore.New(redisClient, cfg.SessionTTL)
	} else {
		log.Println("No REDIS_HOST configured, keeping sessions in memory.")
		store = memory.New()
	}

	backendClient := backend.NewClient(backend.Config{
		BaseURL: cfg.BackendBaseURL,
		Timeout: cfg.RequestTimeout,
	})

	if err := backendClient.Health(context.Background()); err != nil {
		log.Printf("Booking backend health check failed: %v", err)
	} else {
		log.Printf("Booking backend reachable at %s", cfg.BackendBaseURL)
	}

	bridge := gateway.New(gateway.Config{
		KeyID:     cfg.GatewayKeyID,
		ScriptURL: cfg.GatewayScriptURL,
		EventName: cfg.EventName,
		Timeout:   cfg.RequestTimeout,
	})

	gate := validate.New(cfg.ApprovedEmailDomain)

	wizardService := services.NewWizardService(store, backendClient, bridge, gate, cfg.SessionTTL)

	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()

	go wizardService.RunSessionSweeper(sweepCtx)

	wizardHandler := handler.NewWizardHandler(wizardService, bridge)

	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/wizard", wizardHandler.StartSession)
	mux.HandleFunc("GET /api/wizard/{id}", wizardHandler.GetSession)
	mux.HandleFunc("POST /api/wizard/{id}/selection", wizardHandler.SubmitSelection)
	mux.HandleFunc("POST /api/wizard/{id}/contact", wizardHandler.SubmitContact)
	mux.HandleFunc("POST /api/wizard/{id}/pay", wizardHandler.Pay)
	mux.HandleFunc("POST /api/wizard/{id}/back", wizardHandler.GoBack)
	mux.HandleFunc("POST /api/wizard/{id}/reset", wizardHandler.Reset)
	mux.HandleFunc("GET /api/gateway/widget/{orderId}", wizardHandler.Widget)
	mux.HandleFunc("POST /api/gateway/callback", wizardHandler.GatewayCallback)

	server := &http.Server{
		Addr:        cfg.ListenAddr,
		Handler:     mux,
		ReadTimeout: 5 * time.Second,
		// No WriteTimeout: the pay route blocks until the gateway
		// callback arrives.
		IdleTimeout: 120 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", cfg.ListenAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
