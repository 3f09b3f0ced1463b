package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/freshtrack/internal/alert"
	"github.com/rogerio-castellano/freshtrack/internal/auth"
	"github.com/rogerio-castellano/freshtrack/internal/config"
	"github.com/rogerio-castellano/freshtrack/internal/db"
	api "github.com/rogerio-castellano/freshtrack/internal/http"
	"github.com/rogerio-castellano/freshtrack/internal/http/handlers"
	rl "github.com/rogerio-castellano/freshtrack/internal/http/rate_limiter"
	"github.com/rogerio-castellano/freshtrack/internal/kvstore"
	"github.com/rogerio-castellano/freshtrack/internal/repo"
	"github.com/rogerio-castellano/freshtrack/internal/scanner"
	"github.com/rogerio-castellano/freshtrack/internal/stats"
)

// @title FreshTrack API
// @version 1.0
// @description REST API for tracking perishable inventory and expiry status.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Could not load configuration: %v", err)
	}
	auth.SetSecret(cfg.JWTSecret)

	ctx := context.Background()

	var store kvstore.Store
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("Could not connect to Redis: %v", err)
		}
		defer rdb.Close()
		store = kvstore.NewRedisStore(rdb)
	} else {
		log.Println("No redis address configured, settings are in-memory only")
		store = kvstore.NewMemoryStore()
	}

	var productRepo repo.ProductRepository
	var scanRepo repo.ScanEventRepository
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("Could not connect to database:", err)
		}
		defer database.Close()
		productRepo = repo.NewPostgresProductRepository(database)
		scanRepo = repo.NewPostgresScanEventRepository(database)
	} else {
		productRepo = repo.NewInMemoryProductRepository()
		scanRepo = repo.NewInMemoryScanEventRepository()
	}

	lookupTable, err := scanner.LoadLookupTable(cfg.BarcodeTablePath)
	if err != nil {
		log.Fatalf("Could not load barcode table: %v", err)
	}

	mailer := alert.NewMailer(alert.SMTPConfig{
		Server:       cfg.SMTPServer,
		Port:         cfg.SMTPPort,
		User:         cfg.SMTPUser,
		Password:     cfg.SMTPPassword,
		From:         cfg.AlertFrom,
		AuthDisabled: cfg.SMTPAuthDisabled,
	}, store)

	feed := scanner.NewFeed(16)

	handlers.SetProductRepo(productRepo)
	handlers.SetScanRepo(scanRepo)
	handlers.SetUserRepo(repo.NewInMemoryUserRepository())
	handlers.SetKVStore(store)
	handlers.SetNotifier(stats.NewNotifier(store, mailer))
	handlers.SetLookupTable(lookupTable)
	handlers.SetScanFeed(feed)

	go rl.StartVisitorCleanupLoop()
	go mailer.StartDailyDigest(24 * time.Hour)
	go scanner.StartRecorder(ctx, feed, productRepo, scanRepo)

	r := api.RateLimitMiddleware(api.NewRouter())
	log.Printf("Server running on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal(err)
	}
}
