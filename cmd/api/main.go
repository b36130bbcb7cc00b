package main

import (
	"context"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"golang.org/x/exp/slog"

	"github.com/luckytaka/earning-app-backend/api/routes"
	"github.com/luckytaka/earning-app-backend/internal/config"
	"github.com/luckytaka/earning-app-backend/internal/handlers"
	"github.com/luckytaka/earning-app-backend/internal/repositories"
	mongorepo "github.com/luckytaka/earning-app-backend/internal/repositories/mongodb"
	"github.com/luckytaka/earning-app-backend/internal/services"
	"github.com/luckytaka/earning-app-backend/pkg/lock"
	"github.com/luckytaka/earning-app-backend/pkg/mongodb"
	"github.com/luckytaka/earning-app-backend/pkg/notify"
)

func main() {
	// .env is optional; real deployments set environment variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logLevel := slog.LevelInfo
	if cfg.LogLevel == "debug" {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	// Connect to MongoDB
	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		slog.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			slog.Error("Error disconnecting from MongoDB", "error", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	var accountRepo repositories.AccountRepository = mongorepo.NewAccountRepository(db)

	// The per-account lock serializes every balance-moving command. A single
	// instance can run with the in-process lock; multiple instances need the
	// Redis-backed one.
	var locks lock.Manager
	switch cfg.Redis.LockBackend {
	case "redis":
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			slog.Error("Failed to connect to Redis", "error", err)
			os.Exit(1)
		}
		locks = lock.NewRedisManager(redisClient)
	default:
		locks = lock.NewMemoryManager()
	}

	notifier := notify.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.AdminChatID)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	authService := services.NewAuthService(accountRepo, cfg)
	userService := services.NewUserService(accountRepo, locks)
	lotteryService := services.NewLotteryService(accountRepo, locks, notifier, rng)
	spinService := services.NewSpinService(accountRepo, locks, notifier, cfg, rand.New(rand.NewSource(time.Now().UnixNano()+1)))
	walletService := services.NewWalletService(accountRepo, locks, notifier, cfg)
	giftBoxService := services.NewGiftBoxService(accountRepo, locks, notifier, cfg)
	investService := services.NewInvestService(accountRepo, locks, notifier)
	priceFeed := services.NewPriceFeed(rand.New(rand.NewSource(time.Now().UnixNano() + 2)))
	tradeService := services.NewTradeService(accountRepo, locks, notifier, priceFeed)

	router := routes.SetupRouter(cfg, routes.Handlers{
		Auth:    handlers.NewAuthHandler(authService),
		User:    handlers.NewUserHandler(userService),
		Lottery: handlers.NewLotteryHandler(lotteryService),
		Spin:    handlers.NewSpinHandler(spinService),
		Wallet:  handlers.NewWalletHandler(walletService),
		GiftBox: handlers.NewGiftBoxHandler(giftBoxService),
		Invest:  handlers.NewInvestHandler(investService),
		Trade:   handlers.NewTradeHandler(tradeService),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	slog.Info("Server starting", "port", cfg.Server.Port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("listen", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exiting")
}
