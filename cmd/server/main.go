package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/miraarastudios/miraara-backend/internal/bundle"
	"github.com/miraarastudios/miraara-backend/internal/cache"
	"github.com/miraarastudios/miraara-backend/internal/config"
	httptransport "github.com/miraarastudios/miraara-backend/internal/http"
	"github.com/miraarastudios/miraara-backend/internal/mailer"
	"github.com/miraarastudios/miraara-backend/internal/payment"
	"github.com/miraarastudios/miraara-backend/internal/repository"
	"github.com/miraarastudios/miraara-backend/internal/service"
	"github.com/miraarastudios/miraara-backend/internal/templates"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	ctx := context.Background()

	// MongoDB
	mongoDB, err := repository.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer mongoDB.Client().Disconnect(ctx)

	store := repository.NewMongoStore(mongoDB)
	if err := store.CreateIndexes(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to create indexes")
	}
	logger.Info().Str("uri", cfg.MongoURI).Str("db", cfg.MongoDBName).Msg("connected to MongoDB")

	// Order cache: Redis when configured, in-process otherwise.
	var orderCache cache.OrderCache
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Fatal().Err(err).Msg("Redis connection failed")
		}
		logger.Info().Str("addr", cfg.RedisAddr).Msg("Redis ping succeeded")
		orderCache = cache.NewRedisCache(redisClient, cfg.OrderTTL)
	} else {
		memCache := cache.NewMemoryCache(cfg.OrderTTL)
		defer memCache.Close()
		orderCache = memCache
		logger.Info().Dur("ttl", cfg.OrderTTL).Msg("using in-memory order cache")
	}

	// Payment provider
	if cfg.RazorpayKeyID == "" || cfg.RazorpayKeySecret == "" {
		logger.Warn().Msg("Razorpay credentials not set; order creation will fail")
	}
	provider := payment.NewRazorpayProvider(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)

	// Email
	if cfg.MailjetAPIKey == "" || cfg.MailjetSecretKey == "" {
		logger.Warn().Msg("Mailjet credentials not set; email delivery will fail")
	}
	sender := mailer.NewMailjetSender(cfg.MailjetAPIKey, cfg.MailjetSecretKey, cfg.SenderEmail, cfg.SenderName)
	dispatcher := mailer.NewDispatcher(sender, logger)

	engine, err := templates.NewEngine()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse email templates")
	}

	// Services
	bundler := bundle.NewBuilder(bundle.WithFetchTimeout(cfg.FetchTimeout))
	intakeService := service.NewIntakeService(store, store, engine, dispatcher, cfg.AdminEmail, logger)
	checkoutService := service.NewCheckoutService(provider, orderCache, store, bundler, cfg.RazorpayKeySecret, logger)

	// HTTP
	router := httptransport.NewRouter(
		httptransport.NewIntakeHandler(intakeService, cfg.RequestTimeout),
		httptransport.NewCheckoutHandler(checkoutService, cfg.RequestTimeout),
		cfg.RequestTimeout,
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      otelhttp.NewHandler(router, "miraara-backend"),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * cfg.RequestTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("port", cfg.HTTPPort).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown failed")
	}

	// Let in-flight notification emails drain before closing connections.
	dispatcher.Wait()

	logger.Info().Msg("server stopped")
}
