package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/ram-fashion/storefront/internal/admin"
	"github.com/ram-fashion/storefront/internal/auth"
	"github.com/ram-fashion/storefront/internal/checkout"
	"github.com/ram-fashion/storefront/internal/config"
	h "github.com/ram-fashion/storefront/internal/http"
	"github.com/ram-fashion/storefront/internal/notification"
	"github.com/ram-fashion/storefront/internal/order"
	"github.com/ram-fashion/storefront/internal/payment"
	"github.com/ram-fashion/storefront/internal/sms"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Notification log: Redis when configured, in-process otherwise.
	var store notification.Store
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer client.Close()
		store = notification.NewRedisStore(client, "notifications", cfg.NotificationLogCap)
		logger.Info("using redis notification store", zap.String("addr", cfg.RedisAddr))
	} else {
		store = notification.NewMemoryStore(cfg.NotificationLogCap)
	}

	// User accounts: MongoDB when configured, in-process otherwise.
	hasher := auth.NewBcryptHasher()
	var users auth.UserRepository
	if cfg.MongoURI != "" {
		mongoCtx, mongoCancel := context.WithTimeout(ctx, 10*time.Second)
		defer mongoCancel()
		client, err := mongo.Connect(mongoCtx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			logger.Fatal("failed to connect to mongodb", zap.Error(err))
		}
		defer client.Disconnect(context.Background())
		users = auth.NewMongoRepository(client.Database(cfg.MongoDatabase))
		logger.Info("using mongodb user repository", zap.String("database", cfg.MongoDatabase))
	} else {
		users = auth.NewMemoryRepository()
	}
	if cfg.SeedDemoUser {
		seedDemoUser(ctx, users, hasher, cfg, logger)
	}

	aggregator := admin.NewAggregator(store, logger)
	sender := sms.NewSimulatedSender(cfg.SMSDelay, logger)
	dispatcher := notification.NewDispatcher(store, aggregator, sender,
		cfg.SMSNotifyTypes, cfg.AdminPhone, cfg.RecentViewTTL, logger)

	gateway := payment.NewRazorpayClient(cfg.RazorpayBaseURL, cfg.RazorpayKeyID,
		cfg.RazorpayKeySecret, cfg.GatewayTimeout, logger)
	verifier := payment.NewVerifier(cfg.RazorpayKeySecret)

	checkoutService := checkout.NewService(
		checkout.NewMemorySessionStore(),
		gateway,
		verifier,
		order.NewBuilder(cfg.OrderIDPrefix),
		dispatcher,
		cfg.Pricing(),
		cfg.ProcessingDelay,
		logger,
	)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	authService := auth.NewService(users, hasher, tokens, dispatcher, logger)

	checkoutHandler := h.NewCheckoutHandler(checkoutService, logger)
	paymentHandler := h.NewPaymentHandler(gateway, verifier, logger)
	authHandler := h.NewAuthHandler(authService, logger)
	notificationHandler := h.NewNotificationHandler(dispatcher, aggregator, logger)
	adminHandler := h.NewAdminHandler(aggregator, logger)
	smsHandler := h.NewSMSHandler(sender, logger)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(h.RequestLogger(logger))
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/create-order", paymentHandler.CreateOrder)
		r.Post("/verify-payment", paymentHandler.VerifyPayment)

		r.Route("/checkout", func(r chi.Router) {
			r.Post("/", checkoutHandler.Start)
			r.Route("/{session_id}", func(r chi.Router) {
				r.Get("/", checkoutHandler.Get)
				r.Delete("/", checkoutHandler.Abort)
				r.Post("/shipping", checkoutHandler.SubmitShipping)
				r.Post("/back", checkoutHandler.Back)
				r.Post("/payment", checkoutHandler.SubmitPayment)
				r.Post("/payment/complete", checkoutHandler.CompletePayment)
				r.Post("/payment/cancel", checkoutHandler.CancelPayment)
			})
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/signup", authHandler.Signup)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Route("/notifications", func(r chi.Router) {
				r.Post("/", notificationHandler.Add)
				r.Get("/", notificationHandler.List)
				r.Delete("/", notificationHandler.Clear)
				r.Delete("/{notification_id}", notificationHandler.Remove)
			})
			r.Get("/stats", adminHandler.Stats)
		})

		r.Post("/sms/send", smsHandler.Send)
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}

// seedDemoUser creates the demo account if it does not exist yet. The
// credentials come from the environment, never from source.
func seedDemoUser(ctx context.Context, users auth.UserRepository, hasher auth.PasswordHasher, cfg *config.Config, logger *zap.Logger) {
	exists, err := users.Exists(ctx, cfg.DemoUserEmail)
	if err != nil {
		logger.Warn("failed to check demo user", zap.Error(err))
		return
	}
	if exists {
		return
	}

	hash, err := hasher.Hash(cfg.DemoUserPassword)
	if err != nil {
		logger.Warn("failed to hash demo password", zap.Error(err))
		return
	}
	err = users.Insert(ctx, &auth.User{
		ID:           uuid.New().String(),
		Email:        cfg.DemoUserEmail,
		FirstName:    "Demo",
		LastName:     "User",
		CreatedAt:    time.Now(),
		PasswordHash: hash,
	})
	if err != nil && !errors.Is(err, auth.ErrEmailTaken) {
		logger.Warn("failed to seed demo user", zap.Error(err))
		return
	}
	logger.Info("demo user seeded", zap.String("email", cfg.DemoUserEmail))
}
