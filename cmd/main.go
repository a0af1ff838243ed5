package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-marketplace/internal/handlers"
	"github.com/sbilibin2017/gw-marketplace/internal/logger"
	"github.com/sbilibin2017/gw-marketplace/internal/middlewares"
	"github.com/sbilibin2017/gw-marketplace/internal/migrate"
	"github.com/sbilibin2017/gw-marketplace/internal/repositories"
	"github.com/sbilibin2017/gw-marketplace/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-marketplace API
// @version 1.0.0
// @description Microservice for a second-hand marketplace: listings, bids, transactions, payments, shipping and reputation
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		cacheTTLSecond,
		kafkaAddr, kafkaTopic,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		cacheTTLSecond,
		kafkaAddr, kafkaTopic,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// all application, database, Redis, cache and Kafka configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	cacheTTLSecond int,
	kafkaAddr, kafkaTopic string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "marketplace")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}
	if cacheTTLSecond, err = strconv.Atoi(getEnv("LISTING_CACHE_TTL_SECOND", "300")); err != nil {
		return
	}

	// Kafka config. An empty address disables event publishing.
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "marketplace-events")

	return
}

// run initializes the logger, database, Redis, Kafka and the HTTP server.
// It applies migrations, sets up routes and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	cacheTTLSecond int,
	kafkaAddr, kafkaTopic string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", pgHost, pgPort, pgDB)

	if err := migrate.Up(ctx, dsn); err != nil {
		logger.Log.Errorw("migrations failed", "error", err)
		return err
	}

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Errorw("PostgreSQL ping failed", "error", err)
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Errorw("Redis connection error", "error", err)
		return err
	}
	defer rdb.Close()

	// Kafka event writer, optional
	var events services.KafkaWriter
	if kafkaAddr != "" {
		kw := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kw.Close()
		events = kw
		logger.Log.Infof("Kafka events enabled: %s topic %s", kafkaAddr, kafkaTopic)
	}

	// Initialize repositories
	txGetter := middlewares.GetTxFromContext

	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	categoryReadRepo := repositories.NewCategoryReadRepository(db)
	listingReadRepo := repositories.NewListingReadRepository(db)
	listingWriteRepo := repositories.NewListingWriteRepository(db, txGetter)
	listingCache := repositories.NewListingCacheRepository(rdb, time.Duration(cacheTTLSecond)*time.Second)
	watchListReadRepo := repositories.NewWatchListReadRepository(db)
	watchListWriteRepo := repositories.NewWatchListWriteRepository(db, txGetter)
	commentReadRepo := repositories.NewListingCommentReadRepository(db)
	commentWriteRepo := repositories.NewListingCommentWriteRepository(db, txGetter)
	imageReadRepo := repositories.NewImageReadRepository(db)
	imageWriteRepo := repositories.NewImageWriteRepository(db, txGetter)
	messageReadRepo := repositories.NewMessageReadRepository(db)
	messageWriteRepo := repositories.NewMessageWriteRepository(db, txGetter)
	bidReadRepo := repositories.NewBidReadRepository(db)
	bidWriteRepo := repositories.NewBidWriteRepository(db, txGetter)
	transactionReadRepo := repositories.NewTransactionReadRepository(db)
	transactionWriteRepo := repositories.NewTransactionWriteRepository(db, txGetter)
	paymentReadRepo := repositories.NewPaymentReadRepository(db)
	paymentWriteRepo := repositories.NewPaymentWriteRepository(db, txGetter)
	shippingReadRepo := repositories.NewShippingReadRepository(db)
	shippingWriteRepo := repositories.NewShippingWriteRepository(db, txGetter)
	ratingReadRepo := repositories.NewUserRatingReadRepository(db)
	ratingWriteRepo := repositories.NewUserRatingWriteRepository(db, txGetter)
	reviewReadRepo := repositories.NewReviewReadRepository(db)
	reviewWriteRepo := repositories.NewReviewWriteRepository(db, txGetter)
	reportReadRepo := repositories.NewReportReadRepository(db)
	reportWriteRepo := repositories.NewReportWriteRepository(db, txGetter)
	notificationReadRepo := repositories.NewNotificationReadRepository(db)
	notificationWriteRepo := repositories.NewNotificationWriteRepository(db, txGetter)

	// Initialize services
	userService := services.NewUserService(userReadRepo, userWriteRepo)
	catalogService := services.NewCatalogService(categoryReadRepo, listingReadRepo, listingWriteRepo, listingCache)
	watchListService := services.NewWatchListService(watchListReadRepo, watchListWriteRepo)
	commentService := services.NewCommentService(commentReadRepo, commentWriteRepo)
	imageService := services.NewImageService(imageReadRepo, imageWriteRepo)
	messageService := services.NewMessageService(messageReadRepo, messageWriteRepo)
	bidService := services.NewBidService(bidReadRepo, bidWriteRepo, listingReadRepo, notificationWriteRepo, events)
	transactionService := services.NewTransactionService(
		transactionReadRepo, transactionWriteRepo,
		userReadRepo, listingReadRepo, listingWriteRepo,
		bidReadRepo, listingCache, notificationWriteRepo, events,
	)
	paymentService := services.NewPaymentService(paymentReadRepo, paymentWriteRepo, transactionReadRepo, events)
	shippingService := services.NewShippingService(shippingReadRepo, shippingWriteRepo)
	reputationService := services.NewReputationService(ratingReadRepo, ratingWriteRepo, reviewReadRepo, reviewWriteRepo)
	reportService := services.NewReportService(reportReadRepo, reportWriteRepo)
	notificationService := services.NewNotificationService(notificationReadRepo, notificationWriteRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.TxMiddleware(db))

	// Users
	r.Post("/users", handlers.NewCreateUserHandler(userService))
	r.Get("/users", handlers.NewListUsersHandler(userService))
	r.Get("/users/{id}", handlers.NewGetUserHandler(userService))
	r.Patch("/users/{id}", handlers.NewUpdateUserHandler(userService))
	r.Delete("/users/{id}", handlers.NewDeleteUserHandler(userService))

	// Categories
	r.Get("/categories", handlers.NewListCategoriesHandler(catalogService))
	r.Get("/categories/{id}", handlers.NewGetCategoryHandler(catalogService))
	r.Get("/categories/{id}/listings", handlers.NewListListingsByCategoryHandler(catalogService))

	// Listings
	r.Post("/listings", handlers.NewCreateListingHandler(catalogService))
	r.Get("/listings", handlers.NewListListingsHandler(catalogService))
	r.Get("/listings/{id}", handlers.NewGetListingHandler(catalogService))
	r.Patch("/listings/{id}", handlers.NewUpdateListingHandler(catalogService))
	r.Put("/listings/{id}/status", handlers.NewUpdateListingStatusHandler(catalogService))
	r.Delete("/listings/{id}", handlers.NewDeleteListingHandler(catalogService))

	// Watch list
	r.Post("/users/{id}/watchlist", handlers.NewAddToWatchListHandler(watchListService))
	r.Get("/users/{id}/watchlist", handlers.NewListWatchListHandler(watchListService))
	r.Delete("/users/{id}/watchlist/{listingID}", handlers.NewRemoveFromWatchListHandler(watchListService))

	// Comments
	r.Post("/listings/{id}/comments", handlers.NewCreateCommentHandler(commentService))
	r.Get("/listings/{id}/comments", handlers.NewListCommentsForListingHandler(commentService))
	r.Get("/users/{id}/comments", handlers.NewListCommentsByUserHandler(commentService))
	r.Put("/comments/{id}/answer", handlers.NewAnswerCommentHandler(commentService))
	r.Delete("/comments/{id}", handlers.NewDeleteCommentHandler(commentService))

	// Images
	r.Post("/listings/{id}/images", handlers.NewCreateImageHandler(imageService))
	r.Get("/listings/{id}/images", handlers.NewListImagesForListingHandler(imageService))
	r.Get("/images", handlers.NewListImagesHandler(imageService))
	r.Get("/images/{id}", handlers.NewGetImageHandler(imageService))
	r.Delete("/images/{id}", handlers.NewDeleteImageHandler(imageService))

	// Messages
	r.Post("/messages", handlers.NewCreateMessageHandler(messageService))
	r.Get("/messages", handlers.NewListMessagesHandler(messageService))
	r.Get("/messages/{id}", handlers.NewGetMessageHandler(messageService))
	r.Get("/users/{id}/messages", handlers.NewListUserMessagesHandler(messageService))
	r.Delete("/messages/{id}", handlers.NewDeleteMessageHandler(messageService))

	// Bids
	r.Post("/listings/{id}/bids", handlers.NewCreateBidHandler(bidService))
	r.Get("/listings/{id}/bids", handlers.NewListBidsForListingHandler(bidService))
	r.Get("/bids", handlers.NewListBidsHandler(bidService))
	r.Get("/bids/{id}", handlers.NewGetBidHandler(bidService))
	r.Delete("/bids/{id}", handlers.NewDeleteBidHandler(bidService))

	// Transactions
	r.Post("/transactions", handlers.NewCreateTransactionHandler(transactionService))
	r.Get("/transactions", handlers.NewListTransactionsHandler(transactionService))
	r.Get("/transactions/{id}", handlers.NewGetTransactionHandler(transactionService))
	r.Get("/users/{id}/transactions", handlers.NewListUserTransactionsHandler(transactionService))
	r.Put("/transactions/{id}/status", handlers.NewUpdateTransactionStatusHandler(transactionService))

	// Payments
	r.Post("/payments", handlers.NewCreatePaymentHandler(paymentService))
	r.Get("/payments", handlers.NewListPaymentsHandler(paymentService))
	r.Get("/payments/{id}", handlers.NewGetPaymentHandler(paymentService))
	r.Get("/users/{id}/payments", handlers.NewListUserPaymentsHandler(paymentService))
	r.Put("/payments/{id}/status", handlers.NewUpdatePaymentStatusHandler(paymentService))
	r.Post("/payments/{id}/refund", handlers.NewRequestRefundHandler(paymentService))
	r.Delete("/payments/{id}", handlers.NewDeletePaymentHandler(paymentService))

	// Shipping
	r.Post("/shipping", handlers.NewCreateShippingHandler(shippingService))
	r.Get("/listings/{id}/shipping", handlers.NewGetShippingForListingHandler(shippingService))
	r.Patch("/shipping/{id}", handlers.NewUpdateShippingTrackingHandler(shippingService))

	// Ratings and reviews
	r.Post("/users/{id}/rating", handlers.NewCreateRatingHandler(reputationService))
	r.Put("/users/{id}/rating", handlers.NewUpdateRatingHandler(reputationService))
	r.Get("/users/{id}/rating", handlers.NewGetRatingHandler(reputationService))
	r.Delete("/users/{id}/rating", handlers.NewDeleteRatingHandler(reputationService))
	r.Get("/ratings", handlers.NewListRatingsHandler(reputationService))
	r.Post("/reviews", handlers.NewCreateReviewHandler(reputationService))
	r.Get("/reviews", handlers.NewListReviewsHandler(reputationService))
	r.Get("/reviews/{id}", handlers.NewGetReviewHandler(reputationService))
	r.Get("/users/{id}/reviews", handlers.NewListReviewsForUserHandler(reputationService))
	r.Delete("/reviews/{id}", handlers.NewDeleteReviewHandler(reputationService))

	// Reports
	r.Post("/listings/{id}/reports", handlers.NewCreateReportHandler(reportService))
	r.Get("/listings/{id}/reports", handlers.NewListReportsForListingHandler(reportService))
	r.Get("/reports", handlers.NewListReportsHandler(reportService))
	r.Get("/reports/{id}", handlers.NewGetReportHandler(reportService))
	r.Delete("/reports/{id}", handlers.NewDeleteReportHandler(reportService))

	// Notifications
	r.Post("/notifications", handlers.NewCreateNotificationHandler(notificationService))
	r.Get("/users/{id}/notifications", handlers.NewListNotificationsHandler(notificationService))
	r.Put("/users/{id}/notifications/read", handlers.NewMarkAllReadHandler(notificationService))
	r.Delete("/notifications/{id}", handlers.NewDeleteNotificationHandler(notificationService))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
