package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"localpro/config"
	"localpro/cron"
	"localpro/database"
	bookingRepo "localpro/database/repository/booking"
	catalogRepo "localpro/database/repository/catalog"
	providerRepo "localpro/database/repository/provider"
	reviewRepo "localpro/database/repository/review"
	userRepo "localpro/database/repository/user"
	"localpro/handlers"
	"localpro/middleware"
	"localpro/routes"
	"localpro/services/booking"
	"localpro/services/provider"
	"localpro/services/rating"
	"localpro/services/review"
	"localpro/services/search"
	"localpro/services/storage"
	"localpro/services/tasks"
	"localpro/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger, err := utils.NewLogger(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if cfg.JWTSecret == "" {
		logger.Fatal("main: JWT_SECRET must be set")
	}

	ctx := context.Background()
	store, err := database.Connect(ctx, cfg.DatabaseURL, cfg.DatabaseName)
	if err != nil {
		logger.Fatal("main: database unavailable", zap.Error(err))
	}

	// repositories.
	provRepo := providerRepo.NewMongoProviderRepo(store.DB)
	bookRepo := bookingRepo.NewMongoBookingRepo(store.DB)
	revRepo := reviewRepo.NewMongoReviewRepo(store.DB)
	svcRepo := catalogRepo.NewMongoServiceRepo(store.DB)
	usrRepo := userRepo.NewMongoUserRepo(store.DB)

	indexers := map[string]interface{ EnsureIndexes(context.Context) error }{
		"providers": provRepo,
		"bookings":  bookRepo,
		"reviews":   revRepo,
		"services":  svcRepo,
	}
	for name, repo := range indexers {
		if err := repo.EnsureIndexes(ctx); err != nil {
			logger.Fatal("main: failed to ensure indexes", zap.String("collection", name), zap.Error(err))
		}
	}

	health := map[string]utils.Pinger{"mongo": store}

	// Redis backs the rating lock and the reconcile queue. Without it the
	// process still serves traffic with an in-process lock.
	var locker utils.Locker = utils.NewLocalLocker()
	var reconciler review.ReconcileEnqueuer
	var asynqClient *asynq.Client
	var worker *asynq.Server
	redisOpts := asynq.RedisClientOpt{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisQueueDB}

	lockClient, err := utils.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisLockDB)
	if err != nil {
		logger.Warn("main: redis unavailable, using in-process rating lock", zap.Error(err))
	} else {
		locker = utils.NewRedisLocker(lockClient)
		health["redis"] = utils.PingerFunc(func(ctx context.Context) error {
			return lockClient.Ping(ctx).Err()
		})
		asynqClient = asynq.NewClient(redisOpts)
		reconciler = tasks.NewRatingReconciler(asynqClient)
	}

	// services.
	ratingService := rating.NewRatingService(revRepo, provRepo, locker, logger.Named("rating"))
	searchService := search.NewSearchService(provRepo, logger.Named("search"))
	bookingService := booking.NewBookingService(bookRepo, svcRepo, provRepo, usrRepo, logger.Named("booking"))
	reviewService := review.NewReviewService(revRepo, provRepo, ratingService, reconciler, cfg.ReviewAutoApprove, logger.Named("review"))

	var media storage.MediaStore
	if cfg.MediaEnabled() {
		cloudinaryStore, err := storage.NewCloudinaryStore(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			logger.Fatal("main: failed to initialize cloudinary storage", zap.Error(err))
		}
		media = cloudinaryStore
	} else {
		logger.Warn("main: cloudinary credentials missing, avatar uploads disabled")
	}
	providerService := provider.NewDefaultProviderService(provRepo, media, logger.Named("provider"))

	if cfg.WorkerEnabled && asynqClient != nil {
		worker, err = cron.StartRatingWorker(redisOpts, ratingService, logger.Named("worker"))
		if err != nil {
			logger.Error("main: rating worker disabled", zap.Error(err))
		}
	}

	searchHandler := handlers.NewSearchHandler(searchService, cfg.SearchMaxLimit)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	providerHandler := handlers.NewProviderHandler(providerService)
	healthHandler := handlers.NewHealthHandler(health)

	handlerBundle := &handlers.HandlerBundle{
		JWTSecret: []byte(cfg.JWTSecret),

		SearchProvidersHandler:     searchHandler.SearchProvidersHandler,
		GetProviderHandler:         providerHandler.GetProviderHandler,
		UpdateAvatarHandler:        providerHandler.UpdateAvatarHandler,
		ListProviderReviewsHandler: reviewHandler.ListProviderReviewsHandler,

		CreateBookingHandler:        bookingHandler.CreateBookingHandler,
		UpdateBookingStatusHandler:  bookingHandler.UpdateStatusHandler,
		GetBookingHandler:           bookingHandler.GetBookingHandler,
		ListMyBookingsHandler:       bookingHandler.ListMyBookingsHandler,
		ListProviderBookingsHandler: bookingHandler.ListProviderBookingsHandler,

		CreateReviewHandler:  reviewHandler.CreateReviewHandler,
		UpdateReviewHandler:  reviewHandler.UpdateReviewHandler,
		DeleteReviewHandler:  reviewHandler.DeleteReviewHandler,
		ApproveReviewHandler: reviewHandler.ApproveReviewHandler,
		RejectReviewHandler:  reviewHandler.RejectReviewHandler,

		HealthHandler: healthHandler.CheckHandler,
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxyList()); err != nil {
		logger.Fatal("main: invalid TRUSTED_PROXIES", zap.Error(err))
	}
	router.Use(middleware.RequestLogger(logger))
	router.Use(utils.ErrorHandler(logger))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))
	routes.RegisterRoutes(router, handlerBundle)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	if worker != nil {
		worker.Shutdown()
	}
	if asynqClient != nil {
		_ = asynqClient.Close()
	}
	if lockClient != nil {
		_ = lockClient.Close()
	}
	if err := store.Close(shutdownCtx); err != nil {
		logger.Error("main: failed to close database", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
