package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	adminapp "github.com/electrostore/backend/internal/application/admin"
	catalogapp "github.com/electrostore/backend/internal/application/catalog"
	chatapp "github.com/electrostore/backend/internal/application/chat"
	comparisonapp "github.com/electrostore/backend/internal/application/comparison"
	identityapp "github.com/electrostore/backend/internal/application/identity"
	tradeapp "github.com/electrostore/backend/internal/application/trade"
	"github.com/electrostore/backend/internal/infrastructure/auth"
	"github.com/electrostore/backend/internal/infrastructure/chatbot"
	"github.com/electrostore/backend/internal/infrastructure/config"
	"github.com/electrostore/backend/internal/infrastructure/logger"
	"github.com/electrostore/backend/internal/infrastructure/payment"
	"github.com/electrostore/backend/internal/infrastructure/persistence"
	"github.com/electrostore/backend/internal/infrastructure/storage"
	"github.com/electrostore/backend/internal/infrastructure/telemetry"
	"github.com/electrostore/backend/internal/interfaces/http/handler"
	"github.com/electrostore/backend/internal/interfaces/http/middleware"
	"github.com/electrostore/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting storefront backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize tracing
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	// Initialize database connection
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, logger.MapGormLogLevel(cfg.Log.Level))
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if tracerProvider.IsEnabled() && cfg.Telemetry.DBTraceEnabled {
		if err := db.EnableTracing(); err != nil {
			log.Warn("Failed to enable database tracing", zap.Error(err))
		}
	}

	// Token blacklist: Redis-backed when available, in-memory otherwise
	var blacklist auth.TokenBlacklist
	if cfg.Redis.Enabled {
		redisBlacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisBlacklist.Close(); err != nil {
				log.Error("Error closing Redis connection", zap.Error(err))
			}
		}()
		blacklist = redisBlacklist
		log.Info("Redis token blacklist enabled")
	} else {
		blacklist = auth.NewInMemoryTokenBlacklist()
		log.Warn("Redis disabled, using in-memory token blacklist")
	}

	// Object storage for product images
	var objectStorage catalogapp.ObjectStorageService
	if cfg.Storage.Enabled {
		s3Storage, err := storage.NewS3ObjectStorage(cfg.Storage, log)
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		if err := s3Storage.EnsureBucket(context.Background()); err != nil {
			log.Warn("Failed to ensure storage bucket", zap.Error(err))
		}
		objectStorage = s3Storage
		log.Info("Object storage enabled", zap.String("bucket", cfg.Storage.Bucket))
	} else {
		log.Info("Object storage disabled, image uploads unavailable")
	}

	// Stripe checkout gateway for card payments
	var checkoutGateway tradeapp.CheckoutGateway
	if cfg.Stripe.SecretKey != "" {
		gateway, err := payment.NewStripeCheckoutGateway(cfg.Stripe, log)
		if err != nil {
			log.Fatal("Failed to initialize payment gateway", zap.Error(err))
		}
		checkoutGateway = gateway
		log.Info("Stripe checkout enabled")
	} else {
		log.Info("Stripe not configured, only cash-on-delivery available")
	}

	// LLM client for the storefront chatbot
	var llm chatapp.LLM
	if cfg.OpenAI.APIKey != "" {
		client, err := chatbot.NewOpenAIClient(cfg.OpenAI, log)
		if err != nil {
			log.Fatal("Failed to initialize LLM client", zap.Error(err))
		}
		llm = client
		log.Info("Chatbot LLM enabled", zap.String("model", cfg.OpenAI.Model))
	} else {
		log.Info("Chatbot LLM not configured, answering from static rules")
	}

	// Initialize repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	cartRepo := persistence.NewGormCartItemRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	comparisonRepo := persistence.NewGormComparisonRepository(db.DB)
	chatMessageRepo := persistence.NewGormChatMessageRepository(db.DB)
	checkoutScope := persistence.NewGormTransactionScope(db.DB)

	// Initialize application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)
	productService := catalogapp.NewProductService(productRepo, objectStorage, log)
	categoryService := catalogapp.NewCategoryService(categoryRepo, productRepo, log)
	comparisonService := comparisonapp.NewComparisonService(productRepo, comparisonRepo, log)
	cartService := tradeapp.NewCartService(cartRepo, productRepo, log)
	orderService := tradeapp.NewOrderService(orderRepo, cartRepo, productRepo, checkoutScope, checkoutGateway, log)
	chatService := chatapp.NewChatService(chatMessageRepo, llm, log)
	adminService := adminapp.NewAdminService(userRepo, orderRepo, log)

	// Initialize HTTP handlers
	systemHandler := handler.NewSystemHandler()
	authHandler := handler.NewAuthHandler(authService, log)
	productHandler := handler.NewProductHandler(productService, log)
	categoryHandler := handler.NewCategoryHandler(categoryService, log)
	comparisonHandler := handler.NewComparisonHandler(comparisonService, log)
	cartHandler := handler.NewCartHandler(cartService, log)
	orderHandler := handler.NewOrderHandler(orderService, log)
	chatHandler := handler.NewChatHandler(chatService, log)
	adminHandler := handler.NewAdminHandler(adminService, log)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request ID first so every later log line carries it
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	engine.Use(middleware.CORS(corsConfig))

	if tracerProvider.IsEnabled() {
		engine.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
	}

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db, log))

	// Auth guards used by the route groups below
	requireAuth := middleware.JWTAuthMiddleware(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		Logger:         log,
	})
	optionalAuth := middleware.OptionalJWTAuthMiddleware(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		Logger:         log,
	})
	adminOnly := middleware.RequireRole("admin")

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// System routes
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/health", systemHandler.Health).
		GET("/ping", systemHandler.Ping)

	// Identity routes: register and login are public, the rest need a token
	authRoutes := router.NewDomainGroup("auth", "/auth")
	authRoutes.POST("/register", authHandler.Register).
		POST("/login", authHandler.Login).
		POST("/logout", requireAuth, authHandler.Logout).
		GET("/validate", requireAuth, authHandler.Validate).
		GET("/me", requireAuth, authHandler.Me)

	// Catalog routes: reads are public, writes are admin-only
	catalogRoutes := router.NewDomainGroup("catalog", "/catalog")
	catalogRoutes.GET("/products", productHandler.List).
		GET("/products/search", productHandler.Search).
		GET("/products/brands", productHandler.Brands).
		GET("/products/:id", productHandler.GetByID).
		POST("/products", requireAuth, adminOnly, productHandler.Create).
		PUT("/products/:id", requireAuth, adminOnly, productHandler.Update).
		POST("/products/:id/activate", requireAuth, adminOnly, productHandler.Activate).
		POST("/products/:id/deactivate", requireAuth, adminOnly, productHandler.Deactivate).
		POST("/products/:id/images", requireAuth, adminOnly, productHandler.InitiateImageUpload).
		DELETE("/products/:id", requireAuth, adminOnly, productHandler.Delete).
		GET("/categories", categoryHandler.List).
		GET("/categories/:id", categoryHandler.GetByID).
		POST("/categories", requireAuth, adminOnly, categoryHandler.Create).
		PUT("/categories/:id", requireAuth, adminOnly, categoryHandler.Update).
		DELETE("/categories/:id", requireAuth, adminOnly, categoryHandler.Delete)

	// Comparison routes: comparing works anonymously, history needs a token
	compareRoutes := router.NewDomainGroup("comparison", "/compare")
	compareRoutes.GET("", optionalAuth, comparisonHandler.Compare).
		GET("/history", requireAuth, comparisonHandler.History)

	// Cart routes
	cartRoutes := router.NewDomainGroup("cart", "/cart")
	cartRoutes.Use(requireAuth)
	cartRoutes.GET("", cartHandler.Get).
		GET("/count", cartHandler.Count).
		POST("/items", cartHandler.AddItem).
		PUT("/items/:id", cartHandler.UpdateItem).
		DELETE("/items/:id", cartHandler.RemoveItem).
		DELETE("", cartHandler.Clear)

	// Order routes
	orderRoutes := router.NewDomainGroup("orders", "/orders")
	orderRoutes.Use(requireAuth)
	orderRoutes.POST("", orderHandler.Create).
		GET("", orderHandler.List).
		GET("/confirm", orderHandler.ConfirmPayment).
		GET("/:id", orderHandler.GetByID)

	// Chat routes: asking works anonymously, history needs a token
	chatRoutes := router.NewDomainGroup("chat", "/chat")
	chatRoutes.POST("/ask", optionalAuth, chatHandler.Ask).
		GET("/history", requireAuth, chatHandler.History)

	// Admin routes
	adminRoutes := router.NewDomainGroup("admin", "/admin")
	adminRoutes.Use(requireAuth, adminOnly)
	adminRoutes.GET("/dashboard", adminHandler.Dashboard).
		GET("/users", adminHandler.ListUsers).
		PUT("/users/:id/role", adminHandler.UpdateUserRole).
		GET("/orders", adminHandler.ListOrders).
		PUT("/orders/:id/status", adminHandler.UpdateOrderStatus)

	r.Register(systemRoutes).
		Register(authRoutes).
		Register(catalogRoutes).
		Register(compareRoutes).
		Register(cartRoutes).
		Register(orderRoutes).
		Register(chatRoutes).
		Register(adminRoutes)

	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler reports liveness including database reachability
func healthHandler(db *persistence.Database, _ *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
