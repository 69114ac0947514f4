package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"pharmacy-backend/config"
	"pharmacy-backend/internal/api"
	"pharmacy-backend/internal/middleware"
	"pharmacy-backend/internal/services"
	"pharmacy-backend/internal/store"
)

// openBackend selects the snapshot backend from configuration
func openBackend(cfg *config.Config) (store.Backend, func(), error) {
	switch cfg.DataBackend {
	case "memory":
		return store.NewMemoryBackend(), func() {}, nil
	case "sqlite":
		backend, err := store.NewSQLiteBackend(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return backend, func() { backend.Close() }, nil
	default:
		backend, err := store.NewFileBackend(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return backend, func() {}, nil
	}
}

// offerEndDate resolves the countdown deadline: a short deadline in test
// mode, the configured date otherwise, a week out when nothing is set
func offerEndDate(cfg *config.Config) time.Time {
	if cfg.OfferTestMode {
		return services.TestEndDate()
	}
	if cfg.OfferEndDate != "" {
		for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02", time.RFC3339} {
			if end, err := time.ParseInLocation(layout, cfg.OfferEndDate, time.Local); err == nil {
				return end
			}
		}
		log.Printf("unparseable OFFER_END_DATE %q, using default", cfg.OfferEndDate)
	}
	return time.Now().Add(7 * 24 * time.Hour)
}

func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowedOrigin := ""
		for _, allowed := range cfg.AllowedOrigins {
			if origin == allowed {
				allowedOrigin = origin
				break
			}
		}
		if allowedOrigin == "" && cfg.AllowAllOrigins {
			allowedOrigin = "*"
		}

		if allowedOrigin == "" && origin != "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "Origin not allowed",
			})
			return
		}

		if allowedOrigin != "" {
			c.Header("Access-Control-Allow-Origin", allowedOrigin)
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With, Accept, Origin")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Max-Age", "86400")
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	// Initialize snapshot storage
	backend, closeBackend, err := openBackend(cfg)
	if err != nil {
		log.Fatal("Failed to initialize storage: ", err)
	}
	defer closeBackend()

	dataStore := store.New(backend)

	// Seed missing collections, remote documents first, samples as fallback
	store.NewSeeder(dataStore, cfg.SeedBaseURL).SeedAll()

	// Initialize services
	authService, err := services.NewAuthService(cfg.AdminUsername, cfg.AdminPassword, cfg.JWTSecret, cfg.JWTExpiration)
	if err != nil {
		log.Fatal("Failed to initialize auth service: ", err)
	}

	productService := services.NewProductService(dataStore)
	newsService := services.NewNewsService(dataStore)
	offerService := services.NewOfferService(dataStore)
	messageService := services.NewMessageService(dataStore)
	statsService := services.NewStatsService(dataStore)
	contactService := services.NewContactService(dataStore, cfg.ContactUpstreamURL)

	wsService := services.NewWebSocketService(authService)
	notifier := api.NewNotifier(statsService, wsService)

	countdownService := services.NewCountdownService(
		offerEndDate(cfg),
		time.Duration(cfg.CountdownTickSeconds)*time.Second,
		func() {
			wsService.Broadcast("countdown_expired", nil)
		},
	)
	countdownService.Start()
	defer countdownService.Stop()

	// Initialize handlers
	authHandler := api.NewAuthHandler(authService)
	productHandler := api.NewProductHandler(productService, notifier)
	newsHandler := api.NewNewsHandler(newsService, notifier)
	offerHandler := api.NewOfferHandler(offerService, countdownService, notifier)
	messageHandler := api.NewMessageHandler(messageService, notifier)
	contactHandler := api.NewContactHandler(contactService, notifier)
	dashboardHandler := api.NewDashboardHandler(statsService, productService, newsService, offerService, messageService)

	authMiddleware := middleware.NewAuthMiddleware(authService)

	// Initialize Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware(cfg))
	router.Use(middleware.SecurityMiddleware(&middleware.SecurityConfig{
		MaxRequestSize:    1 * 1024 * 1024,
		RateLimitRequests: cfg.RateLimitRequests,
		RateLimitWindow:   time.Duration(cfg.RateLimitWindow) * time.Second,
		Disabled:          cfg.DisableRateLimiting,
	}))

	// Wrong-method requests get the same envelope the contact form clients
	// already understand
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"success": false,
			"message": "طريقة الطلب غير صحيحة",
		})
	})

	// Serve the seed documents directory
	if cfg.DataBackend == "file" {
		router.Static("/data", cfg.DataDir)
	}

	apiGroup := router.Group("/api/v1")
	{
		apiGroup.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"success":   true,
				"status":    "healthy",
				"message":   "Pharmacy API is running",
				"timestamp": time.Now().Unix(),
			})
		})

		// Public site routes
		apiGroup.GET("/products", productHandler.ListActive)
		apiGroup.GET("/news", newsHandler.ListPublished)
		apiGroup.GET("/news/:id", newsHandler.Get)
		apiGroup.GET("/offers", offerHandler.ListActive)
		apiGroup.GET("/offers/countdown", offerHandler.Countdown)
		apiGroup.POST("/contact", contactHandler.Submit)

		admin := apiGroup.Group("/admin")
		{
			auth := admin.Group("/auth")
			auth.Use(middleware.AuthRateLimitMiddleware(cfg.AuthRateLimitRequests, cfg.DisableRateLimiting))
			{
				auth.POST("/login", authHandler.Login)
				auth.POST("/logout", authMiddleware.AuthRequired(), authHandler.Logout)
				auth.GET("/session", authMiddleware.AuthRequired(), authHandler.Session)
			}

			// WebSocket route (handles auth internally)
			admin.GET("/ws", wsService.HandleWebSocket)

			protected := admin.Group("/")
			protected.Use(authMiddleware.AuthRequired())
			{
				products := protected.Group("/products")
				{
					products.GET("", productHandler.List)
					products.GET("/:id", productHandler.Get)
					products.POST("", productHandler.Create)
					products.PUT("/:id", productHandler.Update)
					products.DELETE("/:id", productHandler.Delete)
				}

				news := protected.Group("/news")
				{
					news.GET("", newsHandler.List)
					news.GET("/:id", newsHandler.Get)
					news.POST("", newsHandler.Create)
					news.PUT("/:id", newsHandler.Update)
					news.DELETE("/:id", newsHandler.Delete)
				}

				offers := protected.Group("/offers")
				{
					offers.GET("", offerHandler.List)
					offers.GET("/:id", offerHandler.Get)
					offers.POST("", offerHandler.Create)
					offers.PUT("/:id", offerHandler.Update)
					offers.DELETE("/:id", offerHandler.Delete)
				}

				messages := protected.Group("/messages")
				{
					messages.GET("", messageHandler.List)
					messages.GET("/:id", messageHandler.Get)
					messages.PUT("/:id/read", messageHandler.ToggleRead)
					messages.POST("/:id/reply", messageHandler.Reply)
					messages.DELETE("/:id", messageHandler.Delete)
				}

				protected.GET("/dashboard/stats", dashboardHandler.Stats)

				fragments := protected.Group("/fragments")
				{
					fragments.GET("/products", dashboardHandler.ProductsFragment)
					fragments.GET("/news", dashboardHandler.NewsFragment)
					fragments.GET("/messages", dashboardHandler.MessagesFragment)
					fragments.GET("/offers", dashboardHandler.OffersFragment)
				}
			}
		}
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Pharmacy API server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: ", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server shutdown complete")
}
