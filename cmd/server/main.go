package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	documentapp "github.com/arvebo/backend/internal/application/document"
	engagementapp "github.com/arvebo/backend/internal/application/engagement"
	estateapp "github.com/arvebo/backend/internal/application/estate"
	financeapp "github.com/arvebo/backend/internal/application/finance"
	identityapp "github.com/arvebo/backend/internal/application/identity"
	taskapp "github.com/arvebo/backend/internal/application/task"
	"github.com/arvebo/backend/internal/domain/identity"
	"github.com/arvebo/backend/internal/infrastructure/auth"
	"github.com/arvebo/backend/internal/infrastructure/config"
	"github.com/arvebo/backend/internal/infrastructure/logger"
	"github.com/arvebo/backend/internal/infrastructure/persistence"
	"github.com/arvebo/backend/internal/infrastructure/storage"
	"github.com/arvebo/backend/internal/interfaces/http/handler"
	"github.com/arvebo/backend/internal/interfaces/http/middleware"
	"github.com/arvebo/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Arvebo backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Redis backs the token blacklist
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	var blacklist auth.TokenBlacklist
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Warn("Redis unavailable, falling back to in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		blacklist = auth.NewRedisTokenBlacklist(redisClient)
		log.Info("Redis connected successfully")
	}

	// Object storage for estate documents
	objectStorage, err := storage.NewS3ObjectStorage(&cfg.Storage)
	if err != nil {
		log.Fatal("Failed to initialize object storage", zap.Error(err))
	}
	if err := objectStorage.EnsureBucket(context.Background()); err != nil {
		log.Fatal("Failed to ensure storage bucket", zap.Error(err),
			zap.String("bucket", objectStorage.GetBucket()))
	}
	log.Info("Object storage ready", zap.String("bucket", objectStorage.GetBucket()))

	// Initialize repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	profileRepo := persistence.NewGormProfileRepository(db.DB)
	estateRepo := persistence.NewGormEstateRepository(db.DB)
	memberRepo := persistence.NewGormMemberRepository(db.DB)
	invitationRepo := persistence.NewGormInvitationRepository(db.DB)
	projectRepo := persistence.NewGormProjectRepository(db.DB)
	transactionRepo := persistence.NewGormTransactionRepository(db.DB)
	assetRepo := persistence.NewGormAssetRepository(db.DB)
	liabilityRepo := persistence.NewGormLiabilityRepository(db.DB)
	documentRepo := persistence.NewGormDocumentRepository(db.DB)
	tagRepo := persistence.NewGormTagRepository(db.DB)
	taskRepo := persistence.NewGormTaskRepository(db.DB)
	messageRepo := persistence.NewGormMessageRepository(db.DB)
	activityLogRepo := persistence.NewGormActivityLogRepository(db.DB)
	notificationRepo := persistence.NewGormNotificationRepository(db.DB)
	blogPostRepo := persistence.NewGormBlogPostRepository(db.DB)

	// Initialize application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, profileRepo, jwtService, blacklist, identityapp.DefaultAuthServiceConfig(), log)
	profileService := identityapp.NewProfileService(profileRepo, log)
	estateService := estateapp.NewEstateService(estateRepo, memberRepo, log)
	membershipService := estateapp.NewMembershipService(memberRepo, log)
	invitationService := estateapp.NewInvitationService(invitationRepo, memberRepo, estateRepo, userRepo, notificationRepo, log)
	projectService := estateapp.NewProjectService(projectRepo, log)
	transactionService := financeapp.NewTransactionService(transactionRepo, notificationRepo, log)
	assetService := financeapp.NewAssetService(assetRepo, liabilityRepo, log)
	liabilityService := financeapp.NewLiabilityService(liabilityRepo, log)
	documentService := documentapp.NewDocumentService(documentRepo, tagRepo, objectStorage, log)
	taskService := taskapp.NewTaskService(taskRepo, notificationRepo, log)
	messageService := engagementapp.NewMessageService(messageRepo, log)
	activityService := engagementapp.NewActivityService(activityLogRepo, log)
	notificationService := engagementapp.NewNotificationService(notificationRepo, log)
	blogService := engagementapp.NewBlogService(blogPostRepo, log)

	// Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	estateHandler := handler.NewEstateHandler(estateService, membershipService, activityService)
	invitationHandler := handler.NewInvitationHandler(invitationService)
	projectHandler := handler.NewProjectHandler(projectService)
	transactionHandler := handler.NewTransactionHandler(transactionService, activityService)
	assetHandler := handler.NewAssetHandler(assetService)
	liabilityHandler := handler.NewLiabilityHandler(liabilityService)
	documentHandler := handler.NewDocumentHandler(documentService, activityService)
	taskHandler := handler.NewTaskHandler(taskService, activityService)
	messageHandler := handler.NewMessageHandler(messageService)
	activityHandler := handler.NewActivityHandler(activityService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	blogHandler := handler.NewBlogHandler(blogService)

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack, outermost first
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	jwtConfig := middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		SkipPaths: []string{
			"/api/v1/auth/register",
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
			"/api/v1/invitations/decline",
		},
		SkipPathPrefixes: []string{
			"/api/v1/blog/public",
		},
		Logger: log,
	}
	engine.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// After JWT so authenticated callers are keyed by user ID, not IP
	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Setup API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Auth and account routes
	authRoutes := router.NewDomainGroup("auth", "/auth")
	authRoutes.POST("/register", authHandler.Register)
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/refresh", authHandler.Refresh)
	authRoutes.POST("/logout", authHandler.Logout)
	authRoutes.PUT("/password", authHandler.ChangePassword)
	authRoutes.GET("/me", authHandler.Me)

	// Stricter rate limiting for credential endpoints
	if cfg.HTTP.AuthRateLimitEnabled {
		authLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		authRoutes.Use(middleware.AuthRateLimit(authLimiter))
		log.Info("Auth rate limiting enabled",
			zap.Int("requests", cfg.HTTP.AuthRateLimitRequests),
			zap.Duration("window", cfg.HTTP.AuthRateLimitWindow),
		)
	}

	// Profile routes
	profileRoutes := router.NewDomainGroup("profile", "/profile")
	profileRoutes.GET("", profileHandler.Get)
	profileRoutes.PUT("", profileHandler.Update)

	// Estate collection routes (not scoped to a single estate)
	estateRoutes := router.NewDomainGroup("estates", "/estates")
	estateRoutes.POST("", estateHandler.Create)
	estateRoutes.GET("", estateHandler.List)

	// Estate-scoped routes behind the membership guard
	scoped := estateRoutes.Group("estate", "/:estate_id")
	scoped.Use(middleware.EstateGuardWithConfig(middleware.EstateGuardConfig{
		Members: memberRepo,
		Logger:  log,
	}))
	scoped.GET("", estateHandler.Get)
	scoped.PUT("", estateHandler.Update)
	scoped.DELETE("", estateHandler.Delete)
	scoped.POST("/settle", estateHandler.MarkSettled)
	scoped.POST("/archive", estateHandler.Archive)
	scoped.POST("/reopen", estateHandler.Reopen)

	// Members
	scoped.GET("/members", estateHandler.ListMembers)
	scoped.PUT("/members/:id/role", estateHandler.ChangeMemberRole)
	scoped.DELETE("/members/:id", estateHandler.RemoveMember)

	// Invitations
	scoped.POST("/invitations", middleware.RequireRoleManagement(), invitationHandler.Invite)
	scoped.GET("/invitations", invitationHandler.List)
	scoped.DELETE("/invitations/:id", middleware.RequireRoleManagement(), invitationHandler.Revoke)

	// Projects
	scoped.POST("/projects", projectHandler.Create)
	scoped.GET("/projects", projectHandler.List)
	scoped.GET("/projects/:id", projectHandler.Get)
	scoped.PUT("/projects/:id", projectHandler.Update)
	scoped.POST("/projects/:id/complete", projectHandler.Complete)
	scoped.POST("/projects/:id/reopen", projectHandler.Reopen)
	scoped.DELETE("/projects/:id", projectHandler.Delete)

	// Transactions
	scoped.POST("/transactions", transactionHandler.Create)
	scoped.GET("/transactions", transactionHandler.List)
	scoped.GET("/transactions/summary", transactionHandler.Summary)
	scoped.GET("/transactions/:id", transactionHandler.Get)
	scoped.PUT("/transactions/:id", transactionHandler.Update)
	scoped.POST("/transactions/:id/approve", transactionHandler.Approve)
	scoped.POST("/transactions/:id/reject", transactionHandler.Reject)
	scoped.DELETE("/transactions/:id", transactionHandler.Delete)

	// Assets and liabilities
	scoped.POST("/assets", assetHandler.Create)
	scoped.GET("/assets", assetHandler.List)
	scoped.GET("/assets/net-worth", assetHandler.NetWorth)
	scoped.GET("/assets/:id", assetHandler.Get)
	scoped.PUT("/assets/:id", assetHandler.Update)
	scoped.DELETE("/assets/:id", assetHandler.Delete)
	scoped.POST("/liabilities", liabilityHandler.Create)
	scoped.GET("/liabilities", liabilityHandler.List)
	scoped.GET("/liabilities/:id", liabilityHandler.Get)
	scoped.PUT("/liabilities/:id", liabilityHandler.Update)
	scoped.DELETE("/liabilities/:id", liabilityHandler.Delete)

	// Documents
	scoped.POST("/documents", documentHandler.InitiateUpload)
	scoped.GET("/documents", documentHandler.List)
	scoped.GET("/documents/tags", documentHandler.ListTags)
	scoped.GET("/documents/:id", documentHandler.Get)
	scoped.POST("/documents/:id/confirm", documentHandler.ConfirmUpload)
	scoped.GET("/documents/:id/download", documentHandler.Download)
	scoped.PUT("/documents/:id/title", documentHandler.Rename)
	scoped.POST("/documents/:id/tags", documentHandler.AttachTag)
	scoped.DELETE("/documents/:id/tags/:tag_id", documentHandler.DetachTag)
	scoped.DELETE("/documents/:id", documentHandler.Delete)

	// Tasks
	scoped.POST("/tasks", taskHandler.Create)
	scoped.GET("/tasks", taskHandler.List)
	scoped.GET("/tasks/mine", taskHandler.ListMine)
	scoped.GET("/tasks/:id", taskHandler.Get)
	scoped.PUT("/tasks/:id", taskHandler.Update)
	scoped.PUT("/tasks/:id/status", taskHandler.ChangeStatus)
	scoped.PUT("/tasks/:id/assignee", taskHandler.Assign)
	scoped.DELETE("/tasks/:id", taskHandler.Delete)

	// Message board and activity feed
	scoped.POST("/messages", messageHandler.Post)
	scoped.GET("/messages", messageHandler.List)
	scoped.PUT("/messages/:id", messageHandler.Edit)
	scoped.DELETE("/messages/:id", messageHandler.Delete)
	scoped.GET("/activity", activityHandler.List)

	// Invitation acceptance happens outside the estate scope since the
	// caller is not yet a member
	invitationRoutes := router.NewDomainGroup("invitations", "/invitations")
	invitationRoutes.POST("/accept", invitationHandler.Accept)
	invitationRoutes.POST("/decline", invitationHandler.Decline)

	// Notifications
	notificationRoutes := router.NewDomainGroup("notifications", "/notifications")
	notificationRoutes.GET("", notificationHandler.List)
	notificationRoutes.GET("/unread-count", notificationHandler.CountUnread)
	notificationRoutes.PUT("/:id/read", notificationHandler.MarkRead)
	notificationRoutes.PUT("/read-all", notificationHandler.MarkAllRead)

	// Blog: admin management plus a public published surface
	adminOnly := middleware.RequireRole(string(identity.RoleAdministrator))
	blogRoutes := router.NewDomainGroup("blog", "/blog")
	blogRoutes.POST("/posts", adminOnly, blogHandler.Create)
	blogRoutes.GET("/posts", adminOnly, blogHandler.List)
	blogRoutes.GET("/posts/:id", adminOnly, blogHandler.Get)
	blogRoutes.PUT("/posts/:id", adminOnly, blogHandler.Update)
	blogRoutes.POST("/posts/:id/publish", adminOnly, blogHandler.Publish)
	blogRoutes.POST("/posts/:id/unpublish", adminOnly, blogHandler.Unpublish)
	blogRoutes.DELETE("/posts/:id", adminOnly, blogHandler.Delete)
	blogRoutes.GET("/public/posts", blogHandler.ListPublished)
	blogRoutes.GET("/public/posts/:slug", blogHandler.GetPublishedBySlug)

	r.Register(authRoutes).
		Register(profileRoutes).
		Register(estateRoutes).
		Register(invitationRoutes).
		Register(notificationRoutes).
		Register(blogRoutes)

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

	if err := redisClient.Close(); err != nil {
		log.Error("Error closing redis client", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database) gin.HandlerFunc {
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
