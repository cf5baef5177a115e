package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"vagaspg_backend/database"
	"vagaspg_backend/internal/assistant"
	"vagaspg_backend/internal/auth"
	"vagaspg_backend/internal/config"
	"vagaspg_backend/internal/handlers"
	"vagaspg_backend/internal/imageprocessor"
	"vagaspg_backend/internal/logger"
	"vagaspg_backend/internal/middleware"
	"vagaspg_backend/internal/models"
	"vagaspg_backend/internal/payments"
	"vagaspg_backend/internal/registry"
	"vagaspg_backend/internal/repositories"
	"vagaspg_backend/internal/routes"
	"vagaspg_backend/internal/services"
	"vagaspg_backend/internal/storage"
	"vagaspg_backend/internal/validator"
	"vagaspg_backend/internal/workers"
	"vagaspg_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SystemCompanyName is the pseudo-company that owns admin-posted jobs.
const SystemCompanyName = "Vagas PG"

func Run() {
	cfg := config.GetConfig()
	logger.Init(cfg.Server.Env)
	apperrors.SetDebug(cfg.Server.Env == "development")
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storageInstance := newStorage(cfg)
	container := initializeServices(ctx, cfg, storageInstance)
	ginRouter := SetupRouter(cfg, gormDB, container)

	workers.NewOrphanCleanupWorker(
		gormDB,
		storageInstance,
		repositories.NewOrphanedFileRepository(),
		time.Duration(cfg.Workers.OrphanCleanupInterval)*time.Second,
	).Start(ctx)
	workers.NewTokenCleanupWorker(gormDB, repositories.NewRefreshTokenRepository(), time.Hour).Start(ctx)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:              address,
		Handler:           ginRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "address", address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}
}

func newStorage(cfg *config.Config) storage.Storage {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:        cfg.Storage.Type,
		BasePath:    cfg.Storage.BasePath,
		BaseURL:     cfg.Storage.BaseURL,
		Bucket:      cfg.Storage.Bucket,
		Region:      cfg.Storage.Region,
		AccessKey:   cfg.Storage.AccessKey,
		SecretKey:   cfg.Storage.SecretKey,
		Endpoint:    cfg.Storage.Endpoint,
		UseSSL:      cfg.Storage.UseSSL,
		PublicRead:  cfg.Storage.PublicRead,
		SupabaseURL: cfg.Storage.SupabaseURL,
		SupabaseKey: cfg.Storage.SupabaseKey,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)
	return storageInstance
}

// SetupRouter builds the gin engine over an initialized service container.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB, container *services.ServiceContainer) *gin.Engine {
	appHandlers := initializeHandlers(cfg, container)

	ginRouter := initializeGinRouter(cfg, gormDB, container.AuthService)
	if cfg.Storage.Type == "local" && strings.HasPrefix(cfg.Storage.BaseURL, "/") {
		ginRouter.Static(cfg.Storage.BaseURL, cfg.Storage.BasePath)
	}

	routes.RegisterRoutes(ginRouter, appHandlers)
	return ginRouter
}

func initializeServices(ctx context.Context, cfg *config.Config, storageInstance storage.Storage) *services.ServiceContainer {
	lifecycle := models.NewLifecycle(cfg.Lifecycle.StrictTransitions)
	customValidator := validator.New()

	// --- Repositories ---
	profileRepo := repositories.NewProfileRepository()
	refreshTokenRepo := repositories.NewRefreshTokenRepository()
	companyRepo := repositories.NewCompanyRepository()
	jobRepo := repositories.NewJobRepository()
	applicationRepo := repositories.NewApplicationRepository()
	paymentRepo := repositories.NewPaymentRepository()
	orphanRepo := repositories.NewOrphanedFileRepository()

	// --- External clients ---
	registryClient := registry.NewClient(cfg.Registry.BaseURL, cfg.RegistryTimeout())
	paymentsClient := payments.NewClient(cfg.Payments.BaseURL, cfg.Payments.AccessToken, cfg.Payments.NotificationURL, 15*time.Second)

	var jobAssistant services.JobAssistant
	if cfg.Assistant.APIKey == "" {
		logger.Warn("GEMINI_API_KEY is not set. Assistant endpoints will answer 502.")
	} else {
		model, err := assistant.NewGeminiModel(ctx, cfg.Assistant.APIKey, cfg.Assistant.Model)
		if err != nil {
			logger.Fatal("Failed to initialize assistant model", "error", err)
		}
		jobAssistant = assistant.New(model, assistant.Options{
			DefaultCity:   cfg.Assistant.DefaultCity,
			CityWhitelist: cfg.Assistant.CityWhitelist,
		})
	}

	// --- Services ---
	uploadService := services.NewUploadService(storageInstance, orphanRepo, &services.UploadConfig{
		MaxResumeSize: cfg.Upload.MaxResumeSize,
		ResumeTypes:   cfg.Upload.ResumeTypes,
	})
	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.AccessTokenTTL())

	return &services.ServiceContainer{
		AuthService:        services.NewAuthService(profileRepo, companyRepo, refreshTokenRepo, tokens, cfg.RefreshTokenTTL(), registryClient),
		CompanyService:     services.NewCompanyService(companyRepo, uploadService, lifecycle),
		JobService:         services.NewJobService(jobRepo, companyRepo, uploadService, lifecycle),
		ApplicationService: services.NewApplicationService(applicationRepo, jobRepo, uploadService, customValidator, lifecycle),
		PaymentService: services.NewPaymentService(paymentRepo, jobRepo, paymentsClient, services.PaymentConfig{
			PublishPrice:  cfg.Payments.PublishPrice,
			Currency:      cfg.Payments.Currency,
			WebhookSecret: cfg.Payments.WebhookSecret,
		}, lifecycle),
		AssistantService: services.NewAssistantService(jobAssistant, jobRepo, imageprocessor.NewProcessor(85, imageprocessor.DefaultMaxSide)),
		RegistryService:  services.NewRegistryService(registryClient, companyRepo),
		UploadService:    uploadService,
		Storage:          storageInstance,
	}
}

func initializeHandlers(cfg *config.Config, container *services.ServiceContainer) *handlers.AppHandlers {
	baseHandler := handlers.NewBaseHandler(validator.New())
	limiter := middleware.NewRateLimiter(cfg.Assistant.RatePerMinute)

	return &handlers.AppHandlers{
		HealthHandler:      handlers.NewHealthHandler(baseHandler),
		AuthHandler:        handlers.NewAuthHandler(baseHandler, container.AuthService),
		RegistryHandler:    handlers.NewRegistryHandler(baseHandler, container.RegistryService),
		CompanyHandler:     handlers.NewCompanyHandler(baseHandler, container.CompanyService),
		JobHandler:         handlers.NewJobHandler(baseHandler, container.JobService),
		ApplicationHandler: handlers.NewApplicationHandler(baseHandler, container.ApplicationService),
		PaymentHandler:     handlers.NewPaymentHandler(baseHandler, container.PaymentService),
		AssistantHandler:   handlers.NewAssistantHandler(baseHandler, container.AssistantService, limiter, cfg.Upload.MaxResumeSize),
		AdminHandler:       handlers.NewAdminHandler(baseHandler, container.CompanyService, container.JobService, container.ApplicationService),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB, sessions middleware.SessionParser) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.MaxMultipartMemory = cfg.Upload.MaxResumeSize
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	router.Use(middleware.DBMiddleware(db))
	router.Use(middleware.SessionMiddleware(sessions))
	return router
}

// seedFirstAdmin creates the configured admin profile and the system company in one transaction.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.Admin.Email
	adminPassword := cfg.Admin.Password

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var admin models.Profile
		err := tx.Where("email = ?", adminEmail).First(&admin).Error
		switch {
		case err == nil:
			logger.Info("Admin profile already exists. Skipping creation.", "email", adminEmail)
		case errors.Is(err, gorm.ErrRecordNotFound):
			logger.Warn("No admin profile found. Creating first admin...", "email", adminEmail)

			hash, err := auth.HashPassword(adminPassword)
			if err != nil {
				return fmt.Errorf("failed to hash admin password: %w", err)
			}
			admin = models.Profile{
				Email:        adminEmail,
				PasswordHash: hash,
				Role:         models.ProfileRoleAdmin,
			}
			if err := tx.Create(&admin).Error; err != nil {
				return fmt.Errorf("failed to create admin profile: %w", err)
			}
		default:
			return fmt.Errorf("failed to check for admin profile: %w", err)
		}

		var count int64
		if err := tx.Model(&models.Company{}).Where("is_system = ?", true).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check for system company: %w", err)
		}
		if count > 0 {
			return nil
		}

		system := &models.Company{
			OwnerID:  admin.ID,
			Name:     SystemCompanyName,
			City:     cfg.Assistant.DefaultCity,
			Email:    adminEmail,
			Status:   models.CompanyStatusActive,
			IsSystem: true,
		}
		if err := tx.Create(system).Error; err != nil {
			return fmt.Errorf("failed to create system company: %w", err)
		}
		logger.Info("System company created", "company_id", system.ID)
		return nil
	})
}
