package app

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/whvsdan/theboardroom/internal/config"
	"github.com/whvsdan/theboardroom/internal/email"
	"github.com/whvsdan/theboardroom/internal/handlers"
	"github.com/whvsdan/theboardroom/internal/logger"
	"github.com/whvsdan/theboardroom/internal/middleware"
	"github.com/whvsdan/theboardroom/internal/models"
	"github.com/whvsdan/theboardroom/internal/repositories"
	"github.com/whvsdan/theboardroom/internal/routes"
	"github.com/whvsdan/theboardroom/internal/services"
	"github.com/whvsdan/theboardroom/internal/storage"
	"github.com/whvsdan/theboardroom/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	if err := repositories.NewRefreshTokenRepository().DeleteExpired(gormDB); err != nil {
		logger.Warn("Failed to purge expired refresh tokens", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// AutoMigrate creates or updates every table the application uses.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Registration{},
		&models.MentorshipApplication{},
		&models.AwardNomination{},
		&models.Speaker{},
		&models.ProgramSession{},
		&models.BlogPost{},
		&models.ContactMessage{},
		&models.Testimonial{},
		&models.GalleryImage{},
		&models.AdminUser{},
		&models.RefreshToken{},
	)
}

// SetupRouter wires storage, services, handlers and middleware into a
// ready-to-serve gin engine. Tests call it directly with their own DB.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:       cfg.Storage.Type,
		BasePath:   cfg.Storage.BasePath,
		BaseURL:    cfg.Storage.BaseURL,
		Bucket:     cfg.Storage.Bucket,
		Region:     cfg.Storage.Region,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Endpoint:   cfg.Storage.Endpoint,
		PublicRead: cfg.Storage.PublicRead,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	serviceContainer := initializeServices(cfg, storageInstance)
	appHandlers := initializeHandlers(serviceContainer, storageInstance)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, storageInstance storage.Storage) *services.ServiceContainer {
	var mailer email.Sender = email.NoopSender{}
	if cfg.Email.Enabled {
		mailer = email.NewSMTPSender(email.Config{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
		logger.Info("SMTP mailer enabled", "host", cfg.Email.SMTPHost)
	} else {
		logger.Warn("Email delivery disabled, ticket confirmations will not be sent")
	}

	registrationRepo := repositories.NewRegistrationRepository()
	mentorshipRepo := repositories.NewMentorshipRepository()
	awardRepo := repositories.NewAwardRepository()
	speakerRepo := repositories.NewSpeakerRepository()
	programRepo := repositories.NewProgramRepository()
	blogRepo := repositories.NewBlogRepository()
	contactRepo := repositories.NewContactRepository()
	testimonialRepo := repositories.NewTestimonialRepository()
	galleryRepo := repositories.NewGalleryRepository()
	adminUserRepo := repositories.NewAdminUserRepository()
	refreshTokenRepo := repositories.NewRefreshTokenRepository()

	return &services.ServiceContainer{
		AuthService:         services.NewAuthService(adminUserRepo, refreshTokenRepo),
		RegistrationService: services.NewRegistrationService(registrationRepo, mailer),
		MentorshipService:   services.NewMentorshipService(mentorshipRepo),
		AwardService:        services.NewAwardService(awardRepo),
		SpeakerService:      services.NewSpeakerService(speakerRepo),
		ProgramService:      services.NewProgramService(programRepo),
		BlogService:         services.NewBlogService(blogRepo),
		ContactService:      services.NewContactService(contactRepo),
		ShowcaseService:     services.NewShowcaseService(testimonialRepo, galleryRepo),
		DashboardService:    services.NewDashboardService(registrationRepo, mentorshipRepo, awardRepo, speakerRepo),
		MediaService:        services.NewMediaService(storageInstance),
	}
}

func initializeHandlers(container *services.ServiceContainer, storageInstance storage.Storage) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, container.AuthService),
		RegistrationHandler: handlers.NewRegistrationHandler(baseHandler, container.RegistrationService),
		MentorshipHandler:   handlers.NewMentorshipHandler(baseHandler, container.MentorshipService),
		AwardHandler:        handlers.NewAwardHandler(baseHandler, container.AwardService),
		SpeakerHandler:      handlers.NewSpeakerHandler(baseHandler, container.SpeakerService),
		ProgramHandler:      handlers.NewProgramHandler(baseHandler, container.ProgramService),
		BlogHandler:         handlers.NewBlogHandler(baseHandler, container.BlogService, container.MediaService),
		ContactHandler:      handlers.NewContactHandler(baseHandler, container.ContactService),
		ShowcaseHandler:     handlers.NewShowcaseHandler(baseHandler, container.ShowcaseService),
		DashboardHandler:    handlers.NewDashboardHandler(baseHandler, container.DashboardService),
		FileHandler:         handlers.NewFileHandler(baseHandler, storageInstance),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

// seedFirstAdmin creates the initial back-office account when none exists
// for the configured email. Skipped when the credentials are unset.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("first_admin_email or first_admin_password is not set. Skipping admin seeding.")
		return nil
	}

	var adminUser models.AdminUser
	result := db.Where("email = ?", adminEmail).First(&adminUser)

	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.AdminUser{
		Email:        adminEmail,
		PasswordHash: string(hashedPassword),
		Role:         models.AdminRoleAdmin,
	}
	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("Created first admin user", "email", adminEmail)
	return nil
}
