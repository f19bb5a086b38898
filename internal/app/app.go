package app

import (
	"fmt"

	"github.com/fitposture/fitposture/internal/config"
	"github.com/fitposture/fitposture/internal/db"
	"github.com/fitposture/fitposture/internal/repository"
	"github.com/fitposture/fitposture/internal/service"
	"github.com/fitposture/fitposture/internal/service/payment"
	"github.com/fitposture/fitposture/internal/session"
	"github.com/fitposture/fitposture/internal/storage"
	"github.com/jmoiron/sqlx"
)

type App struct {
	Cfg                 *config.Config
	DB                  *sqlx.DB
	SessionHub          *session.Hub
	AuthService         *service.AuthService
	UserService         *service.UserService
	ProfileService      *service.ProfileService
	AssessmentService   *service.AssessmentService
	ExerciseLogService  *service.ExerciseLogService
	PhotoService        *service.PhotoService
	EmailService        *service.EmailService
	SubscriptionService *service.SubscriptionService
	PaymentService      payment.Provider
	ContentService      *service.ContentService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	profileRepository := repository.NewProfileRepository(database)
	tokenRepository := repository.NewTokenRepository(database)
	assessmentRepository := repository.NewAssessmentRepository(database)
	exerciseLogRepository := repository.NewExerciseLogRepository(database)
	photoRepository := repository.NewPhotoRepository(database)
	subscriptionRepository := repository.NewSubscriptionRepository(database)

	// Storage
	photoStorage, err := storage.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %v", err)
	}

	// Services
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.AppURL,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	subscriptionService := service.NewSubscriptionService(subscriptionRepository)

	// Initialize payment provider based on config
	paymentProvider, err := payment.NewProvider(cfg, subscriptionService)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize payment provider: %v", err)
	}

	authService := service.NewAuthService(
		userRepository,
		profileRepository,
		tokenRepository,
		subscriptionService,
		emailService,
		cfg.JWTSecret,
		cfg.IsProduction(),
		cfg.JWTExpiry,
		cfg.TokenEmailConfirmExpiry,
		cfg.TokenPasswordResetExpiry,
	)
	photoService := service.NewPhotoService(photoRepository, photoStorage)
	userService := service.NewUserService(userRepository, profileRepository, photoService, emailService, subscriptionService)
	profileService := service.NewProfileService(profileRepository)
	assessmentService := service.NewAssessmentService(assessmentRepository)
	exerciseLogService := service.NewExerciseLogService(exerciseLogRepository)
	contentService := service.NewContentService(cfg.ContentPath)

	return &App{
		Cfg:                 cfg,
		DB:                  database,
		SessionHub:          session.NewHub(),
		AuthService:         authService,
		UserService:         userService,
		ProfileService:      profileService,
		AssessmentService:   assessmentService,
		ExerciseLogService:  exerciseLogService,
		PhotoService:        photoService,
		EmailService:        emailService,
		SubscriptionService: subscriptionService,
		PaymentService:      paymentProvider,
		ContentService:      contentService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
