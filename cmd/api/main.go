package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/infoemi/campus-api/internal/config"
	"github.com/infoemi/campus-api/internal/database"
	"github.com/infoemi/campus-api/internal/handler"
	"github.com/infoemi/campus-api/internal/middleware"
	"github.com/infoemi/campus-api/internal/models"
	"github.com/infoemi/campus-api/internal/repository"
	"github.com/infoemi/campus-api/internal/router"
	"github.com/infoemi/campus-api/internal/service"
	"github.com/infoemi/campus-api/pkg/ai"
	cloud "github.com/infoemi/campus-api/pkg/cloudinary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Admin{},
		&models.AuditLog{},
		&models.Career{},
		&models.Event{},
		&models.FAQ{},
		&models.Contact{},
		&models.Scholarship{},
		&models.CalendarEntry{},
		&models.PreUniversityProgram{},
		&models.Inscription{},
		&models.SystemConfig{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
	}

	var natsConn *nats.Conn
	if cfg.NATSURL != "" {
		natsConn, err = nats.Connect(cfg.NATSURL)
		if err != nil {
			log.Fatalf("failed to connect to nats: %v", err)
		}
		defer natsConn.Close()
	}

	var uploader service.FileUploader
	if cfg.CloudinaryName != "" {
		cloudService, err := cloud.New(cloud.Config{
			CloudName: cfg.CloudinaryName,
			APIKey:    cfg.CloudinaryKey,
			APISecret: cfg.CloudinarySecret,
			Folder:    cfg.CloudinaryFolder,
		}, logger)
		if err != nil {
			log.Fatalf("failed to create cloudinary client: %v", err)
		}
		uploader = cloudService
	}

	var completer ai.Completer
	if cfg.AIAPIKey != "" {
		client, err := ai.NewOpenAIClient(ai.OpenAIConfig{
			APIKey:    cfg.AIAPIKey,
			BaseURL:   cfg.AIBaseURL,
			Model:     cfg.AIModel,
			MaxTokens: cfg.AIMaxTokens,
			Logger:    logger,
		})
		if err != nil {
			log.Fatalf("failed to create ai client: %v", err)
		}
		completer = client
	} else {
		logger.Warn().Msg("no ai api key configured; assistant will serve fallback answers")
	}

	adminRepo := repository.NewAdminRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)
	statsRepo := repository.NewStatsRepository(db)
	careerRepo := repository.NewCareerRepository(db)
	eventRepo := repository.NewEventRepository(db)
	faqRepo := repository.NewFAQRepository(db)
	contactRepo := repository.NewContactRepository(db)
	scholarshipRepo := repository.NewScholarshipRepository(db)
	calendarRepo := repository.NewCalendarRepository(db)
	preuniversityRepo := repository.NewPreUniversityRepository(db)
	inscriptionRepo := repository.NewInscriptionRepository(db)
	configRepo := repository.NewSystemConfigRepository(db)

	if err := ensureDefaultAdmin(db, cfg, logger); err != nil {
		log.Fatalf("failed to seed default admin: %v", err)
	}

	auditService := service.NewAuditService(auditLogRepo, statsRepo, eventRepo, natsConn, cfg.AuditSubject, logger)
	authService := service.NewAuthService(adminRepo, auditService, cfg.TokenSecret, cfg.TokenTTL, logger)
	knowledgeService := service.NewKnowledgeService(careerRepo, faqRepo, configRepo, scholarshipRepo, preuniversityRepo, cfg.KnowledgeMaxBytes, logger)
	assistantService := service.NewAssistantService(completer, knowledgeService, careerRepo, cfg.StaticImageBase, cfg.AITimeout, logger)

	careerService := service.NewCareerService(careerRepo, uploader, auditService, knowledgeService, logger)
	eventService := service.NewEventService(eventRepo, auditService, logger)
	faqService := service.NewFAQService(faqRepo, auditService, knowledgeService, logger)
	contactService := service.NewContactService(contactRepo, auditService, logger)
	scholarshipService := service.NewScholarshipService(scholarshipRepo, auditService, knowledgeService, logger)
	calendarService := service.NewCalendarService(calendarRepo, auditService, logger)
	preuniversityService := service.NewPreUniversityService(preuniversityRepo, auditService, knowledgeService, logger)
	inscriptionService := service.NewInscriptionService(inscriptionRepo, auditService, logger)
	configService := service.NewSystemConfigService(configRepo, auditService, knowledgeService, logger)
	botService := service.NewBotService(service.BotServiceDeps{
		Careers:       careerRepo,
		Events:        eventRepo,
		PreUniversity: preuniversityRepo,
		Scholarships:  scholarshipRepo,
		FAQs:          faqRepo,
		Contacts:      contactRepo,
		Calendar:      calendarRepo,
		Inscriptions:  inscriptionRepo,
	}, redisClient, cfg.BotCacheTTL, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
		BodyLimit:    cfg.UploadMaxMB * 1024 * 1024,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		DB:                   db,
		AuthService:          authService,
		AuthHandler:          handler.NewAuthHandler(authService, logger),
		CareerHandler:        handler.NewCareerHandler(careerService, logger),
		EventHandler:         handler.NewEventHandler(eventService, logger),
		FAQHandler:           handler.NewFAQHandler(faqService, logger),
		ContactHandler:       handler.NewContactHandler(contactService, logger),
		ScholarshipHandler:   handler.NewScholarshipHandler(scholarshipService, logger),
		CalendarHandler:      handler.NewCalendarHandler(calendarService, logger),
		PreUniversityHandler: handler.NewPreUniversityHandler(preuniversityService, logger),
		InscriptionHandler:   handler.NewInscriptionHandler(inscriptionService, logger),
		SystemConfigHandler:  handler.NewSystemConfigHandler(configService, logger),
		AuditHandler:         handler.NewAuditHandler(auditService, logger),
		ChatHandler:          handler.NewChatHandler(assistantService, logger),
		BotHandler:           handler.NewBotHandler(botService, logger),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

// ensureDefaultAdmin creates the bootstrap administrator account when none
// exists yet. Skipped when no bootstrap password is configured.
func ensureDefaultAdmin(db *gorm.DB, cfg config.Config, logger zerolog.Logger) error {
	if cfg.AdminPassword == "" {
		return nil
	}

	var existing models.Admin
	err := db.Where("username = ?", cfg.AdminUsername).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	admin := models.Admin{
		Username:     cfg.AdminUsername,
		PasswordHash: service.HashPassword(cfg.AdminPassword),
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	logger.Info().Str("username", admin.Username).Msg("seeded default admin account")
	return nil
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
