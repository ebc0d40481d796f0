package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"totl_backend/database"
	"totl_backend/internal/auth"
	"totl_backend/internal/config"
	"totl_backend/internal/email"
	"totl_backend/internal/handlers"
	"totl_backend/internal/logger"
	"totl_backend/internal/middleware"
	"totl_backend/internal/models"
	"totl_backend/internal/repositories"
	"totl_backend/internal/routes"
	"totl_backend/internal/services"
)

// Run boots the HTTP server: config, logging, database, migration, seed,
// wiring, listen.
func Run() error {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)

	db, err := OpenDatabase(cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	if err := SeedFirstAdmin(db, cfg); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	notifier := BuildNotifier(db, cfg)
	router := SetupRouter(db, notifier, cfg.Server.Env)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "addr", addr, "env", cfg.Server.Env)
	return router.Run(addr)
}

// OpenDatabase connects to postgres with the quiet gorm logger; slog is the
// single log surface.
func OpenDatabase(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
}

// BuildNotifier assembles the transactional-mail stack. When SMTP is not
// configured the notifier is nil and every send path degrades to a no-op.
func BuildNotifier(db *gorm.DB, cfg *config.Config) *email.Notifier {
	smtpCfg := email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	}
	if err := smtpCfg.Validate(); err != nil {
		logger.Warn("smtp not configured, email disabled", "reason", err.Error())
		return nil
	}

	provider, err := email.NewSMTPProvider(&smtpCfg)
	if err != nil {
		logger.Warn("smtp provider init failed, email disabled", "error", err.Error())
		return nil
	}

	return email.NewNotifier(provider, repositories.NewEmailLogRepository(db))
}

// SetupRouter builds the gin engine with the full middleware chain and all
// routes. Tests call this directly with their own database and notifier.
func SetupRouter(db *gorm.DB, notifier *email.Notifier, env string) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())

	svc := services.NewServiceContainer(db, notifier)
	routes.Register(router, handlers.NewAppHandlers(svc))

	return router
}

// SeedFirstAdmin creates the bootstrap admin account when credentials are
// configured and no admin exists yet. Runs in a transaction so two booting
// instances cannot both seed.
func SeedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.FirstAdminEmail == "" || cfg.FirstAdminPassword == "" {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("role = ?", models.UserRoleAdmin).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		hash, err := auth.HashPassword(cfg.FirstAdminPassword)
		if err != nil {
			return err
		}

		admin := &models.User{
			Email:        cfg.FirstAdminEmail,
			PasswordHash: hash,
			Role:         models.UserRoleAdmin,
			DisplayName:  "Administrator",
			IsVerified:   true,
		}
		if err := tx.Create(admin).Error; err != nil {
			return err
		}

		logger.Info("seeded first admin", "email", cfg.FirstAdminEmail)
		return nil
	})
}
