package main

import (
	"os"
	"time"

	"business-dashboard-backend/internal/config"
	"business-dashboard-backend/internal/logging"
	"business-dashboard-backend/internal/models"
	"business-dashboard-backend/internal/repository"
	"business-dashboard-backend/internal/routes"
	"business-dashboard-backend/internal/services/auth"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		bootLog := logging.New("info")
		bootLog.Info().Msg("No .env file found, relying on system env")
	}

	cfg, err := config.Load()
	if err != nil {
		bootLog := logging.New("info")
		bootLog.Fatal().Err(err).Msg("invalid configuration")
	}

	logger := logging.New(cfg.LogLevel)

	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Invoice{},
		&models.User{},
		&models.MutationAuditLog{},
	); err != nil {
		logger.Fatal().Err(err).Msg("migration failed")
	}

	if err := seedUser(db); err != nil {
		logger.Fatal().Err(err).Msg("failed to seed login user")
	}

	r := gin.Default()
	// CORS config
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, db, cfg, logger)

	logger.Info().Str("addr", cfg.ListenAddr).Msg("server listening")
	if err := r.Run(cfg.ListenAddr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

// seedUser guarantees a dashboard login exists when SEED_USER_EMAIL and
// SEED_USER_PASSWORD are set.
func seedUser(db *gorm.DB) error {
	email := os.Getenv("SEED_USER_EMAIL")
	password := os.Getenv("SEED_USER_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	return repository.NewUserRepository(db).Upsert(&models.User{
		Email:        email,
		PasswordHash: hash,
	})
}
