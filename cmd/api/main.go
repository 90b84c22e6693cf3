package main

import (
	"clinic-backend/internal/config"
	"clinic-backend/internal/database"
	"clinic-backend/internal/routes"
	"clinic-backend/internal/session"
	"clinic-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg(".env file not found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	logger.Init(cfg.LogLevel)

	if cfg.UsingDefaultSecret() {
		log.Warn().Msg("SECRET_KEY not set, sessions are signed with the insecure development default")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := database.SeedAdmin(db); err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin account")
	}

	sessions := session.NewManager(cfg.SecretKey)

	r := gin.Default()
	r.LoadHTMLGlob("templates/*.html")
	routes.Setup(r, db, sessions)

	log.Info().Str("port", cfg.Port).Msg("clinic server listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
