package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/alexanderthenotsobad-git/nvrs-rest-api/configs"
	_ "github.com/alexanderthenotsobad-git/nvrs-rest-api/docs"
	"github.com/alexanderthenotsobad-git/nvrs-rest-api/middlewares"
	"github.com/alexanderthenotsobad-git/nvrs-rest-api/routes"
)

// @title Restaurant Menu API
// @version 1.0
// @description CRUD API for restaurant menu items, menu item images and payments
// @BasePath /
func main() {
	cfg := configs.LoadConfig()

	// DB
	if err := configs.ConnectionDB(cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	db := configs.DB()

	// migrate + seed
	configs.SetupDatabase()
	if err := configs.SeedMenuItems(); err != nil {
		log.Fatal().Err(err).Msg("seed menu items failed")
	}

	// HTTP
	r := gin.New()
	r.Use(middlewares.LoggingMiddleware())
	r.Use(gin.Recovery())
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info().Str("addr", addr).Msg("🚀 server running")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
