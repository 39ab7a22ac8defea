package main

import (
	"fmt"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vinaytz/theSkFoodBackend/configs"
	"github.com/vinaytz/theSkFoodBackend/middlewares"
	"github.com/vinaytz/theSkFoodBackend/routes"
)

func main() {
	cfg := configs.LoadConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// DB
	if err := configs.ConnectionDB(cfg.DBSource); err != nil {
		logger.Fatal("connect database failed", zap.Error(err))
	}
	db := configs.DB()

	if err := configs.SetupDatabase(); err != nil {
		logger.Fatal("migrate failed", zap.Error(err))
	}
	if err := configs.SeedAdmin(cfg); err != nil {
		logger.Fatal("seed admin failed", zap.Error(err))
	}
	if err := configs.SeedMenus(); err != nil {
		logger.Fatal("seed menus failed", zap.Error(err))
	}

	// HTTP
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(logger, true))
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))

	// Uploaded menu images
	r.Static("/uploads", cfg.UploadDir)

	routes.RegisterRoutes(r, db, cfg, logger)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.Info("server running", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
