package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gaablh4z/v7-sistema-completo/internal/config"
	dbpkg "github.com/gaablh4z/v7-sistema-completo/internal/db"
	"github.com/gaablh4z/v7-sistema-completo/internal/logger"
	"github.com/gaablh4z/v7-sistema-completo/internal/routes"
)

func main() {

	cfg := config.Load()

	log := logger.New(cfg.Environment)
	defer log.Sync()

	db := dbpkg.NewDB(cfg)
	redisClient := dbpkg.NewRedis(cfg, log)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, redisClient, cfg, log)

	log.Info("server starting",
		zap.String("addr", cfg.Addr()),
		zap.String("env", cfg.Environment),
	)
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
