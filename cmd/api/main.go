package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ricascor080/Back-Barber/internal/config"
	dbpkg "github.com/ricascor080/Back-Barber/internal/db"
	"github.com/ricascor080/Back-Barber/internal/logger"
	"github.com/ricascor080/Back-Barber/internal/routes"
)

func main() {

	cfg := config.Load()

	log, sync := logger.New(cfg.LogLevel, cfg.LogJSON, cfg.LogFile)
	defer sync()

	db := dbpkg.NewDB(cfg, log)

	r := gin.New()
	r.Use(logger.Middleware(log))
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, log)

	log.Info("server listening", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
