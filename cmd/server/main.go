package main

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"fleetops_driver_service/internal/config"
	"fleetops_driver_service/internal/controllers"
	"fleetops_driver_service/internal/logger"
	"fleetops_driver_service/internal/models"
	"fleetops_driver_service/internal/repository"
	"fleetops_driver_service/internal/routes"
	"fleetops_driver_service/internal/seed"
	"fleetops_driver_service/internal/services"
	"fleetops_driver_service/internal/validation"
)

func main() {
	cfg := config.Load()

	// Structured logging to stdout and a rotating file
	logOut := logger.Setup(logger.Options{
		File:       cfg.LogFile,
		Level:      cfg.LogLevel,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
		JSON:       cfg.Env != "development",
	})
	log := logrus.StandardLogger()
	log.WithFields(logrus.Fields{"app": cfg.AppName, "env": cfg.Env}).Info("logger initialized")

	db, err := config.OpenDB(cfg, logger.Gorm(log))
	if err != nil {
		log.WithError(err).Fatal("database setup failed")
	}

	drivers := repository.NewDriverRepository(db)

	if cfg.SeedEnabled {
		files := seed.Bundled()
		if cfg.SeedDir != "" {
			files = os.DirFS(cfg.SeedDir)
		}
		runSeeder(db, drivers, files, log)
	}

	var accessLog io.Writer
	if cfg.HTTPLogEnabled {
		accessLog = logOut
	}

	gin.SetMode(cfg.GinMode)
	r := routes.SetupRouter(routes.Deps{
		Drivers:     controllers.NewDriverController(services.NewDriverService(drivers, log), log),
		Health:      controllers.NewHealthController(drivers, log),
		CORSOrigins: cfg.CORSOrigins(),
		AccessLog:   accessLog,
	})

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Infof("🚀 Server running at :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("listen failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("server forced to shutdown")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info("server exited properly")
}

// runSeeder fills empty tables before the server starts accepting requests.
// Seeding problems are logged by the seeder and never stop startup.
func runSeeder(db *gorm.DB, drivers *repository.DriverRepository, files fs.FS, log *logrus.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	seeder := seed.NewSeeder(files, log, seed.Collections(
		drivers,
		repository.NewTable[models.Form](db),
		repository.NewTable[models.Schedule](db),
		validation.New(),
	)...)
	seeder.Run(ctx)
}
