package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/AtrioImoveis/realty-scheduler/internal/config"
	dbpkg "github.com/AtrioImoveis/realty-scheduler/internal/db"
	"github.com/AtrioImoveis/realty-scheduler/internal/logging"
	"github.com/AtrioImoveis/realty-scheduler/internal/notify"
	"github.com/AtrioImoveis/realty-scheduler/internal/reminder"
	"github.com/AtrioImoveis/realty-scheduler/internal/routes"
	"github.com/AtrioImoveis/realty-scheduler/internal/storage"
)

func main() {

	cfg := config.Load()
	log := logging.New(cfg.LogLevel)

	db := dbpkg.NewDB(cfg)

	// redis só é usado no rate limit público; sem REDIS_ADDR o
	// middleware vira no-op
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}

	var sender notify.Sender = notify.NoopSender{}
	if cfg.SMTPHost != "" {
		sender = notify.NewEmailSender(cfg)
	}
	notifyDispatcher := notify.NewDispatcher(sender, log)

	uploader := storage.NewUploader(cfg)

	reminderJob := reminder.NewJob(db, notifyDispatcher, log)
	cronRunner := reminderJob.Start()
	defer cronRunner.Stop()

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, notifyDispatcher, rdb, uploader)

	log.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Error("server failed", "error", err)
	}
}
