package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/skillswap-platform/skillswap/config"
	"github.com/skillswap-platform/skillswap/internal/bootstrap"
	cronjob "github.com/skillswap-platform/skillswap/internal/cron"
	"github.com/skillswap-platform/skillswap/internal/email"
	"github.com/skillswap-platform/skillswap/internal/photos"
	"github.com/skillswap-platform/skillswap/internal/storage/postgres"

	authrepo "github.com/skillswap-platform/skillswap/internal/auth/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	db, err := postgres.Open(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer db.Close()

	if err := postgres.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("schema: %v", err)
	}

	rdb, err := bootstrap.OpenRedis(ctx, cfg.Redis)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer rdb.Close()

	var mailer email.Sender = email.LogSender{}
	if cfg.SMTP.Host != "" {
		mailer = email.NewSMTPSender(cfg.SMTP)
	}

	var photoStore photos.Store
	if cfg.S3.Bucket != "" {
		photoStore, err = photos.NewS3Store(ctx, cfg.S3)
		if err != nil {
			log.Fatalf("s3: %v", err)
		}
	}

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
		Mailer: mailer,
		Photos: photoStore,
	})

	scheduler := cronjob.NewScheduler(authrepo.NewUserRepo(db))
	scheduler.Start()
	defer scheduler.Stop()

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Printf("skillswap api listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
