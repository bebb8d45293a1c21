package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Dipanshu0612/Time-Tracker-API/config"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/auth/credentials"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/bootstrap"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/logging"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/summary/export"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	bootstrap.SetGinMode(cfg.App.Environment)
	logging.SetLevel(logging.ParseLevel(cfg.App.LogLevel))

	ctx := context.Background()

	db, err := bootstrap.OpenDB(ctx, &cfg.Database, bootstrap.DBOptions{})
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer db.Close()

	rdb, err := bootstrap.OpenRedis(ctx, &cfg.Redis)
	if err != nil {
		log.Printf("Warning: %v, using in-process login limiter", err)
	}
	if rdb != nil {
		defer rdb.Close()
	}

	router, svc := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    cfg.App.Name,
		Version:        cfg.App.Version,
		CORSOrigins:    cfg.Server.CORSOrigins,
		RequestTimeout: cfg.Server.RequestTimeout,
		DB:             db.SQL,
		Credentials:    credentials.New(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		LoginLimiter:   bootstrap.LoginLimiter(rdb, &cfg.Auth),
	})

	var scheduler *export.Scheduler
	if cfg.Summary.ExportDir != "" {
		scheduler, err = export.NewScheduler(export.NewExporter(svc.Summaries, cfg.Summary.ExportDir), cfg.Summary.ExportCron, 0)
		if err != nil {
			log.Fatalf("scheduler: %v", err)
		}
		scheduler.Start()
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Printf("%s listening on :%s", cfg.App.Name, cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Error starting server: %v", err)
		}
	case <-shutdown:
		log.Println("Starting graceful shutdown...")
	}

	sctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(sctx); err != nil {
		log.Printf("Could not gracefully shutdown the server: %v", err)
		_ = srv.Close()
	}
	if scheduler != nil {
		scheduler.Stop(sctx)
	}
	log.Println("Server gracefully stopped")
}
