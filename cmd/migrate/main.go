package main

import (
	"context"
	"log"
	"time"

	"github.com/Dipanshu0612/Time-Tracker-API/config"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/storage/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := postgres.NewConnection(ctx, &cfg.Database)
	if err != nil {
		log.Fatalf("error opening database: %v", err)
	}
	defer db.Close()

	log.Println("Applying migrations...")
	if err := postgres.Migrate(ctx, db); err != nil {
		log.Fatalf("error applying migrations: %v", err)
	}
	log.Println("Migrations applied successfully")
}
