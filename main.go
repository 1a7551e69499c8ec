package main

import (
	"fmt"
	"log"

	"bookvault/internal/config"
	"bookvault/internal/database"
	"bookvault/internal/router"
	"bookvault/internal/storage"
)

func main() {
	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// init database
	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	// run migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	// cover image storage (optional)
	var uploader storage.Uploader
	if cfg.Storage.Enabled {
		uploader, err = storage.NewS3Uploader(cfg.Storage)
		if err != nil {
			log.Fatalf("init object storage: %v", err)
		}
	}

	// setup router
	r := router.SetupRouter(cfg, db, uploader)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Printf("server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}
