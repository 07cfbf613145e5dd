package main

import (
	"flag"
	"log"

	"github.com/pageza/fitsync-pro/backend/config"
	"github.com/pageza/fitsync-pro/backend/internal/database"
)

func main() {
	// Parse command line flags
	rollback := flag.Bool("rollback", false, "Drop all tables instead of migrating")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	if *rollback {
		if err := database.DropAll(db); err != nil {
			log.Fatalf("rollback failed: %v", err)
		}
		log.Println("Rollback complete")
		return
	}

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	log.Println("Migrations complete")
}
