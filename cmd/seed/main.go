package main

import (
	"log"

	"github.com/valoreapp/valore-backend/internal/config"
	"github.com/valoreapp/valore-backend/internal/db"
)

func main() {
	cfg := config.New()

	database, err := db.NewDB(cfg)
	if err != nil {
		log.Fatalf("failed to init db: %v", err)
	}

	if err := db.SeedDemoData(database); err != nil {
		log.Fatalf("failed to seed: %v", err)
	}

	log.Println("Seeding completed.")
}
