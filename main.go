package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"pharmabook/m/internal/api"
	"pharmabook/m/internal/config"
	"pharmabook/m/internal/database"
	"pharmabook/m/internal/migrations"
	"pharmabook/m/internal/seed"
	"pharmabook/m/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	db := database.Connect(cfg.DatabaseDSN)
	defer db.Close()

	// A failed schema setup is surfaced but not fatal; every later
	// operation reports its own storage error.
	if err := migrations.Run(db); err != nil {
		log.Printf("%v", err)
	}
	seed.LoadMedicines(db, "assets/medicines.csv")

	handler := api.New(store.New(db))

	log.Printf("pharmacy records server starting on :%s", cfg.HTTPPort)
	if err := http.ListenAndServe(":"+cfg.HTTPPort, handler.Router()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
