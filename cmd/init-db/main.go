package main

import (
	"flag"
	"log"

	"go-hardware-pos/internal/config"
	"go-hardware-pos/internal/store"
	"go-hardware-pos/pkg/workbook"

	"github.com/joho/godotenv"
)

// Creates the POS workbook with its four sheets and sample inventory.
// Refuses to overwrite an existing file unless --force is given, so
// re-running it never destroys shop data by accident.
func main() {
	force := flag.Bool("force", false, "recreate the workbook even if it already exists")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	cfg := config.Load()

	created, err := workbook.Init(cfg.DataFile, *force, store.SeedSheets())
	if err != nil {
		log.Fatalf("❌ Failed to initialize %s: %v", cfg.DataFile, err)
	}

	if created {
		log.Printf("✅ Created %s with required sheets and seed inventory", cfg.DataFile)
	} else {
		log.Printf("%s already exists. Use --force to recreate it.", cfg.DataFile)
	}
}
