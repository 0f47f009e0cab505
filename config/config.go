package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/khasmak/api/store"
)

// DB is the process-wide handle to the document store, set by Connect.
var DB store.Store

const defaultDBPath = "db/database.json"

func Connect() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	path := os.Getenv("DB_PATH")
	if path == "" {
		path = defaultDBPath
	}

	fs := store.NewFileStore(path)

	// Seed a starter document on first boot (skips if the file exists)
	if err := Seed(fs); err != nil {
		log.Fatal("Failed to prepare database file:", err)
	}
	if _, err := fs.Load(); err != nil {
		log.Fatal("Failed to open database file:", err)
	}
	DB = fs
}
