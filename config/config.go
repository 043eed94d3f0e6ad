package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var SecretKey []byte

func Init() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatalf("%v", err)
	}

	secret := os.Getenv("SESSION_SECRET_KEY")
	if secret == "" {
		log.Fatal("session secret key not set")
	}
	SecretKey = []byte(secret)
}

func Port() string {
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	return ":8080"
}

// StoreBackend selects the order store: "postgres" (default) or "memory".
func StoreBackend() string {
	if backend := os.Getenv("STORE"); backend != "" {
		return backend
	}
	return "postgres"
}

func DatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

func PrefsPath() string {
	if path := os.Getenv("PREFS_PATH"); path != "" {
		return path
	}
	return "snackshop-prefs.json"
}

// SpoolPath is where kitchen tickets are written; empty means stdout.
func SpoolPath() string {
	return os.Getenv("PRINTER_SPOOL")
}
