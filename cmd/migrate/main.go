package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"osisweb/internal/config"
	"osisweb/internal/database"
)

// Standalone migration runner for deployments where the service user may
// not run DDL. The server also migrates on boot.
func main() {
	var command = flag.String("command", "up", "Migration command: up, ping")
	flag.Parse()

	cfg := config.NewConfig()

	db := database.NewDatabase()
	if err := db.Connect(context.Background(), cfg.Database.DSN()); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	switch *command {
	case "up":
		if err := db.Migrate(); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
		fmt.Println("Migrations applied")
	case "ping":
		if err := db.Ping(context.Background()); err != nil {
			log.Fatalf("Database unreachable: %v", err)
		}
		fmt.Println("Database reachable")
	default:
		fmt.Println("Usage: migrate -command [up|ping]")
		os.Exit(1)
	}
}
