package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"osisweb/internal/config"
	"osisweb/internal/database"

	"golang.org/x/crypto/bcrypt"
)

// Accounts are provisioned out of band; there is no self-registration
// endpoint. This tool creates the one admin account per organization.
func main() {
	var (
		username = flag.String("username", "", "Account username")
		password = flag.String("password", "", "Account password")
		role     = flag.String("role", "", "Organization role: OSIS or MPK")
	)
	flag.Parse()

	if *username == "" || *password == "" || *role == "" {
		log.Fatal("Usage: createuser -username NAME -password PASS -role OSIS|MPK")
	}

	parsedRole, err := database.ParseRole(*role)
	if err != nil {
		log.Fatalf("Invalid role %q: must be OSIS or MPK", *role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	cfg := config.NewConfig()
	ctx := context.Background()

	db := database.NewDatabase()
	if err := db.Connect(ctx, cfg.Database.DSN()); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	user, err := db.CreateUser(ctx, database.CreateUserParams{
		Username:     *username,
		PasswordHash: string(hash),
		Role:         parsedRole,
	})
	if err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}

	fmt.Printf("Created user %s (id=%d, role=%s)\n", user.Username, user.ID, user.Role)
}
