// Seed creates the admin account from ADMIN_EMAIL / ADMIN_PASSWORD.
// With -reset it rewrites the password of an existing admin instead.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"comitefd/internal/config"
	"comitefd/internal/database"
	"comitefd/internal/repository"
)

func main() {
	reset := flag.Bool("reset", false, "reset the password of an existing admin")
	flag.Parse()

	cfg := config.LoadConfig()

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	defer db.CloseDB()

	adminRepo := repository.NewAdminRepository(db.DB)
	ctx := context.Background()

	if *reset {
		if err := adminRepo.UpdatePassword(ctx, email, password); err != nil {
			log.Fatalf("could not reset password: %v", err)
		}
		log.Printf("Password reset for %s", email)
		return
	}

	_, err = adminRepo.GetByEmail(ctx, email)
	if err == nil {
		log.Printf("Admin already exists: %s", email)
		return
	}
	if !errors.Is(err, repository.ErrNotFound) {
		log.Fatalf("could not look up admin: %v", err)
	}

	admin, err := adminRepo.CreateAdmin(ctx, email, password)
	if err != nil {
		log.Fatalf("could not create admin: %v", err)
	}

	log.Printf("Admin created: %s (%s)", admin.Email, admin.AdminID)
}
