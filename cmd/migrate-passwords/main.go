// Migration script to hash existing plaintext passwords
// cmd/migrate-passwords/main.go
package main

import (
	"context"
	"log"

	"dorm-management-api/config"
	"dorm-management-api/repositories"
	"dorm-management-api/utils"

	"github.com/joho/godotenv"
)

type account struct {
	kind     string
	id       string
	username string
	password string
}

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db, err := config.InitDB()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	ctx := context.Background()

	users := repositories.NewUserRepository(db)
	students := repositories.NewStudentRepository(db)

	staff, err := users.FindAll(ctx)
	if err != nil {
		log.Fatal("Failed to fetch users:", err)
	}
	learners, err := students.FindAll(ctx)
	if err != nil {
		log.Fatal("Failed to fetch students:", err)
	}

	var accounts []account
	for _, u := range staff {
		accounts = append(accounts, account{"user", u.ID, u.Username, u.Password})
	}
	for _, s := range learners {
		accounts = append(accounts, account{"student", s.ID, s.Username, s.Password})
	}

	updated := 0
	for _, a := range accounts {
		// Skip if already hashed (bcrypt hashes start with $2)
		if utils.IsHashedPassword(a.password) {
			log.Printf("%s %s already has hashed password, skipping\n", a.kind, a.username)
			continue
		}

		hashedPassword, err := utils.HashPassword(a.password)
		if err != nil {
			log.Printf("Failed to hash password for %s %s: %v\n", a.kind, a.username, err)
			continue
		}

		if a.kind == "user" {
			err = users.UpdatePassword(ctx, a.id, hashedPassword)
		} else {
			err = students.UpdatePassword(ctx, a.id, hashedPassword)
		}
		if err != nil {
			log.Printf("Failed to update password for %s %s: %v\n", a.kind, a.username, err)
			continue
		}

		updated++
		log.Printf("Successfully updated password for %s %s\n", a.kind, a.username)
	}

	log.Printf("Password migration completed! %d account(s) updated", updated)
}
