package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"kalemcms.com/app/internal/modules/admins"
)

// İlk yönetici hesabını açmak için: panelde hesap ekleme zaten login istiyor.
func main() {
	username := flag.String("username", "", "admin username")
	password := flag.String("password", "", "admin password (plaintext, hashed before storing)")
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatal("both -username and -password are required")
	}

	_ = godotenv.Load()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	a, err := admins.NewRepo(db).Create(context.Background(), *username, string(hash))
	if err != nil {
		if admins.IsDuplicateUsername(err) {
			log.Fatalf("username %q already exists", *username)
		}
		log.Fatalf("Failed to create admin: %v", err)
	}

	log.Printf("✓ admin %q created (id=%d)", a.Username, a.ID)
}
