package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get DB: %v", err)
	}

	// Her tablo ayrı Exec ile kurulur; DSN'de multiStatements gerekmez
	for _, stmt := range schema {
		if _, err := sqlDB.Exec(stmt); err != nil {
			log.Fatalf("Failed to create table: %v", err)
		}
	}

	log.Println("✓ admins, categories, articles, sessions tables created")
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS admins (
	  id INT UNSIGNED NOT NULL AUTO_INCREMENT,
	  username VARCHAR(64) NOT NULL,
	  password_hash VARCHAR(100) NOT NULL,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  UNIQUE KEY ux_admins_username (username)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS categories (
	  id INT UNSIGNED NOT NULL AUTO_INCREMENT,
	  slug VARCHAR(191) NOT NULL,
	  name VARCHAR(191) NOT NULL,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  KEY ix_categories_slug (slug)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS articles (
	  id INT UNSIGNED NOT NULL AUTO_INCREMENT,
	  slug VARCHAR(191) NOT NULL,
	  title VARCHAR(191) NOT NULL,
	  body TEXT NOT NULL,
	  category_id INT UNSIGNED NOT NULL,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  KEY ix_articles_slug (slug),
	  KEY ix_articles_category_id (category_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS sessions (
	  id CHAR(36) NOT NULL,
	  admin_id INT UNSIGNED NOT NULL,
	  username VARCHAR(64) NOT NULL,
	  expires_at DATETIME(3) NOT NULL,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  KEY ix_sessions_admin_id (admin_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}
