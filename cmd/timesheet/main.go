package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/sibyct/timesheet/db"
	"github.com/sibyct/timesheet/internal/auth"
	"github.com/sibyct/timesheet/internal/models"
	"github.com/sibyct/timesheet/internal/router"
	"gorm.io/gorm"
)

func main() {
	seed := flag.Bool("seed", false, "create the default admin account if no admin exists")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	if err := auth.InitJWTSecret(); err != nil {
		log.Fatalf("Failed to initialize JWT: %v", err)
	}

	dsn := os.Getenv("DATABASE_URL")

	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	if err := db.ConnectDatabase(dsn); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if *seed {
		if err := seedAdmin(); err != nil {
			log.Fatalf("Failed to seed admin account: %v", err)
		}
	}

	r := router.NewRouter()

	var port string

	if port = os.Getenv("PORT"); port == "" {
		port = "3000"
		log.Println("PORT not set, defaulting to 3000")
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// seedAdmin creates the initial admin account when the users table has no
// admin yet. The generated password is printed once and never stored in
// plain text.
func seedAdmin() error {
	var admin models.User

	err := db.DB.Where("role = ?", models.RoleAdmin).First(&admin).Error

	if err == nil {
		log.Println("Admin account already exists, skipping seed")
		return nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	password, err := auth.GenerateTempPassword()
	if err != nil {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin = models.User{
		UserID:    1,
		Username:  "admin",
		Password:  hash,
		Role:      models.RoleAdmin,
		FirstName: "Admin",
	}

	if err := db.DB.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("Seeded admin account (username: admin, password: %s)", password)
	return nil
}
