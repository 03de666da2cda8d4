package storage

import (
	"log"
	"os"

	"github.com/TommyTeaVee/impilo-regform/models"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func connectToDB() *gorm.DB {
	// Only load .env in development (when RENDER env var is not set)
	if os.Getenv("RENDER") == "" {
		err := godotenv.Load()
		if err != nil {
			log.Println("Warning: Could not load .env file (this is normal in production)")
		}
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Panic("DB_CONNECTION_STRING environment variable is required")
	}

	db, dbError := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if dbError != nil {
		log.Panic("error connection to db: " + dbError.Error())
	}

	DB = db
	return db
}

func performMigrations(db *gorm.DB) {
	db.AutoMigrate(
		&models.Registration{},
		&models.Admin{},
		&models.AuditLog{},
	)
}

// seedAdmin creates the initial admin account from env when none exists yet.
// ADMIN_EMAIL/ADMIN_PASSWORD are only read on an empty admins table.
func seedAdmin(db *gorm.DB) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	var count int64
	db.Model(&models.Admin{}).Count(&count)
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Println("Warning: could not hash seed admin password:", err)
		return
	}

	admin := models.Admin{Email: email, Password: string(hash), Role: "admin"}
	if err := db.Create(&admin).Error; err != nil {
		log.Println("Warning: could not seed admin account:", err)
	}
}

func InitializeDB() *gorm.DB {
	db := connectToDB()
	performMigrations(db)
	seedAdmin(db)
	Registrations = &GormRegistrationStore{}
	return db
}
