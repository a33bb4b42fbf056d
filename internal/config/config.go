package config

import (
	"log"
	"os"

	"dentalclinic-backend/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DB adalah koneksi global, dipakai semua handler & store
var DB *gorm.DB

// ConnectDB membuka koneksi MySQL lewat GORM dan jalanin auto-migrate
func ConnectDB() {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		// Default buat development lokal
		dsn = "root:root@tcp(127.0.0.1:3306)/dentalclinic?charset=utf8mb4&parseTime=False&loc=Local"
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Gagal konek ke database: %v", err)
	}

	// Migrate tabel users & appointments (deleted partition = kolom deleted_at)
	if err := db.AutoMigrate(&models.User{}, &models.Appointment{}); err != nil {
		log.Fatalf("Gagal migrate: %v", err)
	}

	DB = db
	log.Println("Database connected")
}
