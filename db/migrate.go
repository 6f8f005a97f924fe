package db

import (
	"log"

	"github.com/medicore/hospital-app/models"
)

// Migrate runs AutoMigrate for every collection. Connects first if Init has
// not been called yet.
func Migrate() {
	if DB == nil {
		Init()
	}

	err := DB.AutoMigrate(
		&models.User{},
		&models.DoctorAvailability{},
		&models.Appointment{},
		&models.MedicalBill{},
		&models.ChatMessage{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	log.Println("✅ Migrations applied successfully!")
}
