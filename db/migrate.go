package db

import (
	"fmt"
	"log"

	"github.com/medicore/hospital-backend/models"
)

// activeSlotIndex guarantees at the storage layer that no two appointments
// holding a slot (scheduled or confirmed) share the same doctor, date and
// time. The application-level conflict check is only the friendly early
// rejection; this index closes the check-then-insert race.
const activeSlotIndex = `
CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_active_slot
ON appointments (doctor_id, appointment_date, appointment_time)
WHERE status IN ('scheduled', 'confirmed') AND deleted_at IS NULL
`

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.Department{},
		&models.Doctor{},
		&models.Patient{},
		&models.Appointment{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	// GORM tags cannot express a partial unique index, so apply it directly.
	if err := DB.Exec(activeSlotIndex).Error; err != nil {
		log.Fatal("Failed to create active slot index: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
