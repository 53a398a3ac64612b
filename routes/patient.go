package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/medicore/hospital-backend/controllers"
	"github.com/medicore/hospital-backend/middleware"
	"github.com/medicore/hospital-backend/models"
)

// SetupPatientRoutes configures patient profile management. Clinical staff
// can register and read patients; profile edits and account toggles are
// admin only.
func SetupPatientRoutes(app *fiber.App) {
	patient := app.Group("/patients", middleware.Protected())

	staff := middleware.RequireRole(models.RoleAdmin, models.RoleReceptionist, models.RoleNurse, models.RoleDoctor)

	patient.Get("/", staff, controllers.GetPatients)
	patient.Get("/:id", staff, controllers.GetPatient)
	patient.Post("/", staff, controllers.CreatePatient)
	patient.Patch("/:id", middleware.RequireRole(models.RoleAdmin), controllers.UpdatePatient)
	patient.Patch("/:id/toggle", middleware.RequireRole(models.RoleAdmin), controllers.TogglePatientAccountStatus)
}
