package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/medicore/hospital-backend/controllers"
	"github.com/medicore/hospital-backend/middleware"
	"github.com/medicore/hospital-backend/models"
)

// SetupDoctorRoutes configures doctor profile management. Listing is open to
// any authenticated user; writes are admin only.
func SetupDoctorRoutes(app *fiber.App) {
	doctor := app.Group("/doctors", middleware.Protected())

	doctor.Get("/", controllers.GetDoctors)
	doctor.Get("/:id", controllers.GetDoctor)
	doctor.Post("/", middleware.RequireRole(models.RoleAdmin), controllers.CreateDoctor)
	doctor.Patch("/:id", middleware.RequireRole(models.RoleAdmin), controllers.UpdateDoctor)
	doctor.Patch("/:id/toggle", middleware.RequireRole(models.RoleAdmin), controllers.ToggleDoctorStatus)
	doctor.Post("/:id/photo", middleware.RequireRole(models.RoleAdmin), controllers.UploadDoctorPhoto)
	doctor.Delete("/:id", middleware.RequireRole(models.RoleAdmin), controllers.DeleteDoctor)
}
