package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/medicore/hospital-backend/controllers"
	"github.com/medicore/hospital-backend/middleware"
	"github.com/medicore/hospital-backend/models"
)

// SetupAppointmentRoutes configures all appointment related routes. Every
// route requires authentication; status changes and reschedules are limited
// to staff and doctors, cancellation is additionally open to the owning
// patient.
func SetupAppointmentRoutes(app *fiber.App) {
	appointment := app.Group("/appointments", middleware.Protected())

	appointment.Get("/slots", controllers.GetAvailableSlots)
	appointment.Get("/", controllers.GetAppointments)
	appointment.Get("/:id", controllers.GetAppointment)
	appointment.Post("/", controllers.CreateAppointment)
	appointment.Patch("/:id/reschedule",
		middleware.RequireRole(models.StaffRoles...),
		controllers.RescheduleAppointment)
	appointment.Patch("/:id/status",
		middleware.RequireRole(models.StaffRoles...),
		controllers.UpdateAppointmentStatus)
	appointment.Patch("/:id/cancel",
		middleware.RequireRole(models.RoleAdmin, models.RoleReceptionist, models.RoleDoctor, models.RolePatient),
		controllers.CancelAppointment)
}
