package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/medicore/hospital-backend/controllers"
	"github.com/medicore/hospital-backend/middleware"
	"github.com/medicore/hospital-backend/models"
)

// SetupAdminRoutes configures the admin dashboard endpoints.
func SetupAdminRoutes(app *fiber.App) {
	admin := app.Group("/admin", middleware.Protected(), middleware.RequireRole(models.RoleAdmin))

	admin.Get("/stats", controllers.GetAdminStats)
	admin.Get("/appointments/recent", controllers.GetRecentAppointments)
	admin.Get("/departments/stats", controllers.GetDepartmentStats)
}
