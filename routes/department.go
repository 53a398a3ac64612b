package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/medicore/hospital-backend/controllers"
	"github.com/medicore/hospital-backend/middleware"
	"github.com/medicore/hospital-backend/models"
)

// SetupDepartmentRoutes configures department management. Listing is open to
// any authenticated user (booking forms need it); writes are admin only.
func SetupDepartmentRoutes(app *fiber.App) {
	department := app.Group("/departments", middleware.Protected())

	department.Get("/", controllers.GetDepartments)
	department.Get("/:id", controllers.GetDepartment)
	department.Post("/", middleware.RequireRole(models.RoleAdmin), controllers.CreateDepartment)
	department.Patch("/:id", middleware.RequireRole(models.RoleAdmin), controllers.UpdateDepartment)
	department.Patch("/:id/toggle", middleware.RequireRole(models.RoleAdmin), controllers.ToggleDepartmentStatus)
	department.Delete("/:id", middleware.RequireRole(models.RoleAdmin), controllers.DeleteDepartment)
}
