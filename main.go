package main

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/medicore/hospital-backend/cron"
	"github.com/medicore/hospital-backend/db"
	"github.com/medicore/hospital-backend/redis"
	"github.com/medicore/hospital-backend/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	redis.InitRedis()
	cron.StartCronJobs()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hospital backend is running")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupAdminRoutes(app)
	routes.SetupDepartmentRoutes(app)
	routes.SetupDoctorRoutes(app)
	routes.SetupPatientRoutes(app)
	routes.SetupAppointmentRoutes(app)

	app.Listen(":8000")
}
