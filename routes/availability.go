package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/medicore/hospital-app/controllers"
	"github.com/medicore/hospital-app/middleware"
	"github.com/medicore/hospital-app/models"
)

// SetupAvailabilityRoutes configures all doctor availability related routes
func SetupAvailabilityRoutes(app *fiber.App) {
	availability := app.Group("/doctor-availability")
	availability.Get("/", controllers.GetAllDoctorAvailabilities)
	availability.Get("/:id", controllers.GetDoctorAvailability)
	availability.Post("/", middleware.Protected(), middleware.RequireRole(models.RoleDoctor, models.RoleAdmin), controllers.CreateDoctorAvailability)
	availability.Put("/:id", middleware.Protected(), middleware.RequireRole(models.RoleDoctor, models.RoleAdmin), controllers.UpdateDoctorAvailability)
	availability.Delete("/:id", middleware.Protected(), middleware.RequireRole(models.RoleDoctor, models.RoleAdmin), controllers.DeleteDoctorAvailability)
}
