package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/medicore/hospital-app/controllers"
	"github.com/medicore/hospital-app/middleware"
	"github.com/medicore/hospital-app/models"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(app *fiber.App) {
	appointment := app.Group("/appointments")
	appointment.Get("/", controllers.GetAllAppointments)
	appointment.Post("/create", controllers.CreateAppointmentRequest)
	appointment.Patch("/:id/done", middleware.Protected(), middleware.RequireRole(models.RoleDoctor, models.RoleAdmin), controllers.MarkAppointmentDone)
	appointment.Delete("/:id", controllers.DeleteAppointment)

	actual := app.Group("/actual-appointments")
	actual.Post("/", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.CreateActualAppointment)
}
