package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/medicore/hospital-app/controllers"
	"github.com/medicore/hospital-app/middleware"
)

// SetupUserRoutes configures registration, login and profile routes
func SetupUserRoutes(app *fiber.App) {
	user := app.Group("/user")

	// Public routes
	user.Post("/register", controllers.Register)
	user.Post("/login", controllers.Login)

	// Protected routes
	user.Get("/me", middleware.Protected(), controllers.GetUserDetails)
	user.Put("/setup", middleware.Protected(), controllers.SetupUser)
	user.Post("/profile-picture", middleware.Protected(), controllers.UpdateProfilePicture)
}
