package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/medicore/hospital-app/controllers"
)

// SetupChatRoutes configures chat message and roster routes
func SetupChatRoutes(app *fiber.App) {
	chat := app.Group("/chat")
	chat.Get("/messages", controllers.GetAllChatMessages)
	chat.Post("/messages", controllers.SendChatMessage)
	chat.Get("/messages/:participantId", controllers.GetConversation)
	chat.Get("/patients", controllers.GetChatPatients)
}
