package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/medicore/hospital-app/cron"
	"github.com/medicore/hospital-app/db"
	"github.com/medicore/hospital-app/redis"
	"github.com/medicore/hospital-app/routes"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // attachments ride in the request body
	})

	db.Migrate()
	if os.Getenv("REDIS_ADDR") != "" {
		redis.InitRedis()
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Static("/uploads", "./uploads")

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Server is running!")
	})

	routes.SetupUserRoutes(app)
	routes.SetupAvailabilityRoutes(app)
	routes.SetupAppointmentRoutes(app)
	routes.SetupBillRoutes(app)
	routes.SetupChatRoutes(app)

	cron.StartCronJobs()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8500"
	}
	log.Fatal(app.Listen(":" + port))
}
