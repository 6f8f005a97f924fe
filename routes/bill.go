package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/medicore/hospital-app/controllers"
	"github.com/medicore/hospital-app/middleware"
	"github.com/medicore/hospital-app/models"
)

// SetupBillRoutes configures all medical bill related routes
func SetupBillRoutes(app *fiber.App) {
	bill := app.Group("/bills")
	bill.Get("/", controllers.GetAllBills)
	bill.Get("/getBill/:id", controllers.GetBill)
	bill.Get("/user/:userId", controllers.GetBillsByUser)
	bill.Get("/history/:userId", controllers.GetPaymentHistory)
	bill.Get("/invoice/:id", controllers.GetBillInvoice)
	bill.Post("/addBill", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.CreateBill)
	bill.Put("/payment/:id", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.UpdateBillPayment)
	bill.Put("/update/:id", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.UpdateBill)
	bill.Delete("/deleteBill/:id", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.DeleteBill)
}
