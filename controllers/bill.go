package controllers

import (
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jung-kurt/gofpdf"

	"github.com/medicore/hospital-app/db"
	"github.com/medicore/hospital-app/models"
	"github.com/medicore/hospital-app/utils"
)

// CreateBill persists a new medical bill. BalanceAmount is stored exactly as
// supplied by the caller.
func CreateBill(c *fiber.Ctx) error {
	bill := new(models.MedicalBill)
	if err := c.BodyParser(bill); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if bill.PatientName == "" || bill.PatientID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}

	if bill.PaidStatus == "" {
		bill.PaidStatus = models.PaidStatusUnpaid
	}
	if !bill.PaidStatus.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown paid status",
		})
	}

	if err := db.DB.Create(bill).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create the bill",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(bill)
}

// GetAllBills returns every bill, newest first
func GetAllBills(c *fiber.Ctx) error {
	var bills []models.MedicalBill
	if err := db.DB.Order("created_at DESC").Find(&bills).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bills",
			Error:   err.Error(),
		})
	}
	return c.JSON(bills)
}

// GetBill retrieves one bill by ID
func GetBill(c *fiber.Ctx) error {
	id := c.Params("id")
	var bill models.MedicalBill
	if err := db.DB.First(&bill, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Bill not found",
		})
	}
	return c.JSON(bill)
}

// GetBillsByUser returns all bills for one patient
func GetBillsByUser(c *fiber.Ctx) error {
	userID := c.Params("userId")
	var bills []models.MedicalBill
	if err := db.DB.Where("patient_id = ?", userID).Find(&bills).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bills",
			Error:   err.Error(),
		})
	}
	return c.JSON(bills)
}

// GetPaymentHistory returns a patient's settled and partially settled bills.
// An empty history is reported as an error, not an empty list.
func GetPaymentHistory(c *fiber.Ctx) error {
	userID := c.Params("userId")
	var bills []models.MedicalBill
	err := db.DB.Where("patient_id = ? AND paid_status IN ?",
		userID, []models.PaidStatus{models.PaidStatusPaid, models.PaidStatusPartiallyPaid}).
		Find(&bills).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch payment history",
			Error:   err.Error(),
		})
	}

	if len(bills) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No payment history found for this user",
		})
	}

	return c.JSON(bills)
}

// UpdateBillPayment sets the paid status of a bill and nothing else
func UpdateBillPayment(c *fiber.Ctx) error {
	type PaymentInput struct {
		PaidStatus models.PaidStatus `json:"paidStatus"`
	}

	input := new(PaymentInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if !input.PaidStatus.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown paid status",
		})
	}

	id := c.Params("id")
	var bill models.MedicalBill
	if err := db.DB.First(&bill, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Bill not found",
		})
	}

	bill.PaidStatus = input.PaidStatus
	if err := db.DB.Save(&bill).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update the payment status",
		})
	}
	return c.JSON(bill)
}

// UpdateBill replaces the mutable bill fields. BalanceAmount is taken from
// the request as-is, never recomputed.
func UpdateBill(c *fiber.Ctx) error {
	type BillInput struct {
		PatientName   string            `json:"patientName"`
		TotalAmount   float64           `json:"totalAmount"`
		PaidAmount    float64           `json:"paidAmount"`
		BalanceAmount float64           `json:"balanceAmount"`
		PaidStatus    models.PaidStatus `json:"paidStatus"`
	}

	input := new(BillInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if !input.PaidStatus.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown paid status",
		})
	}

	id := c.Params("id")
	var bill models.MedicalBill
	if err := db.DB.First(&bill, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Bill not found",
		})
	}

	bill.PatientName = input.PatientName
	bill.TotalAmount = input.TotalAmount
	bill.PaidAmount = input.PaidAmount
	bill.BalanceAmount = input.BalanceAmount
	bill.PaidStatus = input.PaidStatus

	if err := db.DB.Save(&bill).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update the bill",
		})
	}
	return c.JSON(bill)
}

// DeleteBill removes a bill by ID
func DeleteBill(c *fiber.Ctx) error {
	id := c.Params("id")
	var bill models.MedicalBill
	if err := db.DB.First(&bill, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Bill not found",
		})
	}
	if err := db.DB.Delete(&bill).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete the bill",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetBillInvoice renders a bill as a PDF invoice
func GetBillInvoice(c *fiber.Ctx) error {
	id := c.Params("id")
	var bill models.MedicalBill
	if err := db.DB.First(&bill, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Bill not found",
		})
	}

	pdfBytes, err := generateInvoicePDF(&bill)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate invoice",
		})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=bill_%d.pdf", bill.ID))
	return c.Send(pdfBytes)
}

func generateInvoicePDF(bill *models.MedicalBill) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(0, 64, 128)
	pdf.CellFormat(0, 10, "MediCore Hospital", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, "Medical Bill Invoice", "1", 1, "C", false, 0, "")

	addInvoiceLine(pdf, "Bill ID", fmt.Sprintf("%d", bill.ID))
	addInvoiceLine(pdf, "Patient Name", bill.PatientName)
	addInvoiceLine(pdf, "Patient ID", bill.PatientID)
	addInvoiceLine(pdf, "Appointment ID", bill.AppointmentID)
	addInvoiceLine(pdf, "Issued", bill.CreatedAt.Format("2006-01-02"))

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 10, "Payment Details", "1", 1, "C", false, 0, "")
	addInvoiceLine(pdf, "Total Amount", fmt.Sprintf("%.2f", bill.TotalAmount))
	addInvoiceLine(pdf, "Paid Amount", fmt.Sprintf("%.2f", bill.PaidAmount))
	addInvoiceLine(pdf, "Balance Due", fmt.Sprintf("%.2f", bill.BalanceAmount))
	addInvoiceLine(pdf, "Paid Status", string(bill.PaidStatus))

	pdf.SetY(pdf.GetY() + 12)
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 10, "This is a computer generated invoice", "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func addInvoiceLine(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(60, 8, label, "1", 0, "L", false, 0, "")
	pdf.CellFormat(0, 8, value, "1", 1, "L", false, 0, "")
}
