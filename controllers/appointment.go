package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/medicore/hospital-app/db"
	"github.com/medicore/hospital-app/models"
	"github.com/medicore/hospital-app/utils"
)

// CreateAppointmentRequest stores a patient-submitted appointment request.
// No capacity check is made against any availability window.
func CreateAppointmentRequest(c *fiber.Ctx) error {
	appointment := new(models.Appointment)
	if err := c.BodyParser(appointment); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if appointment.PatientID == "" || appointment.PatientName == "" ||
		appointment.Date == "" || appointment.Time == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}

	appointment.Source = models.SourcePatientRequest
	appointment.Status = ""

	if err := db.DB.Create(appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create appointment",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// CreateActualAppointment stores an admin-entered, already-scheduled visit.
func CreateActualAppointment(c *fiber.Ctx) error {
	appointment := new(models.Appointment)
	if err := c.BodyParser(appointment); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if appointment.PatientID == "" || appointment.PatientName == "" ||
		appointment.Date == "" || appointment.Time == "" || appointment.DoctorName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}

	appointment.Source = models.SourceAdminDirect
	appointment.Status = ""

	if err := db.DB.Create(appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create appointment",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// GetAllAppointments returns every appointment in insertion order
func GetAllAppointments(c *fiber.Ctx) error {
	var appointments []models.Appointment
	if err := db.DB.Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointments)
}

// DeleteAppointment removes an appointment by ID
func DeleteAppointment(c *fiber.Ctx) error {
	id := c.Params("id")
	var appointment models.Appointment
	if err := db.DB.First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Appointment not found",
		})
	}
	if err := db.DB.Delete(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete appointment",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// MarkAppointmentDone transitions an appointment from pending to completed
// in a single write. The completed set feeds the chat roster.
func MarkAppointmentDone(c *fiber.Ctx) error {
	id := c.Params("id")
	var appointment models.Appointment
	if err := db.DB.First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Appointment not found",
		})
	}

	if err := appointment.UpdateStatus(db.DB, models.StatusCompleted); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(appointment)
}

// ChatPatient is one entry in the doctor's chat roster, projected from
// completed appointments.
type ChatPatient struct {
	AppointmentID uint   `json:"appointmentId"`
	ClientID      string `json:"clientId"`
	ClientName    string `json:"clientName"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Email         string `json:"email"`
}

// GetChatPatients lists patients whose appointments have been completed.
func GetChatPatients(c *fiber.Ctx) error {
	var appointments []models.Appointment
	if err := db.DB.Where("status = ?", models.StatusCompleted).Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch chat patients",
			Error:   err.Error(),
		})
	}

	patients := make([]ChatPatient, 0, len(appointments))
	for _, a := range appointments {
		patients = append(patients, ChatPatient{
			AppointmentID: a.ID,
			ClientID:      a.PatientID,
			ClientName:    a.PatientName,
			Date:          a.Date,
			Time:          a.Time,
			Email:         a.Email,
		})
	}
	return c.JSON(patients)
}
