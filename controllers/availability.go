package controllers

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/medicore/hospital-app/db"
	"github.com/medicore/hospital-app/models"
	"github.com/medicore/hospital-app/redis"
	"github.com/medicore/hospital-app/utils"
)

const availabilityCacheKey = "doctor-availability:all"

func availabilityMissingFields(a *models.DoctorAvailability) bool {
	return a.DoctorID == "" || a.DoctorName == "" || a.Specialization == "" ||
		a.Date == "" || a.StartTime == "" || a.EndTime == ""
}

// CreateDoctorAvailability persists a new availability window. Overlapping
// windows for the same doctor and date are accepted silently.
func CreateDoctorAvailability(c *fiber.Ctx) error {
	availability := new(models.DoctorAvailability)
	if err := c.BodyParser(availability); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if availabilityMissingFields(availability) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}

	if err := db.DB.Create(availability).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create doctor availability",
			Error:   err.Error(),
		})
	}

	redis.Del(availabilityCacheKey)
	return c.Status(fiber.StatusCreated).JSON(availability)
}

// GetAllDoctorAvailabilities returns every window, newest date first and
// start time ascending within a date. The list is cached in redis and
// invalidated on every write.
func GetAllDoctorAvailabilities(c *fiber.Ctx) error {
	if cached, err := redis.Get(availabilityCacheKey); err == nil {
		var availabilities []models.DoctorAvailability
		if json.Unmarshal([]byte(cached), &availabilities) == nil {
			return c.JSON(availabilities)
		}
	}

	var availabilities []models.DoctorAvailability
	if err := db.DB.Order("date DESC, start_time ASC").Find(&availabilities).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch doctor availabilities",
			Error:   err.Error(),
		})
	}

	if payload, err := json.Marshal(availabilities); err == nil {
		redis.Set(availabilityCacheKey, payload, 5*time.Minute)
	}

	return c.JSON(availabilities)
}

// GetDoctorAvailability retrieves one window by ID
func GetDoctorAvailability(c *fiber.Ctx) error {
	id := c.Params("id")
	var availability models.DoctorAvailability
	if err := db.DB.First(&availability, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Doctor availability not found",
		})
	}
	return c.JSON(availability)
}

// UpdateDoctorAvailability merges the request body over the stored record,
// so fields absent from the patch keep their values.
func UpdateDoctorAvailability(c *fiber.Ctx) error {
	id := c.Params("id")
	var availability models.DoctorAvailability
	if err := db.DB.First(&availability, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Doctor availability not found",
		})
	}

	recordID := availability.ID
	if err := c.BodyParser(&availability); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	// the path id wins; an id in the body must not turn Save into an upsert
	availability.ID = recordID

	if availabilityMissingFields(&availability) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}

	if err := db.DB.Save(&availability).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update doctor availability",
		})
	}

	redis.Del(availabilityCacheKey)
	return c.JSON(availability)
}

// DeleteDoctorAvailability removes a window. Deletion is physical; dependent
// appointments are left untouched.
func DeleteDoctorAvailability(c *fiber.Ctx) error {
	id := c.Params("id")
	var availability models.DoctorAvailability
	if err := db.DB.First(&availability, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Doctor availability not found",
		})
	}

	if err := db.DB.Delete(&availability).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete doctor availability",
		})
	}

	redis.Del(availabilityCacheKey)
	return c.SendStatus(fiber.StatusNoContent)
}
