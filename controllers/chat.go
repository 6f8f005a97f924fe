package controllers

import (
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/medicore/hospital-app/db"
	"github.com/medicore/hospital-app/models"
	"github.com/medicore/hospital-app/utils"
)

const uploadDir = "./uploads"

// SendChatMessage stores one message. The body is multipart so a file can
// ride along; at least one of message or file must be present. Files are
// written under ./uploads and served from the static mount.
func SendChatMessage(c *fiber.Ctx) error {
	sender := c.FormValue("sender")
	receiver := c.FormValue("receiver")
	message := c.FormValue("message")

	if sender == "" || receiver == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Sender and receiver are required",
		})
	}

	file, fileErr := c.FormFile("file")
	if message == "" && fileErr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Message or file is required",
		})
	}

	chatMessage := models.ChatMessage{
		Sender:   sender,
		Receiver: receiver,
		Message:  message,
	}

	if fileErr == nil {
		if err := os.MkdirAll(uploadDir, 0o755); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to prepare upload directory",
			})
		}
		name := uuid.New().String() + filepath.Ext(file.Filename)
		if err := c.SaveFile(file, filepath.Join(uploadDir, name)); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to save attachment",
			})
		}
		chatMessage.File = "/uploads/" + name
	}

	if err := db.DB.Create(&chatMessage).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to send message",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(chatMessage)
}

// GetAllChatMessages returns every message in storage order
func GetAllChatMessages(c *fiber.Ctx) error {
	var messages []models.ChatMessage
	if err := db.DB.Find(&messages).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch messages",
			Error:   err.Error(),
		})
	}
	return c.JSON(messages)
}

// GetConversation returns all messages where the participant appears as
// sender or receiver, in storage order.
func GetConversation(c *fiber.Ctx) error {
	participant := c.Params("participantId")
	var messages []models.ChatMessage
	if err := db.DB.Where("sender = ? OR receiver = ?", participant, participant).
		Find(&messages).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch messages",
			Error:   err.Error(),
		})
	}
	return c.JSON(messages)
}
