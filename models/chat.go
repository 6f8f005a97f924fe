package models

import (
	"time"

	"gorm.io/gorm"
)

// ChatMessage is one doctor–patient message. Message may be empty when a
// file is attached; File holds the stored path under /uploads. Messages are
// never updated or deleted.
type ChatMessage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Sender    string    `json:"sender"`
	Receiver  string    `json:"receiver"`
	Message   string    `json:"message"`
	File      string    `json:"file"`
	Timestamp time.Time `json:"timestamp"`
}

func (m *ChatMessage) BeforeCreate(tx *gorm.DB) error {
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now()
	}
	return nil
}
