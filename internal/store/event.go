package store

import (
	"gorm.io/gorm"

	"kmunity/internal/models"
)

// CreateEvent persists a new community event.
func CreateEvent(db *gorm.DB, event *models.Event) error {
	return db.Create(event).Error
}

// ListEvents returns all events, optionally filtered by exact event_type.
func ListEvents(db *gorm.DB, eventType string) ([]models.Event, error) {
	query := db.Model(&models.Event{})
	if eventType != "" {
		query = query.Where("event_type = ?", eventType)
	}

	var events []models.Event
	if err := query.Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
