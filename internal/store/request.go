package store

import (
	"gorm.io/gorm"

	"kmunity/internal/models"
)

// CreateRequest persists a new aid request. Status defaults to "pending"
// at the storage layer.
func CreateRequest(db *gorm.DB, req *models.Request) error {
	return db.Create(req).Error
}

// ListRequests returns all requests, optionally filtered by exact
// request_type. Order is unspecified.
func ListRequests(db *gorm.DB, requestType string) ([]models.Request, error) {
	query := db.Model(&models.Request{})
	if requestType != "" {
		query = query.Where("request_type = ?", requestType)
	}

	var requests []models.Request
	if err := query.Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}
