package store

import (
	"gorm.io/gorm"

	"kmunity/internal/models"
)

// CreateDonation persists a donation record. Only called after the
// payment processor has confirmed the charge.
func CreateDonation(db *gorm.DB, donation *models.Donation) error {
	return db.Create(donation).Error
}
