package models

import "gorm.io/gorm"

type Donation struct {
	gorm.Model
	UserID        uint    `json:"user_id" gorm:"not null;index"`
	User          User    `gorm:"foreignKey:UserID" json:"-"`
	Amount        float64 `json:"amount" gorm:"not null"`
	Purpose       *string `json:"purpose"`
	IsRecurring   bool    `json:"is_recurring" gorm:"default:false"`
	PaymentMethod string  `json:"payment_method"`                        // "stripe"
	PaymentStatus string  `json:"payment_status" gorm:"default:'pending'"` // pending, completed, failed
}
