package models

import "gorm.io/gorm"

type Request struct {
	gorm.Model
	UserID      uint    `json:"user_id" gorm:"not null;index"`
	User        User    `gorm:"foreignKey:UserID" json:"-"`
	Title       string  `json:"title" gorm:"not null"`
	Description string  `json:"description" gorm:"not null"`
	RequestType string  `json:"request_type" gorm:"not null;index"` // food_aid, safety_alert, volunteer, mentorship, elderly_assistance
	Status      string  `json:"status" gorm:"default:'pending'"`    // pending, in_progress, completed
	Location    *string `json:"location"`
	Urgency     string  `json:"urgency" gorm:"default:'normal'"` // low, normal, high, urgent
}
