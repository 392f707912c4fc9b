package models

import (
	"time"

	"gorm.io/gorm"
)

type Event struct {
	gorm.Model
	OrganizerID         uint      `json:"organizer_id" gorm:"not null;index"`
	Organizer           User      `gorm:"foreignKey:OrganizerID" json:"-"`
	Title               string    `json:"title" gorm:"not null"`
	Description         string    `json:"description" gorm:"not null"`
	EventType           string    `json:"event_type" gorm:"not null;index"` // mentorship, volunteer, community
	Location            *string   `json:"location"`
	StartTime           time.Time `json:"start_time" gorm:"not null"`
	EndTime             time.Time `json:"end_time" gorm:"not null"`
	MaxParticipants     *int      `json:"max_participants"`
	CurrentParticipants int       `json:"current_participants" gorm:"default:0"`
	Status              string    `json:"status" gorm:"default:'upcoming'"` // upcoming, ongoing, completed, cancelled
}
