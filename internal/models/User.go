package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Username     string `json:"username" gorm:"uniqueIndex;not null"`
	Email        string `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-"`
	IsVIP        bool   `json:"is_vip" gorm:"default:false"`
	Role         string `json:"role" gorm:"default:'user'"` // "user", "volunteer", "admin"
}
