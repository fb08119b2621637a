package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:80;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;size:120;not null" json:"email"`
	PasswordHash string    `gorm:"size:120;not null" json:"-"`
	IsAdmin      bool      `gorm:"default:false" json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`

	Orders []Order `gorm:"foreignKey:UserID" json:"orders,omitempty"`
}
