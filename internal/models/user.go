package models

import "time"

type UserStatus string

const (
	UserActive    UserStatus = "active"
	UserSuspended UserStatus = "suspended"
)

type User struct {
	ID           int64      `gorm:"primaryKey"`
	Email        string     `gorm:"uniqueIndex;size:255;not null"`
	Name         string     `gorm:"size:200"`
	PasswordHash string     `gorm:"size:255"`
	Status       UserStatus `gorm:"size:16;default:active"`

	// Sales profile attributes copied onto ledger entries at creation time.
	// Nullable: an unset attribute stays unset on the ledger entry too.
	Role           *string `gorm:"size:100"`
	LineOfBusiness *string `gorm:"size:100"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
