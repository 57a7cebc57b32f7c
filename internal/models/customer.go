package models

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"index" json:"name"`
	Email     string    `gorm:"uniqueIndex" json:"email"`
	ImageURL  string    `gorm:"column:image_url" json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}
