package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MutationAuditLog records one orchestrated mutation (create/update/delete)
// against an entity, with the request details kept as JSON.
type MutationAuditLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Entity    string    `gorm:"index"`
	EntityID  string    `gorm:"index"`
	Action    string
	Details   datatypes.JSON
	CreatedAt time.Time
}
