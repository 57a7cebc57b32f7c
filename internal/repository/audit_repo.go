package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"business-dashboard-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// Record appends one mutation to the audit trail.
func (r *AuditLogRepository) Record(entity, entityID, act string, details map[string]interface{}) error {
	detailsJSON, _ := json.Marshal(details)

	entry := &models.MutationAuditLog{
		ID:        uuid.New(),
		Entity:    entity,
		EntityID:  entityID,
		Action:    act,
		Details:   detailsJSON,
		CreatedAt: time.Now(),
	}
	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("record audit log: %w", err)
	}
	return nil
}

func (r *AuditLogRepository) ListByEntity(entity, entityID string) ([]models.MutationAuditLog, error) {
	var entries []models.MutationAuditLog
	err := r.db.Where("entity = ? AND entity_id = ?", entity, entityID).
		Order("created_at ASC").Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("list audit log: %w", err)
	}
	return entries, nil
}
