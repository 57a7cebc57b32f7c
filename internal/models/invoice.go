package models

import (
	"time"

	"github.com/google/uuid"
)

// Invoice statuses form a closed set; anything else is rejected by the form layer.
const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
)

type Invoice struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID uuid.UUID `gorm:"type:uuid;index" json:"customer_id"`
	// Amount is stored in minor currency units (cents) to avoid
	// floating-point rounding.
	Amount int64  `gorm:"index" json:"amount"`
	Status string `gorm:"index" json:"status"`
	// Date is the ISO calendar date of issue, fixed at creation.
	Date      string    `gorm:"index" json:"date"`
	CreatedAt time.Time `json:"created_at"`
}
