package repository

import (
	"errors"
	"fmt"

	"business-dashboard-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Insert creates a new invoice row. The id is generated here when the
// caller leaves it zero.
func (r *InvoiceRepository) Insert(inv *models.Invoice) error {
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	if err := r.db.Create(inv).Error; err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// Update changes every field but the issue date. A missing id is a silent
// no-op, per relational semantics — no existence check is performed.
func (r *InvoiceRepository) Update(id, customerID uuid.UUID, amountCents int64, status string) error {
	err := r.db.Model(&models.Invoice{}).Where("id = ?", id).Updates(map[string]interface{}{
		"customer_id": customerID,
		"amount":      amountCents,
		"status":      status,
	}).Error
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

// Delete removes the row by id; deleting an absent id is not an error.
func (r *InvoiceRepository) Delete(id uuid.UUID) error {
	if err := r.db.Delete(&models.Invoice{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

func (r *InvoiceRepository) GetByID(id uuid.UUID) (*models.Invoice, error) {
	var inv models.Invoice
	err := r.db.First(&inv, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

func (r *InvoiceRepository) List() ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.Order("date DESC, created_at DESC").Find(&invoices).Error
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return invoices, nil
}

// CountByCustomer gates customer deletion: a customer with invoices on
// record cannot be removed.
func (r *InvoiceRepository) CountByCustomer(customerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Invoice{}).Where("customer_id = ?", customerID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count invoices by customer: %w", err)
	}
	return count, nil
}
