package repository

import (
	"errors"
	"fmt"

	"business-dashboard-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Insert creates a customer row. The unique index on email is the
// authoritative uniqueness guard; a duplicate-key failure comes back as
// ErrDuplicateEmail so the orchestrator can render it as a field error.
func (r *CustomerRepository) Insert(c *models.Customer) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	err := r.db.Create(c).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateEmail
	}
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// CountByEmail is the friendly pre-insert uniqueness gate.
func (r *CustomerRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Customer{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count customers by email: %w", err)
	}
	return count, nil
}

func (r *CustomerRepository) GetImagePath(id uuid.UUID) (string, error) {
	var c models.Customer
	err := r.db.Select("image_url").First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get customer image path: %w", err)
	}
	return c.ImageURL, nil
}

func (r *CustomerRepository) Delete(id uuid.UUID) error {
	if err := r.db.Delete(&models.Customer{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

func (r *CustomerRepository) List() ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.Order("name ASC").Find(&customers).Error
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}
