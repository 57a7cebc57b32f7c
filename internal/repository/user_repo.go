package repository

import (
	"errors"
	"fmt"

	"business-dashboard-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var u models.User
	err := r.db.First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

// Upsert is used by the seed path in main to guarantee a login exists.
func (r *UserRepository) Upsert(u *models.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	existing, err := r.GetByEmail(u.Email)
	if err == nil {
		return r.db.Model(&models.User{}).Where("id = ?", existing.ID).
			Update("password_hash", u.PasswordHash).Error
	}
	if !errors.Is(err, ErrNotFound) {
		return err
	}
	if err := r.db.Create(u).Error; err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}
