package repository

import (
	"context"
	"errors"
	"fmt"

	"clinic-backend/internal/models"

	"gorm.io/gorm"
)

// DoctorRepository handles doctor persistence.
type DoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

// FindByUsername returns the doctor with the given username, or
// models.ErrNotFound.
func (r *DoctorRepository) FindByUsername(ctx context.Context, username string) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&doctor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find doctor by username: %w", err)
	}
	return &doctor, nil
}

// FindByID returns the doctor with the given id, or models.ErrNotFound.
func (r *DoctorRepository) FindByID(ctx context.Context, id uint64) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := r.db.WithContext(ctx).First(&doctor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find doctor by id: %w", err)
	}
	return &doctor, nil
}

// ListExcept returns every doctor except the given username, in insertion
// order.
func (r *DoctorRepository) ListExcept(ctx context.Context, username string) ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := r.db.WithContext(ctx).
		Where("username <> ?", username).
		Order("id asc").
		Find(&doctors).Error; err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}

// Create inserts a new doctor. A conflicting username maps to
// models.ErrDuplicateUsername whether it is caught by the handler's pre-check
// or by the unique index when two creates race.
func (r *DoctorRepository) Create(ctx context.Context, doctor *models.Doctor) error {
	if err := r.db.WithContext(ctx).Create(doctor).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.ErrDuplicateUsername
		}
		return fmt.Errorf("failed to create doctor: %w", err)
	}
	return nil
}
