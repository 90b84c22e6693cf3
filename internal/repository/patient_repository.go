package repository

import (
	"context"
	"fmt"

	"clinic-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PatientRepository handles patient persistence. Every query is scoped to the
// owning doctor; no operation crosses ownership boundaries.
type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

// ListForDoctor returns the doctor's patients, newest first. A non-empty
// search term filters by case-insensitive substring over the patient name or
// the public patient id (Postgres ILIKE).
func (r *PatientRepository) ListForDoctor(ctx context.Context, doctorID uint64, search string) ([]models.Patient, error) {
	query := r.db.WithContext(ctx).Where("doctor_id = ?", doctorID)
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR patient_id ILIKE ?", pattern, pattern)
	}

	var patients []models.Patient
	if err := query.Order("created_at desc").Find(&patients).Error; err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

// Create stores a new patient for the given doctor and assigns its public id.
func (r *PatientRepository) Create(ctx context.Context, doctorID uint64, name, notes string) (*models.Patient, error) {
	if name == "" {
		return nil, models.ErrValidation
	}

	patient := models.Patient{
		PatientID: uuid.NewString(),
		Name:      name,
		Notes:     notes,
		DoctorID:  doctorID,
	}
	if err := r.db.WithContext(ctx).Create(&patient).Error; err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}
	return &patient, nil
}
