package models

import "time"

// Patient is a clinic record owned by exactly one doctor. PatientID is the
// public identifier shown to users; the numeric primary key stays internal so
// it never leaks creation order.
type Patient struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	PatientID string    `gorm:"uniqueIndex;size:36;not null" json:"patient_id"`
	Name      string    `gorm:"size:120;not null" json:"name"`
	Notes     string    `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	DoctorID  uint64    `gorm:"not null;index" json:"doctor_id"`
}

// CreatePatientInput captures the add-patient form.
type CreatePatientInput struct {
	Name  string `form:"name" binding:"required"`
	Notes string `form:"notes"`
}
