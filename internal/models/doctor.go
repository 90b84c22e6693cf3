package models

import "time"

// AdminUsername is the reserved account that provisions doctor accounts.
const AdminUsername = "admin"

// Doctor represents an account that signs in and manages its own patients.
type Doctor struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:80;not null" json:"username"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	FullName     string    `gorm:"size:120" json:"full_name"`
	Specialty    string    `gorm:"size:120" json:"specialty"`
	CreatedAt    time.Time `json:"created_at"`

	Patients []Patient `gorm:"foreignKey:DoctorID" json:"patients,omitempty"`
}

// IsAdmin reports whether this doctor is the administrator account.
func (d *Doctor) IsAdmin() bool {
	return d.Username == AdminUsername
}

// LoginInput captures the login form.
type LoginInput struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// CreateDoctorInput captures the add-doctor form.
type CreateDoctorInput struct {
	Username  string `form:"username" binding:"required"`
	FullName  string `form:"full_name"`
	Specialty string `form:"specialty"`
	Password  string `form:"password" binding:"required"`
}
