package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"clinic-backend/internal/middleware"
	"clinic-backend/internal/models"
	"clinic-backend/internal/repository"
	"clinic-backend/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// PatientHandler serves the patient roster of the signed-in doctor.
type PatientHandler struct {
	patients *repository.PatientRepository
}

func NewPatientHandler(patients *repository.PatientRepository) *PatientHandler {
	return &PatientHandler{patients: patients}
}

// List renders the doctor's patients, optionally filtered by the search
// query parameter.
func (h *PatientHandler) List(c *gin.Context) {
	doctor := middleware.CurrentDoctor(c)
	search := c.Query("search")

	patients, err := h.patients.ListForDoctor(c.Request.Context(), doctor.ID, search)
	if err != nil {
		log.Error().Err(err).Msg("failed to list patients")
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	c.HTML(http.StatusOK, "patients.html", gin.H{
		"doctor":   doctor,
		"patients": patients,
		"search":   search,
		"flash":    session.TakeFlash(c),
	})
}

// Create adds a patient owned by the signed-in doctor, then redirects back to
// the listing so refreshing the page cannot resubmit the form.
func (h *PatientHandler) Create(c *gin.Context) {
	doctor := middleware.CurrentDoctor(c)

	var input models.CreatePatientInput
	if err := c.ShouldBind(&input); err != nil {
		session.SetFlash(c, msgInvalidInput)
		c.Redirect(http.StatusFound, "/patients")
		return
	}

	patient, err := h.patients.Create(c.Request.Context(), doctor.ID, input.Name, input.Notes)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			session.SetFlash(c, msgInvalidInput)
			c.Redirect(http.StatusFound, "/patients")
			return
		}
		log.Error().Err(err).Msg("failed to create patient")
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	session.SetFlash(c, fmt.Sprintf(msgPatientAdded, patient.PatientID))
	c.Redirect(http.StatusFound, "/patients")
}
