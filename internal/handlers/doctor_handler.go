package handlers

import (
	"errors"
	"net/http"

	"clinic-backend/internal/middleware"
	"clinic-backend/internal/models"
	"clinic-backend/internal/repository"
	"clinic-backend/internal/session"
	"clinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// DoctorHandler serves the admin-only doctor provisioning page.
type DoctorHandler struct {
	doctors *repository.DoctorRepository
}

func NewDoctorHandler(doctors *repository.DoctorRepository) *DoctorHandler {
	return &DoctorHandler{doctors: doctors}
}

// ShowForm renders the add-doctor form together with the current roster.
func (h *DoctorHandler) ShowForm(c *gin.Context) {
	h.render(c, session.TakeFlash(c))
}

// Create provisions a new doctor account. A duplicate username re-renders
// the form with a notification; success redirects to the dashboard.
func (h *DoctorHandler) Create(c *gin.Context) {
	var input models.CreateDoctorInput
	if err := c.ShouldBind(&input); err != nil {
		h.render(c, msgInvalidInput)
		return
	}

	ctx := c.Request.Context()
	if _, err := h.doctors.FindByUsername(ctx, input.Username); err == nil {
		h.render(c, msgUsernameTaken)
		return
	} else if !errors.Is(err, models.ErrNotFound) {
		log.Error().Err(err).Msg("failed to check username")
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	doctor := &models.Doctor{
		Username:     input.Username,
		FullName:     input.FullName,
		Specialty:    input.Specialty,
		PasswordHash: hash,
	}
	if err := h.doctors.Create(ctx, doctor); err != nil {
		// Two concurrent submissions can both pass the pre-check; the unique
		// index reports the loser here.
		if errors.Is(err, models.ErrDuplicateUsername) {
			h.render(c, msgUsernameTaken)
			return
		}
		log.Error().Err(err).Msg("failed to create doctor")
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	session.SetFlash(c, msgDoctorAdded)
	c.Redirect(http.StatusFound, "/dashboard")
}

// render draws the form plus the roster, with an optional notification.
func (h *DoctorHandler) render(c *gin.Context, flash string) {
	roster, err := h.doctors.ListExcept(c.Request.Context(), models.AdminUsername)
	if err != nil {
		log.Error().Err(err).Msg("failed to load doctor roster")
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	c.HTML(http.StatusOK, "add_doctor.html", gin.H{
		"doctor":  middleware.CurrentDoctor(c),
		"doctors": roster,
		"flash":   flash,
	})
}
