package handlers

import (
	"net/http"

	"clinic-backend/internal/middleware"
	"clinic-backend/internal/models"
	"clinic-backend/internal/repository"
	"clinic-backend/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// DashboardHandler renders the signed-in doctor's profile page.
type DashboardHandler struct {
	doctors *repository.DoctorRepository
}

func NewDashboardHandler(doctors *repository.DoctorRepository) *DashboardHandler {
	return &DashboardHandler{doctors: doctors}
}

// Show renders the profile. The administrator additionally sees the roster of
// all other doctors.
func (h *DashboardHandler) Show(c *gin.Context) {
	doctor := middleware.CurrentDoctor(c)

	data := gin.H{
		"doctor": doctor,
		"flash":  session.TakeFlash(c),
	}

	if doctor.IsAdmin() {
		roster, err := h.doctors.ListExcept(c.Request.Context(), models.AdminUsername)
		if err != nil {
			log.Error().Err(err).Msg("failed to load doctor roster")
			c.String(http.StatusInternalServerError, "internal error")
			return
		}
		data["doctors"] = roster
	}

	c.HTML(http.StatusOK, "dashboard.html", data)
}
