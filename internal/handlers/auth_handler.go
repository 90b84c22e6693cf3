package handlers

import (
	"errors"
	"net/http"

	"clinic-backend/internal/models"
	"clinic-backend/internal/repository"
	"clinic-backend/internal/session"
	"clinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// AuthHandler serves the login page and the session lifecycle.
type AuthHandler struct {
	doctors  *repository.DoctorRepository
	sessions *session.Manager
}

func NewAuthHandler(doctors *repository.DoctorRepository, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{doctors: doctors, sessions: sessions}
}

// ShowLogin renders the login form. Doctors that are already signed in go
// straight to the dashboard.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	authed, err := h.authenticated(c)
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve session")
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	if authed {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{
		"flash": session.TakeFlash(c),
	})
}

// Login verifies the submitted credentials and establishes the session.
func (h *AuthHandler) Login(c *gin.Context) {
	authed, err := h.authenticated(c)
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve session")
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	if authed {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	var input models.LoginInput
	if err := c.ShouldBind(&input); err != nil {
		session.SetFlash(c, msgBadCredentials)
		c.Redirect(http.StatusFound, "/")
		return
	}

	doctor, err := h.doctors.FindByUsername(c.Request.Context(), input.Username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			// One generic message for unknown users and wrong passwords
			// alike, so usernames cannot be enumerated.
			session.SetFlash(c, msgBadCredentials)
			c.Redirect(http.StatusFound, "/")
			return
		}
		log.Error().Err(err).Msg("login lookup failed")
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	if !utils.CheckPassword(input.Password, doctor.PasswordHash) {
		session.SetFlash(c, msgBadCredentials)
		c.Redirect(http.StatusFound, "/")
		return
	}

	token, err := h.sessions.Issue(doctor.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to issue session")
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	h.sessions.Set(c, token)
	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout clears the session unconditionally, even when nobody is signed in.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Clear(c)
	c.Redirect(http.StatusFound, "/")
}

// authenticated reports whether the request carries a session that resolves
// to a live doctor. Missing, invalid, or orphaned sessions are anonymous;
// a storage failure is returned as an error.
func (h *AuthHandler) authenticated(c *gin.Context) (bool, error) {
	token, ok := h.sessions.Token(c)
	if !ok {
		return false, nil
	}
	id, err := h.sessions.Parse(token)
	if err != nil {
		return false, nil
	}
	if _, err := h.doctors.FindByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
