package middleware

import (
	"errors"
	"net/http"

	"clinic-backend/internal/models"
	"clinic-backend/internal/repository"
	"clinic-backend/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const doctorKey = "currentDoctor"

// RequireAuth resolves the session cookie to a live doctor record and stores
// it in the request context. Requests without a valid session are redirected
// to the login page.
func RequireAuth(sessions *session.Manager, doctors *repository.DoctorRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := sessions.Token(c)
		if !ok {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		doctorID, err := sessions.Parse(token)
		if err != nil {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		doctor, err := doctors.FindByID(c.Request.Context(), doctorID)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				// The session outlived the account; treat as anonymous.
				sessions.Clear(c)
				c.Redirect(http.StatusFound, "/")
				c.Abort()
				return
			}
			// A storage failure is not an anonymous session; fail the
			// request without touching the cookie.
			log.Error().Err(err).Msg("failed to resolve session doctor")
			c.String(http.StatusInternalServerError, "internal error")
			c.Abort()
			return
		}

		c.Set(doctorKey, doctor)
		c.Next()
	}
}

// AdminOnly restricts a route to the administrator account. Must run after
// RequireAuth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		doctor := CurrentDoctor(c)
		if doctor == nil || !doctor.IsAdmin() {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentDoctor returns the doctor resolved by RequireAuth, or nil.
func CurrentDoctor(c *gin.Context) *models.Doctor {
	v, ok := c.Get(doctorKey)
	if !ok {
		return nil
	}
	doctor, _ := v.(*models.Doctor)
	return doctor
}
