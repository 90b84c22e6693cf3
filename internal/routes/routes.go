package routes

import (
	"clinic-backend/internal/handlers"
	"clinic-backend/internal/middleware"
	"clinic-backend/internal/repository"
	"clinic-backend/internal/session"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Setup wires every route to its handler. The whole dependency graph is built
// here so tests can assemble an isolated engine around their own database.
func Setup(r *gin.Engine, db *gorm.DB, sessions *session.Manager) {
	doctorRepo := repository.NewDoctorRepository(db)
	patientRepo := repository.NewPatientRepository(db)

	authHandler := handlers.NewAuthHandler(doctorRepo, sessions)
	dashboardHandler := handlers.NewDashboardHandler(doctorRepo)
	patientHandler := handlers.NewPatientHandler(patientRepo)
	doctorHandler := handlers.NewDoctorHandler(doctorRepo)

	r.GET("/", authHandler.ShowLogin)
	r.POST("/", middleware.RateLimitMiddleware(), authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	protected := r.Group("/")
	protected.Use(middleware.RequireAuth(sessions, doctorRepo))
	{
		protected.GET("/dashboard", dashboardHandler.Show)
		protected.GET("/patients", patientHandler.List)
		protected.POST("/patients", patientHandler.Create)

		admin := protected.Group("/")
		admin.Use(middleware.AdminOnly())
		{
			admin.GET("/add_doctor", doctorHandler.ShowForm)
			admin.POST("/add_doctor", doctorHandler.Create)
		}
	}
}
