package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/FADHEEL1234/Online-Medical/handlers"
	"github.com/FADHEEL1234/Online-Medical/middleware"
	"github.com/FADHEEL1234/Online-Medical/session"
)

// RegisterAuthRoutes registers the views reachable while anonymous.
func RegisterAuthRoutes(r *gin.Engine, vh *handlers.ViewHandler) {
	r.GET("/login", vh.ShowLogin)
	r.POST("/login", vh.Login)
	r.GET("/register", vh.ShowRegister)
	r.POST("/register", vh.Register)
	r.POST("/logout", vh.Logout)
}

// RegisterUserRoutes registers the views behind the authentication gate.
func RegisterUserRoutes(r *gin.Engine, vh *handlers.ViewHandler) {
	protected := r.Group("")
	protected.Use(middleware.RequireAuth())
	protected.GET("/dashboard", vh.Dashboard)
	protected.GET("/doctors", vh.DoctorsPage)
	protected.GET("/book-appointment", vh.BookAppointmentPage)
	protected.POST("/book-appointment", vh.BookAppointment)
	protected.GET("/my-appointments", vh.MyAppointmentsPage)
	protected.POST("/my-appointments/:id/cancel", vh.CancelAppointment)
}

// RegisterAdminRoutes registers the staff-only views. The guard sends
// non-staff visitors to the dashboard, not to login.
func RegisterAdminRoutes(r *gin.Engine, vh *handlers.ViewHandler) {
	admin := r.Group("/admin")
	admin.Use(middleware.RequireStaff())
	admin.GET("", vh.AdminPage)
	admin.POST("/doctors", vh.CreateDoctor)
	admin.POST("/doctors/:id", vh.UpdateDoctor)
	admin.POST("/appointments/:id/status", vh.UpdateAppointmentStatus)
}

// RegisterHealthRoute exposes this process's own liveness plus the latest
// backend probe snapshot.
func RegisterHealthRoute(r *gin.Engine, vh *handlers.ViewHandler) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "backend": vh.Backend.Status()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, store session.Store, vh *handlers.ViewHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.SessionMiddleware(store))

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/dashboard")
	})

	RegisterAuthRoutes(r, vh)
	RegisterUserRoutes(r, vh)
	RegisterAdminRoutes(r, vh)
	RegisterHealthRoute(r, vh)
}
