package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FADHEEL1234/Online-Medical/apiclient"
	"github.com/FADHEEL1234/Online-Medical/middleware"
	"github.com/FADHEEL1234/Online-Medical/services"
)

// ViewHandler bundles the services behind the web views. Every handler is a
// thin consumer: read session, call a service, render or redirect.
type ViewHandler struct {
	Auth         *services.AuthService
	Doctors      *services.DoctorService
	Appointments *services.AppointmentService
	Backend      *services.BackendMonitor
}

func NewViewHandler(auth *services.AuthService, doctors *services.DoctorService,
	appointments *services.AppointmentService, backend *services.BackendMonitor) *ViewHandler {
	return &ViewHandler{
		Auth:         auth,
		Doctors:      doctors,
		Appointments: appointments,
		Backend:      backend,
	}
}

// baseData is the payload every template receives: the session snapshot for
// the navbar plus the backend liveness banner state.
func (h *ViewHandler) baseData(c *gin.Context) gin.H {
	status := h.Backend.Status()
	return gin.H{
		"Session":      middleware.CurrentSession(c),
		"BackendUp":    status.Up,
		"BackendError": status.Err,
	}
}

// redirectIfUnauthorized handles the one globally-handled error: a 401 has
// already cleared the session, so force the navigation to the login view.
// Every other error stays with the calling view.
func (h *ViewHandler) redirectIfUnauthorized(c *gin.Context, err error) bool {
	if errors.Is(err, apiclient.ErrUnauthorized) {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return true
	}
	return false
}

// errorMessage maps an error to the static inline message a form displays.
func errorMessage(err error) string {
	var apiErr *apiclient.APIError
	switch {
	case errors.Is(err, apiclient.ErrBackendUnreachable):
		return "Unable to contact the server. Please try again later."
	case errors.As(err, &apiErr):
		return apiErr.Message()
	default:
		return "Something went wrong. Please try again."
	}
}
