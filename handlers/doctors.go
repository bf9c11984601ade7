package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FADHEEL1234/Online-Medical/middleware"
)

// DoctorsPage lists every doctor with their availability windows.
func (h *ViewHandler) DoctorsPage(c *gin.Context) {
	data := h.baseData(c)

	doctors, err := h.Doctors.List(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		if h.redirectIfUnauthorized(c, err) {
			return
		}
		data["Error"] = errorMessage(err)
	}
	data["Doctors"] = doctors
	c.HTML(http.StatusOK, "doctors.tmpl", data)
}
