package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FADHEEL1234/Online-Medical/middleware"
	"github.com/FADHEEL1234/Online-Medical/services"
)

// Dashboard renders the landing view for authenticated users, including how
// long the current access token remains valid.
func (h *ViewHandler) Dashboard(c *gin.Context) {
	data := h.baseData(c)
	if exp, err := services.TokenExpiry(middleware.CurrentSession(c).AccessToken); err == nil {
		data["TokenExpiresAt"] = exp
	}
	c.HTML(http.StatusOK, "dashboard.tmpl", data)
}
