package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FADHEEL1234/Online-Medical/middleware"
	"github.com/FADHEEL1234/Online-Medical/models"
	"github.com/FADHEEL1234/Online-Medical/utils"
)

// ShowLogin renders the login form.
func (h *ViewHandler) ShowLogin(c *gin.Context) {
	data := h.baseData(c)
	if c.Query("registered") == "1" {
		data["Notice"] = "Registration successful. Please log in."
	}
	c.HTML(http.StatusOK, "login.tmpl", data)
}

// Login authenticates against the backend and branches on the staff flag:
// staff land on the admin view, everyone else on the dashboard.
func (h *ViewHandler) Login(c *gin.Context) {
	creds := models.Credentials{
		Username: c.PostForm("username"),
		Password: c.PostForm("password"),
	}

	result, err := h.Auth.Login(c.Request.Context(), middleware.SessionID(c), creds)
	if err != nil {
		// A 401 here is just wrong credentials; we are already on the
		// login view, so render the failure inline.
		data := h.baseData(c)
		data["Error"] = "Invalid username or password."
		data["Username"] = creds.Username
		c.HTML(http.StatusOK, "login.tmpl", data)
		return
	}

	utils.GetLogger().Info("user logged in",
		zap.String("username", result.Username), zap.Bool("is_staff", result.IsStaff),
		zap.Time("token_expires_at", result.ExpiresAt))

	if result.IsStaff {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	c.Redirect(http.StatusFound, "/dashboard")
}

// ShowRegister renders the registration form.
func (h *ViewHandler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.tmpl", h.baseData(c))
}

// Register forwards the form to the backend and, on success, sends the user
// to the login view. Registration never logs the user in.
func (h *ViewHandler) Register(c *gin.Context) {
	form := models.RegistrationForm{
		Username:        c.PostForm("username"),
		Email:           c.PostForm("email"),
		Password:        c.PostForm("password"),
		PasswordConfirm: c.PostForm("password_confirm"),
		FirstName:       c.PostForm("first_name"),
		LastName:        c.PostForm("last_name"),
	}

	if err := h.Auth.Register(c.Request.Context(), middleware.SessionID(c), form); err != nil {
		data := h.baseData(c)
		data["Error"] = errorMessage(err)
		data["Form"] = form
		c.HTML(http.StatusOK, "register.tmpl", data)
		return
	}

	c.Redirect(http.StatusFound, "/login?registered=1")
}

// Logout clears the session and returns to the login view.
func (h *ViewHandler) Logout(c *gin.Context) {
	if err := h.Auth.Logout(c.Request.Context(), middleware.SessionID(c)); err != nil {
		utils.GetLogger().Error("logout failed", zap.Error(err))
	}
	c.Redirect(http.StatusFound, "/login")
}
