// File: handlers/admin.go
package handlers

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/FADHEEL1234/Online-Medical/middleware"
	"github.com/FADHEEL1234/Online-Medical/models"
)

// AdminPage renders the staff dashboard: doctor management plus the full
// appointment list. Both fetches are issued independently and joined before
// rendering; there is no ordering guarantee between them.
func (h *ViewHandler) AdminPage(c *gin.Context) {
	data := h.baseData(c)
	ctx := c.Request.Context()
	sid := middleware.SessionID(c)

	var (
		wg           sync.WaitGroup
		doctors      []models.Doctor
		appointments []models.Appointment
		doctorsErr   error
		apptsErr     error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		doctors, doctorsErr = h.Doctors.List(ctx, sid)
	}()
	go func() {
		defer wg.Done()
		appointments, apptsErr = h.Appointments.AdminList(ctx, sid)
	}()
	wg.Wait()

	for _, err := range []error{doctorsErr, apptsErr} {
		if err != nil {
			if h.redirectIfUnauthorized(c, err) {
				return
			}
			data["Error"] = errorMessage(err)
			break
		}
	}

	data["Doctors"] = doctors
	data["Appointments"] = appointments
	data["Statuses"] = []string{models.StatusApproved, models.StatusRejected}
	c.HTML(http.StatusOK, "admin.tmpl", data)
}

// CreateDoctor handles the admin "new doctor" form.
func (h *ViewHandler) CreateDoctor(c *gin.Context) {
	doctor := models.Doctor{
		Name:           c.PostForm("name"),
		Specialization: c.PostForm("specialization"),
		Email:          c.PostForm("email"),
		Phone:          c.PostForm("phone"),
		AvailableFrom:  c.PostForm("available_from"),
		AvailableTo:    c.PostForm("available_to"),
		AvailableDays:  parseWeekdays(c.PostFormArray("available_days")),
	}

	if _, err := h.Doctors.Create(c.Request.Context(), middleware.SessionID(c), doctor); err != nil {
		if h.redirectIfUnauthorized(c, err) {
			return
		}
		h.renderAdminError(c, errorMessage(err))
		return
	}
	c.Redirect(http.StatusFound, "/admin")
}

// UpdateDoctor patches a doctor with whichever form fields were filled in.
func (h *ViewHandler) UpdateDoctor(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	var patch models.DoctorUpdate
	setIfPresent := func(dst **string, field string) {
		if v := c.PostForm(field); v != "" {
			*dst = &v
		}
	}
	setIfPresent(&patch.Name, "name")
	setIfPresent(&patch.Specialization, "specialization")
	setIfPresent(&patch.Email, "email")
	setIfPresent(&patch.Phone, "phone")
	setIfPresent(&patch.AvailableFrom, "available_from")
	setIfPresent(&patch.AvailableTo, "available_to")
	if days := c.PostFormArray("available_days"); len(days) > 0 {
		patch.AvailableDays = parseWeekdays(days)
	}

	if _, err := h.Doctors.Update(c.Request.Context(), middleware.SessionID(c), id, patch); err != nil {
		if h.redirectIfUnauthorized(c, err) {
			return
		}
		h.renderAdminError(c, errorMessage(err))
		return
	}
	c.Redirect(http.StatusFound, "/admin")
}

// UpdateAppointmentStatus requests an Approved/Rejected transition. The
// outcome is observed by re-fetching via the redirect, never applied
// locally.
func (h *ViewHandler) UpdateAppointmentStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	status := c.PostForm("status")
	if status != models.StatusApproved && status != models.StatusRejected {
		h.renderAdminError(c, "Unknown appointment status.")
		return
	}

	if _, err := h.Appointments.AdminSetStatus(c.Request.Context(), middleware.SessionID(c), id, status); err != nil {
		if h.redirectIfUnauthorized(c, err) {
			return
		}
		h.renderAdminError(c, errorMessage(err))
		return
	}
	c.Redirect(http.StatusFound, "/admin")
}

func (h *ViewHandler) renderAdminError(c *gin.Context, msg string) {
	data := h.baseData(c)
	data["Error"] = msg
	data["Statuses"] = []string{models.StatusApproved, models.StatusRejected}
	c.HTML(http.StatusOK, "admin.tmpl", data)
}

func parseWeekdays(values []string) []int {
	days := make([]int, 0, len(values))
	for _, v := range values {
		day, err := strconv.Atoi(v)
		if err != nil || models.WeekdayName(day) == "" {
			continue
		}
		days = append(days, day)
	}
	return days
}
