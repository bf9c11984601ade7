package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/FADHEEL1234/Online-Medical/middleware"
	"github.com/FADHEEL1234/Online-Medical/models"
)

// datetime-local inputs post this layout, without a timezone.
const formDateTimeLayout = "2006-01-02T15:04"

// BookAppointmentPage renders the booking form with the doctor list for the
// selector.
func (h *ViewHandler) BookAppointmentPage(c *gin.Context) {
	data := h.baseData(c)

	doctors, err := h.Doctors.List(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		if h.redirectIfUnauthorized(c, err) {
			return
		}
		data["Error"] = errorMessage(err)
	}
	data["Doctors"] = doctors
	c.HTML(http.StatusOK, "book_appointment.tmpl", data)
}

// BookAppointment submits the booking and, on success, moves on to the
// user's appointment list.
func (h *ViewHandler) BookAppointment(c *gin.Context) {
	renderError := func(msg string) {
		data := h.baseData(c)
		doctors, err := h.Doctors.List(c.Request.Context(), middleware.SessionID(c))
		if err == nil {
			data["Doctors"] = doctors
		}
		data["Error"] = msg
		c.HTML(http.StatusOK, "book_appointment.tmpl", data)
	}

	doctorID, err := strconv.Atoi(c.PostForm("doctor"))
	if err != nil {
		renderError("Please select a doctor.")
		return
	}
	when, err := time.ParseInLocation(formDateTimeLayout, c.PostForm("appointment_date"), time.Local)
	if err != nil {
		renderError("Please pick a valid date and time.")
		return
	}

	req := models.AppointmentRequest{Doctor: doctorID, AppointmentDate: when}
	if _, err := h.Appointments.Book(c.Request.Context(), middleware.SessionID(c), req); err != nil {
		if h.redirectIfUnauthorized(c, err) {
			return
		}
		renderError(errorMessage(err))
		return
	}

	c.Redirect(http.StatusFound, "/my-appointments")
}

// MyAppointmentsPage lists the logged-in user's appointments with their
// current status.
func (h *ViewHandler) MyAppointmentsPage(c *gin.Context) {
	data := h.baseData(c)

	appointments, err := h.Appointments.Mine(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		if h.redirectIfUnauthorized(c, err) {
			return
		}
		data["Error"] = errorMessage(err)
	}
	data["Appointments"] = appointments
	c.HTML(http.StatusOK, "my_appointments.tmpl", data)
}

// CancelAppointment deletes one of the user's appointments and re-fetches
// the list via redirect.
func (h *ViewHandler) CancelAppointment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/my-appointments")
		return
	}

	if err := h.Appointments.Cancel(c.Request.Context(), middleware.SessionID(c), id); err != nil {
		if h.redirectIfUnauthorized(c, err) {
			return
		}
		data := h.baseData(c)
		data["Error"] = errorMessage(err)
		appointments, listErr := h.Appointments.Mine(c.Request.Context(), middleware.SessionID(c))
		if listErr == nil {
			data["Appointments"] = appointments
		}
		c.HTML(http.StatusOK, "my_appointments.tmpl", data)
		return
	}

	c.Redirect(http.StatusFound, "/my-appointments")
}
