package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/FADHEEL1234/Online-Medical/apiclient"
	"github.com/FADHEEL1234/Online-Medical/models"
)

// AppointmentService is a typed wrapper over the appointment endpoints.
// Status transitions are requested, never applied locally; callers re-fetch
// to observe the backend's decision.
type AppointmentService struct {
	API *apiclient.Client
}

// Book creates a Pending appointment for the logged-in user.
func (s *AppointmentService) Book(ctx context.Context, sid string, req models.AppointmentRequest) (models.Appointment, error) {
	var created models.Appointment
	err := s.API.Do(ctx, sid, http.MethodPost, "/appointments/", req, &created)
	return created, err
}

// Mine lists the calling user's own appointments.
func (s *AppointmentService) Mine(ctx context.Context, sid string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := s.API.Do(ctx, sid, http.MethodGet, "/my-appointments/", nil, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

// Cancel deletes one of the user's appointments.
func (s *AppointmentService) Cancel(ctx context.Context, sid string, id int) error {
	return s.API.Do(ctx, sid, http.MethodDelete, fmt.Sprintf("/appointments/%d/", id), nil, nil)
}

// AdminList returns every appointment in the system, with the denormalized
// user and doctor names the admin view displays.
func (s *AppointmentService) AdminList(ctx context.Context, sid string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := s.API.Do(ctx, sid, http.MethodGet, "/admin/appointments/", nil, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

// AdminSetStatus requests a status transition (Approved or Rejected).
func (s *AppointmentService) AdminSetStatus(ctx context.Context, sid string, id int, status string) (models.Appointment, error) {
	var updated models.Appointment
	err := s.API.Do(ctx, sid, http.MethodPatch, fmt.Sprintf("/admin/appointments/%d/", id),
		models.StatusUpdate{Status: status}, &updated)
	return updated, err
}
