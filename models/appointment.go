package models

import "time"

// Appointment statuses are server-authoritative. The client only requests
// transitions and re-fetches to observe the result.
const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// Appointment mirrors the backend's appointment resource. The *_name fields
// are denormalized display columns only present on admin listings.
type Appointment struct {
	ID                   int       `json:"id"`
	User                 int       `json:"user,omitempty"`
	UserName             string    `json:"user_name,omitempty"`
	Doctor               int       `json:"doctor"`
	DoctorName           string    `json:"doctor_name,omitempty"`
	DoctorSpecialization string    `json:"doctor_specialization,omitempty"`
	AppointmentDate      time.Time `json:"appointment_date"`
	Status               string    `json:"status"`
	CreatedAt            time.Time `json:"created_at,omitzero"`
	UpdatedAt            time.Time `json:"updated_at,omitzero"`
}

// AppointmentRequest is the payload for booking a new appointment.
type AppointmentRequest struct {
	Doctor          int       `json:"doctor"`
	AppointmentDate time.Time `json:"appointment_date"`
}

// StatusUpdate is the admin payload requesting a status transition.
type StatusUpdate struct {
	Status string `json:"status"`
}
