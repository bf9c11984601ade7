package models

import "time"

// Doctor mirrors the backend's doctor resource. The client never mutates it
// outside the explicit admin create/update calls; it is a read replica
// fetched per view.
type Doctor struct {
	ID             int       `json:"id,omitempty"`
	Name           string    `json:"name"`
	Specialization string    `json:"specialization"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	AvailableFrom  string    `json:"available_from,omitempty"`
	AvailableTo    string    `json:"available_to,omitempty"`
	AvailableDays  []int     `json:"available_days"`
	CreatedAt      time.Time `json:"created_at,omitzero"`
}

// DoctorUpdate carries the fields of a partial update. Nil fields are left
// untouched by the backend.
type DoctorUpdate struct {
	Name           *string `json:"name,omitempty"`
	Specialization *string `json:"specialization,omitempty"`
	Email          *string `json:"email,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	AvailableFrom  *string `json:"available_from,omitempty"`
	AvailableTo    *string `json:"available_to,omitempty"`
	AvailableDays  []int   `json:"available_days,omitempty"`
}

// Weekday indices follow the backend: 0=Monday .. 6=Sunday.
var weekdayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// WeekdayName returns the label for a backend weekday index, or "" when the
// index is out of range.
func WeekdayName(day int) string {
	if day < 0 || day >= len(weekdayNames) {
		return ""
	}
	return weekdayNames[day]
}

// AvailableOn reports whether the given weekday index is one of the doctor's
// working days.
func (d Doctor) AvailableOn(day int) bool {
	for _, v := range d.AvailableDays {
		if v == day {
			return true
		}
	}
	return false
}

// AvailableDayNames resolves the doctor's weekday indices to labels for the
// views. Unknown indices are skipped.
func (d Doctor) AvailableDayNames() []string {
	names := make([]string, 0, len(d.AvailableDays))
	for _, day := range d.AvailableDays {
		if name := WeekdayName(day); name != "" {
			names = append(names, name)
		}
	}
	return names
}
